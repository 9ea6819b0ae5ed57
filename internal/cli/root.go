package cli

import (
	"context"
	"os"
	"time"

	"github.com/alexanderramin/greenspot/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Spots   service.SpotService
	Plants  service.PlantService
	Tasks   service.TaskService
	Profile service.ProfileService
	Advice  service.AdviceService

	// IsInteractive reports whether stdin is a terminal. Guided forms are
	// only offered when it returns true.
	IsInteractive func() bool
	// RunForm runs a huh form. Nil renders the form on stderr so stdout
	// only carries command output.
	RunForm func(*huh.Form) error
	// Serve starts the HTTP API and blocks until ctx is cancelled.
	Serve func(ctx context.Context) error
	// Now is the clock used for relative dates. Nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.WithProgramOptions(tea.WithOutput(os.Stderr)).Run()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

// NewRootCmd creates the top-level "greenspot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "greenspot",
		Short:        "Match houseplants to the light in your home and keep up with their care",
		SilenceUsage: true,
	}

	root.AddCommand(
		newSpotCmd(app),
		newPlantCmd(app),
		newTaskCmd(app),
		newClassifyCmd(app),
		newCatalogCmd(app),
		newIdentifyCmd(app),
		newChatCmd(app),
		newProfileCmd(app),
		newOnboardCmd(app),
		newServeCmd(app),
	)

	return root
}
