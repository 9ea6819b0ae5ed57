package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/greenspot/internal/cli/formatter"
	"github.com/alexanderramin/greenspot/internal/lighting"
	"github.com/alexanderramin/greenspot/internal/service"
	"github.com/spf13/cobra"
)

func newOnboardCmd(app *App) *cobra.Command {
	var spot spotAnswers
	var plant plantFlags

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Set up your first spot and plant in one step",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := collectSpotAnswers(app, &spot, "spot-"); err != nil {
				return err
			}
			spotIn, err := spot.input()
			if err != nil {
				return err
			}
			plantIn, err := plant.input()
			if err != nil {
				return err
			}

			res, err := app.Plants.Onboard(ctx, service.OnboardInput{Spot: spotIn, Plant: plantIn})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatSpotCreated(res.Spot, lighting.Recommend(res.Spot.LightLevel, lighting.SummaryLimit)))
			fmt.Fprintln(out, formatter.FormatPlantDetail(plantView(app, res.Plant)))
			return nil
		},
	}

	spot.bindFlags(cmd, "spot-")
	plant.bind(cmd, "plant-")

	return cmd
}

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Serve == nil {
				return errors.New("the HTTP API is not available in this build")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Serve(ctx)
		},
	}
}
