package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/greenspot/internal/cli/formatter"
	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/lighting"
	"github.com/alexanderramin/greenspot/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// greenspotHuhTheme returns a custom huh theme using the formatter palette.
func greenspotHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// spotAnswers is the raw questionnaire, shared by flags and the guided form.
type spotAnswers struct {
	Name      string
	Room      string
	Source    string
	Direction string
	Sun       string
	Distance  string
}

func (a *spotAnswers) bindFlags(cmd *cobra.Command, prefix string) {
	cmd.Flags().StringVar(&a.Name, prefix+"name", "", "Spot name, e.g. \"Kitchen windowsill\"")
	cmd.Flags().StringVar(&a.Room, prefix+"room", "", "Room: bedroom, living-room, kitchen, bathroom, office, dining-room, hallway, other")
	cmd.Flags().StringVar(&a.Source, prefix+"source", "", "Light source: window, lamp, no-window")
	cmd.Flags().StringVar(&a.Direction, prefix+"direction", "", "Window direction: north, east, south, west, unsure")
	cmd.Flags().StringVar(&a.Sun, prefix+"sun", "", "Direct sun: lots, a-bit, almost-none")
	cmd.Flags().StringVar(&a.Distance, prefix+"distance", "", "Distance from window: windowsill, close, mid, far")
}

func answersFromSpot(s *domain.Spot) spotAnswers {
	a := spotAnswers{Name: s.Name, Room: string(s.RoomType), Source: string(s.LightSource)}
	if s.Direction != nil {
		a.Direction = string(*s.Direction)
	}
	if s.SunExposure != nil {
		a.Sun = string(*s.SunExposure)
	}
	if s.Distance != nil {
		a.Distance = string(*s.Distance)
	}
	return a
}

func (a spotAnswers) complete() bool {
	return strings.TrimSpace(a.Name) != "" && strings.TrimSpace(a.Source) != ""
}

// questionnaire parses the light answers. Window-only answers left blank
// stay unset; they are dropped for other sources.
func (a spotAnswers) questionnaire() (lighting.Questionnaire, error) {
	source, err := domain.ParseLightSource(a.Source)
	if err != nil {
		return lighting.Questionnaire{}, err
	}
	q := lighting.Questionnaire{Source: source}
	if a.Direction != "" {
		d, err := domain.ParseDirection(a.Direction)
		if err != nil {
			return q, err
		}
		q.Direction = &d
	}
	if a.Sun != "" {
		s, err := domain.ParseSunExposure(a.Sun)
		if err != nil {
			return q, err
		}
		q.SunExposure = &s
	}
	if a.Distance != "" {
		d, err := domain.ParseWindowDistance(a.Distance)
		if err != nil {
			return q, err
		}
		q.Distance = &d
	}
	return q.Normalize(), nil
}

func (a spotAnswers) input() (service.SpotInput, error) {
	q, err := a.questionnaire()
	if err != nil {
		return service.SpotInput{}, err
	}
	room := domain.RoomOther
	if a.Room != "" {
		if room, err = domain.ParseRoomType(a.Room); err != nil {
			return service.SpotInput{}, err
		}
	}
	return service.SpotInput{Name: strings.TrimSpace(a.Name), RoomType: room, Questionnaire: q}, nil
}

func options(pairs ...string) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, huh.NewOption(pairs[i], pairs[i+1]))
	}
	return out
}

// spotQuestionnaireForm walks through the light questionnaire. The window
// questions are skipped unless the light comes from a window.
func spotQuestionnaireForm(a *spotAnswers) *huh.Form {
	if a.Room == "" {
		a.Room = string(domain.RoomLiving)
	}
	if a.Source == "" {
		a.Source = string(domain.SourceWindow)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you call this spot?").
				Placeholder("Kitchen windowsill").
				Value(&a.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Which room is it in?").
				Options(options(
					"Living room", "living-room", "Bedroom", "bedroom", "Kitchen", "kitchen",
					"Bathroom", "bathroom", "Office", "office", "Dining room", "dining-room",
					"Hallway", "hallway", "Other", "other",
				)...).
				Value(&a.Room),
			huh.NewSelect[string]().
				Title("Where does the light come from?").
				Options(options("A window", "window", "A lamp or grow light", "lamp", "No natural light", "no-window")...).
				Value(&a.Source),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which way does the window face?").
				Options(options("North", "north", "East", "east", "South", "south", "West", "west", "Not sure", "unsure")...).
				Value(&a.Direction),
			huh.NewSelect[string]().
				Title("How much direct sun does it get?").
				Options(options("Lots", "lots", "A bit", "a-bit", "Almost none", "almost-none")...).
				Value(&a.Sun),
			huh.NewSelect[string]().
				Title("How far is the spot from the window?").
				Options(options("On the windowsill", "windowsill", "Close (under 1m)", "close", "A few steps away", "mid", "Across the room", "far")...).
				Value(&a.Distance),
		).WithHideFunc(func() bool { return a.Source != string(domain.SourceWindow) }),
	).WithTheme(greenspotHuhTheme()).WithKeyMap(formKeyMap()).WithShowHelp(false)
}

// formKeyMap lets esc cancel a form as well as ctrl+c.
func formKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	return km
}

func anyChanged(flags *pflag.FlagSet, names ...string) bool {
	for _, n := range names {
		if flags.Changed(n) {
			return true
		}
	}
	return false
}

// collectSpotAnswers fills missing answers through the guided form when
// attached to a terminal.
func collectSpotAnswers(app *App, a *spotAnswers, flagPrefix string) error {
	if a.complete() {
		return nil
	}
	if !app.interactive() {
		return fmt.Errorf("--%sname and --%ssource are required when not running in a terminal", flagPrefix, flagPrefix)
	}
	if err := app.runForm(spotQuestionnaireForm(a)); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errors.New("cancelled")
		}
		return err
	}
	return nil
}
