package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/greenspot/internal/advisor"
	"github.com/alexanderramin/greenspot/internal/cli/formatter"
	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/service"
	"github.com/spf13/cobra"
)

func newPlantCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plant",
		Short: "Manage your plants",
	}

	cmd.AddCommand(
		newPlantAddCmd(app),
		newPlantListCmd(app),
		newPlantShowCmd(app),
		newPlantDismissCmd(app),
		newPlantOverrideCmd(app),
		newPlantRenameCmd(app),
		newPlantWaterDaysCmd(app),
		newPlantAgeCmd(app),
		newPlantMoveCmd(app),
		newPlantTasksCmd(app),
		newPlantRemoveCmd(app),
	)

	return cmd
}

// plantFlags are the add-plant inputs shared by "plant add" and "onboard".
type plantFlags struct {
	name       string
	scientific string
	image      string
	light      string
	catalog    string
	tasks      taskFlags
}

func (f *plantFlags) bind(cmd *cobra.Command, prefix string) {
	cmd.Flags().StringVar(&f.name, prefix+"name", "", "Plant name")
	cmd.Flags().StringVar(&f.scientific, prefix+"scientific", "", "Scientific name")
	cmd.Flags().StringVar(&f.image, prefix+"image", "", "Image URL")
	cmd.Flags().StringVar(&f.light, prefix+"light", "", "Light it needs: bright-direct, bright-indirect, medium-indirect, low-light")
	cmd.Flags().StringVar(&f.catalog, prefix+"catalog", "", "Fill details from a catalog entry (ID or name)")
	f.tasks.bind(cmd)
}

func (f *plantFlags) input() (service.AddPlantInput, error) {
	in := service.AddPlantInput{Name: f.name, ScientificName: f.scientific, Image: f.image}
	if f.catalog != "" {
		sp, ok := advisor.Lookup(f.catalog)
		if !ok {
			return in, fmt.Errorf("catalog entry not found: %q: %w", f.catalog, domain.ErrNotFound)
		}
		in.Name = domain.CoalesceStr(f.name, sp.Name)
		in.ScientificName = domain.CoalesceStr(f.scientific, sp.ScientificName)
		in.Image = domain.CoalesceStr(f.image, sp.Image)
		in.LightRequirement = sp.LightRequirement
	}
	if f.light != "" {
		l, err := domain.ParseLightLevel(f.light)
		if err != nil {
			return in, err
		}
		in.LightRequirement = l
	}
	if in.LightRequirement == "" {
		return in, fmt.Errorf("--light or --catalog is required")
	}
	if !f.tasks.empty() {
		cfg := domain.DefaultTaskConfig()
		if err := f.tasks.apply(&cfg); err != nil {
			return in, err
		}
		in.TaskConfig = &cfg
	}
	return in, nil
}

func plantView(app *App, d *service.PlantDetail) formatter.PlantView {
	return formatter.PlantView{
		Plant:            d.Plant,
		Spot:             d.Spot,
		Tasks:            d.Tasks,
		ShowLightWarning: d.ShowLightWarning,
		Now:              app.now(),
	}
}

func newPlantAddCmd(app *App) *cobra.Command {
	var flags plantFlags
	var spot string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a plant, optionally placing it in a spot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			in, err := flags.input()
			if err != nil {
				return err
			}
			if spot != "" {
				if in.SpotID, err = resolveSpotID(ctx, app, spot); err != nil {
					return err
				}
			}

			d, err := app.Plants.Add(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlantDetail(plantView(app, d)))
			return nil
		},
	}

	flags.bind(cmd, "")
	cmd.Flags().StringVar(&spot, "spot", "", "Spot to place the plant in (ID or name)")

	return cmd
}

func newPlantListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List plants",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			plants, err := app.Plants.List(ctx)
			if err != nil {
				return err
			}
			if len(plants) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No plants yet. Add one with: greenspot plant add")
				return nil
			}

			spots, err := app.Spots.List(ctx)
			if err != nil {
				return err
			}
			names := make(map[string]string, len(spots))
			for _, s := range spots {
				names[s.ID] = s.Name
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlantList(plants, names))
			return nil
		},
	}
}

func newPlantShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PLANT",
		Short: "Show a plant with its care and upcoming tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlantID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Plants.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlantDetail(plantView(app, d)))
			return nil
		},
	}
}

// plantUpdateCmd builds the one-argument commands that change a plant and
// print a confirmation.
func plantUpdateCmd(app *App, use, short string, nargs int, run func(ctx context.Context, id string, args []string) (*domain.Plant, error), done func(p *domain.Plant) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlantID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := run(ctx, id, args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), done(p))
			return nil
		},
	}
}

func newPlantDismissCmd(app *App) *cobra.Command {
	return plantUpdateCmd(app, "dismiss PLANT", "Hide the light warning without changing status", 1,
		func(ctx context.Context, id string, _ []string) (*domain.Plant, error) {
			return app.Plants.DismissLightWarning(ctx, id)
		},
		func(p *domain.Plant) string {
			return fmt.Sprintf("Dismissed the light warning for %s (%s)", p.Name, formatter.StatusPill(p.Status))
		})
}

func newPlantOverrideCmd(app *App) *cobra.Command {
	return plantUpdateCmd(app, "override PLANT", "Keep the plant where it is despite the light mismatch", 1,
		func(ctx context.Context, id string, _ []string) (*domain.Plant, error) {
			return app.Plants.OverrideLightMismatch(ctx, id)
		},
		func(p *domain.Plant) string {
			return fmt.Sprintf("Keeping %s here: %s", p.Name, formatter.StatusPill(p.Status))
		})
}

func newPlantRenameCmd(app *App) *cobra.Command {
	return plantUpdateCmd(app, "rename PLANT NAME", "Rename a plant", 2,
		func(ctx context.Context, id string, args []string) (*domain.Plant, error) {
			return app.Plants.Rename(ctx, id, args[0])
		},
		func(p *domain.Plant) string {
			return fmt.Sprintf("Renamed plant to %s", p.Name)
		})
}

func newPlantWaterDaysCmd(app *App) *cobra.Command {
	return plantUpdateCmd(app, "water-days PLANT DAYS", "Set how often the plant is watered", 2,
		func(ctx context.Context, id string, args []string) (*domain.Plant, error) {
			return app.Plants.SetWateringDays(ctx, id, args[0])
		},
		func(p *domain.Plant) string {
			return fmt.Sprintf("%s: %s", p.Name, p.Care.WateringFrequency)
		})
}

func newPlantAgeCmd(app *App) *cobra.Command {
	return plantUpdateCmd(app, "age PLANT DAYS", "Set how many days you have had the plant", 2,
		func(ctx context.Context, id string, args []string) (*domain.Plant, error) {
			return app.Plants.SetAge(ctx, id, args[0])
		},
		func(p *domain.Plant) string {
			return fmt.Sprintf("%s has been with you %s", p.Name, formatter.Plural(p.AgeDays(app.now()), "day"))
		})
}

func newPlantMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move PLANT [SPOT]",
		Short: "Move a plant to another spot, or unassign it when SPOT is omitted",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlantID(ctx, app, args[0])
			if err != nil {
				return err
			}
			spotID := ""
			if len(args) == 2 {
				if spotID, err = resolveSpotID(ctx, app, args[1]); err != nil {
					return err
				}
			}
			p, err := app.Plants.Move(ctx, id, spotID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if spotID == "" {
				fmt.Fprintf(out, "%s is now unassigned\n", p.Name)
				return nil
			}
			fmt.Fprintf(out, "Moved %s: %s, %s\n", p.Name, formatter.StatusPill(p.Status), p.Care.WateringFrequency)
			return nil
		},
	}
}

func newPlantTasksCmd(app *App) *cobra.Command {
	var flags taskFlags

	cmd := &cobra.Command{
		Use:   "tasks PLANT",
		Short: "Show or change which care tasks are scheduled",
		Long: "Without flags, shows the plant's task schedule. With --task or --skip,\n" +
			"updates it and regenerates the plant's open tasks.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlantID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Plants.Get(ctx, id)
			if err != nil {
				return err
			}

			if !flags.empty() {
				cfg := d.Plant.TaskConfig
				if err := flags.apply(&cfg); err != nil {
					return err
				}
				if d, err = app.Plants.UpdateTaskConfig(ctx, id, cfg); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(d.Plant.Name+" care schedule", formatter.FormatTaskConfig(d.Plant.TaskConfig)))
			return nil
		},
	}

	flags.bind(cmd)

	return cmd
}

func newPlantRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm PLANT",
		Short: "Delete a plant and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlantID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plants.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plant %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
