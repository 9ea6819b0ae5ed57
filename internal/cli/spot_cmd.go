package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/greenspot/internal/cli/formatter"
	"github.com/alexanderramin/greenspot/internal/lighting"
	"github.com/spf13/cobra"
)

func newSpotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spot",
		Short: "Manage the places your plants live",
	}

	cmd.AddCommand(
		newSpotAddCmd(app),
		newSpotListCmd(app),
		newSpotShowCmd(app),
		newSpotEditCmd(app),
		newSpotRenameCmd(app),
		newSpotRemoveCmd(app),
		newSpotRecommendCmd(app),
	)

	return cmd
}

func newSpotAddCmd(app *App) *cobra.Command {
	var answers spotAnswers

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Describe a spot and find out how much light it gets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := collectSpotAnswers(app, &answers, ""); err != nil {
				return err
			}
			in, err := answers.input()
			if err != nil {
				return err
			}

			spot, err := app.Spots.Create(ctx, in)
			if err != nil {
				return err
			}
			recs, err := app.Spots.Recommendations(ctx, spot.ID, lighting.SummaryLimit)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSpotCreated(spot, recs))
			return nil
		},
	}

	answers.bindFlags(cmd, "")

	return cmd
}

func newSpotListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List spots",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			spots, err := app.Spots.List(ctx)
			if err != nil {
				return err
			}
			if len(spots) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No spots yet. Add one with: greenspot spot add")
				return nil
			}

			plants, err := app.Plants.List(ctx)
			if err != nil {
				return err
			}
			counts := make(map[string]int)
			for _, p := range plants {
				if p.SpotID != nil {
					counts[*p.SpotID]++
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSpotList(spots, counts))
			return nil
		},
	}
}

func newSpotShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show SPOT",
		Short: "Show a spot with its plants and suggestions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSpotID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Spots.Detail(ctx, id, lighting.SummaryLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSpotDetail(d.Spot, d.Plants, d.Recommendations))
			return nil
		},
	}
}

func newSpotEditCmd(app *App) *cobra.Command {
	var answers spotAnswers

	cmd := &cobra.Command{
		Use:   "edit SPOT",
		Short: "Change a spot's answers and reassess its plants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSpotID(ctx, app, args[0])
			if err != nil {
				return err
			}
			current, err := app.Spots.GetByID(ctx, id)
			if err != nil {
				return err
			}

			merged := answersFromSpot(current)
			flags := cmd.Flags()
			if flags.Changed("name") {
				merged.Name = answers.Name
			}
			if flags.Changed("room") {
				merged.Room = answers.Room
			}
			if flags.Changed("source") {
				merged.Source = answers.Source
				merged.Direction, merged.Sun, merged.Distance = "", "", ""
			}
			if flags.Changed("direction") {
				merged.Direction = answers.Direction
			}
			if flags.Changed("sun") {
				merged.Sun = answers.Sun
			}
			if flags.Changed("distance") {
				merged.Distance = answers.Distance
			}

			if !anyChanged(flags, "name", "room", "source", "direction", "sun", "distance") {
				if !app.interactive() {
					return fmt.Errorf("nothing to change; pass at least one of --name, --room, --source, --direction, --sun, --distance")
				}
				if err := app.runForm(spotQuestionnaireForm(&merged)); err != nil {
					return err
				}
			}

			in, err := merged.input()
			if err != nil {
				return err
			}
			before := current.LightLevel
			spot, err := app.Spots.Update(ctx, id, in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Updated spot %s: %s\n", spot.Name, formatter.LightBadge(spot.LightLevel))
			if spot.LightLevel != before {
				fmt.Fprintf(out, "Light changed from %s, plants here were reassessed.\n", formatter.LightBadge(before))
			}
			return nil
		},
	}

	answers.bindFlags(cmd, "")

	return cmd
}

func newSpotRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename SPOT NAME",
		Short: "Rename a spot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSpotID(ctx, app, args[0])
			if err != nil {
				return err
			}
			spot, err := app.Spots.Rename(ctx, id, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed spot to %s\n", spot.Name)
			return nil
		},
	}
}

func newSpotRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm SPOT",
		Short: "Delete a spot; its plants become unassigned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSpotID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Spots.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted spot %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newSpotRecommendCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recommend SPOT",
		Short: "Suggest plants suited to a spot's light",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSpotID(ctx, app, args[0])
			if err != nil {
				return err
			}
			recs, err := app.Spots.Recommendations(ctx, id, limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecommendations(recs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum suggestions (0 for all)")

	return cmd
}
