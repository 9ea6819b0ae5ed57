package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/greenspot/internal/cli/formatter"
	"github.com/alexanderramin/greenspot/internal/lighting"
	"github.com/spf13/cobra"
)

func newClassifyCmd(app *App) *cobra.Command {
	var answers spotAnswers

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Work out a light level from questionnaire answers without saving a spot",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := answers.questionnaire()
			if err != nil {
				return err
			}
			level := lighting.Classify(q)
			care := lighting.CareFor(level)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.LightBadge(level))
			fmt.Fprintln(out, care.WateringFrequency)
			fmt.Fprintln(out, formatter.FormatRecommendations(lighting.Recommend(level, lighting.SummaryLimit)))
			return nil
		},
	}

	cmd.Flags().StringVar(&answers.Source, "source", "", "Light source: window, lamp, no-window")
	cmd.Flags().StringVar(&answers.Direction, "direction", "", "Window direction: north, east, south, west, unsure")
	cmd.Flags().StringVar(&answers.Sun, "sun", "", "Direct sun: lots, a-bit, almost-none")
	cmd.Flags().StringVar(&answers.Distance, "distance", "", "Distance from window: windowsill, close, mid, far")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func newCatalogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [QUERY]",
		Short: "Search the plant catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			species := app.Advice.SearchCatalog(query)
			if len(species) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No catalog plants match %q.\n", query)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCatalog(species))
			return nil
		},
	}
}

func newIdentifyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "identify IMAGE",
		Short: "Identify a plant from a photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}
			id, err := app.Advice.Identify(context.Background(), image)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatIdentification(id))
			fmt.Fprintf(cmd.OutOrStdout(), "Add it with: greenspot plant add --catalog %s\n", id.Species.ID)
			return nil
		},
	}
}

func newChatCmd(app *App) *cobra.Command {
	var plant string

	cmd := &cobra.Command{
		Use:   "chat MESSAGE...",
		Short: "Ask the plant expert, or one of your plants, a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			speaker := "Greenspot"
			plantID := ""
			if plant != "" {
				var err error
				if plantID, err = resolvePlantID(ctx, app, plant); err != nil {
					return err
				}
				d, err := app.Plants.Get(ctx, plantID)
				if err != nil {
					return err
				}
				speaker = d.Plant.Name
			}

			reply, err := app.Advice.Chat(ctx, strings.Join(args, " "), plantID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatChatReply(speaker, reply))
			return nil
		},
	}

	cmd.Flags().StringVar(&plant, "plant", "", "Talk to this plant (ID or name)")

	return cmd
}

func newProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Summarize your plants, spots and due care",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Profile.Summary(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(s))
			return nil
		},
	}
}
