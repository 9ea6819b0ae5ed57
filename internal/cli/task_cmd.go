package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/greenspot/internal/cli/formatter"
	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/service"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Track care tasks",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskDueCmd(app),
		newTaskToggleCmd(app),
		newTaskAddCmd(app),
		newTaskRegenCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func plantNames(ctx context.Context, app *App) (map[string]string, error) {
	plants, err := app.Plants.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(plants))
	for _, p := range plants {
		names[p.ID] = p.Name
	}
	return names, nil
}

func printTasks(cmd *cobra.Command, app *App, title string, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to do. Your plants are happy.")
		return nil
	}
	names, err := plantNames(context.Background(), app)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskList(title, tasks, names, app.now()))
	return nil
}

func newTaskListCmd(app *App) *cobra.Command {
	var plant string
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			plantID := ""
			if plant != "" {
				var err error
				if plantID, err = resolvePlantID(ctx, app, plant); err != nil {
					return err
				}
			}
			tasks, err := app.Tasks.List(ctx, plantID, all)
			if err != nil {
				return err
			}
			return printTasks(cmd, app, "Tasks", tasks)
		},
	}

	cmd.Flags().StringVar(&plant, "plant", "", "Only tasks for this plant (ID or name)")
	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")

	return cmd
}

func newTaskDueCmd(app *App) *cobra.Command {
	var within int

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List tasks that are due",
		RunE: func(cmd *cobra.Command, args []string) error {
			if within < 0 {
				return fmt.Errorf("--within must not be negative")
			}
			before := app.now().Add(time.Duration(within) * 24 * time.Hour)
			tasks, err := app.Tasks.ListDue(context.Background(), before)
			if err != nil {
				return err
			}
			return printTasks(cmd, app, "Due", tasks)
		},
	}

	cmd.Flags().IntVar(&within, "within", 0, "Also include tasks due in the next N days")

	return cmd
}

func newTaskToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle TASK",
		Aliases: []string{"done"},
		Short:   "Mark a task done, or reopen a done task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			res, err := app.Tasks.Toggle(ctx, id)
			if err != nil {
				return err
			}
			if res.Skipped {
				fmt.Fprintln(cmd.OutOrStdout(), "That task or its plant no longer exists.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatToggle(res.Task, res.FollowUp, res.LightCheckReopened, app.now()))
			return nil
		},
	}
}

func newTaskAddCmd(app *App) *cobra.Command {
	var plant, title, typ, category, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a one-off task for a plant",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			plantID, err := resolvePlantID(ctx, app, plant)
			if err != nil {
				return err
			}
			in := service.NewTaskInput{PlantID: plantID, Title: title}
			if typ != "" {
				if in.Type, err = domain.ParseTaskType(typ); err != nil {
					return err
				}
			}
			if category != "" {
				if in.Category, err = domain.ParseTaskCategory(category); err != nil {
					return err
				}
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", strings.TrimSpace(due))
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				in.DueDate = d.UTC()
			}

			task, err := app.Tasks.Add(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s %s (%s)\n", formatter.TruncID(task.ID), task.Title, formatter.DueStyled(task.DueDate, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&plant, "plant", "", "Plant the task is for (ID or name)")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&typ, "type", "", "Task type, enables follow-ups: watering, rotating, fertilizing, misting, pruning, pestCheck")
	cmd.Flags().StringVar(&category, "category", "", "Category: care, light-check, general")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD), default today")
	_ = cmd.MarkFlagRequired("plant")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskRegenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "regen PLANT",
		Short: "Replace a plant's open tasks with a fresh schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlantID(ctx, app, args[0])
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.Regenerate(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %s\n", formatter.Plural(len(tasks), "task"))
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm TASK",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
