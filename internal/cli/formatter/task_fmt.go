package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/greenspot/internal/domain"
)

func checkbox(t *domain.Task) string {
	if t.Completed {
		return StyleGreen.Render("✔")
	}
	return StyleDim.Render("○")
}

// FormatTaskLines renders tasks one per line with a countdown bar for
// recurring types.
func FormatTaskLines(tasks []*domain.Task, cfg domain.TaskConfig, now time.Time) string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		line := fmt.Sprintf("%s %s  %s", checkbox(t), t.Title, DueStyled(t.DueDate, now))
		if s, ok := cfg.Get(t.Type); ok && !t.Completed {
			left := t.DueDate.Sub(now).Hours() / 24
			line += "  " + RenderProgress(TimeLeft(left, s.FrequencyDays), 10)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// FormatTaskList renders tasks across plants.
func FormatTaskList(title string, tasks []*domain.Task, plantNames map[string]string, now time.Time) string {
	headers := []string{"", "ID", "TASK", "PLANT", "DUE"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		due := DueStyled(t.DueDate, now)
		if t.Completed {
			due = Dim("done")
		}
		rows = append(rows, []string{
			checkbox(t),
			TruncID(t.ID),
			t.Title,
			plantNames[t.PlantID],
			due,
		})
	}
	return RenderBox(title, RenderTable(headers, rows))
}

// FormatToggle summarizes the result of toggling a task.
func FormatToggle(task, followUp *domain.Task, lightReopened bool, now time.Time) string {
	var b strings.Builder
	if task.Completed {
		fmt.Fprintf(&b, "%s Completed %s", StyleGreen.Render("✔"), Bold(task.Title))
	} else {
		fmt.Fprintf(&b, "%s Reopened %s", StyleYellow.Render("↺"), Bold(task.Title))
	}
	if followUp != nil {
		fmt.Fprintf(&b, "\n%s Next: %s %s", Dim("→"), followUp.Title, DueStyled(followUp.DueDate, now))
	}
	if lightReopened {
		b.WriteString("\n" + StyleYellow.Render("☀ Light warning is showing again for this plant."))
	}
	return b.String()
}
