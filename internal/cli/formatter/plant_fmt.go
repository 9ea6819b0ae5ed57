package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/lighting"
)

// PlantView is what the plant card needs.
type PlantView struct {
	Plant            *domain.Plant
	Spot             *domain.Spot
	Tasks            []*domain.Task
	ShowLightWarning bool
	Now              time.Time
}

// FormatPlantList renders plants with their spot and status.
func FormatPlantList(plants []*domain.Plant, spotNames map[string]string) string {
	headers := []string{"ID", "NAME", "SPOT", "STATUS", "WATERING"}
	rows := make([][]string, 0, len(plants))
	for _, p := range plants {
		spot := Dim("unassigned")
		if p.SpotID != nil {
			if name, ok := spotNames[*p.SpotID]; ok {
				spot = name
			}
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			spot,
			StatusPill(p.Status),
			fmt.Sprintf("every %dd", p.Care.WateringDays),
		})
	}
	return RenderBox("Plants", RenderTable(headers, rows))
}

// LightWarning is the mismatch banner text.
func LightWarning(p *domain.Plant, s *domain.Spot) string {
	return StyleYellow.Render(fmt.Sprintf("☀ %s prefers %s light, but %s has %s light.",
		p.Name, lighting.Describe(p.LightRequirement), s.Name, lighting.Describe(s.LightLevel))) +
		"\n" + Dim("  dismiss: greenspot plant dismiss "+shortID(p.ID)+"   keep it here: greenspot plant override "+shortID(p.ID))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatPlantDetail renders the plant card.
func FormatPlantDetail(v PlantView) string {
	p := v.Plant
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Bold(p.Name), StatusPill(p.Status))
	if p.ScientificName != "" {
		b.WriteString(Dim(p.ScientificName) + "\n")
	}
	b.WriteString("\n")

	spot := Dim("unassigned")
	if v.Spot != nil {
		spot = fmt.Sprintf("%s  %s", v.Spot.Name, LightBadge(v.Spot.LightLevel))
	}
	b.WriteString(KeyValue([][2]string{
		{"ID", p.ID},
		{"Spot", spot},
		{"Needs", LightBadge(p.LightRequirement)},
		{"Watering", p.Care.WateringFrequency},
		{"Light", p.Care.LightDescription},
		{"With you", Plural(p.AgeDays(v.Now), "day")},
	}))

	if v.ShowLightWarning && v.Spot != nil {
		b.WriteString("\n\n" + LightWarning(p, v.Spot))
	}

	b.WriteString("\n\n" + Header("Upcoming care") + "\n")
	if len(v.Tasks) == 0 {
		b.WriteString(Dim("Nothing scheduled."))
	} else {
		b.WriteString(FormatTaskLines(v.Tasks, p.TaskConfig, v.Now))
	}
	return RenderBox("Plant", b.String())
}

var taskTypeLabels = map[domain.TaskType]string{
	domain.TaskWatering:    "Watering",
	domain.TaskRotating:    "Rotating",
	domain.TaskFertilizing: "Fertilizing",
	domain.TaskMisting:     "Misting",
	domain.TaskPruning:     "Pruning",
	domain.TaskPestCheck:   "Pest check",
}

// TaskTypeLabel returns a display name for a task type.
func TaskTypeLabel(t domain.TaskType) string {
	if l, ok := taskTypeLabels[t]; ok {
		return l
	}
	return "Other"
}

// FormatTaskConfig renders the per-type schedule settings.
func FormatTaskConfig(cfg domain.TaskConfig) string {
	headers := []string{"TASK", "ENABLED", "EVERY"}
	rows := make([][]string, 0, len(domain.TaskTypes))
	for _, t := range domain.TaskTypes {
		s, _ := cfg.Get(t)
		enabled := Dim("off")
		if s.Enabled {
			enabled = StyleGreen.Render("on")
		}
		rows = append(rows, []string{TaskTypeLabel(t), enabled, Plural(s.FrequencyDays, "day")})
	}
	return RenderTable(headers, rows)
}
