package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/greenspot/internal/advisor"
	"github.com/alexanderramin/greenspot/internal/service"
)

// FormatCatalog renders catalog search hits.
func FormatCatalog(species []advisor.Species) string {
	headers := []string{"ID", "NAME", "SCIENTIFIC NAME", "LIGHT"}
	rows := make([][]string, 0, len(species))
	for _, s := range species {
		rows = append(rows, []string{Dim(s.ID), Bold(s.Name), StylePurple.Render(s.ScientificName), LightBadge(s.LightRequirement)})
	}
	return RenderBox("Plant catalog", RenderTable(headers, rows))
}

// FormatIdentification renders an identification result.
func FormatIdentification(id *advisor.Identification) string {
	return RenderBox("Identified", KeyValue([][2]string{
		{"Plant", Bold(id.Species.Name)},
		{"Scientific", StylePurple.Render(id.Species.ScientificName)},
		{"Needs", LightBadge(id.Species.LightRequirement)},
		{"Confidence", fmt.Sprintf("%.0f%%", id.Confidence*100)},
	}))
}

// FormatChatReply prefixes the reply with who is speaking.
func FormatChatReply(speaker, reply string) string {
	return fmt.Sprintf("%s %s", StyleGreen.Render(speaker+":"), reply)
}

// FormatProfile renders the household summary.
func FormatProfile(s *service.ProfileSummary) string {
	attention := fmt.Sprintf("%d", s.NeedsAttention)
	if s.NeedsAttention > 0 {
		attention = StyleYellow.Render(attention)
	}
	due := fmt.Sprintf("%d", s.DueTasks)
	if s.DueTasks > 0 {
		due = StyleRed.Render(due)
	}
	return RenderBox("Your garden", strings.TrimRight(KeyValue([][2]string{
		{"Plants", fmt.Sprintf("%d", s.Plants)},
		{"Spots", fmt.Sprintf("%d", s.Spots)},
		{"Unassigned", fmt.Sprintf("%d", s.Unassigned)},
		{"Open tasks", fmt.Sprintf("%d", s.OpenTasks)},
		{"Due now", due},
		{"Need attention", attention},
	}), "\n"))
}
