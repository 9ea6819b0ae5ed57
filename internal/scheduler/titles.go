package scheduler

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/greenspot/internal/domain"
)

// Title renders the display title for a task type.
func Title(t domain.TaskType, plantName string) string {
	switch t {
	case domain.TaskWatering:
		return "💧 Water " + plantName
	case domain.TaskRotating:
		return "🔄 Rotate " + plantName
	case domain.TaskFertilizing:
		return "🌱 Fertilize " + plantName
	case domain.TaskMisting:
		return "💨 Mist " + plantName
	case domain.TaskPruning:
		return "✂️ Prune " + plantName
	case domain.TaskPestCheck:
		return fmt.Sprintf("🐛 Check %s for pests", plantName)
	}
	return "Care for " + plantName
}

var titleKeywords = []struct {
	typ      domain.TaskType
	keywords []string
}{
	{domain.TaskWatering, []string{"water", "💧"}},
	{domain.TaskRotating, []string{"rotate", "🔄"}},
	{domain.TaskFertilizing, []string{"fertilize", "🌱"}},
	{domain.TaskMisting, []string{"mist", "💨"}},
	{domain.TaskPruning, []string{"prune", "✂️"}},
	{domain.TaskPestCheck, []string{"pest", "🐛"}},
}

// TypeFromTitle infers a task type from a title for rows stored before
// tasks carried an explicit type. Unknown titles yield domain.TaskUnknown.
func TypeFromTitle(title string) domain.TaskType {
	lower := strings.ToLower(title)
	for _, kw := range titleKeywords {
		for _, k := range kw.keywords {
			if strings.Contains(lower, k) {
				return kw.typ
			}
		}
	}
	return domain.TaskUnknown
}

// ResolveType returns the task's stored type, falling back to its title.
// Light-check tasks never recur and always resolve to domain.TaskUnknown.
func ResolveType(t *domain.Task) domain.TaskType {
	if t.Category == domain.CategoryLightCheck {
		return domain.TaskUnknown
	}
	if t.Type != domain.TaskUnknown {
		return t.Type
	}
	return TypeFromTitle(t.Title)
}
