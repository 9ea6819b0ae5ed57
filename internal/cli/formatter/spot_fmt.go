package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/lighting"
)

var roomLabels = map[domain.RoomType]string{
	domain.RoomBedroom:  "Bedroom",
	domain.RoomLiving:   "Living room",
	domain.RoomKitchen:  "Kitchen",
	domain.RoomBathroom: "Bathroom",
	domain.RoomOffice:   "Office",
	domain.RoomDining:   "Dining room",
	domain.RoomHallway:  "Hallway",
	domain.RoomOther:    "Other",
}

// RoomLabel returns a display name for a room type.
func RoomLabel(r domain.RoomType) string {
	if l, ok := roomLabels[r]; ok {
		return l
	}
	return string(r)
}

// LightSourceSummary describes how a spot is lit, including window answers.
func LightSourceSummary(s *domain.Spot) string {
	switch s.LightSource {
	case domain.SourceLamp:
		return "Lamp / grow light"
	case domain.SourceNoWindow:
		return "No natural light"
	case domain.SourceWindow:
		var parts []string
		if s.Direction != nil {
			parts = append(parts, string(*s.Direction)+"-facing")
		}
		parts = append(parts, "window")
		if s.SunExposure != nil {
			parts = append(parts, fmt.Sprintf("(%s sun", strings.ReplaceAll(string(*s.SunExposure), "-", " ")))
			if s.Distance != nil {
				parts[len(parts)-1] += ", " + string(*s.Distance)
			}
			parts[len(parts)-1] += ")"
		} else if s.Distance != nil {
			parts = append(parts, "("+string(*s.Distance)+")")
		}
		return strings.Join(parts, " ")
	}
	return string(s.LightSource)
}

// FormatSpotList renders spots with their light level and plant counts.
func FormatSpotList(spots []*domain.Spot, plantCounts map[string]int) string {
	headers := []string{"ID", "NAME", "ROOM", "LIGHT", "PLANTS"}
	rows := make([][]string, 0, len(spots))
	for _, s := range spots {
		rows = append(rows, []string{
			TruncID(s.ID),
			Bold(s.Name),
			RoomLabel(s.RoomType),
			LightBadge(s.LightLevel),
			fmt.Sprintf("%d", plantCounts[s.ID]),
		})
	}
	return RenderBox("Spots", RenderTable(headers, rows))
}

// FormatSpotCreated is the summary shown after creating a spot: its light
// level, watering guidance and the top suggestions.
func FormatSpotCreated(s *domain.Spot, recs []lighting.Recommendation) string {
	care := lighting.CareFor(s.LightLevel)
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", Bold(s.Name), LightBadge(s.LightLevel))
	b.WriteString(KeyValue([][2]string{
		{"Room", RoomLabel(s.RoomType)},
		{"Light", LightSourceSummary(s)},
		{"Watering", care.WateringFrequency},
	}))
	if len(recs) > 0 {
		b.WriteString("\n\n" + Header("Great plants for this spot") + "\n")
		b.WriteString(FormatRecommendations(recs))
	}
	return RenderBox("Spot created", b.String())
}

// FormatSpotDetail renders a spot with its plants and suggestions.
func FormatSpotDetail(s *domain.Spot, plants []*domain.Plant, recs []lighting.Recommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", Bold(s.Name), LightBadge(s.LightLevel))
	b.WriteString(KeyValue([][2]string{
		{"ID", s.ID},
		{"Room", RoomLabel(s.RoomType)},
		{"Light", LightSourceSummary(s)},
		{"Watering", lighting.CareFor(s.LightLevel).WateringFrequency},
	}))

	b.WriteString("\n\n" + Header(Plural(len(plants), "plant")) + "\n")
	if len(plants) == 0 {
		b.WriteString(Dim("No plants here yet."))
	}
	for i, p := range plants {
		fmt.Fprintf(&b, "%s  %s", Bold(p.Name), StatusPill(p.Status))
		if i < len(plants)-1 {
			b.WriteString("\n")
		}
	}

	if len(recs) > 0 {
		b.WriteString("\n\n" + Header("Suggestions") + "\n")
		b.WriteString(FormatRecommendations(recs))
	}
	return RenderBox("Spot", b.String())
}

// FormatRecommendations renders one suggestion per line.
func FormatRecommendations(recs []lighting.Recommendation) string {
	lines := make([]string, len(recs))
	for i, r := range recs {
		lines[i] = fmt.Sprintf("🌿 %s %s", Bold(r.Name), Dim("("+r.Tolerance+")"))
	}
	return strings.Join(lines, "\n")
}
