package lighting

import (
	"fmt"

	"github.com/alexanderramin/greenspot/internal/domain"
)

type careRow struct {
	days      int
	frequency string
	light     string
}

// Interval days are the midpoints of the frequency ranges; due-date math
// depends on these exact values.
var careTable = map[domain.LightLevel]careRow{
	domain.LightBrightDirect:   {6, "Water every 5–7 days", "Bright direct light"},
	domain.LightBrightIndirect: {8, "Water every 7–10 days", "Bright indirect light"},
	domain.LightMediumIndirect: {12, "Water every 10–14 days", "Medium indirect light"},
	domain.LightLow:            {17, "Water every 14–21 days", "Low light"},
}

// CareFor returns the care instructions for a spot's light level.
func CareFor(level domain.LightLevel) domain.CareInstructions {
	row, ok := careTable[level]
	if !ok {
		// Unreachable for the four known levels; medium is the neutral band.
		row = careTable[domain.LightMediumIndirect]
	}
	return domain.CareInstructions{
		WateringFrequency: row.frequency,
		WateringDays:      row.days,
		LightDescription:  row.light,
	}
}

// WithWateringDays returns c with a user-chosen watering interval.
func WithWateringDays(c domain.CareInstructions, days int) domain.CareInstructions {
	c.WateringDays = days
	c.WateringFrequency = fmt.Sprintf("Water every %d days", days)
	return c
}

// Describe returns a short label such as "bright indirect" that reads
// naturally before the word "light".
func Describe(level domain.LightLevel) string {
	switch level {
	case domain.LightBrightDirect:
		return "bright direct"
	case domain.LightBrightIndirect:
		return "bright indirect"
	case domain.LightMediumIndirect:
		return "medium indirect"
	case domain.LightLow:
		return "low"
	}
	return string(level)
}
