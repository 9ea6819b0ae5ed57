package domain

import "time"

// CareInstructions is derived from the spot's light level, except when the
// user overrides the watering interval.
type CareInstructions struct {
	WateringFrequency string
	WateringDays      int
	LightDescription  string
}

type Plant struct {
	ID               string
	Name             string
	ScientificName   string
	Image            string
	SpotID           *string
	Status           PlantStatus
	LightRequirement LightLevel
	Care             CareInstructions
	TaskConfig       TaskConfig
	AddedAt          time.Time

	LightWarningDismissed bool
	LightMismatchOverride bool

	UpdatedAt time.Time
}

// InSpot reports whether the plant is assigned to the given spot.
func (p *Plant) InSpot(spotID string) bool {
	return p.SpotID != nil && *p.SpotID == spotID
}

// AgeDays returns whole days elapsed since the plant was added.
func (p *Plant) AgeDays(now time.Time) int {
	d := now.Sub(p.AddedAt)
	if d < 0 {
		return 0
	}
	return int(d.Hours() / 24)
}
