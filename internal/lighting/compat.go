package lighting

import "github.com/alexanderramin/greenspot/internal/domain"

// InitialStatus is the status of a plant newly placed in a spot.
func InitialStatus(requirement, spotLevel domain.LightLevel) domain.PlantStatus {
	if requirement == spotLevel {
		return domain.StatusAllGood
	}
	return domain.StatusCheckLight
}

// Mismatch reports whether the plant's light requirement differs from the
// spot's light level.
func Mismatch(p *domain.Plant, s *domain.Spot) bool {
	return s != nil && p.LightRequirement != s.LightLevel
}

// ShowMismatchBanner reports whether the light warning should be displayed.
func ShowMismatchBanner(p *domain.Plant, s *domain.Spot) bool {
	return Mismatch(p, s) && !p.LightWarningDismissed && !p.LightMismatchOverride
}

// Dismiss hides the warning without touching status.
func Dismiss(p *domain.Plant) {
	p.LightWarningDismissed = true
}

// Override records that the mismatch is acceptable. Status is promoted to
// all-good only when the light check was the sole recorded issue.
func Override(p *domain.Plant) {
	p.LightMismatchOverride = true
	p.LightWarningDismissed = true
	if p.Status == domain.StatusCheckLight {
		p.Status = domain.StatusAllGood
	}
}

// ReopenLightCheck resurfaces the warning after a light-check task is
// reopened. The override flag is left as is.
func ReopenLightCheck(p *domain.Plant) {
	p.LightWarningDismissed = false
}

// Reassess places the plant in a new spot: status is recomputed and both
// warning flags are cleared. Care is re-derived for the new light level, but
// a custom watering interval is carried over.
func Reassess(p *domain.Plant, s *domain.Spot) {
	id := s.ID
	p.SpotID = &id
	p.Status = InitialStatus(p.LightRequirement, s.LightLevel)
	p.Care = rederive(p.Care, s.LightLevel)
	p.LightWarningDismissed = false
	p.LightMismatchOverride = false
}

// Unassign takes the plant out of its spot. With no spot there is nothing to
// mismatch, so a light check resolves to all-good and both flags are cleared.
func Unassign(p *domain.Plant) {
	p.SpotID = nil
	p.LightWarningDismissed = false
	p.LightMismatchOverride = false
	if p.Status == domain.StatusCheckLight {
		p.Status = domain.StatusAllGood
	}
}

func rederive(current domain.CareInstructions, level domain.LightLevel) domain.CareInstructions {
	fresh := CareFor(level)
	if current.WateringDays <= 0 || isDerived(current) {
		return fresh
	}
	return WithWateringDays(fresh, current.WateringDays)
}

// isDerived reports whether c is the stock care for some light level rather
// than a user override.
func isDerived(c domain.CareInstructions) bool {
	for _, level := range domain.LightLevels {
		if c == CareFor(level) {
			return true
		}
	}
	return false
}
