// Package lighting holds the light rules: classifying a spot from its
// questionnaire, deriving care instructions, checking plant/spot light
// compatibility and looking up plants suited to a light level.
package lighting

import (
	"fmt"

	"github.com/alexanderramin/greenspot/internal/domain"
)

// Questionnaire is the set of answers a spot's light level is derived from.
// The window-only answers are nil for lamps and windowless rooms.
type Questionnaire struct {
	Source      domain.LightSource
	Direction   *domain.Direction
	SunExposure *domain.SunExposure
	Distance    *domain.WindowDistance
}

// QuestionnaireOf extracts the answers stored on a spot.
func QuestionnaireOf(s *domain.Spot) Questionnaire {
	return Questionnaire{
		Source:      s.LightSource,
		Direction:   s.Direction,
		SunExposure: s.SunExposure,
		Distance:    s.Distance,
	}
}

// Normalize drops window-only answers when the source is not a window.
func (q Questionnaire) Normalize() Questionnaire {
	if q.Source != domain.SourceWindow {
		q.Direction = nil
		q.SunExposure = nil
		q.Distance = nil
	}
	return q
}

// Validate rejects enum values outside the known sets.
func (q Questionnaire) Validate() error {
	if !domain.ValidLightSources[string(q.Source)] {
		return fmt.Errorf("%w: unknown light source %q", domain.ErrInvalidInput, q.Source)
	}
	if q.Direction != nil && !domain.ValidDirections[string(*q.Direction)] {
		return fmt.Errorf("%w: unknown direction %q", domain.ErrInvalidInput, *q.Direction)
	}
	if q.SunExposure != nil && !domain.ValidSunExposures[string(*q.SunExposure)] {
		return fmt.Errorf("%w: unknown sun exposure %q", domain.ErrInvalidInput, *q.SunExposure)
	}
	if q.Distance != nil && !domain.ValidDistances[string(*q.Distance)] {
		return fmt.Errorf("%w: unknown distance %q", domain.ErrInvalidInput, *q.Distance)
	}
	return nil
}

// Classify derives a light level. Rules are evaluated in order and the
// first match wins; reordering them changes results for edge cases.
func Classify(q Questionnaire) domain.LightLevel {
	switch q.Source {
	case domain.SourceNoWindow:
		return domain.LightLow
	case domain.SourceLamp:
		return domain.LightMediumIndirect
	}

	sun := deref(q.SunExposure)
	dist := deref(q.Distance)
	dir := deref(q.Direction)

	if sun == domain.SunLots && (dist == domain.DistanceWindowsill || dist == domain.DistanceClose) {
		return domain.LightBrightDirect
	}
	if (dir == domain.DirectionSouth || dir == domain.DirectionWest) &&
		sun != domain.SunAlmostNone && dist != domain.DistanceFar {
		return domain.LightBrightIndirect
	}
	if dist == domain.DistanceFar || sun == domain.SunAlmostNone {
		return domain.LightLow
	}
	return domain.LightMediumIndirect
}

// ApplyTo normalizes q, stores it on the spot and recomputes LightLevel.
func (q Questionnaire) ApplyTo(s *domain.Spot) {
	q = q.Normalize()
	s.LightSource = q.Source
	s.Direction = q.Direction
	s.SunExposure = q.SunExposure
	s.Distance = q.Distance
	s.LightLevel = Classify(q)
}

func deref[T ~string](p *T) T {
	if p == nil {
		return ""
	}
	return *p
}
