package domain

import "time"

// Spot is a physical location plants live in. LightLevel is always the
// classification of the questionnaire fields.
type Spot struct {
	ID          string
	Name        string
	RoomType    RoomType
	LightSource LightSource

	// Window-only answers; nil unless LightSource is SourceWindow.
	Direction   *Direction
	SunExposure *SunExposure
	Distance    *WindowDistance

	LightLevel LightLevel

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWindow reports whether the spot is lit by a window.
func (s *Spot) IsWindow() bool {
	return s.LightSource == SourceWindow
}
