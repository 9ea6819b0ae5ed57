package testutil

import (
	"time"

	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/lighting"
	"github.com/google/uuid"
)

// FixedNow is the reference clock used by fixtures and service tests.
var FixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// Spot options
type SpotOption func(*domain.Spot)

// WithWindow answers the questionnaire for a window spot and reclassifies it.
func WithWindow(dir domain.Direction, sun domain.SunExposure, dist domain.WindowDistance) SpotOption {
	return func(s *domain.Spot) {
		lighting.Questionnaire{
			Source:      domain.SourceWindow,
			Direction:   &dir,
			SunExposure: &sun,
			Distance:    &dist,
		}.ApplyTo(s)
	}
}

func WithSource(src domain.LightSource) SpotOption {
	return func(s *domain.Spot) {
		lighting.Questionnaire{Source: src}.ApplyTo(s)
	}
}

func WithRoom(r domain.RoomType) SpotOption {
	return func(s *domain.Spot) {
		s.RoomType = r
	}
}

// NewTestSpot returns a lamp-lit living room spot unless options say otherwise.
func NewTestSpot(name string, opts ...SpotOption) *domain.Spot {
	s := &domain.Spot{
		ID:        uuid.New().String(),
		Name:      name,
		RoomType:  domain.RoomLiving,
		CreatedAt: FixedNow,
		UpdatedAt: FixedNow,
	}
	lighting.Questionnaire{Source: domain.SourceLamp}.ApplyTo(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plant options
type PlantOption func(*domain.Plant)

// InSpot assigns the plant and derives status and care from the spot.
func InSpot(s *domain.Spot) PlantOption {
	return func(p *domain.Plant) {
		id := s.ID
		p.SpotID = &id
		p.Status = lighting.InitialStatus(p.LightRequirement, s.LightLevel)
		p.Care = lighting.CareFor(s.LightLevel)
	}
}

func WithRequirement(l domain.LightLevel) PlantOption {
	return func(p *domain.Plant) {
		p.LightRequirement = l
	}
}

func WithTaskSetting(t domain.TaskType, enabled bool, days int) PlantOption {
	return func(p *domain.Plant) {
		_ = p.TaskConfig.Set(t, domain.TaskSetting{Enabled: enabled, FrequencyDays: days})
	}
}

func WithStatus(s domain.PlantStatus) PlantOption {
	return func(p *domain.Plant) {
		p.Status = s
	}
}

func WithAddedAt(at time.Time) PlantOption {
	return func(p *domain.Plant) {
		p.AddedAt = at
	}
}

// NewTestPlant returns an unassigned medium-indirect plant with the default
// task config. Options apply in order, so WithRequirement must precede InSpot.
func NewTestPlant(name string, opts ...PlantOption) *domain.Plant {
	p := &domain.Plant{
		ID:               uuid.New().String(),
		Name:             name,
		Status:           domain.StatusAllGood,
		LightRequirement: domain.LightMediumIndirect,
		Care:             lighting.CareFor(domain.LightMediumIndirect),
		TaskConfig:       domain.DefaultTaskConfig(),
		AddedAt:          FixedNow,
		UpdatedAt:        FixedNow,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskType(t domain.TaskType) TaskOption {
	return func(task *domain.Task) {
		task.Type = t
	}
}

func WithCategory(c domain.TaskCategory) TaskOption {
	return func(task *domain.Task) {
		task.Category = c
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(task *domain.Task) {
		task.DueDate = d
	}
}

func WithCompleted(at time.Time) TaskOption {
	return func(task *domain.Task) {
		task.Completed = true
		task.CompletedAt = &at
	}
}

// NewTestTask returns an incomplete watering task due a week after FixedNow.
func NewTestTask(plantID, title string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        uuid.New().String(),
		PlantID:   plantID,
		Title:     title,
		Type:      domain.TaskWatering,
		Category:  domain.CategoryCare,
		DueDate:   FixedNow.AddDate(0, 0, 7),
		CreatedAt: FixedNow,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
