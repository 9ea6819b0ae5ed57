package service

import (
	"context"
	"time"

	"github.com/alexanderramin/greenspot/internal/advisor"
	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/lighting"
)

// SpotInput is what a user supplies when creating or re-answering a spot.
type SpotInput struct {
	Name          string
	RoomType      domain.RoomType
	Questionnaire lighting.Questionnaire
}

// SpotDetail is a spot with its plants and a short list of suitable plants.
type SpotDetail struct {
	Spot            *domain.Spot
	Plants          []*domain.Plant
	Recommendations []lighting.Recommendation
}

type SpotService interface {
	Create(ctx context.Context, in SpotInput) (*domain.Spot, error)
	// Update stores new answers and reclassifies. Plants in the spot are
	// reassessed when the light level changes.
	Update(ctx context.Context, id string, in SpotInput) (*domain.Spot, error)
	Rename(ctx context.Context, id, name string) (*domain.Spot, error)
	GetByID(ctx context.Context, id string) (*domain.Spot, error)
	Detail(ctx context.Context, id string, limit int) (*SpotDetail, error)
	List(ctx context.Context) ([]*domain.Spot, error)
	Delete(ctx context.Context, id string) error
	Recommendations(ctx context.Context, id string, limit int) ([]lighting.Recommendation, error)
}

// AddPlantInput describes a new plant. A nil TaskConfig means the default.
type AddPlantInput struct {
	Name             string
	ScientificName   string
	Image            string
	LightRequirement domain.LightLevel
	SpotID           string
	TaskConfig       *domain.TaskConfig
}

// PlantDetail is a plant with its spot, incomplete tasks and banner state.
type PlantDetail struct {
	Plant            *domain.Plant
	Spot             *domain.Spot
	Tasks            []*domain.Task
	ShowLightWarning bool
}

// OnboardInput creates the first spot and plant together. Plant.SpotID is ignored.
type OnboardInput struct {
	Spot  SpotInput
	Plant AddPlantInput
}

type OnboardResult struct {
	Spot  *domain.Spot
	Plant *PlantDetail
}

type PlantService interface {
	Add(ctx context.Context, in AddPlantInput) (*PlantDetail, error)
	Onboard(ctx context.Context, in OnboardInput) (*OnboardResult, error)
	Get(ctx context.Context, id string) (*PlantDetail, error)
	List(ctx context.Context) ([]*domain.Plant, error)
	DismissLightWarning(ctx context.Context, id string) (*domain.Plant, error)
	OverrideLightMismatch(ctx context.Context, id string) (*domain.Plant, error)
	Rename(ctx context.Context, id, name string) (*domain.Plant, error)
	// SetWateringDays and SetAge take raw user input; unparseable values keep
	// the current setting.
	SetWateringDays(ctx context.Context, id, input string) (*domain.Plant, error)
	SetAge(ctx context.Context, id, input string) (*domain.Plant, error)
	Move(ctx context.Context, id, spotID string) (*domain.Plant, error)
	// UpdateTaskConfig saves the config and regenerates the plant's open tasks.
	UpdateTaskConfig(ctx context.Context, id string, cfg domain.TaskConfig) (*PlantDetail, error)
	Delete(ctx context.Context, id string) error
}

// ToggleResult reports what a toggle changed. Skipped is set when the task
// or its plant no longer exists.
type ToggleResult struct {
	Task               *domain.Task
	FollowUp           *domain.Task
	LightCheckReopened bool
	Skipped            bool
}

// NewTaskInput is a manually added task. Zero DueDate means now.
type NewTaskInput struct {
	PlantID  string
	Title    string
	Type     domain.TaskType
	Category domain.TaskCategory
	DueDate  time.Time
}

type TaskService interface {
	Toggle(ctx context.Context, id string) (*ToggleResult, error)
	Regenerate(ctx context.Context, plantID string) ([]*domain.Task, error)
	Add(ctx context.Context, in NewTaskInput) (*domain.Task, error)
	// List returns tasks of one plant, or of all plants when plantID is empty.
	List(ctx context.Context, plantID string, includeCompleted bool) ([]*domain.Task, error)
	ListDue(ctx context.Context, before time.Time) ([]*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

// ProfileSummary is the household overview.
type ProfileSummary struct {
	Plants         int
	Spots          int
	OpenTasks      int
	DueTasks       int
	NeedsAttention int
	Unassigned     int
}

type ProfileService interface {
	Summary(ctx context.Context) (*ProfileSummary, error)
}

type AdviceService interface {
	SearchCatalog(query string) []advisor.Species
	Identify(ctx context.Context, image []byte) (*advisor.Identification, error)
	// Chat answers as the plant expert, or as the plant when plantID is set.
	Chat(ctx context.Context, message, plantID string) (string, error)
}
