package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/greenspot/internal/domain"
)

// Lookups of missing rows, and updates or deletes that touch none, return
// errors wrapping domain.ErrNotFound.

type SpotRepo interface {
	Create(ctx context.Context, s *domain.Spot) error
	GetByID(ctx context.Context, id string) (*domain.Spot, error)
	List(ctx context.Context) ([]*domain.Spot, error)
	Update(ctx context.Context, s *domain.Spot) error
	Delete(ctx context.Context, id string) error
}

// PlantRepo persists plants together with their per-type task settings.
type PlantRepo interface {
	Create(ctx context.Context, p *domain.Plant) error
	GetByID(ctx context.Context, id string) (*domain.Plant, error)
	List(ctx context.Context) ([]*domain.Plant, error)
	ListBySpot(ctx context.Context, spotID string) ([]*domain.Plant, error)
	Update(ctx context.Context, p *domain.Plant) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error)
	ListByPlant(ctx context.Context, plantID string, includeCompleted bool) ([]*domain.Task, error)
	// ListDue returns incomplete tasks due at or before the given time.
	ListDue(ctx context.Context, before time.Time) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	DeleteIncompleteByPlant(ctx context.Context, plantID string) (int64, error)
	Delete(ctx context.Context, id string) error
}
