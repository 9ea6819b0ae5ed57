package scheduler

import (
	"time"

	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/google/uuid"
)

const day = 24 * time.Hour

// Generator expands task configurations into due-dated tasks.
type Generator struct {
	Now   func() time.Time
	NewID func() string
}

// NewGenerator returns a Generator using the wall clock and random UUIDs.
func NewGenerator() *Generator {
	return &Generator{
		Now:   func() time.Time { return time.Now().UTC() },
		NewID: uuid.NewString,
	}
}

// DueAfter returns from plus the given number of whole days.
func DueAfter(from time.Time, days int) time.Time {
	return from.Add(time.Duration(days) * day)
}

// GenerateForPlant emits one incomplete task per enabled type, in canonical
// type order. A plant with nothing enabled yields no tasks.
func (g *Generator) GenerateForPlant(p *domain.Plant) []*domain.Task {
	now := g.Now()
	var tasks []*domain.Task
	for _, typ := range p.TaskConfig.Enabled() {
		s, _ := p.TaskConfig.Get(typ)
		tasks = append(tasks, g.build(p, typ, s.FrequencyDays, now))
	}
	return tasks
}

// RegenerateForType produces exactly one task for typ due frequencyDays from now.
func (g *Generator) RegenerateForType(p *domain.Plant, typ domain.TaskType, frequencyDays int) *domain.Task {
	return g.build(p, typ, frequencyDays, g.Now())
}

// NextOccurrence returns the follow-up for a task completed at completedAt.
// ok is false when the task's type is unknown or disabled in the plant's config.
func (g *Generator) NextOccurrence(p *domain.Plant, done *domain.Task, completedAt time.Time) (*domain.Task, bool) {
	typ := ResolveType(done)
	s, known := p.TaskConfig.Get(typ)
	if !known || !s.Enabled {
		return nil, false
	}
	return g.build(p, typ, s.FrequencyDays, completedAt), true
}

func (g *Generator) build(p *domain.Plant, typ domain.TaskType, frequencyDays int, from time.Time) *domain.Task {
	return &domain.Task{
		ID:        g.NewID(),
		PlantID:   p.ID,
		Title:     Title(typ, p.Name),
		Type:      typ,
		Category:  domain.CategoryCare,
		DueDate:   DueAfter(from, frequencyDays),
		Completed: false,
		CreatedAt: from,
	}
}

// ReplaceIncomplete drops the plant's incomplete tasks from existing and
// appends fresh. Other plants' tasks and completed history are kept in order.
func ReplaceIncomplete(existing []*domain.Task, plantID string, fresh []*domain.Task) []*domain.Task {
	out := make([]*domain.Task, 0, len(existing)+len(fresh))
	for _, t := range existing {
		if t.PlantID == plantID && !t.Completed {
			continue
		}
		out = append(out, t)
	}
	return append(out, fresh...)
}
