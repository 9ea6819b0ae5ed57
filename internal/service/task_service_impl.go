package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/greenspot/internal/db"
	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/lighting"
	"github.com/alexanderramin/greenspot/internal/repository"
	"github.com/alexanderramin/greenspot/internal/scheduler"
)

type taskService struct {
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	gen      *scheduler.Generator
	observer UseCaseObserver
}

func NewTaskService(
	tasks repository.TaskRepo,
	uow db.UnitOfWork,
	gen *scheduler.Generator,
	observers ...UseCaseObserver,
) TaskService {
	return &taskService{
		tasks:    tasks,
		uow:      uow,
		gen:      gen,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Toggle flips a task's completion. Completing a task of an enabled type
// schedules its next occurrence from the completion time; reopening a
// light-check task resurfaces the plant's light warning. Both happen in the
// same transaction as the toggle.
func (s *taskService) Toggle(ctx context.Context, id string) (result *ToggleResult, err error) {
	fields := map[string]any{"task_id": id}
	defer observe(ctx, s.observer, "toggle-task", time.Now(), fields, &err)

	result = &ToggleResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txPlants := repository.NewSQLitePlantRepo(tx)

		task, err := txTasks.GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			result.Skipped = true
			return nil
		}
		if err != nil {
			return err
		}
		plant, err := txPlants.GetByID(ctx, task.PlantID)
		if errors.Is(err, domain.ErrNotFound) {
			result.Skipped = true
			return nil
		}
		if err != nil {
			return err
		}

		now := s.gen.Now()
		task.Toggle(now)
		if err := txTasks.Update(ctx, task); err != nil {
			return err
		}
		result.Task = task

		if task.Completed {
			next, ok := s.gen.NextOccurrence(plant, task, now)
			if !ok {
				return nil
			}
			if err := txTasks.Create(ctx, next); err != nil {
				return err
			}
			result.FollowUp = next
			return nil
		}

		if task.IsLightCheck() {
			lighting.ReopenLightCheck(plant)
			plant.UpdatedAt = now
			if err := txPlants.Update(ctx, plant); err != nil {
				return err
			}
			result.LightCheckReopened = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["skipped"] = result.Skipped
	if result.Task != nil {
		fields["completed"] = result.Task.Completed
	}
	fields["follow_up"] = result.FollowUp != nil
	return result, nil
}

func (s *taskService) Regenerate(ctx context.Context, plantID string) (tasks []*domain.Task, err error) {
	fields := map[string]any{"plant_id": plantID}
	defer observe(ctx, s.observer, "regenerate-tasks", time.Now(), fields, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		p, err := repository.NewSQLitePlantRepo(tx).GetByID(ctx, plantID)
		if err != nil {
			return err
		}
		tasks, err = regenerateInTx(ctx, tx, s.gen, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["task_count"] = len(tasks)
	return tasks, nil
}

func (s *taskService) Add(ctx context.Context, in NewTaskInput) (task *domain.Task, err error) {
	fields := map[string]any{"plant_id": in.PlantID}
	defer observe(ctx, s.observer, "add-task", time.Now(), fields, &err)

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: task title is required", domain.ErrInvalidInput)
	}
	if in.Type != domain.TaskUnknown && !domain.ValidTaskTypes[string(in.Type)] {
		return nil, fmt.Errorf("%w: unknown task type %q", domain.ErrInvalidInput, in.Type)
	}
	category := in.Category
	if category == "" {
		category = domain.CategoryGeneral
		if in.Type != domain.TaskUnknown {
			category = domain.CategoryCare
		}
	}
	if !domain.ValidTaskCategories[string(category)] {
		return nil, fmt.Errorf("%w: unknown task category %q", domain.ErrInvalidInput, category)
	}
	if category == domain.CategoryLightCheck && in.Type != domain.TaskUnknown {
		return nil, fmt.Errorf("%w: light-check tasks cannot have a task type", domain.ErrInvalidInput)
	}

	now := s.gen.Now()
	due := in.DueDate
	if due.IsZero() {
		due = now
	}
	task = &domain.Task{
		ID:        s.gen.NewID(),
		PlantID:   in.PlantID,
		Title:     title,
		Type:      in.Type,
		Category:  category,
		DueDate:   due,
		CreatedAt: now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLitePlantRepo(tx).GetByID(ctx, in.PlantID); err != nil {
			return err
		}
		return repository.NewSQLiteTaskRepo(tx).Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	fields["category"] = string(category)
	return task, nil
}

func (s *taskService) List(ctx context.Context, plantID string, includeCompleted bool) ([]*domain.Task, error) {
	if plantID == "" {
		return s.tasks.List(ctx, includeCompleted)
	}
	return s.tasks.ListByPlant(ctx, plantID, includeCompleted)
}

func (s *taskService) ListDue(ctx context.Context, before time.Time) ([]*domain.Task, error) {
	return s.tasks.ListDue(ctx, before)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
