package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/greenspot/internal/db"
	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/lighting"
	"github.com/alexanderramin/greenspot/internal/repository"
	"github.com/alexanderramin/greenspot/internal/scheduler"
)

type plantService struct {
	plants   repository.PlantRepo
	spots    repository.SpotRepo
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	gen      *scheduler.Generator
	observer UseCaseObserver
}

func NewPlantService(
	plants repository.PlantRepo,
	spots repository.SpotRepo,
	tasks repository.TaskRepo,
	uow db.UnitOfWork,
	gen *scheduler.Generator,
	observers ...UseCaseObserver,
) PlantService {
	return &plantService{
		plants:   plants,
		spots:    spots,
		tasks:    tasks,
		uow:      uow,
		gen:      gen,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *plantService) Add(ctx context.Context, in AddPlantInput) (detail *PlantDetail, err error) {
	fields := map[string]any{"plant": in.Name, "spot_id": in.SpotID}
	defer observe(ctx, s.observer, "add-plant", time.Now(), fields, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var spot *domain.Spot
		if in.SpotID != "" {
			var err error
			spot, err = repository.NewSQLiteSpotRepo(tx).GetByID(ctx, in.SpotID)
			if err != nil {
				return err
			}
		}
		var err error
		detail, err = s.addInTx(ctx, tx, in, spot)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["status"] = string(detail.Plant.Status)
	fields["task_count"] = len(detail.Tasks)
	return detail, nil
}

func (s *plantService) Onboard(ctx context.Context, in OnboardInput) (result *OnboardResult, err error) {
	fields := map[string]any{"spot": in.Spot.Name, "plant": in.Plant.Name}
	defer observe(ctx, s.observer, "onboard", time.Now(), fields, &err)

	spot, err := buildSpot(s.gen, in.Spot)
	if err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteSpotRepo(tx).Create(ctx, spot); err != nil {
			return err
		}
		detail, err := s.addInTx(ctx, tx, in.Plant, spot)
		if err != nil {
			return err
		}
		result = &OnboardResult{Spot: spot, Plant: detail}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// addInTx creates the plant and its initial tasks. A nil spot leaves the
// plant unassigned with care derived from its own light requirement.
func (s *plantService) addInTx(ctx context.Context, tx db.DBTX, in AddPlantInput, spot *domain.Spot) (*PlantDetail, error) {
	name, err := requireName("plant", in.Name)
	if err != nil {
		return nil, err
	}
	if !domain.ValidLightLevels[string(in.LightRequirement)] {
		return nil, fmt.Errorf("%w: unknown light requirement %q", domain.ErrInvalidInput, in.LightRequirement)
	}
	cfg := domain.DefaultTaskConfig()
	if in.TaskConfig != nil {
		if err := validateTaskConfig(*in.TaskConfig); err != nil {
			return nil, err
		}
		cfg = *in.TaskConfig
	}

	now := s.gen.Now()
	p := &domain.Plant{
		ID:               s.gen.NewID(),
		Name:             name,
		ScientificName:   in.ScientificName,
		Image:            in.Image,
		Status:           domain.StatusAllGood,
		LightRequirement: in.LightRequirement,
		Care:             lighting.CareFor(in.LightRequirement),
		TaskConfig:       cfg,
		AddedAt:          now,
		UpdatedAt:        now,
	}
	if spot != nil {
		id := spot.ID
		p.SpotID = &id
		p.Status = lighting.InitialStatus(p.LightRequirement, spot.LightLevel)
		p.Care = lighting.CareFor(spot.LightLevel)
	}

	if err := repository.NewSQLitePlantRepo(tx).Create(ctx, p); err != nil {
		return nil, err
	}
	txTasks := repository.NewSQLiteTaskRepo(tx)
	tasks := s.gen.GenerateForPlant(p)
	for _, t := range tasks {
		if err := txTasks.Create(ctx, t); err != nil {
			return nil, err
		}
	}
	return &PlantDetail{
		Plant:            p,
		Spot:             spot,
		Tasks:            tasks,
		ShowLightWarning: lighting.ShowMismatchBanner(p, spot),
	}, nil
}

func (s *plantService) Get(ctx context.Context, id string) (*PlantDetail, error) {
	p, err := s.plants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	spot, err := s.spotOf(ctx, s.spots, p)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByPlant(ctx, id, false)
	if err != nil {
		return nil, err
	}
	return &PlantDetail{
		Plant:            p,
		Spot:             spot,
		Tasks:            tasks,
		ShowLightWarning: lighting.ShowMismatchBanner(p, spot),
	}, nil
}

// spotOf returns the plant's spot, or nil when unassigned or the spot is gone.
func (s *plantService) spotOf(ctx context.Context, spots repository.SpotRepo, p *domain.Plant) (*domain.Spot, error) {
	if p.SpotID == nil {
		return nil, nil
	}
	spot, err := spots.GetByID(ctx, *p.SpotID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return spot, err
}

func (s *plantService) List(ctx context.Context) ([]*domain.Plant, error) {
	return s.plants.List(ctx)
}

func (s *plantService) DismissLightWarning(ctx context.Context, id string) (*domain.Plant, error) {
	return s.mutate(ctx, "dismiss-light-warning", id, func(p *domain.Plant) error {
		lighting.Dismiss(p)
		return nil
	})
}

func (s *plantService) OverrideLightMismatch(ctx context.Context, id string) (*domain.Plant, error) {
	return s.mutate(ctx, "override-light-mismatch", id, func(p *domain.Plant) error {
		lighting.Override(p)
		return nil
	})
}

func (s *plantService) Rename(ctx context.Context, id, name string) (*domain.Plant, error) {
	n, err := requireName("plant", name)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, "rename-plant", id, func(p *domain.Plant) error {
		p.Name = n
		return nil
	})
}

func (s *plantService) SetWateringDays(ctx context.Context, id, input string) (*domain.Plant, error) {
	return s.mutate(ctx, "set-watering-days", id, func(p *domain.Plant) error {
		days := domain.ParseDaysOr(input, 0)
		if days == 0 {
			return nil
		}
		p.Care = lighting.WithWateringDays(p.Care, days)
		return nil
	})
}

func (s *plantService) SetAge(ctx context.Context, id, input string) (*domain.Plant, error) {
	now := s.gen.Now()
	return s.mutate(ctx, "set-plant-age", id, func(p *domain.Plant) error {
		days := domain.ParseNonNegativeDaysOr(input, p.AgeDays(now))
		p.AddedAt = now.AddDate(0, 0, -days)
		return nil
	})
}

func (s *plantService) Move(ctx context.Context, id, spotID string) (p *domain.Plant, err error) {
	fields := map[string]any{"plant_id": id, "spot_id": spotID}
	defer observe(ctx, s.observer, "move-plant", time.Now(), fields, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlants := repository.NewSQLitePlantRepo(tx)
		current, err := txPlants.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if spotID == "" {
			lighting.Unassign(current)
		} else {
			spot, err := repository.NewSQLiteSpotRepo(tx).GetByID(ctx, spotID)
			if err != nil {
				return err
			}
			lighting.Reassess(current, spot)
		}
		current.UpdatedAt = s.gen.Now()
		if err := txPlants.Update(ctx, current); err != nil {
			return err
		}
		p = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["status"] = string(p.Status)
	return p, nil
}

func (s *plantService) UpdateTaskConfig(ctx context.Context, id string, cfg domain.TaskConfig) (detail *PlantDetail, err error) {
	fields := map[string]any{"plant_id": id}
	defer observe(ctx, s.observer, "update-task-config", time.Now(), fields, &err)

	if err = validateTaskConfig(cfg); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlants := repository.NewSQLitePlantRepo(tx)
		p, err := txPlants.GetByID(ctx, id)
		if err != nil {
			return err
		}
		p.TaskConfig = cfg
		p.UpdatedAt = s.gen.Now()
		if err := txPlants.Update(ctx, p); err != nil {
			return err
		}
		tasks, err := regenerateInTx(ctx, tx, s.gen, p)
		if err != nil {
			return err
		}
		spot, err := s.spotOf(ctx, repository.NewSQLiteSpotRepo(tx), p)
		if err != nil {
			return err
		}
		detail = &PlantDetail{
			Plant:            p,
			Spot:             spot,
			Tasks:            tasks,
			ShowLightWarning: lighting.ShowMismatchBanner(p, spot),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["task_count"] = len(detail.Tasks)
	return detail, nil
}

func (s *plantService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-plant", time.Now(), map[string]any{"plant_id": id}, &err)
	return s.plants.Delete(ctx, id)
}

// mutate loads, changes and saves one plant in a transaction.
func (s *plantService) mutate(ctx context.Context, name, id string, fn func(p *domain.Plant) error) (p *domain.Plant, err error) {
	defer observe(ctx, s.observer, name, time.Now(), map[string]any{"plant_id": id}, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlants := repository.NewSQLitePlantRepo(tx)
		current, err := txPlants.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(current); err != nil {
			return err
		}
		current.UpdatedAt = s.gen.Now()
		if err := txPlants.Update(ctx, current); err != nil {
			return err
		}
		p = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// regenerateInTx replaces the plant's incomplete tasks with a fresh set for
// its current config. Completed tasks are kept as history.
func regenerateInTx(ctx context.Context, tx db.DBTX, gen *scheduler.Generator, p *domain.Plant) ([]*domain.Task, error) {
	txTasks := repository.NewSQLiteTaskRepo(tx)
	if _, err := txTasks.DeleteIncompleteByPlant(ctx, p.ID); err != nil {
		return nil, err
	}
	fresh := gen.GenerateForPlant(p)
	for _, t := range fresh {
		if err := txTasks.Create(ctx, t); err != nil {
			return nil, err
		}
	}
	return fresh, nil
}
