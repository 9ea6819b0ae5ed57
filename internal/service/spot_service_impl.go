package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/greenspot/internal/db"
	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/lighting"
	"github.com/alexanderramin/greenspot/internal/repository"
	"github.com/alexanderramin/greenspot/internal/scheduler"
)

type spotService struct {
	spots    repository.SpotRepo
	plants   repository.PlantRepo
	uow      db.UnitOfWork
	gen      *scheduler.Generator
	observer UseCaseObserver
}

func NewSpotService(
	spots repository.SpotRepo,
	plants repository.PlantRepo,
	uow db.UnitOfWork,
	gen *scheduler.Generator,
	observers ...UseCaseObserver,
) SpotService {
	return &spotService{
		spots:    spots,
		plants:   plants,
		uow:      uow,
		gen:      gen,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *spotService) Create(ctx context.Context, in SpotInput) (spot *domain.Spot, err error) {
	fields := map[string]any{"spot": in.Name}
	defer observe(ctx, s.observer, "create-spot", time.Now(), fields, &err)

	spot, err = buildSpot(s.gen, in)
	if err != nil {
		return nil, err
	}
	fields["light_level"] = string(spot.LightLevel)
	if err = s.spots.Create(ctx, spot); err != nil {
		return nil, err
	}
	return spot, nil
}

// buildSpot validates in and returns a classified, unsaved spot.
func buildSpot(gen *scheduler.Generator, in SpotInput) (*domain.Spot, error) {
	in, err := normalizeSpotInput(in)
	if err != nil {
		return nil, err
	}
	now := gen.Now()
	spot := &domain.Spot{
		ID:        gen.NewID(),
		Name:      in.Name,
		RoomType:  in.RoomType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.Questionnaire.ApplyTo(spot)
	return spot, nil
}

func (s *spotService) Update(ctx context.Context, id string, in SpotInput) (spot *domain.Spot, err error) {
	fields := map[string]any{"spot_id": id}
	defer observe(ctx, s.observer, "update-spot", time.Now(), fields, &err)

	in, err = normalizeSpotInput(in)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSpots := repository.NewSQLiteSpotRepo(tx)
		txPlants := repository.NewSQLitePlantRepo(tx)

		current, err := txSpots.GetByID(ctx, id)
		if err != nil {
			return err
		}
		previous := current.LightLevel
		now := s.gen.Now()

		current.Name = in.Name
		current.RoomType = in.RoomType
		in.Questionnaire.ApplyTo(current)
		current.UpdatedAt = now
		if err := txSpots.Update(ctx, current); err != nil {
			return err
		}
		spot = current

		if current.LightLevel == previous {
			return nil
		}
		plants, err := txPlants.ListBySpot(ctx, id)
		if err != nil {
			return err
		}
		for _, p := range plants {
			lighting.Reassess(p, current)
			p.UpdatedAt = now
			if err := txPlants.Update(ctx, p); err != nil {
				return err
			}
		}
		fields["reassessed"] = len(plants)
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["light_level"] = string(spot.LightLevel)
	return spot, nil
}

func (s *spotService) Rename(ctx context.Context, id, name string) (*domain.Spot, error) {
	n, err := requireName("spot", name)
	if err != nil {
		return nil, err
	}
	spot, err := s.spots.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	spot.Name = n
	spot.UpdatedAt = s.gen.Now()
	if err := s.spots.Update(ctx, spot); err != nil {
		return nil, err
	}
	return spot, nil
}

func (s *spotService) GetByID(ctx context.Context, id string) (*domain.Spot, error) {
	return s.spots.GetByID(ctx, id)
}

func (s *spotService) Detail(ctx context.Context, id string, limit int) (*SpotDetail, error) {
	spot, err := s.spots.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	plants, err := s.plants.ListBySpot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing plants in spot: %w", err)
	}
	return &SpotDetail{
		Spot:            spot,
		Plants:          plants,
		Recommendations: lighting.Recommend(spot.LightLevel, limit),
	}, nil
}

func (s *spotService) List(ctx context.Context) ([]*domain.Spot, error) {
	return s.spots.List(ctx)
}

func (s *spotService) Delete(ctx context.Context, id string) (err error) {
	fields := map[string]any{"spot_id": id}
	defer observe(ctx, s.observer, "delete-spot", time.Now(), fields, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSpots := repository.NewSQLiteSpotRepo(tx)
		txPlants := repository.NewSQLitePlantRepo(tx)

		if _, err := txSpots.GetByID(ctx, id); err != nil {
			return err
		}
		plants, err := txPlants.ListBySpot(ctx, id)
		if err != nil {
			return err
		}
		now := s.gen.Now()
		for _, p := range plants {
			lighting.Unassign(p)
			p.UpdatedAt = now
			if err := txPlants.Update(ctx, p); err != nil {
				return err
			}
		}
		fields["unassigned"] = len(plants)
		return txSpots.Delete(ctx, id)
	})
}

func (s *spotService) Recommendations(ctx context.Context, id string, limit int) ([]lighting.Recommendation, error) {
	spot, err := s.spots.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return lighting.Recommend(spot.LightLevel, limit), nil
}
