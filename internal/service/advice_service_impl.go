package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/greenspot/internal/advisor"
	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/repository"
)

type adviceService struct {
	plants     repository.PlantRepo
	spots      repository.SpotRepo
	identifier advisor.Identifier
	chatter    advisor.Chatter
	observer   UseCaseObserver
}

func NewAdviceService(
	plants repository.PlantRepo,
	spots repository.SpotRepo,
	identifier advisor.Identifier,
	chatter advisor.Chatter,
	observers ...UseCaseObserver,
) AdviceService {
	return &adviceService{
		plants:     plants,
		spots:      spots,
		identifier: identifier,
		chatter:    chatter,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *adviceService) SearchCatalog(query string) []advisor.Species {
	return advisor.Search(query)
}

func (s *adviceService) Identify(ctx context.Context, image []byte) (id *advisor.Identification, err error) {
	fields := map[string]any{"bytes": len(image)}
	defer observe(ctx, s.observer, "identify-plant", time.Now(), fields, &err)

	id, err = s.identifier.Identify(ctx, image)
	if err != nil {
		return nil, err
	}
	fields["species"] = id.Species.Name
	return id, nil
}

func (s *adviceService) Chat(ctx context.Context, message, plantID string) (reply string, err error) {
	defer observe(ctx, s.observer, "chat", time.Now(), map[string]any{"plant_id": plantID}, &err)

	if plantID == "" {
		return s.chatter.Chat(ctx, message, nil)
	}
	p, err := s.plants.GetByID(ctx, plantID)
	if err != nil {
		return "", err
	}
	pc := &advisor.PlantContext{Plant: p}
	if p.SpotID != nil {
		spot, err := s.spots.GetByID(ctx, *p.SpotID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return "", err
		}
		pc.Spot = spot
	}
	return s.chatter.Chat(ctx, message, pc)
}
