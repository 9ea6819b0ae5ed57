package service

import (
	"context"

	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/repository"
	"github.com/alexanderramin/greenspot/internal/scheduler"
)

type profileService struct {
	plants repository.PlantRepo
	spots  repository.SpotRepo
	tasks  repository.TaskRepo
	gen    *scheduler.Generator
}

func NewProfileService(plants repository.PlantRepo, spots repository.SpotRepo, tasks repository.TaskRepo, gen *scheduler.Generator) ProfileService {
	return &profileService{plants: plants, spots: spots, tasks: tasks, gen: gen}
}

func (s *profileService) Summary(ctx context.Context) (*ProfileSummary, error) {
	plants, err := s.plants.List(ctx)
	if err != nil {
		return nil, err
	}
	spots, err := s.spots.List(ctx)
	if err != nil {
		return nil, err
	}
	open, err := s.tasks.List(ctx, false)
	if err != nil {
		return nil, err
	}

	now := s.gen.Now()
	summary := &ProfileSummary{
		Plants:    len(plants),
		Spots:     len(spots),
		OpenTasks: len(open),
	}
	for _, t := range open {
		if !t.DueDate.After(now) {
			summary.DueTasks++
		}
	}
	for _, p := range plants {
		if p.Status != domain.StatusAllGood {
			summary.NeedsAttention++
		}
		if p.SpotID == nil {
			summary.Unassigned++
		}
	}
	return summary, nil
}
