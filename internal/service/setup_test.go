package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/greenspot/internal/db"
	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/lighting"
	"github.com/alexanderramin/greenspot/internal/repository"
	"github.com/alexanderramin/greenspot/internal/scheduler"
	"github.com/alexanderramin/greenspot/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fixture struct {
	db       *sql.DB
	spots    repository.SpotRepo
	plants   repository.PlantRepo
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	gen      *scheduler.Generator
	clock    *testClock
	observed *recordingObserver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	clock := &testClock{now: testutil.FixedNow}
	n := 0
	gen := &scheduler.Generator{
		Now: clock.Now,
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%04d", n)
		},
	}
	return &fixture{
		db:       database,
		spots:    repository.NewSQLiteSpotRepo(database),
		plants:   repository.NewSQLitePlantRepo(database),
		tasks:    repository.NewSQLiteTaskRepo(database),
		uow:      testutil.NewTestUoW(database),
		gen:      gen,
		clock:    clock,
		observed: &recordingObserver{},
	}
}

func (f *fixture) spotService() SpotService {
	return NewSpotService(f.spots, f.plants, f.uow, f.gen, f.observed)
}

func (f *fixture) plantService() PlantService {
	return NewPlantService(f.plants, f.spots, f.tasks, f.uow, f.gen, f.observed)
}

func (f *fixture) taskService() TaskService {
	return NewTaskService(f.tasks, f.uow, f.gen, f.observed)
}

func ptr[T any](v T) *T { return &v }

func windowSpot(name string, dir domain.Direction, sun domain.SunExposure, dist domain.WindowDistance) SpotInput {
	return SpotInput{
		Name:     name,
		RoomType: domain.RoomLiving,
		Questionnaire: lighting.Questionnaire{
			Source:      domain.SourceWindow,
			Direction:   &dir,
			SunExposure: &sun,
			Distance:    &dist,
		},
	}
}

// mustSpot creates the bright-direct south window spot used across tests.
func (f *fixture) mustSpot(t *testing.T) *domain.Spot {
	t.Helper()
	spot, err := f.spotService().Create(context.Background(),
		windowSpot("Sunny sill", domain.DirectionSouth, domain.SunLots, domain.DistanceClose))
	require.NoError(t, err)
	return spot
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last(name string) (UseCaseEvent, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := len(o.events) - 1; i >= 0; i-- {
		if o.events[i].Name == name {
			return o.events[i], true
		}
	}
	return UseCaseEvent{}, false
}
