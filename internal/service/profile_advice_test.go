package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/greenspot/internal/advisor"
	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spot := f.mustSpot(t)

	_, err := f.plantService().Add(ctx, AddPlantInput{Name: "Jade", LightRequirement: domain.LightBrightDirect, SpotID: spot.ID})
	require.NoError(t, err)
	mismatched, err := f.plantService().Add(ctx, AddPlantInput{Name: "Fern", LightRequirement: domain.LightLow, SpotID: spot.ID})
	require.NoError(t, err)
	_, err = f.plantService().Add(ctx, AddPlantInput{Name: "Ivy", LightRequirement: domain.LightLow})
	require.NoError(t, err)

	_, err = f.taskService().Add(ctx, NewTaskInput{PlantID: mismatched.Plant.ID, Title: "Wipe dust"})
	require.NoError(t, err)

	summary, err := NewProfileService(f.plants, f.spots, f.tasks, f.gen).Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ProfileSummary{
		Plants:         3,
		Spots:          1,
		OpenTasks:      4,
		DueTasks:       1,
		NeedsAttention: 1,
		Unassigned:     1,
	}, summary)
}

func TestProfileSummary_Empty(t *testing.T) {
	f := newFixture(t)
	summary, err := NewProfileService(f.plants, f.spots, f.tasks, f.gen).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &ProfileSummary{}, summary)
}

func (f *fixture) adviceService() AdviceService {
	return NewAdviceService(f.plants, f.spots, advisor.StaticIdentifier{}, advisor.KeywordChat{}, f.observed)
}

func TestAdvice_SearchCatalog(t *testing.T) {
	f := newFixture(t)
	assert.Len(t, f.adviceService().SearchCatalog(""), len(advisor.Catalog()))

	hits := f.adviceService().SearchCatalog("fig")
	require.NotEmpty(t, hits)
	assert.Equal(t, "Fiddle Leaf Fig", hits[0].Name)
}

func TestAdvice_Identify(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.adviceService().Identify(ctx, []byte("leafy photo"))
	require.NoError(t, err)
	assert.NotEmpty(t, id.Species.Name)

	again, err := f.adviceService().Identify(ctx, []byte("leafy photo"))
	require.NoError(t, err)
	assert.Equal(t, id, again, "identification is deterministic for the same image")

	ev, ok := f.observed.last("identify-plant")
	require.True(t, ok)
	assert.Equal(t, id.Species.Name, ev.Fields["species"])

	_, err = f.adviceService().Identify(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdvice_ChatAsExpertAndPlant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reply, err := f.adviceService().Chat(ctx, "Why are my leaves yellow?", "")
	require.NoError(t, err)
	assert.Contains(t, reply, "Yellow leaves")

	dark := testutil.NewTestSpot("Hallway", testutil.WithSource(domain.SourceNoWindow))
	require.NoError(t, f.spots.Create(ctx, dark))
	plant := testutil.NewTestPlant("Monstera", testutil.WithRequirement(domain.LightBrightIndirect), testutil.InSpot(dark))
	require.NoError(t, f.plants.Create(ctx, plant))

	reply, err = f.adviceService().Chat(ctx, "Do you get enough light?", plant.ID)
	require.NoError(t, err)
	assert.Contains(t, reply, "Hallway")
	assert.Contains(t, reply, "bright indirect light")

	_, err = f.adviceService().Chat(ctx, "hi", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
