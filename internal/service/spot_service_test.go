package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/lighting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSpot_Classifies(t *testing.T) {
	f := newFixture(t)
	spot := f.mustSpot(t)

	assert.Equal(t, domain.LightBrightDirect, spot.LightLevel)
	assert.Equal(t, "id-0001", spot.ID)

	stored, err := f.spots.GetByID(context.Background(), spot.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LightBrightDirect, stored.LightLevel)

	ev, ok := f.observed.last("create-spot")
	require.True(t, ok)
	assert.True(t, ev.Success)
	assert.Equal(t, "bright-direct", ev.Fields["light_level"])
}

func TestCreateSpot_LampDropsWindowAnswers(t *testing.T) {
	f := newFixture(t)
	in := windowSpot("Desk", domain.DirectionSouth, domain.SunLots, domain.DistanceWindowsill)
	in.Questionnaire.Source = domain.SourceLamp
	in.RoomType = ""

	spot, err := f.spotService().Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, domain.LightMediumIndirect, spot.LightLevel)
	assert.Nil(t, spot.Direction)
	assert.Equal(t, domain.RoomOther, spot.RoomType)
}

func TestCreateSpot_RejectsInvalidInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.spotService().Create(ctx, SpotInput{Name: "  ", Questionnaire: lighting.Questionnaire{Source: domain.SourceLamp}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.spotService().Create(ctx, SpotInput{Name: "Attic", Questionnaire: lighting.Questionnaire{Source: "skylight"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.spotService().Create(ctx, SpotInput{Name: "Attic", RoomType: "garage", Questionnaire: lighting.Questionnaire{Source: domain.SourceLamp}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ev, ok := f.observed.last("create-spot")
	require.True(t, ok)
	assert.False(t, ev.Success)
}

func TestUpdateSpot_ReassessesPlants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spot := f.mustSpot(t)

	added, err := f.plantService().Add(ctx, AddPlantInput{
		Name: "Snake Plant", LightRequirement: domain.LightLow, SpotID: spot.ID,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusCheckLight, added.Plant.Status)

	_, err = f.plantService().OverrideLightMismatch(ctx, added.Plant.ID)
	require.NoError(t, err)

	updated, err := f.spotService().Update(ctx, spot.ID, SpotInput{
		Name:          "Dark corner",
		Questionnaire: lighting.Questionnaire{Source: domain.SourceNoWindow},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LightLow, updated.LightLevel)
	assert.Equal(t, "Dark corner", updated.Name)
	assert.Nil(t, updated.SunExposure)

	p, err := f.plants.GetByID(ctx, added.Plant.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAllGood, p.Status)
	assert.Equal(t, 17, p.Care.WateringDays)
	assert.False(t, p.LightMismatchOverride, "a new light level clears the old override")

	ev, ok := f.observed.last("update-spot")
	require.True(t, ok)
	assert.Equal(t, 1, ev.Fields["reassessed"])
}

func TestUpdateSpot_SameLevelKeepsPlants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spot := f.mustSpot(t)

	added, err := f.plantService().Add(ctx, AddPlantInput{
		Name: "Cactus", LightRequirement: domain.LightBrightIndirect, SpotID: spot.ID,
	})
	require.NoError(t, err)
	_, err = f.plantService().DismissLightWarning(ctx, added.Plant.ID)
	require.NoError(t, err)

	_, err = f.spotService().Update(ctx, spot.ID,
		windowSpot("Sunny sill", domain.DirectionWest, domain.SunLots, domain.DistanceWindowsill))
	require.NoError(t, err)

	p, err := f.plants.GetByID(ctx, added.Plant.ID)
	require.NoError(t, err)
	assert.True(t, p.LightWarningDismissed)
}

func TestUpdateSpot_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.spotService().Update(context.Background(), "missing",
		SpotInput{Name: "x", Questionnaire: lighting.Questionnaire{Source: domain.SourceLamp}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSpotDetailAndRecommendations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spot := f.mustSpot(t)

	_, err := f.plantService().Add(ctx, AddPlantInput{Name: "Aloe", LightRequirement: domain.LightBrightDirect, SpotID: spot.ID})
	require.NoError(t, err)

	detail, err := f.spotService().Detail(ctx, spot.ID, lighting.SummaryLimit)
	require.NoError(t, err)
	require.Len(t, detail.Plants, 1)
	assert.Len(t, detail.Recommendations, 3)
	assert.Equal(t, "Succulents", detail.Recommendations[0].Name)

	all, err := f.spotService().Recommendations(ctx, spot.ID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestRenameAndDeleteSpot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spot := f.mustSpot(t)

	renamed, err := f.spotService().Rename(ctx, spot.ID, "Kitchen sill")
	require.NoError(t, err)
	assert.Equal(t, "Kitchen sill", renamed.Name)
	assert.Equal(t, domain.LightBrightDirect, renamed.LightLevel)

	added, err := f.plantService().Add(ctx, AddPlantInput{Name: "Jade", LightRequirement: domain.LightBrightDirect, SpotID: spot.ID})
	require.NoError(t, err)

	require.NoError(t, f.spotService().Delete(ctx, spot.ID))
	p, err := f.plants.GetByID(ctx, added.Plant.ID)
	require.NoError(t, err)
	assert.Nil(t, p.SpotID)

	assert.ErrorIs(t, f.spotService().Delete(ctx, spot.ID), domain.ErrNotFound)
}

func TestDeleteSpot_ResolvesLightCheckLikeMove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spot := f.mustSpot(t)

	detail, err := f.plantService().Add(ctx, AddPlantInput{Name: "Snake Plant", LightRequirement: domain.LightLow, SpotID: spot.ID})
	require.NoError(t, err)
	require.Equal(t, domain.StatusCheckLight, detail.Plant.Status)
	_, err = f.plantService().DismissLightWarning(ctx, detail.Plant.ID)
	require.NoError(t, err)

	require.NoError(t, f.spotService().Delete(ctx, spot.ID))

	p, err := f.plants.GetByID(ctx, detail.Plant.ID)
	require.NoError(t, err)
	assert.Nil(t, p.SpotID)
	assert.Equal(t, domain.StatusAllGood, p.Status)
	assert.False(t, p.LightWarningDismissed)
	assert.False(t, p.LightMismatchOverride)

	moved, err := f.plantService().Move(ctx, detail.Plant.ID, "")
	require.NoError(t, err)
	assert.Equal(t, p.Status, moved.Status, "deleting the spot and unassigning agree")

	ev, ok := f.observed.last("delete-spot")
	require.True(t, ok)
	assert.Equal(t, 1, ev.Fields["unassigned"])
}
