package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/lighting"
	"github.com/alexanderramin/greenspot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPlant_MismatchFlagsCheckLight(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spot := f.mustSpot(t)

	detail, err := f.plantService().Add(ctx, AddPlantInput{
		Name:             "Monstera",
		ScientificName:   "Monstera deliciosa",
		LightRequirement: domain.LightBrightIndirect,
		SpotID:           spot.ID,
	})
	require.NoError(t, err)

	p := detail.Plant
	assert.Equal(t, domain.StatusCheckLight, p.Status)
	assert.Equal(t, 6, p.Care.WateringDays)
	assert.Equal(t, "Bright direct light", p.Care.LightDescription)
	assert.True(t, detail.ShowLightWarning)
	assert.Equal(t, domain.DefaultTaskConfig(), p.TaskConfig)

	require.Len(t, detail.Tasks, 1)
	assert.Equal(t, "💧 Water Monstera", detail.Tasks[0].Title)
	assert.Equal(t, testutil.FixedNow.AddDate(0, 0, 7), detail.Tasks[0].DueDate)

	stored, err := f.tasks.ListByPlant(ctx, p.ID, false)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestAddPlant_MatchIsAllGood(t *testing.T) {
	f := newFixture(t)
	spot := f.mustSpot(t)

	detail, err := f.plantService().Add(context.Background(), AddPlantInput{
		Name: "Jade", LightRequirement: domain.LightBrightDirect, SpotID: spot.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAllGood, detail.Plant.Status)
	assert.False(t, detail.ShowLightWarning)
}

func TestAddPlant_UnassignedUsesOwnRequirement(t *testing.T) {
	f := newFixture(t)

	detail, err := f.plantService().Add(context.Background(), AddPlantInput{
		Name: "ZZ Plant", LightRequirement: domain.LightLow,
	})
	require.NoError(t, err)
	assert.Nil(t, detail.Plant.SpotID)
	assert.Equal(t, domain.StatusAllGood, detail.Plant.Status)
	assert.Equal(t, 17, detail.Plant.Care.WateringDays)
	assert.False(t, detail.ShowLightWarning)
}

func TestAddPlant_CustomConfigGeneratesEnabledTypes(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultTaskConfig()
	cfg.Misting.Enabled = true
	cfg.PestCheck.Enabled = true

	detail, err := f.plantService().Add(context.Background(), AddPlantInput{
		Name: "Fern", LightRequirement: domain.LightMediumIndirect, TaskConfig: &cfg,
	})
	require.NoError(t, err)
	require.Len(t, detail.Tasks, 3)
	assert.Equal(t, domain.TaskWatering, detail.Tasks[0].Type)
	assert.Equal(t, domain.TaskMisting, detail.Tasks[1].Type)
	assert.Equal(t, domain.TaskPestCheck, detail.Tasks[2].Type)
}

func TestAddPlant_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.plantService().Add(ctx, AddPlantInput{Name: "", LightRequirement: domain.LightLow})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.plantService().Add(ctx, AddPlantInput{Name: "Fern", LightRequirement: "moonlight"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := domain.DefaultTaskConfig()
	bad.Pruning.FrequencyDays = 0
	_, err = f.plantService().Add(ctx, AddPlantInput{Name: "Fern", LightRequirement: domain.LightLow, TaskConfig: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.plantService().Add(ctx, AddPlantInput{Name: "Fern", LightRequirement: domain.LightLow, SpotID: "nowhere"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	plants, err := f.plants.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, plants)
}

func TestAddPlant_RollsBackWhenTaskInsertFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	failing := &testutil.FailingExecUoW{DB: f.db, Match: "INSERT INTO tasks", Err: errors.New("disk full")}
	svc := NewPlantService(f.plants, f.spots, f.tasks, failing, f.gen)

	_, err := svc.Add(ctx, AddPlantInput{Name: "Fern", LightRequirement: domain.LightLow})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	plants, err := f.plants.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, plants, "plant insert must roll back with its tasks")
}

func TestOnboard_CreatesSpotPlantAndTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.plantService().Onboard(ctx, OnboardInput{
		Spot:  windowSpot("Bedroom window", domain.DirectionNorth, domain.SunABit, domain.DistanceMid),
		Plant: AddPlantInput{Name: "Peace Lily", LightRequirement: domain.LightMediumIndirect, SpotID: "ignored"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LightMediumIndirect, result.Spot.LightLevel)
	require.NotNil(t, result.Plant.Plant.SpotID)
	assert.Equal(t, result.Spot.ID, *result.Plant.Plant.SpotID)
	assert.Equal(t, domain.StatusAllGood, result.Plant.Plant.Status)
	assert.Len(t, result.Plant.Tasks, 1)

	spots, err := f.spots.List(ctx)
	require.NoError(t, err)
	assert.Len(t, spots, 1)
}

func TestOnboard_InvalidPlantLeavesNoSpot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.plantService().Onboard(ctx, OnboardInput{
		Spot:  windowSpot("Hall", domain.DirectionEast, domain.SunABit, domain.DistanceFar),
		Plant: AddPlantInput{Name: "", LightRequirement: domain.LightLow},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	spots, err := f.spots.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, spots)
}

// South window with lots of sun close by, a bright-indirect plant: dismiss
// hides the banner only, override also clears check-light.
func TestLightMismatchScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spot := f.mustSpot(t)
	require.Equal(t, domain.LightBrightDirect, spot.LightLevel)

	added, err := f.plantService().Add(ctx, AddPlantInput{
		Name: "Fiddle Leaf Fig", LightRequirement: domain.LightBrightIndirect, SpotID: spot.ID,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusCheckLight, added.Plant.Status)

	dismissed, err := f.plantService().DismissLightWarning(ctx, added.Plant.ID)
	require.NoError(t, err)
	assert.True(t, dismissed.LightWarningDismissed)
	assert.Equal(t, domain.StatusCheckLight, dismissed.Status)

	detail, err := f.plantService().Get(ctx, added.Plant.ID)
	require.NoError(t, err)
	assert.False(t, detail.ShowLightWarning)

	overridden, err := f.plantService().OverrideLightMismatch(ctx, added.Plant.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAllGood, overridden.Status)
	assert.True(t, overridden.LightMismatchOverride)
}

func TestOverride_LeavesOtherStatuses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	plant := testutil.NewTestPlant("Ivy", testutil.WithStatus(domain.StatusNeedsAttention))
	require.NoError(t, f.plants.Create(ctx, plant))

	p, err := f.plantService().OverrideLightMismatch(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNeedsAttention, p.Status)
	assert.True(t, p.LightMismatchOverride)
}

func TestSetWateringDays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	detail, err := f.plantService().Add(ctx, AddPlantInput{Name: "Fern", LightRequirement: domain.LightLow})
	require.NoError(t, err)
	id := detail.Plant.ID

	p, err := f.plantService().SetWateringDays(ctx, id, " 9 ")
	require.NoError(t, err)
	assert.Equal(t, 9, p.Care.WateringDays)
	assert.Equal(t, "Water every 9 days", p.Care.WateringFrequency)
	assert.Equal(t, "Low light", p.Care.LightDescription)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		p, err = f.plantService().SetWateringDays(ctx, id, bad)
		require.NoError(t, err)
		assert.Equal(t, 9, p.Care.WateringDays, "input %q keeps the previous value", bad)
	}
}

func TestSetAge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	detail, err := f.plantService().Add(ctx, AddPlantInput{Name: "Fern", LightRequirement: domain.LightLow})
	require.NoError(t, err)
	id := detail.Plant.ID

	p, err := f.plantService().SetAge(ctx, id, "30")
	require.NoError(t, err)
	assert.Equal(t, testutil.FixedNow.AddDate(0, 0, -30), p.AddedAt)
	assert.Equal(t, 30, p.AgeDays(testutil.FixedNow))

	p, err = f.plantService().SetAge(ctx, id, "soon")
	require.NoError(t, err)
	assert.Equal(t, 30, p.AgeDays(testutil.FixedNow), "unparseable age keeps the current one")

	p, err = f.plantService().SetAge(ctx, id, "0")
	require.NoError(t, err)
	assert.Equal(t, 0, p.AgeDays(testutil.FixedNow))
}

func TestRenamePlant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	detail, err := f.plantService().Add(ctx, AddPlantInput{Name: "Fern", LightRequirement: domain.LightLow})
	require.NoError(t, err)

	p, err := f.plantService().Rename(ctx, detail.Plant.ID, "Fernando")
	require.NoError(t, err)
	assert.Equal(t, "Fernando", p.Name)

	_, err = f.plantService().Rename(ctx, detail.Plant.ID, " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.plantService().Rename(ctx, "missing", "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovePlant_Reassesses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sunny := f.mustSpot(t)
	dark, err := f.spotService().Create(ctx, SpotInput{Name: "Closet", Questionnaire: lighting.Questionnaire{Source: domain.SourceNoWindow}})
	require.NoError(t, err)

	detail, err := f.plantService().Add(ctx, AddPlantInput{Name: "Snake Plant", LightRequirement: domain.LightLow, SpotID: sunny.ID})
	require.NoError(t, err)
	require.Equal(t, domain.StatusCheckLight, detail.Plant.Status)
	_, err = f.plantService().DismissLightWarning(ctx, detail.Plant.ID)
	require.NoError(t, err)

	moved, err := f.plantService().Move(ctx, detail.Plant.ID, dark.ID)
	require.NoError(t, err)
	assert.Equal(t, dark.ID, *moved.SpotID)
	assert.Equal(t, domain.StatusAllGood, moved.Status)
	assert.Equal(t, 17, moved.Care.WateringDays)
	assert.False(t, moved.LightWarningDismissed)

	back, err := f.plantService().Move(ctx, detail.Plant.ID, sunny.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckLight, back.Status)

	loose, err := f.plantService().Move(ctx, detail.Plant.ID, "")
	require.NoError(t, err)
	assert.Nil(t, loose.SpotID)
	assert.Equal(t, domain.StatusAllGood, loose.Status)

	_, err = f.plantService().Move(ctx, detail.Plant.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovePlant_KeepsCustomWateringDays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sunny := f.mustSpot(t)
	detail, err := f.plantService().Add(ctx, AddPlantInput{Name: "Fern", LightRequirement: domain.LightLow})
	require.NoError(t, err)
	_, err = f.plantService().SetWateringDays(ctx, detail.Plant.ID, "9")
	require.NoError(t, err)

	moved, err := f.plantService().Move(ctx, detail.Plant.ID, sunny.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, moved.Care.WateringDays)
	assert.Equal(t, "Bright direct light", moved.Care.LightDescription)
}

func TestUpdateTaskConfig_Regenerates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	detail, err := f.plantService().Add(ctx, AddPlantInput{Name: "Fern", LightRequirement: domain.LightLow})
	require.NoError(t, err)
	id := detail.Plant.ID

	res, err := f.taskService().Toggle(ctx, detail.Tasks[0].ID)
	require.NoError(t, err)
	require.NotNil(t, res.FollowUp)

	f.clock.Advance(24 * time.Hour)
	cfg := detail.Plant.TaskConfig
	cfg.Watering = domain.TaskSetting{Enabled: true, FrequencyDays: 10}
	cfg.Rotating.Enabled = true

	updated, err := f.plantService().UpdateTaskConfig(ctx, id, cfg)
	require.NoError(t, err)
	require.Len(t, updated.Tasks, 2)
	assert.Equal(t, f.clock.Now().AddDate(0, 0, 10), updated.Tasks[0].DueDate)
	assert.Equal(t, domain.TaskRotating, updated.Tasks[1].Type)

	open, err := f.tasks.ListByPlant(ctx, id, false)
	require.NoError(t, err)
	assert.Len(t, open, 2, "the earlier follow-up is replaced")

	all, err := f.tasks.ListByPlant(ctx, id, true)
	require.NoError(t, err)
	assert.Len(t, all, 3, "completed history is kept")

	stored, err := f.plants.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, cfg, stored.TaskConfig)
}

func TestUpdateTaskConfig_AllDisabledClearsOpenTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	detail, err := f.plantService().Add(ctx, AddPlantInput{Name: "Cactus", LightRequirement: domain.LightBrightDirect})
	require.NoError(t, err)

	cfg := detail.Plant.TaskConfig
	cfg.Watering.Enabled = false
	updated, err := f.plantService().UpdateTaskConfig(ctx, detail.Plant.ID, cfg)
	require.NoError(t, err)
	assert.Empty(t, updated.Tasks)

	open, err := f.tasks.ListByPlant(ctx, detail.Plant.ID, false)
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestDeletePlant_RemovesTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	detail, err := f.plantService().Add(ctx, AddPlantInput{Name: "Fern", LightRequirement: domain.LightLow})
	require.NoError(t, err)

	require.NoError(t, f.plantService().Delete(ctx, detail.Plant.ID))

	_, err = f.plantService().Get(ctx, detail.Plant.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	tasks, err := f.tasks.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestGetPlant_SpotGone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spot := f.mustSpot(t)
	detail, err := f.plantService().Add(ctx, AddPlantInput{Name: "Fern", LightRequirement: domain.LightLow, SpotID: spot.ID})
	require.NoError(t, err)
	require.NoError(t, f.spots.Delete(ctx, spot.ID))

	got, err := f.plantService().Get(ctx, detail.Plant.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Spot)
	assert.False(t, got.ShowLightWarning)
}
