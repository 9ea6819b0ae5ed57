package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestTaskToggle_StampsAndClearsCompletedAt(t *testing.T) {
	task := &Task{Title: "💧 Water Fern", Type: TaskWatering}

	task.Toggle(testNow)
	assert.True(t, task.Completed)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, testNow, *task.CompletedAt)

	task.Toggle(testNow.Add(time.Hour))
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
}

func TestTaskIsOverdue(t *testing.T) {
	past := &Task{DueDate: testNow.Add(-time.Minute)}
	future := &Task{DueDate: testNow.Add(time.Minute)}
	done := &Task{DueDate: testNow.Add(-time.Minute), Completed: true}

	assert.True(t, past.IsOverdue(testNow))
	assert.False(t, future.IsOverdue(testNow))
	assert.False(t, done.IsOverdue(testNow), "completed tasks are never overdue")
}

func TestDefaultTaskConfig_OnlyWateringEnabled(t *testing.T) {
	cfg := DefaultTaskConfig()
	assert.Equal(t, []TaskType{TaskWatering}, cfg.Enabled())

	cases := map[TaskType]int{
		TaskWatering: 7, TaskRotating: 14, TaskFertilizing: 30,
		TaskMisting: 3, TaskPruning: 90, TaskPestCheck: 21,
	}
	for typ, days := range cases {
		s, ok := cfg.Get(typ)
		require.True(t, ok, "type=%s", typ)
		assert.Equal(t, days, s.FrequencyDays, "type=%s", typ)
	}
}

func TestTaskConfigSet(t *testing.T) {
	cfg := DefaultTaskConfig()
	require.NoError(t, cfg.Set(TaskMisting, TaskSetting{Enabled: true, FrequencyDays: 2}))
	assert.Equal(t, []TaskType{TaskWatering, TaskMisting}, cfg.Enabled())

	err := cfg.Set(TaskPruning, TaskSetting{Enabled: true, FrequencyDays: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")

	err = cfg.Set(TaskType("repotting"), TaskSetting{Enabled: true, FrequencyDays: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown task type")
}

func TestTaskConfigGet_Unknown(t *testing.T) {
	_, ok := DefaultTaskConfig().Get(TaskUnknown)
	assert.False(t, ok)
}

func TestParseDaysOr(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"10", 10},
		{" 4 ", 4},
		{"", 8},
		{"abc", 8},
		{"0", 8},
		{"-3", 8},
		{"2.5", 8},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseDaysOr(tc.input, 8), "input=%q", tc.input)
	}
	assert.Equal(t, 0, ParseNonNegativeDaysOr("0", 5))
	assert.Equal(t, 5, ParseNonNegativeDaysOr("x", 5))
}

func TestParseEnums(t *testing.T) {
	lvl, err := ParseLightLevel("bright-indirect")
	require.NoError(t, err)
	assert.Equal(t, LightBrightIndirect, lvl)

	_, err = ParseLightLevel("sunny")
	require.ErrorIs(t, err, ErrInvalidInput)

	typ, err := ParseTaskType("pestCheck")
	require.NoError(t, err)
	assert.Equal(t, TaskPestCheck, typ)

	_, err = ParseRoomType("garage")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlantAgeDays(t *testing.T) {
	p := &Plant{AddedAt: testNow.AddDate(0, 0, -10)}
	assert.Equal(t, 10, p.AgeDays(testNow))

	future := &Plant{AddedAt: testNow.Add(time.Hour)}
	assert.Equal(t, 0, future.AgeDays(testNow))
}
