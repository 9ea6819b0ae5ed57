package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_WritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	obs := NewLogUseCaseObserver(logger)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "toggle-task",
		Duration: 15 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"task_id": "t1"},
	})

	out := buf.String()
	assert.Contains(t, out, `"msg":"service_use_case"`)
	assert.Contains(t, out, `"use_case":"toggle-task"`)
	assert.Contains(t, out, `"duration_ms":15`)
	assert.Contains(t, out, `"task_id":"t1"`)
	assert.Contains(t, out, `"level":"INFO"`)
}

func TestLogUseCaseObserver_ErrorsLogAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(slog.New(slog.NewJSONHandler(&buf, nil)))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "add-plant", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop_FansOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}

	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.Same(t, a, useCaseObserverOrNoop([]UseCaseObserver{nil, a}))

	obs := useCaseObserverOrNoop([]UseCaseObserver{a, nil, b})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "chat"})

	_, okA := a.last("chat")
	_, okB := b.last("chat")
	assert.True(t, okA)
	assert.True(t, okB)
}

func TestObserve_ReportsNamedError(t *testing.T) {
	rec := &recordingObserver{}
	run := func() (err error) {
		defer observe(context.Background(), rec, "delete-spot", time.Now(), map[string]any{"spot_id": "s1"}, &err)
		return errors.New("gone")
	}
	require.Error(t, run())

	ev, ok := rec.last("delete-spot")
	require.True(t, ok)
	assert.False(t, ev.Success)
	assert.EqualError(t, ev.Err, "gone")
	assert.Equal(t, "s1", ev.Fields["spot_id"])
}
