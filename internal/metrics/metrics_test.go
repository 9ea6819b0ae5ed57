package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/greenspot/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func value(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var pb dto.Metric
	require.NoError(t, c.Write(&pb))
	return pb.GetCounter().GetValue()
}

func TestUseCaseObserver_CountsOutcomes(t *testing.T) {
	m := New()
	obs := m.UseCaseObserver()
	ctx := context.Background()

	obs.ObserveUseCase(ctx, service.UseCaseEvent{Name: "toggle-task", Success: true, Duration: time.Millisecond,
		Fields: map[string]any{"follow_up": true}})
	obs.ObserveUseCase(ctx, service.UseCaseEvent{Name: "toggle-task", Success: true,
		Fields: map[string]any{"follow_up": false}})
	obs.ObserveUseCase(ctx, service.UseCaseEvent{Name: "add-plant", Err: errors.New("bad")})

	assert.Equal(t, 2.0, value(t, m.UseCasesTotal.WithLabelValues("toggle-task", "success")))
	assert.Equal(t, 1.0, value(t, m.UseCasesTotal.WithLabelValues("add-plant", "error")))
	assert.Equal(t, 1.0, value(t, m.FollowUpsTotal))

	var pb dto.Metric
	h := m.UseCaseDuration.WithLabelValues("toggle-task").(prometheus.Histogram)
	require.NoError(t, h.Write(&pb))
	assert.Equal(t, uint64(2), pb.GetHistogram().GetSampleCount())
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.FollowUpsTotal.Inc()
	assert.Equal(t, 0.0, value(t, b.FollowUpsTotal))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/api/v1/plants", http.StatusOK, 3*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body,
		`greenspot_http_requests_total{method="GET",route="/api/v1/plants",status="200"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}
