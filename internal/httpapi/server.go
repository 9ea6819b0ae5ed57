// Package httpapi serves the greenspot rules engine over JSON HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/greenspot/internal/config"
	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/metrics"
	"github.com/alexanderramin/greenspot/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Services are the use cases the API exposes.
type Services struct {
	Spots   service.SpotService
	Plants  service.PlantService
	Tasks   service.TaskService
	Profile service.ProfileService
	Advice  service.AdviceService
}

type Server struct {
	echo    *echo.Echo
	svc     Services
	logger  *slog.Logger
	metrics *metrics.Metrics
	config  config.HTTPConfig
	now     func() time.Time
}

// NewServer builds the API. m may be nil, in which case /metrics is not
// mounted and requests are not measured.
func NewServer(svc Services, logger *slog.Logger, m *metrics.Metrics, cfg config.HTTPConfig) (*Server, error) {
	if svc.Spots == nil || svc.Plants == nil || svc.Tasks == nil || svc.Profile == nil || svc.Advice == nil {
		return nil, errors.New("all services are required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:    e,
		svc:     svc,
		logger:  logger,
		metrics: m,
		config:  cfg,
		now:     func() time.Time { return time.Now().UTC() },
	}

	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(s.observeRequests)

	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	if s.metrics != nil {
		s.echo.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	}

	v1 := s.echo.Group("/api/v1")
	v1.POST("/classify", s.handleClassify)

	v1.GET("/spots", s.handleListSpots)
	v1.POST("/spots", s.handleCreateSpot)
	v1.GET("/spots/:id", s.handleGetSpot)
	v1.PUT("/spots/:id", s.handleUpdateSpot)
	v1.DELETE("/spots/:id", s.handleDeleteSpot)
	v1.GET("/spots/:id/recommendations", s.handleSpotRecommendations)

	v1.GET("/plants", s.handleListPlants)
	v1.POST("/plants", s.handleAddPlant)
	v1.GET("/plants/:id", s.handleGetPlant)
	v1.DELETE("/plants/:id", s.handleDeletePlant)
	v1.POST("/plants/:id/light/dismiss", s.handleDismissLight)
	v1.POST("/plants/:id/light/override", s.handleOverrideLight)
	v1.PUT("/plants/:id/task-config", s.handleUpdateTaskConfig)

	v1.GET("/tasks", s.handleListTasks)
	v1.POST("/tasks", s.handleAddTask)
	v1.POST("/tasks/:id/toggle", s.handleToggleTask)

	v1.GET("/profile", s.handleProfile)
	v1.GET("/catalog", s.handleCatalog)
	v1.POST("/identify", s.handleIdentify)
	v1.POST("/chat", s.handleChat)
}

// observeRequests logs every request and feeds the HTTP metrics. Errors are
// rendered here so the recorded status is the one sent.
func (s *Server) observeRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}
		duration := time.Since(start)
		req, res := c.Request(), c.Response()

		s.logger.InfoContext(req.Context(), "http_request",
			"method", req.Method,
			"route", c.Path(),
			"uri", req.RequestURI,
			"status", res.Status,
			"duration_ms", duration.Milliseconds(),
			"request_id", res.Header().Get(echo.HeaderXRequestID),
		)
		if s.metrics != nil {
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			s.metrics.ObserveRequest(req.Method, route, res.Status, duration)
		}
		return nil
	}
}

// handleError maps domain errors onto status codes.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "internal error"

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		msg = fmt.Sprint(he.Message)
	case errors.Is(err, domain.ErrInvalidInput):
		code, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		code, msg = http.StatusNotFound, err.Error()
	default:
		s.logger.ErrorContext(c.Request().Context(), "request failed", "error", err, "route", c.Path())
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, ErrorResponse{Error: msg})
	}
	if err != nil {
		s.logger.Warn("writing error response", "error", err)
	}
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the configured address until Shutdown.
func (s *Server) Start() error {
	addr := s.config.Addr()
	s.logger.Info("starting http server", "addr", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
