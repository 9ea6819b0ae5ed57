package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/greenspot/internal/lighting"
	"github.com/labstack/echo/v4"
)

func bind[T any](c echo.Context) (T, error) {
	var req T
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return req, nil
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a non-negative integer")
	}
	return n, nil
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleClassify(c echo.Context) error {
	req, err := bind[QuestionnaireRequest](c)
	if err != nil {
		return err
	}
	q, err := req.toQuestionnaire()
	if err != nil {
		return err
	}
	if err := q.Validate(); err != nil {
		return err
	}
	level := lighting.Classify(q)
	return c.JSON(http.StatusOK, ClassifyResponse{
		LightLevel: string(level),
		Care:       careJSON(lighting.CareFor(level)),
	})
}

// Spots

func (s *Server) handleListSpots(c echo.Context) error {
	spots, err := s.svc.Spots.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]SpotJSON, len(spots))
	for i, sp := range spots {
		out[i] = spotJSON(sp)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateSpot(c echo.Context) error {
	req, err := bind[SpotRequest](c)
	if err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}
	spot, err := s.svc.Spots.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, spotJSON(spot))
}

func (s *Server) handleGetSpot(c echo.Context) error {
	limit, err := queryInt(c, "limit", lighting.SummaryLimit)
	if err != nil {
		return err
	}
	d, err := s.svc.Spots.Detail(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SpotDetailJSON{
		SpotJSON:        spotJSON(d.Spot),
		Plants:          plantsJSON(d.Plants),
		Recommendations: recommendationsJSON(d.Recommendations),
	})
}

func (s *Server) handleUpdateSpot(c echo.Context) error {
	req, err := bind[SpotRequest](c)
	if err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}
	spot, err := s.svc.Spots.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, spotJSON(spot))
}

func (s *Server) handleDeleteSpot(c echo.Context) error {
	if err := s.svc.Spots.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleSpotRecommendations(c echo.Context) error {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}
	recs, err := s.svc.Spots.Recommendations(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recommendationsJSON(recs))
}

// Plants

func (s *Server) handleListPlants(c echo.Context) error {
	plants, err := s.svc.Plants.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plantsJSON(plants))
}

func (s *Server) handleAddPlant(c echo.Context) error {
	req, err := bind[AddPlantRequest](c)
	if err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}
	d, err := s.svc.Plants.Add(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, plantDetailJSON(d))
}

func (s *Server) handleGetPlant(c echo.Context) error {
	d, err := s.svc.Plants.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plantDetailJSON(d))
}

func (s *Server) handleDeletePlant(c echo.Context) error {
	if err := s.svc.Plants.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleDismissLight(c echo.Context) error {
	p, err := s.svc.Plants.DismissLightWarning(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plantJSON(p))
}

func (s *Server) handleOverrideLight(c echo.Context) error {
	p, err := s.svc.Plants.OverrideLightMismatch(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plantJSON(p))
}

func (s *Server) handleUpdateTaskConfig(c echo.Context) error {
	req, err := bind[TaskConfigJSON](c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	current, err := s.svc.Plants.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	cfg, err := req.applyTo(current.Plant.TaskConfig)
	if err != nil {
		return err
	}
	d, err := s.svc.Plants.UpdateTaskConfig(ctx, current.Plant.ID, cfg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plantDetailJSON(d))
}

// Tasks

func (s *Server) handleListTasks(c echo.Context) error {
	ctx := c.Request().Context()
	if raw := c.QueryParam("due_within"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "due_within must be a non-negative number of days")
		}
		tasks, err := s.svc.Tasks.ListDue(ctx, s.now().Add(time.Duration(days)*24*time.Hour))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, tasksJSON(tasks))
	}

	all, _ := strconv.ParseBool(c.QueryParam("all"))
	tasks, err := s.svc.Tasks.List(ctx, c.QueryParam("plant_id"), all)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasksJSON(tasks))
}

func (s *Server) handleAddTask(c echo.Context) error {
	req, err := bind[AddTaskRequest](c)
	if err != nil {
		return err
	}
	t, err := s.svc.Tasks.Add(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, taskJSON(t))
}

func (s *Server) handleToggleTask(c echo.Context) error {
	res, err := s.svc.Tasks.Toggle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toggleJSON(res))
}

// Profile and advice

func (s *Server) handleProfile(c echo.Context) error {
	p, err := s.svc.Profile.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ProfileJSON{
		Plants:         p.Plants,
		Spots:          p.Spots,
		OpenTasks:      p.OpenTasks,
		DueTasks:       p.DueTasks,
		NeedsAttention: p.NeedsAttention,
		Unassigned:     p.Unassigned,
	})
}

func (s *Server) handleCatalog(c echo.Context) error {
	hits := s.svc.Advice.SearchCatalog(c.QueryParam("q"))
	out := make([]SpeciesJSON, len(hits))
	for i, sp := range hits {
		out[i] = speciesJSON(sp)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleIdentify(c echo.Context) error {
	req, err := bind[IdentifyRequest](c)
	if err != nil {
		return err
	}
	id, err := s.svc.Advice.Identify(c.Request().Context(), req.Image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, IdentifyResponse{Species: speciesJSON(id.Species), Confidence: id.Confidence})
}

func (s *Server) handleChat(c echo.Context) error {
	req, err := bind[ChatRequest](c)
	if err != nil {
		return err
	}
	if strings.TrimSpace(req.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	reply, err := s.svc.Advice.Chat(c.Request().Context(), req.Message, req.PlantID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
