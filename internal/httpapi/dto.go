package httpapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/greenspot/internal/advisor"
	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/lighting"
	"github.com/alexanderramin/greenspot/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// QuestionnaireRequest holds the light questionnaire. Window answers are
// ignored unless light_source is "window".
type QuestionnaireRequest struct {
	LightSource string `json:"light_source"`
	Direction   string `json:"direction,omitempty"`
	SunExposure string `json:"sun_exposure,omitempty"`
	Distance    string `json:"distance,omitempty"`
}

func optional[T ~string](v string, parse func(string) (T, error)) (*T, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	out, err := parse(v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r QuestionnaireRequest) toQuestionnaire() (lighting.Questionnaire, error) {
	var q lighting.Questionnaire
	src, err := domain.ParseLightSource(r.LightSource)
	if err != nil {
		return q, err
	}
	q.Source = src
	if q.Direction, err = optional(r.Direction, domain.ParseDirection); err != nil {
		return q, err
	}
	if q.SunExposure, err = optional(r.SunExposure, domain.ParseSunExposure); err != nil {
		return q, err
	}
	if q.Distance, err = optional(r.Distance, domain.ParseWindowDistance); err != nil {
		return q, err
	}
	return q.Normalize(), nil
}

type SpotRequest struct {
	Name     string `json:"name"`
	RoomType string `json:"room_type,omitempty"`
	QuestionnaireRequest
}

func (r SpotRequest) toInput() (service.SpotInput, error) {
	q, err := r.toQuestionnaire()
	if err != nil {
		return service.SpotInput{}, err
	}
	in := service.SpotInput{Name: r.Name, Questionnaire: q}
	if strings.TrimSpace(r.RoomType) != "" {
		if in.RoomType, err = domain.ParseRoomType(r.RoomType); err != nil {
			return service.SpotInput{}, err
		}
	}
	return in, nil
}

type CareJSON struct {
	WateringFrequency string `json:"watering_frequency"`
	WateringDays      int    `json:"watering_days"`
	LightDescription  string `json:"light_description"`
}

func careJSON(c domain.CareInstructions) CareJSON {
	return CareJSON{
		WateringFrequency: c.WateringFrequency,
		WateringDays:      c.WateringDays,
		LightDescription:  c.LightDescription,
	}
}

type ClassifyResponse struct {
	LightLevel string   `json:"light_level"`
	Care       CareJSON `json:"care"`
}

type SpotJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	RoomType    string    `json:"room_type"`
	LightSource string    `json:"light_source"`
	Direction   string    `json:"direction,omitempty"`
	SunExposure string    `json:"sun_exposure,omitempty"`
	Distance    string    `json:"distance,omitempty"`
	LightLevel  string    `json:"light_level"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func deref[T ~string](p *T) string {
	if p == nil {
		return ""
	}
	return string(*p)
}

func spotJSON(s *domain.Spot) SpotJSON {
	return SpotJSON{
		ID:          s.ID,
		Name:        s.Name,
		RoomType:    string(s.RoomType),
		LightSource: string(s.LightSource),
		Direction:   deref(s.Direction),
		SunExposure: deref(s.SunExposure),
		Distance:    deref(s.Distance),
		LightLevel:  string(s.LightLevel),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type RecommendationJSON struct {
	Name      string `json:"name"`
	Tolerance string `json:"tolerance"`
}

func recommendationsJSON(recs []lighting.Recommendation) []RecommendationJSON {
	out := make([]RecommendationJSON, len(recs))
	for i, r := range recs {
		out[i] = RecommendationJSON{Name: r.Name, Tolerance: r.Tolerance}
	}
	return out
}

type SpotDetailJSON struct {
	SpotJSON
	Plants          []PlantJSON          `json:"plants"`
	Recommendations []RecommendationJSON `json:"recommendations"`
}

type TaskSettingJSON struct {
	Enabled       bool `json:"enabled"`
	FrequencyDays int  `json:"frequency_days"`
}

// TaskConfigJSON is keyed by task type, e.g. "watering" or "pestCheck".
type TaskConfigJSON map[string]TaskSettingJSON

func taskConfigJSON(cfg domain.TaskConfig) TaskConfigJSON {
	out := make(TaskConfigJSON, len(domain.TaskTypes))
	for _, t := range domain.TaskTypes {
		s, _ := cfg.Get(t)
		out[string(t)] = TaskSettingJSON{Enabled: s.Enabled, FrequencyDays: s.FrequencyDays}
	}
	return out
}

// applyTo overlays the given entries onto base. Types not mentioned keep
// their current setting.
func (j TaskConfigJSON) applyTo(base domain.TaskConfig) (domain.TaskConfig, error) {
	for key, s := range j {
		t, err := domain.ParseTaskType(key)
		if err != nil {
			return base, err
		}
		if err := base.Set(t, domain.TaskSetting{Enabled: s.Enabled, FrequencyDays: s.FrequencyDays}); err != nil {
			return base, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	return base, nil
}

type PlantJSON struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	ScientificName        string         `json:"scientific_name,omitempty"`
	Image                 string         `json:"image,omitempty"`
	SpotID                string         `json:"spot_id,omitempty"`
	Status                string         `json:"status"`
	LightRequirement      string         `json:"light_requirement"`
	Care                  CareJSON       `json:"care"`
	TaskConfig            TaskConfigJSON `json:"task_config"`
	LightWarningDismissed bool           `json:"light_warning_dismissed"`
	LightMismatchOverride bool           `json:"light_mismatch_override"`
	AddedAt               time.Time      `json:"added_at"`
}

func plantJSON(p *domain.Plant) PlantJSON {
	out := PlantJSON{
		ID:                    p.ID,
		Name:                  p.Name,
		ScientificName:        p.ScientificName,
		Image:                 p.Image,
		Status:                string(p.Status),
		LightRequirement:      string(p.LightRequirement),
		Care:                  careJSON(p.Care),
		TaskConfig:            taskConfigJSON(p.TaskConfig),
		LightWarningDismissed: p.LightWarningDismissed,
		LightMismatchOverride: p.LightMismatchOverride,
		AddedAt:               p.AddedAt,
	}
	if p.SpotID != nil {
		out.SpotID = *p.SpotID
	}
	return out
}

func plantsJSON(plants []*domain.Plant) []PlantJSON {
	out := make([]PlantJSON, len(plants))
	for i, p := range plants {
		out[i] = plantJSON(p)
	}
	return out
}

type PlantDetailJSON struct {
	PlantJSON
	Spot             *SpotJSON  `json:"spot,omitempty"`
	Tasks            []TaskJSON `json:"tasks"`
	ShowLightWarning bool       `json:"show_light_warning"`
}

func plantDetailJSON(d *service.PlantDetail) PlantDetailJSON {
	out := PlantDetailJSON{
		PlantJSON:        plantJSON(d.Plant),
		Tasks:            tasksJSON(d.Tasks),
		ShowLightWarning: d.ShowLightWarning,
	}
	if d.Spot != nil {
		s := spotJSON(d.Spot)
		out.Spot = &s
	}
	return out
}

type AddPlantRequest struct {
	Name             string         `json:"name"`
	ScientificName   string         `json:"scientific_name,omitempty"`
	Image            string         `json:"image,omitempty"`
	LightRequirement string         `json:"light_requirement"`
	SpotID           string         `json:"spot_id,omitempty"`
	TaskConfig       TaskConfigJSON `json:"task_config,omitempty"`
}

func (r AddPlantRequest) toInput() (service.AddPlantInput, error) {
	level, err := domain.ParseLightLevel(r.LightRequirement)
	if err != nil {
		return service.AddPlantInput{}, err
	}
	in := service.AddPlantInput{
		Name:             r.Name,
		ScientificName:   r.ScientificName,
		Image:            r.Image,
		LightRequirement: level,
		SpotID:           r.SpotID,
	}
	if len(r.TaskConfig) > 0 {
		cfg, err := r.TaskConfig.applyTo(domain.DefaultTaskConfig())
		if err != nil {
			return service.AddPlantInput{}, err
		}
		in.TaskConfig = &cfg
	}
	return in, nil
}

type TaskJSON struct {
	ID          string     `json:"id"`
	PlantID     string     `json:"plant_id"`
	Title       string     `json:"title"`
	Type        string     `json:"type,omitempty"`
	Category    string     `json:"category"`
	DueDate     time.Time  `json:"due_date"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func taskJSON(t *domain.Task) TaskJSON {
	return TaskJSON{
		ID:          t.ID,
		PlantID:     t.PlantID,
		Title:       t.Title,
		Type:        string(t.Type),
		Category:    string(t.Category),
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
	}
}

func tasksJSON(tasks []*domain.Task) []TaskJSON {
	out := make([]TaskJSON, len(tasks))
	for i, t := range tasks {
		out[i] = taskJSON(t)
	}
	return out
}

type AddTaskRequest struct {
	PlantID  string     `json:"plant_id"`
	Title    string     `json:"title"`
	Type     string     `json:"type,omitempty"`
	Category string     `json:"category,omitempty"`
	DueDate  *time.Time `json:"due_date,omitempty"`
}

func (r AddTaskRequest) toInput() service.NewTaskInput {
	in := service.NewTaskInput{
		PlantID:  r.PlantID,
		Title:    r.Title,
		Type:     domain.TaskType(strings.TrimSpace(r.Type)),
		Category: domain.TaskCategory(strings.TrimSpace(r.Category)),
	}
	if r.DueDate != nil {
		in.DueDate = r.DueDate.UTC()
	}
	return in
}

type ToggleResponse struct {
	Task               *TaskJSON `json:"task,omitempty"`
	FollowUp           *TaskJSON `json:"follow_up,omitempty"`
	LightCheckReopened bool      `json:"light_check_reopened"`
	Skipped            bool      `json:"skipped"`
}

func toggleJSON(r *service.ToggleResult) ToggleResponse {
	out := ToggleResponse{LightCheckReopened: r.LightCheckReopened, Skipped: r.Skipped}
	if r.Task != nil {
		t := taskJSON(r.Task)
		out.Task = &t
	}
	if r.FollowUp != nil {
		t := taskJSON(r.FollowUp)
		out.FollowUp = &t
	}
	return out
}

type ProfileJSON struct {
	Plants         int `json:"plants"`
	Spots          int `json:"spots"`
	OpenTasks      int `json:"open_tasks"`
	DueTasks       int `json:"due_tasks"`
	NeedsAttention int `json:"needs_attention"`
	Unassigned     int `json:"unassigned"`
}

type SpeciesJSON struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ScientificName   string `json:"scientific_name"`
	Image            string `json:"image"`
	LightRequirement string `json:"light_requirement"`
}

func speciesJSON(s advisor.Species) SpeciesJSON {
	return SpeciesJSON{
		ID:               s.ID,
		Name:             s.Name,
		ScientificName:   s.ScientificName,
		Image:            s.Image,
		LightRequirement: string(s.LightRequirement),
	}
}

// IdentifyRequest carries the photo base64-encoded.
type IdentifyRequest struct {
	Image []byte `json:"image"`
}

type IdentifyResponse struct {
	Species    SpeciesJSON `json:"species"`
	Confidence float64     `json:"confidence"`
}

type ChatRequest struct {
	Message string `json:"message"`
	PlantID string `json:"plant_id,omitempty"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
