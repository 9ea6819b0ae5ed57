package llm

import "github.com/alexanderramin/greenspot/internal/config"

// Task identifies the kind of generation being performed.
type Task string

const (
	TaskExpertChat Task = "expert_chat"
	TaskPlantChat  Task = "plant_chat"
)

// TaskConfig holds the sampling parameters for one kind of chat.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
}

// Config holds everything the Ollama client needs.
type Config struct {
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[Task]TaskConfig
}

// DefaultConfig returns the client defaults for a local Ollama.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[Task]TaskConfig{
			TaskExpertChat: {Temperature: 0.3, MaxTokens: 512},
			TaskPlantChat:  {Temperature: 0.7, MaxTokens: 256},
		},
	}
}

// FromSettings overlays the loaded llm section onto the defaults.
func FromSettings(s config.LLMConfig) Config {
	cfg := DefaultConfig()
	if s.Endpoint != "" {
		cfg.Endpoint = s.Endpoint
	}
	if s.Model != "" {
		cfg.Model = s.Model
	}
	if s.TimeoutMs > 0 {
		cfg.TimeoutMs = s.TimeoutMs
	}
	if s.MaxRetries >= 0 {
		cfg.MaxRetries = s.MaxRetries
	}
	return cfg
}
