package domain

import "fmt"

// TaskSetting is the enable flag and repeat interval for one task type.
type TaskSetting struct {
	Enabled       bool
	FrequencyDays int
}

// TaskConfig holds one setting per task type. A fixed struct keeps the six
// types exhaustive at compile time.
type TaskConfig struct {
	Watering    TaskSetting
	Rotating    TaskSetting
	Fertilizing TaskSetting
	Misting     TaskSetting
	Pruning     TaskSetting
	PestCheck   TaskSetting
}

// DefaultTaskConfig is the configuration given to newly added plants:
// only watering is enabled.
func DefaultTaskConfig() TaskConfig {
	return TaskConfig{
		Watering:    TaskSetting{Enabled: true, FrequencyDays: 7},
		Rotating:    TaskSetting{Enabled: false, FrequencyDays: 14},
		Fertilizing: TaskSetting{Enabled: false, FrequencyDays: 30},
		Misting:     TaskSetting{Enabled: false, FrequencyDays: 3},
		Pruning:     TaskSetting{Enabled: false, FrequencyDays: 90},
		PestCheck:   TaskSetting{Enabled: false, FrequencyDays: 21},
	}
}

// Get returns the setting for t. ok is false for unknown types.
func (c TaskConfig) Get(t TaskType) (TaskSetting, bool) {
	switch t {
	case TaskWatering:
		return c.Watering, true
	case TaskRotating:
		return c.Rotating, true
	case TaskFertilizing:
		return c.Fertilizing, true
	case TaskMisting:
		return c.Misting, true
	case TaskPruning:
		return c.Pruning, true
	case TaskPestCheck:
		return c.PestCheck, true
	}
	return TaskSetting{}, false
}

// Set replaces the setting for t.
func (c *TaskConfig) Set(t TaskType, s TaskSetting) error {
	if s.FrequencyDays <= 0 {
		return fmt.Errorf("frequency for %s must be positive, got %d", t, s.FrequencyDays)
	}
	switch t {
	case TaskWatering:
		c.Watering = s
	case TaskRotating:
		c.Rotating = s
	case TaskFertilizing:
		c.Fertilizing = s
	case TaskMisting:
		c.Misting = s
	case TaskPruning:
		c.Pruning = s
	case TaskPestCheck:
		c.PestCheck = s
	default:
		return fmt.Errorf("unknown task type %q", t)
	}
	return nil
}

// Enabled returns the enabled task types in canonical order.
func (c TaskConfig) Enabled() []TaskType {
	var out []TaskType
	for _, t := range TaskTypes {
		if s, _ := c.Get(t); s.Enabled {
			out = append(out, t)
		}
	}
	return out
}
