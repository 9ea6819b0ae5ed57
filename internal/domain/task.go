package domain

import "time"

// Task is a single due-dated care action. It points at its plant by id only.
type Task struct {
	ID          string
	PlantID     string
	Title       string
	Type        TaskType
	Category    TaskCategory
	DueDate     time.Time
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// IsLightCheck reports whether completing or reopening the task concerns
// the plant's light mismatch warning.
func (t *Task) IsLightCheck() bool {
	return t.Category == CategoryLightCheck
}

// Toggle flips completion and stamps or clears CompletedAt.
func (t *Task) Toggle(now time.Time) {
	t.Completed = !t.Completed
	if t.Completed {
		done := now
		t.CompletedAt = &done
		return
	}
	t.CompletedAt = nil
}

// IsOverdue reports whether an incomplete task is past due at now.
func (t *Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate.Before(now)
}
