package model

import (
	"time"
)

// Task represents a single to-do item.
// Description is fixed at creation; Status changes only through the
// Press* methods driven by the task's row.
type Task struct {
	ID          string
	Description string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask creates a task in the Created state
func NewTask(id, description string) *Task {
	now := time.Now()
	return &Task{
		ID:          id,
		Description: description,
		Status:      TaskStatusCreated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Progress returns the fraction displayed for the task, 0.0 to 1.0
func (t *Task) Progress() float64 {
	return t.Status.Fraction()
}

// PressProgress applies a Progress button press
func (t *Task) PressProgress() {
	t.setStatus(t.Status.AfterProgressPress())
}

// PressComplete applies a Complete button press and reports whether the task
// has just entered Completed
func (t *Task) PressComplete() bool {
	next := t.Status.AfterCompletePress()
	t.setStatus(next)
	return next == TaskStatusCompleted
}

// IsCompleted returns true if the task is done
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

func (t *Task) setStatus(status TaskStatus) {
	t.Status = status
	t.UpdatedAt = time.Now()
}
