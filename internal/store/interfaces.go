package store

import (
	"github.com/sudipshil9862/team-do/internal/model"
)

// TaskStore defines the interface for the task store.
type TaskStore interface {
	SetChangeCallback(func(Change))
	AddTask(description string) (*model.Task, error)
	RemoveTask(task *model.Task) error
	Tasks() []*model.Task
	Len() int
}
