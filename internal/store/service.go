package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sudipshil9862/team-do/internal/model"
)

// TaskIDPrefix is prepended to generated task IDs
const TaskIDPrefix = "task-"

var (
	// ErrEmptyDescription is returned when a task description is blank
	ErrEmptyDescription = errors.New("task description is empty")

	// ErrTaskNotFound is returned when removing a task the store does not hold
	ErrTaskNotFound = errors.New("task not found")
)

// ChangeKind identifies a store mutation
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota
	ChangeRemoved
)

// String returns the name of the change kind
func (ck ChangeKind) String() string {
	switch ck {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Change describes a completed store mutation
type Change struct {
	Kind      ChangeKind
	Task      *model.Task
	Remaining int // tasks left in the store after the change
}

var _ TaskStore = (*Service)(nil)

// Service is the in-memory task store
type Service struct {
	tasks      []*model.Task
	tasksMutex sync.RWMutex
	onChange   func(Change) // callback for UI updates
	logger     zerolog.Logger
}

// NewService creates an empty task store
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		tasks:  make([]*model.Task, 0),
		logger: logger,
	}
}

// SetChangeCallback sets the callback function for store changes
func (s *Service) SetChangeCallback(callback func(Change)) {
	s.onChange = callback
}

// AddTask appends a new task in the Created state.
// Blank descriptions leave the store untouched and return ErrEmptyDescription.
func (s *Service) AddTask(description string) (*model.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	s.tasksMutex.Lock()
	task := model.NewTask(generateTaskID(), description)
	s.tasks = append(s.tasks, task)
	remaining := len(s.tasks)
	s.tasksMutex.Unlock()

	s.logger.Debug().
		Str("task_id", task.ID).
		Int("count", remaining).
		Msg("task added")

	s.notifyChange(Change{Kind: ChangeAdded, Task: task, Remaining: remaining})
	return task, nil
}

// RemoveTask removes the given task by identity
func (s *Service) RemoveTask(task *model.Task) error {
	s.tasksMutex.Lock()
	index := -1
	for i, t := range s.tasks {
		if t == task {
			index = i
			break
		}
	}
	if index < 0 {
		s.tasksMutex.Unlock()
		if task == nil {
			return fmt.Errorf("remove nil task: %w", ErrTaskNotFound)
		}
		return fmt.Errorf("remove %s: %w", task.ID, ErrTaskNotFound)
	}

	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	remaining := len(s.tasks)
	s.tasksMutex.Unlock()

	s.logger.Debug().
		Str("task_id", task.ID).
		Int("count", remaining).
		Msg("task removed")

	s.notifyChange(Change{Kind: ChangeRemoved, Task: task, Remaining: remaining})
	return nil
}

// Tasks returns a snapshot of all tasks in insertion order
func (s *Service) Tasks() []*model.Task {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Len returns the number of tasks in the store
func (s *Service) Len() int {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return len(s.tasks)
}

// notifyChange calls the change callback if set
func (s *Service) notifyChange(change Change) {
	if s.onChange != nil {
		s.onChange(change)
	}
}

// generateTaskID generates a unique, time ordered task ID
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
