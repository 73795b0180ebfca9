package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sudipshil9862/team-do/internal/model"
)

func newTestService() *Service {
	return NewService(zerolog.Nop())
}

func TestNewService(t *testing.T) {
	service := newTestService()

	if service.Len() != 0 {
		t.Errorf("Expected empty store, got %d items", service.Len())
	}

	if len(service.Tasks()) != 0 {
		t.Errorf("Expected no tasks, got %d", len(service.Tasks()))
	}
}

func TestAddTask_PreservesInsertionOrder(t *testing.T) {
	service := newTestService()
	descriptions := []string{"Buy milk", "Walk dog", "Write report", "Call mom"}

	for _, d := range descriptions {
		task, err := service.AddTask(d)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if task.Status != model.TaskStatusCreated {
			t.Errorf("Expected status Created, got %s", task.Status)
		}
		if !strings.HasPrefix(task.ID, TaskIDPrefix) {
			t.Errorf("Expected ID with prefix %q, got %q", TaskIDPrefix, task.ID)
		}
	}

	if service.Len() != len(descriptions) {
		t.Fatalf("Expected %d tasks, got %d", len(descriptions), service.Len())
	}

	for i, task := range service.Tasks() {
		if task.Description != descriptions[i] {
			t.Errorf("Task %d: expected %q, got %q", i, descriptions[i], task.Description)
		}
	}
}

func TestAddTask_RejectsBlank(t *testing.T) {
	service := newTestService()
	if _, err := service.AddTask("Buy milk"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, input := range []string{"", "   ", "\t\n"} {
		task, err := service.AddTask(input)
		if !errors.Is(err, ErrEmptyDescription) {
			t.Errorf("AddTask(%q): expected ErrEmptyDescription, got %v", input, err)
		}
		if task != nil {
			t.Errorf("AddTask(%q): expected nil task", input)
		}
	}

	if service.Len() != 1 {
		t.Errorf("Expected store to be unchanged with 1 task, got %d", service.Len())
	}
}

func TestAddTask_TrimsDescription(t *testing.T) {
	service := newTestService()

	task, err := service.AddTask("  Buy milk \n")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Description != "Buy milk" {
		t.Errorf("Expected trimmed description, got %q", task.Description)
	}
}

func TestAddTask_UniqueIDs(t *testing.T) {
	service := newTestService()
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		task, err := service.AddTask("same text")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if seen[task.ID] {
			t.Fatalf("Duplicate task ID %s", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestRemoveTask(t *testing.T) {
	service := newTestService()
	first, _ := service.AddTask("first")
	second, _ := service.AddTask("second")
	third, _ := service.AddTask("third")

	second.PressProgress()
	third.PressComplete()

	if err := service.RemoveTask(first); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tasks := service.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0] != second || tasks[1] != third {
		t.Error("Remaining tasks should keep their relative order")
	}
	if second.Status != model.TaskStatusInProgress || third.Status != model.TaskStatusCompleted {
		t.Error("Remaining tasks should keep their status")
	}
}

func TestRemoveTask_ByIdentity(t *testing.T) {
	service := newTestService()
	a, _ := service.AddTask("duplicate")
	b, _ := service.AddTask("duplicate")

	if err := service.RemoveTask(b); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tasks := service.Tasks()
	if len(tasks) != 1 || tasks[0] != a {
		t.Error("Expected only the first task with the same description to remain")
	}
}

func TestRemoveTask_NotFound(t *testing.T) {
	service := newTestService()
	task, _ := service.AddTask("Buy milk")

	if err := service.RemoveTask(task); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	err := service.RemoveTask(task)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}

	if err := service.RemoveTask(nil); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound for nil task, got %v", err)
	}
}

func TestTasks_ReturnsCopy(t *testing.T) {
	service := newTestService()
	service.AddTask("Buy milk")

	tasks := service.Tasks()
	tasks[0] = nil

	if service.Tasks()[0] == nil {
		t.Error("Modifying the snapshot must not change the store")
	}
}

func TestChangeCallback(t *testing.T) {
	service := newTestService()

	var changes []Change
	service.SetChangeCallback(func(c Change) {
		changes = append(changes, c)
	})

	task, _ := service.AddTask("Buy milk")
	service.AddTask("")
	service.RemoveTask(task)
	service.RemoveTask(task)

	if len(changes) != 2 {
		t.Fatalf("Expected 2 changes, got %d", len(changes))
	}

	if changes[0].Kind != ChangeAdded || changes[0].Task != task || changes[0].Remaining != 1 {
		t.Errorf("Unexpected add change: %+v", changes[0])
	}
	if changes[1].Kind != ChangeRemoved || changes[1].Task != task || changes[1].Remaining != 0 {
		t.Errorf("Unexpected remove change: %+v", changes[1])
	}
}

func TestChangeKind_String(t *testing.T) {
	if ChangeAdded.String() != "added" || ChangeRemoved.String() != "removed" {
		t.Error("Unexpected change kind names")
	}
	if ChangeKind(42).String() != "unknown" {
		t.Error("Expected unknown for out of range kind")
	}
}
