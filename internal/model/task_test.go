package model

import (
	"testing"
)

func TestNewTask(t *testing.T) {
	task := NewTask("task-1", "Buy milk")

	if task.ID != "task-1" {
		t.Errorf("Expected ID to be 'task-1', got '%s'", task.ID)
	}

	if task.Description != "Buy milk" {
		t.Errorf("Expected description 'Buy milk', got '%s'", task.Description)
	}

	if task.Status != TaskStatusCreated {
		t.Errorf("Expected status to be Created, got %s", task.Status)
	}

	if task.Progress() != 0.0 {
		t.Errorf("Expected progress 0.0, got %v", task.Progress())
	}

	if !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Error("Expected CreatedAt and UpdatedAt to match for a new task")
	}
}

func TestTask_ProgressToggle(t *testing.T) {
	task := NewTask("task-1", "Buy milk")

	task.PressProgress()
	if task.Status != TaskStatusInProgress || task.Progress() != 0.5 {
		t.Errorf("Expected InProgress/0.5, got %s/%v", task.Status, task.Progress())
	}

	task.PressProgress()
	if task.Status != TaskStatusCreated || task.Progress() != 0.0 {
		t.Errorf("Expected Created/0.0, got %s/%v", task.Status, task.Progress())
	}
}

func TestTask_PressComplete(t *testing.T) {
	task := NewTask("task-1", "Buy milk")
	task.PressProgress()

	if entered := task.PressComplete(); !entered {
		t.Error("Expected PressComplete to report entering Completed")
	}
	if !task.IsCompleted() || task.Progress() != 1.0 {
		t.Errorf("Expected Completed/1.0, got %s/%v", task.Status, task.Progress())
	}

	if entered := task.PressComplete(); entered {
		t.Error("Leaving Completed must not report a completion")
	}
	if task.Status != TaskStatusInProgress || task.Progress() != 0.5 {
		t.Errorf("Expected InProgress/0.5, got %s/%v", task.Status, task.Progress())
	}
}

func TestTask_ProgressWhileCompleted(t *testing.T) {
	task := NewTask("task-1", "Buy milk")
	task.PressComplete()

	task.PressProgress()
	if task.Status != TaskStatusInProgress {
		t.Errorf("Expected InProgress after Progress on a completed task, got %s", task.Status)
	}
	if !task.Status.ProgressActive() {
		t.Error("Progress button should be active")
	}
	if task.Status.CompleteActive() {
		t.Error("Complete button should be normal")
	}
}
