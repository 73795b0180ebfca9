package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders one row per task, wires row buttons to the task store and the
// task state machine, and shows the hurrah indicator when a task completes.
