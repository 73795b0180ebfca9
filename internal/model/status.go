package model

// TaskStatus represents the status of a to-do task
type TaskStatus string

const (
	// TaskStatusCreated means the task was added but not started
	TaskStatusCreated TaskStatus = "Created"

	// TaskStatusInProgress means work on the task has started
	TaskStatusInProgress TaskStatus = "InProgress"

	// TaskStatusCompleted means the task is done
	TaskStatusCompleted TaskStatus = "Completed"
)

// Progress fractions shown by the row progress bar
const (
	FractionCreated    = 0.0
	FractionInProgress = 0.5
	FractionCompleted  = 1.0
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// Fraction returns the progress bar value for the status
func (ts TaskStatus) Fraction() float64 {
	switch ts {
	case TaskStatusInProgress:
		return FractionInProgress
	case TaskStatusCompleted:
		return FractionCompleted
	default:
		return FractionCreated
	}
}

// AfterProgressPress returns the status that follows a press of the Progress button.
// Only InProgress toggles back to Created; every other status, Completed
// included, becomes InProgress.
func (ts TaskStatus) AfterProgressPress() TaskStatus {
	if ts == TaskStatusInProgress {
		return TaskStatusCreated
	}
	return TaskStatusInProgress
}

// AfterCompletePress returns the status that follows a press of the Complete button
func (ts TaskStatus) AfterCompletePress() TaskStatus {
	if ts == TaskStatusCompleted {
		return TaskStatusInProgress
	}
	return TaskStatusCompleted
}

// ProgressActive reports whether the Progress button is drawn active
func (ts TaskStatus) ProgressActive() bool {
	return ts == TaskStatusInProgress || ts == TaskStatusCompleted
}

// CompleteActive reports whether the Complete button is drawn active
func (ts TaskStatus) CompleteActive() bool {
	return ts == TaskStatusCompleted
}
