package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Application identity
const (
	AppID   = "com.example.TodoListApp"
	AppName = "Team-Do"
)

// Version is reported in the About dialog; override with
// -ldflags "-X github.com/sudipshil9862/team-do/internal/ui.Version=X.Y.Z"
var Version = "1.0.0"

// Icons (emojis/symbols)
const (
	IconHurrah = "🎉"
)

// Button and field texts
const (
	TextEnterTask   = "Enter a task"
	TextAddTask     = "Add Task"
	TextProgress    = "Progress"
	TextComplete    = "Complete"
	TextDelete      = "Delete"
	TextAbout       = "About"
	TextPreferences = "Preferences"
	TextQuit        = "Quit"
	TextClose       = "Close"
	TextSave        = "Save"
	TextCancel      = "Cancel"
	TextHurrah      = IconHurrah + " Hurrah! " + IconHurrah
)

// Layout sizing (TaskRow / lists)
const (
	ProgressBarWidth float32 = 80
	HurrahTextSize   float32 = 20
	TitleTextSize    float32 = 16
)

// Hurrah indicator behavior
const (
	HurrahDuration = 2 * time.Second
)
