package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// Scheduler runs a callback once after a delay
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// timerScheduler fires on a timer goroutine and hands the callback to the UI goroutine
type timerScheduler struct{}

// AfterFunc schedules f on the Fyne event loop after d
func (timerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, func() {
		fyne.Do(f)
	})
}
