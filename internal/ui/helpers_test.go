package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"

	"github.com/sudipshil9862/team-do/internal/style"
)

// manualScheduler collects scheduled callbacks so tests decide when they fire
type manualScheduler struct {
	pending []scheduledCall
}

type scheduledCall struct {
	delay time.Duration
	fn    func()
}

func (m *manualScheduler) AfterFunc(d time.Duration, f func()) {
	m.pending = append(m.pending, scheduledCall{delay: d, fn: f})
}

// fireNext runs the oldest pending callback
func (m *manualScheduler) fireNext(t *testing.T) {
	t.Helper()
	if len(m.pending) == 0 {
		t.Fatal("no scheduled callback to fire")
	}
	next := m.pending[0]
	m.pending = m.pending[1:]
	next.fn()
}

// resizeRecorder records window resizes
type resizeRecorder struct {
	fyne.Window
	sizes []fyne.Size
}

func (r *resizeRecorder) Resize(size fyne.Size) {
	r.sizes = append(r.sizes, size)
	r.Window.Resize(size)
}

func testSheet(t *testing.T) *style.Sheet {
	t.Helper()
	sheet, err := style.Default()
	if err != nil {
		t.Fatalf("Failed to load default style sheet: %v", err)
	}
	return sheet
}
