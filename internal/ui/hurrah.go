package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/rs/zerolog"

	"github.com/sudipshil9862/team-do/internal/style"
)

// Hurrah is the transient congratulatory indicator shown when a task completes.
// Each Show bumps a generation counter; a scheduled hide only takes effect if
// no newer Show happened since it was scheduled.
type Hurrah struct {
	text      *canvas.Text
	box       *fyne.Container
	classes   *style.Classes
	pulse     *fyne.Animation
	sheet     *style.Sheet
	scheduler Scheduler
	duration  time.Duration
	logger    zerolog.Logger

	generation uint64
}

// NewHurrah creates a hidden hurrah indicator
func NewHurrah(sheet *style.Sheet, scheduler Scheduler, logger zerolog.Logger) *Hurrah {
	if scheduler == nil {
		scheduler = timerScheduler{}
	}

	h := &Hurrah{
		classes:   style.NewClasses(),
		sheet:     sheet,
		scheduler: scheduler,
		duration:  HurrahDuration,
		logger:    logger,
	}

	h.text = canvas.NewText(TextHurrah, sheet.Pulse.From)
	h.text.TextSize = HurrahTextSize
	h.text.TextStyle = fyne.TextStyle{Bold: true}
	h.text.Alignment = fyne.TextAlignCenter

	h.box = container.NewCenter(h.text)
	h.box.Hide()
	return h
}

// Object returns the canvas object to place in the window
func (h *Hurrah) Object() fyne.CanvasObject {
	return h.box
}

// Visible reports whether the indicator is currently shown
func (h *Hurrah) Visible() bool {
	return h.box.Visible()
}

// Animating reports whether the hurrah-animation style is applied
func (h *Hurrah) Animating() bool {
	return h.classes.Has(style.ClassHurrahAnimation)
}

// Show displays the indicator and schedules it to hide after the hurrah duration
func (h *Hurrah) Show() {
	h.generation++
	generation := h.generation

	h.box.Show()
	if !h.Animating() {
		h.classes.Add(style.ClassHurrahAnimation)
		h.startPulse()
	}
	h.box.Refresh()

	h.logger.Debug().Uint64("generation", generation).Msg("hurrah shown")

	h.scheduler.AfterFunc(h.duration, func() {
		h.hideIfCurrent(generation)
	})
}

// hideIfCurrent hides the indicator unless a newer Show superseded generation
func (h *Hurrah) hideIfCurrent(generation uint64) {
	if generation != h.generation {
		h.logger.Debug().
			Uint64("generation", generation).
			Uint64("current", h.generation).
			Msg("hurrah hide superseded")
		return
	}

	h.stopPulse()
	h.classes.Remove(style.ClassHurrahAnimation)
	h.box.Hide()
	h.logger.Debug().Uint64("generation", generation).Msg("hurrah hidden")
}

func (h *Hurrah) startPulse() {
	h.pulse = canvas.NewColorRGBAAnimation(h.sheet.Pulse.From, h.sheet.Pulse.To, h.sheet.Pulse.Period, func(c color.Color) {
		h.text.Color = c
		h.text.Refresh()
	})
	h.pulse.AutoReverse = true
	h.pulse.RepeatCount = fyne.AnimationRepeatForever
	h.pulse.Start()
}

func (h *Hurrah) stopPulse() {
	if h.pulse == nil {
		return
	}
	h.pulse.Stop()
	h.pulse = nil
	h.text.Color = h.sheet.Pulse.From
	h.text.Refresh()
}
