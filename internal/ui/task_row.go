package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/sudipshil9862/team-do/internal/model"
	"github.com/sudipshil9862/team-do/internal/style"
)

// TaskRow represents a single task: description, progress bar and the
// Progress / Complete / Delete buttons
type TaskRow struct {
	widget.BaseWidget

	task   *model.Task
	sheet  *style.Sheet
	logger zerolog.Logger

	// UI components
	descriptionLabel *widget.Label
	progressBar      *widget.ProgressBar

	// Action buttons and their style hooks
	progressBtn     *widget.Button
	completeBtn     *widget.Button
	deleteBtn       *widget.Button
	progressClasses *style.Classes
	completeClasses *style.Classes
	deleteClasses   *style.Classes

	// Callbacks
	onCompleted func(task *model.Task)
	onDelete    func(row *TaskRow)
}

// NewTaskRow creates a new task row widget
func NewTaskRow(task *model.Task, sheet *style.Sheet, logger zerolog.Logger) *TaskRow {
	tr := &TaskRow{
		task:            task,
		sheet:           sheet,
		logger:          logger,
		progressClasses: style.NewClasses(style.ClassNormalButton),
		completeClasses: style.NewClasses(style.ClassNormalButton),
		deleteClasses:   style.NewClasses(style.ClassDestructiveAction),
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.updateFromTask()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TaskRow) SetCallbacks(onCompleted func(task *model.Task), onDelete func(row *TaskRow)) {
	if onDelete == nil {
		tr.logger.Warn().Str("task_id", tr.task.ID).Msg("onDelete callback is nil")
	}
	tr.onCompleted = onCompleted
	tr.onDelete = onDelete
}

// Task returns the task rendered by the row
func (tr *TaskRow) Task() *model.Task {
	return tr.task
}

// createUI creates the UI components
func (tr *TaskRow) createUI() {
	tr.descriptionLabel = widget.NewLabel(tr.task.Description)
	tr.descriptionLabel.Alignment = fyne.TextAlignLeading
	tr.descriptionLabel.Truncation = fyne.TextTruncateEllipsis

	tr.progressBar = widget.NewProgressBar()
	tr.progressBar.TextFormatter = func() string { return "" }

	tr.progressBtn = widget.NewButton(TextProgress, tr.onProgressTapped)
	tr.completeBtn = widget.NewButton(TextComplete, tr.onCompleteTapped)
	tr.deleteBtn = widget.NewButton(TextDelete, tr.onDeleteTapped)
	tr.sheet.ApplyButton(tr.deleteBtn, tr.deleteClasses)
}

func (tr *TaskRow) onProgressTapped() {
	tr.task.PressProgress()
	tr.logger.Debug().
		Str("task_id", tr.task.ID).
		Str("status", tr.task.Status.String()).
		Msg("progress pressed")
	tr.updateFromTask()
}

func (tr *TaskRow) onCompleteTapped() {
	entered := tr.task.PressComplete()
	tr.logger.Debug().
		Str("task_id", tr.task.ID).
		Str("status", tr.task.Status.String()).
		Msg("complete pressed")
	tr.updateFromTask()

	if entered && tr.onCompleted != nil {
		tr.onCompleted(tr.task)
	}
}

func (tr *TaskRow) onDeleteTapped() {
	if tr.onDelete == nil {
		tr.logger.Warn().Str("task_id", tr.task.ID).Msg("delete pressed without callback")
		return
	}
	tr.onDelete(tr)
}

// updateFromTask updates UI components based on task state
func (tr *TaskRow) updateFromTask() {
	status := tr.task.Status
	tr.progressBar.SetValue(tr.task.Progress())

	if status.ProgressActive() {
		tr.progressClasses.Swap(style.ClassNormalButton, style.ClassProgressButton)
	} else {
		tr.progressClasses.Swap(style.ClassProgressButton, style.ClassNormalButton)
	}

	if status.CompleteActive() {
		tr.completeClasses.Swap(style.ClassNormalButton, style.ClassCompleteButton)
	} else {
		tr.completeClasses.Swap(style.ClassCompleteButton, style.ClassNormalButton)
	}

	tr.sheet.ApplyButton(tr.progressBtn, tr.progressClasses)
	tr.sheet.ApplyButton(tr.completeBtn, tr.completeClasses)
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	return &taskRowRenderer{taskRow: tr}
}

// taskRowRenderer renders the task row widget
type taskRowRenderer struct {
	taskRow *TaskRow
	layout  *fyne.Container
}

// Layout arranges the components
func (r *taskRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *taskRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	return r.layout.MinSize()
}

// Refresh refreshes the renderer
func (r *taskRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *taskRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *taskRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *taskRowRenderer) createLayout() {
	tr := r.taskRow

	// Fixed minimum width for the bar so short descriptions do not squeeze it
	barSpacer := canvas.NewRectangle(color.Transparent)
	barSpacer.SetMinSize(fyne.NewSize(ProgressBarWidth, tr.progressBar.MinSize().Height))
	bar := container.NewStack(barSpacer, tr.progressBar)

	actionRow := container.NewHBox(
		tr.progressBtn,
		tr.completeBtn,
		tr.deleteBtn,
	)

	// Description takes the remaining space; bar and buttons are pinned right
	rightCluster := container.NewBorder(nil, nil, nil, actionRow, bar)
	mainContent := container.NewBorder(nil, nil, tr.descriptionLabel, nil, rightCluster)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
}
