package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/sudipshil9862/team-do/internal/config"
	"github.com/sudipshil9862/team-do/internal/model"
	"github.com/sudipshil9862/team-do/internal/store"
	"github.com/sudipshil9862/team-do/internal/style"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	store    store.TaskStore
	sheet    *style.Sheet
	settings *config.Settings
	logger   zerolog.Logger

	entry      *widget.Entry
	addBtn     *widget.Button
	addClasses *style.Classes
	taskList   *fyne.Container
	rows       []*TaskRow
	hurrah     *Hurrah
	menu       *fyne.Menu
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, taskStore store.TaskStore, sheet *style.Sheet, settings *config.Settings, logger zerolog.Logger) *RootUI {
	ui := &RootUI{
		window:     window,
		app:        app,
		store:      taskStore,
		sheet:      sheet,
		settings:   settings,
		logger:     logger,
		addClasses: style.NewClasses(style.ClassSuggestedAction),
		hurrah:     NewHurrah(sheet, nil, logger),
	}

	window.SetTitle(AppName)

	// Rows follow the store: every add or remove is rendered from its change
	ui.store.SetChangeCallback(ui.onStoreChange)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	menuBtn := ui.createMenu()

	title := canvas.NewText(AppName, theme.Color(theme.ColorNameForeground))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = TitleTextSize
	title.Alignment = fyne.TextAlignCenter
	header := container.NewBorder(nil, nil, nil, menuBtn, title)

	ui.entry = widget.NewEntry()
	ui.entry.SetPlaceHolder(TextEnterTask)
	// Enter in the field behaves like the Add Task button
	ui.entry.OnSubmitted = func(string) {
		ui.onAddTask()
	}

	ui.addBtn = widget.NewButton(TextAddTask, ui.onAddTask)
	ui.sheet.ApplyButton(ui.addBtn, ui.addClasses)

	ui.taskList = container.NewVBox()

	top := container.NewVBox(
		header,
		widget.NewSeparator(),
		ui.hurrah.Object(),
		ui.entry,
		ui.addBtn,
	)

	content := container.NewBorder(
		top,                               // top
		nil,                               // bottom
		nil,                               // left
		nil,                               // right
		container.NewVScroll(ui.taskList), // center
	)

	ui.window.SetContent(content)
	ui.window.Canvas().Focus(ui.entry)

	ui.logger.Debug().Msg("UI setup completed")
}

// onAddTask handles the Add Task button and entry activation
func (ui *RootUI) onAddTask() {
	_, err := ui.store.AddTask(ui.entry.Text)
	if errors.Is(err, store.ErrEmptyDescription) {
		return
	}
	if err != nil {
		ui.logger.Error().Err(err).Msg("failed to add task")
		return
	}

	ui.entry.SetText("")
	ui.window.Canvas().Focus(ui.entry)
}

// onStoreChange renders store mutations
func (ui *RootUI) onStoreChange(change store.Change) {
	switch change.Kind {
	case store.ChangeAdded:
		ui.appendRow(change.Task)
	case store.ChangeRemoved:
		ui.removeRow(change.Task)
		if change.Remaining == 0 {
			ui.window.Resize(ui.settings.GetWindowSize())
		}
	}
}

// appendRow adds a row for a newly created task
func (ui *RootUI) appendRow(task *model.Task) {
	row := NewTaskRow(task, ui.sheet, ui.logger)
	row.SetCallbacks(ui.onTaskCompleted, ui.onDeleteRow)

	ui.rows = append(ui.rows, row)
	ui.taskList.Add(row)
}

// removeRow drops the row bound to task
func (ui *RootUI) removeRow(task *model.Task) {
	for i, row := range ui.rows {
		if row.Task() == task {
			ui.rows = append(ui.rows[:i], ui.rows[i+1:]...)
			ui.taskList.Remove(row)
			return
		}
	}
	ui.logger.Warn().Str("task_id", task.ID).Msg("no row for removed task")
}

// onTaskCompleted shows the hurrah indicator
func (ui *RootUI) onTaskCompleted(task *model.Task) {
	ui.logger.Info().Str("task_id", task.ID).Msg("task completed")
	ui.hurrah.Show()
}

// onDeleteRow removes the row's task from the store; the store change removes the row.
// A row whose task is not in the store means the UI and store diverged.
func (ui *RootUI) onDeleteRow(row *TaskRow) {
	if err := ui.store.RemoveTask(row.Task()); err != nil {
		ui.logger.Error().Err(err).Str("task_id", row.Task().ID).Msg("row and store out of sync")
		panic(fmt.Sprintf("delete row: %v", err))
	}
}
