package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/sudipshil9862/team-do/internal/config"
	"github.com/sudipshil9862/team-do/internal/style"
)

// SettingsDialog edits the preferences read at startup
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	logger   zerolog.Logger
	dialog   *dialog.ConfirmDialog

	// UI components
	widthEntry      *widget.Entry
	heightEntry     *widget.Entry
	stylesheetEntry *widget.Entry
	logLevelSelect  *widget.Select
}

// NewSettingsDialog creates a new preferences dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, logger zerolog.Logger) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		logger:   logger,
	}

	sd.createUI()
	return sd
}

// Show displays the preferences dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the preferences dialog UI
func (sd *SettingsDialog) createUI() {
	sd.widthEntry = widget.NewEntry()
	sd.widthEntry.SetPlaceHolder(strconv.Itoa(config.DefaultWindowWidth))
	sd.heightEntry = widget.NewEntry()
	sd.heightEntry.SetPlaceHolder(strconv.Itoa(config.DefaultWindowHeight))

	sd.stylesheetEntry = widget.NewEntry()
	sd.stylesheetEntry.SetPlaceHolder("Built-in style sheet")

	sd.logLevelSelect = widget.NewSelect(config.LogLevelOptions, nil)

	form := container.NewVBox(
		widget.NewLabel("Window Size:"),
		container.NewGridWithColumns(2, sd.widthEntry, sd.heightEntry),

		widget.NewLabel("Style Sheet:"),
		sd.stylesheetEntry,

		widget.NewLabel("Log Level:"),
		sd.logLevelSelect,

		widget.NewSeparator(),
		widget.NewLabel("Changes apply on next start."),
	)

	sd.dialog = dialog.NewCustomConfirm(
		TextPreferences,
		TextSave,
		TextCancel,
		form,
		sd.onSave,
		sd.window,
	)
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	size := sd.settings.GetWindowSize()
	sd.widthEntry.SetText(strconv.Itoa(int(size.Width)))
	sd.heightEntry.SetText(strconv.Itoa(int(size.Height)))
	sd.stylesheetEntry.SetText(sd.settings.GetStylesheetPath())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel().String())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	width, werr := strconv.Atoi(strings.TrimSpace(sd.widthEntry.Text))
	height, herr := strconv.Atoi(strings.TrimSpace(sd.heightEntry.Text))
	if werr == nil && herr == nil {
		sd.settings.SetWindowSize(width, height)
	}

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}

	// A style sheet that fails to load would stop the next start, so check it now
	path := strings.TrimSpace(sd.stylesheetEntry.Text)
	if _, err := style.Load(path); err != nil {
		sd.logger.Warn().Err(err).Str("path", path).Msg("style sheet rejected")
		dialog.ShowError(err, sd.window)
		return
	}
	sd.settings.SetStylesheetPath(path)

	sd.logger.Info().Msg("preferences saved")
}
