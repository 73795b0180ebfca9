package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// quitShortcut is Ctrl+Q (Cmd+Q on macOS)
var quitShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierShortcutDefault}

// createMenu builds the hamburger menu and registers the quit shortcut
func (ui *RootUI) createMenu() *widget.Button {
	preferencesItem := fyne.NewMenuItem(TextPreferences, ui.onShowPreferences)
	aboutItem := fyne.NewMenuItem(TextAbout, ui.onShowAbout)
	quitItem := fyne.NewMenuItem(TextQuit, ui.onQuit)
	quitItem.IsQuit = true
	quitItem.Shortcut = quitShortcut

	ui.menu = fyne.NewMenu(AppName, preferencesItem, aboutItem, quitItem)

	ui.window.Canvas().AddShortcut(quitShortcut, func(fyne.Shortcut) {
		ui.onQuit()
	})

	var menuBtn *widget.Button
	menuBtn = widget.NewButtonWithIcon("", theme.MenuIcon(), func() {
		ui.showMenu(menuBtn)
	})
	menuBtn.Importance = widget.LowImportance
	return menuBtn
}

// showMenu pops the menu up just below the anchor button
func (ui *RootUI) showMenu(anchor fyne.CanvasObject) {
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(anchor)
	pos = pos.Add(fyne.NewPos(0, anchor.Size().Height))
	widget.ShowPopUpMenuAtPosition(ui.menu, ui.window.Canvas(), pos)
}

// onShowAbout opens the About dialog
func (ui *RootUI) onShowAbout() {
	ui.logger.Debug().Msg("about dialog opened")
	about := dialog.NewCustom(TextAbout+" "+AppName, TextClose, newAboutContent(), ui.window)
	about.Show()
}

// onShowPreferences opens the preferences dialog
func (ui *RootUI) onShowPreferences() {
	NewSettingsDialog(ui.settings, ui.window, ui.logger).Show()
}

// onQuit terminates the application
func (ui *RootUI) onQuit() {
	completed := 0
	tasks := ui.store.Tasks()
	for _, task := range tasks {
		if task.IsCompleted() {
			completed++
		}
	}
	ui.logger.Info().Int("tasks", len(tasks)).Int("completed", completed).Msg("quit requested")
	ui.app.Quit()
}
