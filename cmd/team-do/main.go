package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/sudipshil9862/team-do/internal/config"
	"github.com/sudipshil9862/team-do/internal/logging"
	"github.com/sudipshil9862/team-do/internal/store"
	"github.com/sudipshil9862/team-do/internal/style"
	"github.com/sudipshil9862/team-do/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(ui.AppID)

	settings := config.NewSettings(myApp)
	logger := logging.NewConsole(settings.GetLogLevel())
	appLog := logging.For(logger, logging.ComponentApp)
	appLog.Info().Str("version", ui.Version).Msg("Team-Do starting")

	// A configured style sheet that cannot be loaded is fatal
	stylesheetPath := settings.GetStylesheetPath()
	sheet, err := style.Load(stylesheetPath)
	if err != nil {
		appLog.Fatal().Err(err).Str("path", stylesheetPath).Msg("failed to load style sheet")
	}
	logging.For(logger, logging.ComponentStyle).Debug().
		Str("path", stylesheetPath).
		Bool("embedded", stylesheetPath == "").
		Msg("style sheet loaded")

	myApp.Settings().SetTheme(ui.NewTeamDoTheme(sheet))

	myWindow := myApp.NewWindow(ui.AppName)
	myWindow.Resize(settings.GetWindowSize())

	taskStore := store.NewService(logging.For(logger, logging.ComponentStore))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, taskStore, sheet, settings, logging.For(logger, logging.ComponentUI))

	// Show and run
	myWindow.ShowAndRun()
	appLog.Info().Msg("Team-Do stopped")
}
