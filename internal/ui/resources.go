package ui

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// About dialog metadata
const (
	AboutComments  = "Team-Do is a collaborative to-do list application."
	AboutDeveloper = "Sudip Shil"
	AboutCopyright = "© 2024 Team-Do"
	AboutLicense   = "MIT/X11 License"
	AboutWebsite   = "https://github.com/sudipshil9862/Team-Do"
	AboutIssues    = "https://github.com/sudipshil9862/Team-Do/issues"
)

// newAboutContent builds the static content of the About dialog
func newAboutContent() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(AppName, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	version := widget.NewLabelWithStyle(Version, fyne.TextAlignCenter, fyne.TextStyle{})
	comments := widget.NewLabelWithStyle(AboutComments, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	comments.Wrapping = fyne.TextWrapWord

	items := []fyne.CanvasObject{
		title,
		version,
		comments,
		widget.NewSeparator(),
		widget.NewLabel("Developed by " + AboutDeveloper),
		widget.NewLabel(AboutCopyright),
		widget.NewLabel(AboutLicense),
	}

	for _, link := range []struct{ text, raw string }{
		{"Website", AboutWebsite},
		{"Report an issue", AboutIssues},
	} {
		if u, err := url.Parse(link.raw); err == nil {
			items = append(items, widget.NewHyperlink(link.text, u))
		}
	}

	return container.NewVBox(items...)
}
