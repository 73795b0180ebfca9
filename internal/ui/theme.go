package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/sudipshil9862/team-do/internal/style"
)

// TeamDoTheme takes its palette from the style sheet and tightens a few sizes
type TeamDoTheme struct {
	palette style.Palette
}

// NewTeamDoTheme creates the application theme from a loaded style sheet
func NewTeamDoTheme(sheet *style.Sheet) fyne.Theme {
	t := &TeamDoTheme{}
	if sheet != nil {
		t.palette = sheet.Palette
	}
	return t
}

// Color returns theme colors
func (t *TeamDoTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	var c color.Color
	switch name {
	case theme.ColorNamePrimary:
		c = t.palette.Primary
	case theme.ColorNameSuccess:
		c = t.palette.Success
	case theme.ColorNameWarning:
		c = t.palette.Warning
	case theme.ColorNameError:
		c = t.palette.Error
	}
	if c != nil {
		return c
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *TeamDoTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *TeamDoTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *TeamDoTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
