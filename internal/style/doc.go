package style

// Package style loads the application style sheet: a YAML document mapping the
// named style hooks (suggested-action, progress-button, ...) to Fyne widget
// importances, plus the palette used by the theme and the hurrah animation.
