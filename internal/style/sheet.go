package style

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2/widget"
	"gopkg.in/yaml.v3"
)

// DefaultPulsePeriod is used when hurrah-animation does not set pulse_period
const DefaultPulsePeriod = 500 * time.Millisecond

//go:embed styles.yaml
var defaultSheet []byte

var (
	// ErrMissingClass is returned when a required style hook is not defined
	ErrMissingClass = errors.New("style sheet is missing class")

	// ErrInvalidValue is returned for unparseable colors, importances or durations
	ErrInvalidValue = errors.New("invalid style value")
)

var importances = map[string]widget.Importance{
	"medium":  widget.MediumImportance,
	"high":    widget.HighImportance,
	"low":     widget.LowImportance,
	"danger":  widget.DangerImportance,
	"warning": widget.WarningImportance,
	"success": widget.SuccessImportance,
}

// Palette holds the theme colors defined by the sheet
type Palette struct {
	Primary color.Color
	Success color.Color
	Warning color.Color
	Error   color.Color
}

// Pulse describes the hurrah color animation
type Pulse struct {
	From   color.Color
	To     color.Color
	Period time.Duration
}

// Sheet is a parsed and validated style sheet
type Sheet struct {
	Palette     Palette
	Pulse       Pulse
	importances map[string]widget.Importance
}

type rawClass struct {
	Importance  string `yaml:"importance"`
	PulseFrom   string `yaml:"pulse_from"`
	PulseTo     string `yaml:"pulse_to"`
	PulsePeriod string `yaml:"pulse_period"`
}

type rawSheet struct {
	Palette struct {
		Primary string `yaml:"primary"`
		Success string `yaml:"success"`
		Warning string `yaml:"warning"`
		Error   string `yaml:"error"`
	} `yaml:"palette"`
	Classes map[string]rawClass `yaml:"classes"`
}

// Default returns the embedded style sheet
func Default() (*Sheet, error) {
	return Parse(defaultSheet)
}

// Load reads the style sheet at path, or the embedded sheet when path is empty
func Load(path string) (*Sheet, error) {
	if path == "" {
		return Default()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style sheet: %w", err)
	}

	sheet, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("style sheet %s: %w", path, err)
	}
	return sheet, nil
}

// Parse decodes and validates a YAML style sheet
func Parse(content []byte) (*Sheet, error) {
	var raw rawSheet
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parse style sheet: %w", err)
	}

	sheet := &Sheet{importances: make(map[string]widget.Importance)}

	for _, name := range RequiredClasses {
		if _, ok := raw.Classes[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingClass, name)
		}
	}

	for name, class := range raw.Classes {
		key := strings.ToLower(strings.TrimSpace(class.Importance))
		if key == "" {
			key = "medium"
		}
		importance, ok := importances[key]
		if !ok {
			return nil, fmt.Errorf("%w: class %s importance %q", ErrInvalidValue, name, class.Importance)
		}
		sheet.importances[name] = importance
	}

	var err error
	palette := []struct {
		dst *color.Color
		src string
	}{
		{&sheet.Palette.Primary, raw.Palette.Primary},
		{&sheet.Palette.Success, raw.Palette.Success},
		{&sheet.Palette.Warning, raw.Palette.Warning},
		{&sheet.Palette.Error, raw.Palette.Error},
	}
	for _, p := range palette {
		if p.src == "" {
			continue
		}
		if *p.dst, err = ParseColor(p.src); err != nil {
			return nil, err
		}
	}

	hurrah := raw.Classes[ClassHurrahAnimation]
	if sheet.Pulse.From, err = parseColorOr(hurrah.PulseFrom, sheet.Palette.Success); err != nil {
		return nil, err
	}
	if sheet.Pulse.To, err = parseColorOr(hurrah.PulseTo, sheet.Palette.Warning); err != nil {
		return nil, err
	}
	if sheet.Pulse.From == nil || sheet.Pulse.To == nil {
		return nil, fmt.Errorf("%w: hurrah-animation pulse colors", ErrInvalidValue)
	}

	sheet.Pulse.Period = DefaultPulsePeriod
	if hurrah.PulsePeriod != "" {
		period, err := time.ParseDuration(hurrah.PulsePeriod)
		if err != nil || period <= 0 {
			return nil, fmt.Errorf("%w: pulse_period %q", ErrInvalidValue, hurrah.PulsePeriod)
		}
		sheet.Pulse.Period = period
	}

	return sheet, nil
}

// Importance returns the importance defined for a single class
func (s *Sheet) Importance(class string) (widget.Importance, bool) {
	importance, ok := s.importances[class]
	return importance, ok
}

// Resolve returns the importance for a class set; the last defined class wins
func (s *Sheet) Resolve(classes *Classes) widget.Importance {
	result := widget.MediumImportance
	if classes == nil {
		return result
	}
	for _, name := range classes.Names() {
		if importance, ok := s.importances[name]; ok {
			result = importance
		}
	}
	return result
}

// ApplyButton sets the button importance from its classes and refreshes it
func (s *Sheet) ApplyButton(button *widget.Button, classes *Classes) {
	button.Importance = s.Resolve(classes)
	button.Refresh()
}

// ParseColor parses #RGB, #RRGGBB or #RRGGBBAA
func ParseColor(value string) (color.Color, error) {
	value = strings.TrimPrefix(strings.TrimSpace(value), "#")

	var r, g, b uint8
	a := uint8(0xff)
	var err error
	switch len(value) {
	case 3:
		_, err = fmt.Sscanf(value, "%1x%1x%1x", &r, &g, &b)
		r, g, b = r*0x11, g*0x11, b*0x11
	case 6:
		_, err = fmt.Sscanf(value, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(value, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return nil, fmt.Errorf("%w: color %q", ErrInvalidValue, value)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: color %q", ErrInvalidValue, value)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

func parseColorOr(value string, fallback color.Color) (color.Color, error) {
	if value == "" {
		return fallback, nil
	}
	return ParseColor(value)
}
