package x_log

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

//
// ---------- IBM Carbon Colors ----------

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue60    = "#4589ff"
	ColorBlue40    = "#78a9ff"
	ColorBlue70    = "#0043ce"
	ColorBlueBase  = "#0f62fe"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorOrange40  = "#ff832b"
	ColorGray60    = "#8d8d8d"
	ColorGray10    = "#f4f4f4"
	ColorGray90    = "#262626"
)

//
// ---------- Levels ----------

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

//
// ---------- Styles Definition ----------

// Styles defines all formatting styles used for structured output
type Styles struct {
	Out               io.Writer                        // output target
	Timestamp         lipgloss.Style                   // style for timestamps
	Message           lipgloss.Style                   // style for the message text
	Levels            map[zerolog.Level]lipgloss.Style // level badge styles
	Keys              map[string]lipgloss.Style        // custom field keys
	Values            map[string]lipgloss.Style        // custom field values
	DefaultKeyStyle   lipgloss.Style                   // fallback for unknown keys
	DefaultValueStyle lipgloss.Style                   // fallback for unknown values
}

// fieldKeys are the structured fields the tree and the driver emit.
var fieldKeys = []string{"module", "key", "edge", "suffix", "parent", "file", "cmd"}

//
// ---------- Theme Selectors ----------

// DefaultStylesByName returns a theme by name ("dark", "light")
func DefaultStylesByName(name string) *Styles {
	switch strings.ToLower(name) {
	case "light":
		return DefaultStylesLight()
	default:
		return DefaultStylesDark()
	}
}

//
// ---------- Console Formatter ----------

// ConsoleWriterWithStyles builds a zerolog.ConsoleWriter with styles
func ConsoleWriterWithStyles(styles *Styles) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        styles.Out,
		TimeFormat: zerolog.TimeFieldFormat,

		FormatLevel: func(i any) string {
			lvl, err := zerolog.ParseLevel(fmt.Sprint(i))
			style, ok := styles.Levels[lvl]
			if err != nil || !ok {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60))
			}
			name, ok := zerolog.FormattedLevels[lvl]
			if !ok {
				name = "???"
			}
			return style.Padding(0, 1).Render(name)
		},

		FormatTimestamp: func(i any) string {
			return styles.Timestamp.Render(fmt.Sprintf("[%s]", i))
		},

		FormatFieldName: func(i any) string {
			key := fmt.Sprint(i)
			style, ok := styles.Keys[key]
			if !ok {
				style = styles.DefaultKeyStyle
			}
			eqStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60))
			return style.Render(key) + eqStyle.Render("=")
		},

		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return styles.Message.Render(fmt.Sprint(i))
		},
	}
}

//
// ---------- Themes ----------

type palette struct {
	info, key, message string
}

func themed(p palette) *Styles {
	badge := func(bg string) lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(bg))
	}

	s := &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)).
			Width(16),
		Message:           lipgloss.NewStyle().Foreground(lipgloss.Color(p.message)),
		DefaultKeyStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.key)),
		DefaultValueStyle: lipgloss.NewStyle(),
		Levels: map[zerolog.Level]lipgloss.Style{
			DebugLevel: badge(ColorTeal40),
			InfoLevel:  badge(p.info),
			WarnLevel:  badge(ColorOrange40),
			ErrorLevel: badge(ColorRed60),
			FatalLevel: badge(ColorRedStrong),
		},
		Keys: map[string]lipgloss.Style{
			"err": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},
		Values: map[string]lipgloss.Style{
			"err": lipgloss.NewStyle().Bold(true),
			"key": lipgloss.NewStyle().Italic(true),
		},
	}
	for _, k := range fieldKeys {
		s.Keys[k] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.key))
	}
	return s
}

// DefaultStylesDark is the theme for dark terminals.
func DefaultStylesDark() *Styles {
	return themed(palette{info: ColorBlue60, key: ColorBlue40, message: ColorGray10})
}

// DefaultStylesLight is the theme for light terminals.
func DefaultStylesLight() *Styles {
	return themed(palette{info: ColorBlue70, key: ColorBlueBase, message: ColorGray90})
}
