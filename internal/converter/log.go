package converter

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
)

// levelWidth stops the level labels getting cut off.
const levelWidth = 5

// logStyles returns the log styles for the application logger.
func logStyles() *log.Styles {
	level := func(l log.Level, color string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(strings.ToUpper(l.String())).
			Bold(true).
			MaxWidth(levelWidth).
			Foreground(lipgloss.Color(color))
	}

	return &log.Styles{
		Timestamp: lipgloss.NewStyle(),
		Caller:    lipgloss.NewStyle().Faint(true),
		Prefix:    lipgloss.NewStyle().Bold(true).Faint(true),
		Message:   lipgloss.NewStyle(),
		Key:       lipgloss.NewStyle().Faint(true),
		Value:     lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle().Faint(true),
		Levels: map[log.Level]lipgloss.Style{
			log.DebugLevel: level(log.DebugLevel, "63"),
			log.InfoLevel:  level(log.InfoLevel, "86"),
			log.WarnLevel:  level(log.WarnLevel, "192"),
			log.ErrorLevel: level(log.ErrorLevel, "204"),
			log.FatalLevel: level(log.FatalLevel, "134"),
		},
		Keys:   map[string]lipgloss.Style{},
		Values: map[string]lipgloss.Style{},
	}
}
