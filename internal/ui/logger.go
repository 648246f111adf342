package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger wraps the charmbracelet logger to add a success level
type Logger struct {
	*log.Logger
}

// NewLogger creates a styled logger writing to w
func NewLogger(w io.Writer) *Logger {
	l := &Logger{Logger: log.New(w)}
	l.SetStyles(levelStyles())
	return l
}

// Success prints a success message with a green prefix
func (l *Logger) Success(msg interface{}, keyvals ...interface{}) {
	l.Helper()
	label := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		SetString("SUCCESS").
		String()

	// Use Print instead of Info to avoid the default "INFO" prefix
	l.Print(fmt.Sprintf("%s %v", label, msg), keyvals...)
}

func levelStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Foreground(lipgloss.Color("63"))

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO ").
		Bold(true).
		Foreground(lipgloss.Color("86"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN ").
		Bold(true).
		Foreground(lipgloss.Color("192"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))

	return styles
}
