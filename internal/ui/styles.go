package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mydehq/ryu/internal/prefs"
)

var (
	// Adaptive Color definitions
	colorHeader = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#00af00", ANSI256: "34", ANSI: "2"},
		Light: lipgloss.CompleteColor{TrueColor: "#008700", ANSI256: "28", ANSI: "2"},
	}
	colorCommand = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5fffff", ANSI256: "86", ANSI: "6"},
		Light: lipgloss.CompleteColor{TrueColor: "#008787", ANSI256: "30", ANSI: "6"},
	}
	colorPath = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5f5fff", ANSI256: "63", ANSI: "4"},
		Light: lipgloss.CompleteColor{TrueColor: "#0000af", ANSI256: "19", ANSI: "4"},
	}
	colorPattern = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#d7ff87", ANSI256: "192", ANSI: "11"},
		Light: lipgloss.CompleteColor{TrueColor: "#5f8700", ANSI256: "64", ANSI: "10"},
	}
	colorDim = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#bdbdbd", ANSI256: "250", ANSI: "8"},
		Light: lipgloss.CompleteColor{TrueColor: "#626262", ANSI256: "241", ANSI: "0"},
	}
	colorFlag = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#ff5faf", ANSI256: "204", ANSI: "13"},
		Light: lipgloss.CompleteColor{TrueColor: "#af005f", ANSI256: "125", ANSI: "5"},
	}

	// Exported Styles for CLI and TUI
	StyleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	StyleCommand = lipgloss.NewStyle().Bold(true).Foreground(colorCommand)
	StylePath    = lipgloss.NewStyle().Foreground(colorPath)
	StylePattern = lipgloss.NewStyle().Foreground(colorPattern)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleFlag    = lipgloss.NewStyle().Italic(true).Foreground(colorFlag)

	// StyleBanner frames the title on the detail screen
	StyleBanner = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCommand).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorHeader).
			Padding(0, 2)
)

// ApplyTheme points the adaptive colors at the user's theme.
// The system theme keeps lipgloss' own terminal detection.
func ApplyTheme(t prefs.Theme) {
	switch t {
	case prefs.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	case prefs.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}

// FormTheme returns the Catppuccin theme for huh forms.
func FormTheme() *huh.Theme {
	return huh.ThemeCatppuccin()
}

func FormKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()

	// Map both to Quit; we will distinguish them via a bubbletea filter
	km.Quit.SetKeys("esc", "ctrl+c")
	km.Quit.SetHelp("ctrl+c", "quit")

	km.Select.Submit.SetHelp("enter", "choose • esc: cancel")
	km.Confirm.Submit.SetHelp("enter", "confirm • esc: cancel")

	return km
}

// ErrUserBack is returned when the user leaves a prompt with esc.
var ErrUserBack = errors.New("user navigated back")

// interceptedKey tracks the last key that triggered an abort (esc vs ctrl+c).
var interceptedKey string

// promptFilter is a Bubble Tea filter that intercepts esc and ctrl+c to distinguish them.
func promptFilter(m tea.Model, msg tea.Msg) tea.Msg {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEsc:
			interceptedKey = "esc"
		case tea.KeyCtrlC:
			interceptedKey = "ctrl+c"
		}
	}
	return msg
}

// RunForm runs a huh form with the shared theme and key interception.
// Leaving with esc yields ErrUserBack, ctrl+c yields huh.ErrUserAborted.
func RunForm(f *huh.Form) error {
	interceptedKey = ""
	err := f.WithTheme(FormTheme()).
		WithKeyMap(FormKeyMap()).
		WithProgramOptions(tea.WithFilter(promptFilter)).
		Run()
	if errors.Is(err, huh.ErrUserAborted) && interceptedKey == "esc" {
		return ErrUserBack
	}
	return err
}

// ColorizeEvent adds CLI styling to "Label: value" event messages.
func ColorizeEvent(msg string) string {
	if idx := strings.Index(msg, ": "); idx >= 0 {
		label := msg[:idx+1]
		value := msg[idx+2:]
		return StyleHeader.Render(label) + " " + StylePath.Render(value)
	}
	return msg
}
