package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mydehq/ryu/internal/view"
)

const defaultWidth = 80

// RenderDetail lays out the detail screen for a terminal width columns wide
func RenderDetail(d view.Detail, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	body := lipgloss.NewStyle().Width(width - 2).PaddingLeft(2)

	var b strings.Builder
	b.WriteString(StyleBanner.Render(d.Title) + "\n\n")

	if d.Description != "" {
		b.WriteString(body.Render(d.Description) + "\n\n")
	}

	b.WriteString(StyleHeader.Render(view.SectionInfo) + "\n")
	for _, line := range d.InfoLines() {
		b.WriteString("  " + renderInfoLine(line) + "\n")
	}

	b.WriteString("\n" + StyleHeader.Render(view.SectionCharacters) + "\n")
	if len(d.Characters) == 0 {
		b.WriteString(StyleDim.Render("  No characters listed") + "\n")
	}

	nameWidth := 0
	for _, c := range d.Characters {
		nameWidth = max(nameWidth, lipgloss.Width(c.Name))
	}
	for _, c := range d.Characters {
		name := lipgloss.NewStyle().Width(nameWidth).Render(c.Name)
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleCommand.Render(name), StyleDim.Render(roleLabel(c.Role))))
	}

	return b.String()
}

// renderInfoLine styles "Label: value" with the label dimmed
func renderInfoLine(line string) string {
	label, value, ok := strings.Cut(line, ": ")
	if !ok {
		return line
	}
	return StyleDim.Render(label+":") + " " + StylePattern.Render(value)
}

func roleLabel(role string) string {
	if role == "" {
		return ""
	}
	return strings.ToUpper(role[:1]) + strings.ToLower(role[1:])
}
