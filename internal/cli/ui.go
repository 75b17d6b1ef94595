package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/ucsearch/ucs"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorOrange = lipgloss.Color("208") // Orange - discarded paths
	colorRed    = lipgloss.Color("167") // Soft red - selected path
	colorBlue   = lipgloss.Color("75")  // Light blue - frontier
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSelected  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleFrontier  = lipgloss.NewStyle().Foreground(colorBlue)
	styleDiscarded = lipgloss.NewStyle().Foreground(colorOrange)
	styleSuccess   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// styleTrace colours trace text line by line, using the same palette as the
// DOT export: selected red, frontier blue, discarded orange.
func styleTrace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case strings.HasPrefix(line, "Step "):
			lines[i] = styleTitle.Render(line)
		case strings.HasPrefix(trimmed, "→["):
			lines[i] = styleSelected.Render(line)
		case strings.HasPrefix(trimmed, "~"):
			lines[i] = styleDiscarded.Render(line)
		case strings.HasPrefix(line, "    "):
			lines[i] = styleFrontier.Render(line)
		case line == "DONE.":
			lines[i] = styleSuccess.Render(iconSuccess + " " + line)
		case strings.Trim(line, "-") == "":
			lines[i] = styleDim.Render(line)
		case strings.HasPrefix(line, "Expanded: "):
			lines[i] = styleDim.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// summary is the closing line printed after a trace.
func summary(res *ucs.Result) string {
	if res.Found() {
		cost := ucs.FormatCost(res.Cost)
		if res.Unit != "" {
			cost += " " + res.Unit
		}
		return styleSuccess.Render(iconSuccess) + " " + strings.Join(res.Path, " → ") +
			styleDim.Render(" ("+cost+", "+pluralSteps(res.Len())+")")
	}
	return styleDiscarded.Render(iconError) + " " + res.Goal + " is not reachable from " + res.Start +
		styleDim.Render(" ("+pluralSteps(res.Len())+")")
}

func pluralSteps(n int) string {
	if n == 1 {
		return "1 step"
	}
	return fmt.Sprintf("%d steps", n)
}
