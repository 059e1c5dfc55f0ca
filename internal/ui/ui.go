package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	ruleStyle    = lipgloss.NewStyle().Faint(true)
)

// Transcript prints run output, styling suite and section heading lines.
func Transcript(w io.Writer, lines []string) {
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "# "):
			fmt.Fprintln(w, titleStyle.Render(line))
		case strings.HasPrefix(line, "## "):
			fmt.Fprintln(w, sectionStyle.Render(line))
		default:
			fmt.Fprintln(w, line)
		}
	}
}

// Rule prints the dashed divider that precedes a summary block.
func Rule(w io.Writer) {
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("-", 40)))
}
