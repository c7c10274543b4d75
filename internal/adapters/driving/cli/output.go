package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true)
	deltaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

const defaultWidth = 80

// terminalWidth returns the stdout width, or a sane default when not a
// terminal (pipes, tests).
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// renderText wraps the transformed text to the terminal width.
func renderText(text string) string {
	return lipgloss.NewStyle().Width(terminalWidth()).Render(text)
}

// renderMetrics formats the before/after comparison.
func renderMetrics(m domain.MetricsReport) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Metrics"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Sentences:  %d -> %d\n", m.OriginalSentenceCount, m.TransformedSentenceCount)
	fmt.Fprintf(&b, "  Avg length: %.1f -> %.1f words\n", m.OriginalAvgLength, m.TransformedAvgLength)
	fmt.Fprintf(&b, "  Length std: %.2f -> %.2f\n", m.OriginalLengthStd, m.TransformedLengthStd)
	fmt.Fprintf(&b, "  Diversity:  %s\n", deltaStyle.Render(fmt.Sprintf("%+.4f", m.VocabularyDiversityChange)))
	return b.String()
}
