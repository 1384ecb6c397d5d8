package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder = lipgloss.Color("#282726")
	ColorDim    = lipgloss.Color("#575653")
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorAccent = lipgloss.Color("#3AA99F")
	ColorGreen  = lipgloss.Color("#879A39")
	ColorOrange = lipgloss.Color("#DA702C")
	ColorRed    = lipgloss.Color("#D14D41")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	labelStyle  = lipgloss.NewStyle().Foreground(ColorDim)
	okStyle     = lipgloss.NewStyle().Foreground(ColorGreen)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorOrange)
	errStyle    = lipgloss.NewStyle().Foreground(ColorRed)
)

// Success renders a green status line.
func Success(format string, args ...any) string {
	return okStyle.Render(fmt.Sprintf(format, args...))
}

// Warning renders an orange warning line.
func Warning(format string, args ...any) string {
	return warnStyle.Render(fmt.Sprintf(format, args...))
}

// Error renders a red error line.
func Error(format string, args ...any) string {
	return errStyle.Render(fmt.Sprintf(format, args...))
}

// Label renders dim secondary text.
func Label(s string) string {
	return labelStyle.Render(s)
}

// RenderTitle renders a bold title inside a rounded border box.
func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 2)
	return box.Render(titleStyle.Render(title))
}

// Table is a simple header-and-rows text table.
type Table struct {
	Headers []string
	Rows    [][]string
}

// RenderTable renders the table with right-aligned columns after the first
// and a dim rule under the header. Money and count columns read best
// right-aligned; the leading label column stays left-aligned.
func RenderTable(t Table) string {
	if len(t.Headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	cell := func(i int, s string) string {
		if i == 0 {
			return fmt.Sprintf("%-*s", widths[i], s)
		}
		return fmt.Sprintf("%*s", widths[i], s)
	}

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range t.Headers {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(headerStyle.Render(cell(i, h)))
	}
	b.WriteByte('\n')

	total := 0
	for _, w := range widths {
		total += w + 2
	}
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(strings.Repeat("─", total-2)))
	b.WriteByte('\n')

	for _, row := range t.Rows {
		b.WriteString("  ")
		for i, c := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell(i, c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
