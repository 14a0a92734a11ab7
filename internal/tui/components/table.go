// Package components holds the reusable rendering pieces shared by the
// TUI pages: tables, the status bar, and markdown blocks.
package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// TableColumn describes one column of a rendered table
type TableColumn struct {
	Title string
	Width int
}

// TableProps configures RenderTable
type TableProps struct {
	Columns      []TableColumn
	Rows         [][]string
	Selected     int
	ScrollOffset int
	VisibleRows  int
	EmptyMessage string

	HeaderColor string
	BorderColor string
	NormalColor string
	SelectedFg  string
	SelectedBg  string
	SubtleColor string
}

// RenderTable renders a fixed-width column table with a selection marker
// and scroll indicators when rows overflow the visible window.
func RenderTable(props TableProps) string {
	var output strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(props.HeaderColor))
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(props.BorderColor))
	normalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(props.NormalColor))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(props.SelectedFg)).
		Background(lipgloss.Color(props.SelectedBg)).
		Bold(true)
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(props.SubtleColor))

	headerCells := make([]string, len(props.Columns))
	totalWidth := 0
	for i, col := range props.Columns {
		headerCells[i] = fitCell(col.Title, col.Width)
		totalWidth += col.Width + 2
	}
	output.WriteString(headerStyle.Render("  " + strings.Join(headerCells, "  ")))
	output.WriteString("\n")
	output.WriteString(borderStyle.Render("  " + strings.Repeat("─", totalWidth)))
	output.WriteString("\n")

	if len(props.Rows) == 0 {
		output.WriteString(subtleStyle.Italic(true).Render("  " + props.EmptyMessage))
		output.WriteString("\n")
		return output.String()
	}

	if props.ScrollOffset > 0 {
		output.WriteString(subtleStyle.Render("  ▲ more above"))
		output.WriteString("\n")
	}

	visible := max(props.VisibleRows, 1)
	end := min(props.ScrollOffset+visible, len(props.Rows))

	for i := props.ScrollOffset; i < end; i++ {
		cells := make([]string, len(props.Columns))
		for j := range props.Columns {
			value := ""
			if j < len(props.Rows[i]) {
				value = props.Rows[i][j]
			}
			cells[j] = fitCell(value, props.Columns[j].Width)
		}

		line := strings.Join(cells, "  ")
		if i == props.Selected {
			output.WriteString(selectedStyle.Render("> " + line))
		} else {
			output.WriteString(normalStyle.Render("  " + line))
		}
		output.WriteString("\n")
	}

	if end < len(props.Rows) {
		output.WriteString(subtleStyle.Render("  ▼ more below"))
		output.WriteString("\n")
	}

	return output.String()
}

// Truncate shortens s to at most max runes, ending with … when it was cut
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// fitCell truncates and right-pads a value to the column width
func fitCell(s string, width int) string {
	s = Truncate(s, width)
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
