package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/igemnace/advent-of-code-2022/internal/puzzle"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	passStyle   = cellStyle.Foreground(lipgloss.Color("10"))
	failStyle   = cellStyle.Foreground(lipgloss.Color("9"))
)

// checkTable accumulates one row per checked part and renders the
// whole run at once, styled only when stdout is a terminal.
type checkTable struct {
	headers []string
	rows    [][]string
	passed  []bool
}

func newCheckTable() *checkTable {
	return &checkTable{
		headers: []string{"Day", "Part", "Want", "Got", "Status"},
	}
}

func (t *checkTable) add(day puzzle.Day, part int, want, got string, pass bool) {
	status := "FAIL"
	if pass {
		status = "PASS"
	}
	t.rows = append(t.rows, []string{
		fmt.Sprintf("%d %s", day.N, day.Title),
		fmt.Sprintf("%d", part),
		want,
		got,
		status,
	})
	t.passed = append(t.passed, pass)
}

func (t *checkTable) render(styled bool) string {
	if !styled {
		return t.plain()
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	// Account for the cell padding.
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	for i, h := range t.headers {
		sb.WriteString(headerStyle.Width(widths[i]).Render(h))
	}
	sb.WriteString("\n")
	for r, row := range t.rows {
		style := passStyle
		if !t.passed[r] {
			style = failStyle
		}
		for i, cell := range row {
			sb.WriteString(style.Width(widths[i]).Render(cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *checkTable) plain() string {
	var sb strings.Builder
	for _, row := range t.rows {
		fmt.Fprintf(&sb, "day %s part %s: %s (want %s, got %s)\n",
			strings.SplitN(row[0], " ", 2)[0], row[1], row[4], row[2], row[3])
	}
	return sb.String()
}
