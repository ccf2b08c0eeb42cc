package theme

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

// NewTable creates a borderless table with styled headers, for listing
// output that should stay readable when piped.
func NewTable(headers ...string) *ltable.Table {
	t := DefaultTheme
	return ltable.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return t.Header.PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})
}
