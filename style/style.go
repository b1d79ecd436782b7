package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HlRowStyle       = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle warm grey row
	HlColStyle       = lipgloss.NewStyle().Background(lipgloss.Color("234")) // Twice as subtle
	HlCellStyle      = lipgloss.NewStyle().Background(lipgloss.Color("237")) // Slightly warmer cell
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	UnStyle          = lipgloss.NewStyle()

	HeaderStyle       = lipgloss.NewStyle().Bold(true)
	FrozenHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("109")) // Frosty blue-grey
	HlHeaderStyle     = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("237"))

	MenuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	MenuTitleStyle = lipgloss.NewStyle().Bold(true)
	HlItemStyle    = lipgloss.NewStyle().Background(lipgloss.Color("237"))

	FooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	InfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("108")) // Sage
	WarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("179")) // Amber
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("167")) // Brick
)

// GridStyler returns a StyleFunc highlighting the selected row and column,
// with the first frozen columns' headers set apart.
func GridStyler(selectedRow, selectedCol, frozen int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {

		if row == table.HeaderRow {
			switch {
			case col == selectedCol:
				return HlHeaderStyle
			case col < frozen:
				return FrozenHeaderStyle
			}
			return HeaderStyle
		}

		rowMatch := row == selectedRow
		colMatch := col == selectedCol

		switch {
		case rowMatch && colMatch:
			return HlCellStyle
		case rowMatch:
			return HlRowStyle
		case colMatch:
			return HlColStyle
		}
		return UnStyle
	}
}

// StyleTable applies consistent table styling for borders and separators
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─",
		Middle:      "─",
		MiddleLeft:  "─",
		MiddleRight: "─",
	}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(TableBorderStyle)
}
