// Package grid is a terminal data grid whose columns are attached, ordered
// and resized through entity.Grid.
package grid

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mattn/go-runewidth"

	nt "colman/entity"
	"colman/message"
	"colman/style"
)

const (
	DefaultPxPerCell = 8

	headerHeight = 2 // Header row + separator line
	ellipsis     = "…"
)

// Config configures a Grid.
type Config struct {
	PxPerCell int `yaml:"px_per_cell"`
}

// Grid renders a page of lines through its attached columns.
//
// Grid is shared by pointer with the column manager; both are driven from the
// bubbletea loop, so it takes no locks.
type Grid struct {
	columns []*Column
	col     int // Selected column index
	scroll  int // First thawed column shown

	selected int // Absolute position of the selected line
	offset   int // Offset of the page shown
	total    int // Total lines

	width  int
	height int

	pxPerCell int
	lines     []nt.Line
	table     *table.Table

	ctx    context.Context
	logger nt.Logger
}

// New creates an empty Grid.
func (cfg *Config) New(ctx context.Context, lgr nt.Logger) *Grid {

	pxPerCell := cfg.PxPerCell
	if pxPerCell < 1 {
		pxPerCell = DefaultPxPerCell
	}
	if lgr == nil {
		lgr = nt.Discard{}
	}

	tbl := table.New()
	style.StyleTable(tbl)

	return &Grid{
		pxPerCell: pxPerCell,
		table:     tbl,
		ctx:       ctx,
		logger:    lgr,
	}
}

// AddColumn attaches a new column at the end.
func (grd *Grid) AddColumn(accessor nt.Accessor) nt.Handle {

	col := &Column{
		accessor:  accessor,
		pxPerCell: grd.pxPerCell,
	}
	grd.columns = append(grd.columns, col)
	return col
}

// RemoveColumnByKey detaches the column with key.
func (grd *Grid) RemoveColumnByKey(key string) {

	for i, col := range grd.columns {
		if col.key == key {
			grd.columns = append(grd.columns[:i], grd.columns[i+1:]...)
			grd.clampCol()
			return
		}
	}
}

// SetColumnOrder puts the given attached columns first, in order, followed
// by any attached columns not given.
func (grd *Grid) SetColumnOrder(handles []nt.Handle) {

	attached := map[*Column]bool{}
	for _, col := range grd.columns {
		attached[col] = true
	}

	placed := map[*Column]bool{}
	ordered := make([]*Column, 0, len(grd.columns))
	for _, hdl := range handles {
		col, ok := hdl.(*Column)
		if !ok || !attached[col] || placed[col] {
			continue
		}
		ordered = append(ordered, col)
		placed[col] = true
	}
	for _, col := range grd.columns {
		if !placed[col] {
			ordered = append(ordered, col)
		}
	}

	grd.columns = ordered
	grd.clampCol()
}

// Columns returns the attached columns in display order.
func (grd *Grid) Columns() []nt.Handle {

	handles := make([]nt.Handle, len(grd.columns))
	for i, col := range grd.columns {
		handles[i] = col
	}
	return handles
}

func (grd *Grid) Init() tea.Cmd {
	return nil
}

func (grd *Grid) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		grd.width = msg.Width
		grd.height = msg.Height
		return grd, message.GetPageCmd(grd.offset, grd.PageSize())

	case PageMsg:
		grd.lines = msg.Lines
		grd.total = msg.Count
		if grd.selected >= grd.total {
			grd.selected = max(grd.total-1, 0)
		}
		return grd, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "h":
			grd.selectCol(grd.col - 1)
			return grd, nil

		case "right", "l":
			grd.selectCol(grd.col + 1)
			return grd, nil

		case "<", "shift+left":
			return grd, grd.move(-1)

		case ">", "shift+right":
			return grd, grd.move(1)

		case "+", "=":
			return grd, grd.resize(1)

		case "-":
			return grd, grd.resize(-1)

		case "m":
			return grd, openMenu

		case "enter":
			if grd.col == 0 {
				return grd, openMenu
			}
			return grd, nil
		}

		return grd, grd.navigate(msg.String())
	}

	return grd, nil
}

func (grd *Grid) View() tea.View {
	return tea.NewView(grd.Render())
}

// Render draws the columns that fit the grid's width.
func (grd *Grid) Render() string {

	shown := grd.window()

	headers := make([]string, len(shown))
	selectedCol := -1
	frozen := 0
	for i, idx := range shown {
		col := grd.columns[idx]
		headers[i] = fit(nt.HeaderText(col.header), col.Cells())
		if idx == grd.col {
			selectedCol = i
		}
		if col.frozen && frozen == i {
			frozen++
		}
	}

	grd.table.Headers(headers...)
	grd.table.StyleFunc(style.GridStyler(grd.selected-grd.offset, selectedCol, frozen))

	grd.table.ClearRows()
	for _, line := range grd.lines {
		row := make([]string, len(shown))
		for i, idx := range shown {
			col := grd.columns[idx]
			row[i] = fit(col.cell(line), col.Cells())
		}
		grd.table.Row(row...)
	}

	return grd.table.Render()
}

// PageSize returns the number of rows that fit on the grid
func (grd *Grid) PageSize() int {
	return max(grd.height-headerHeight, 0)
}

// Selected returns the 1-indexed selected row and the total.
func (grd *Grid) Selected() (row, total int) {
	return grd.selected + 1, grd.total
}

// SelectedKey returns the key of the selected column.
func (grd *Grid) SelectedKey() string {
	if grd.col >= len(grd.columns) {
		return ""
	}
	return grd.columns[grd.col].key
}

// unexported

func openMenu() tea.Msg {
	return OpenMenuMsg{}
}

// move swaps the selected column with its neighbour.
// Frozen columns stay put and nothing crosses into them.
func (grd *Grid) move(dir int) tea.Cmd {

	from := grd.col
	to := from + dir
	if from >= len(grd.columns) || to < 0 || to >= len(grd.columns) {
		return nil
	}
	if grd.columns[from].frozen || grd.columns[to].frozen {
		return nil
	}

	grd.columns[from], grd.columns[to] = grd.columns[to], grd.columns[from]
	grd.selectCol(to)

	order := make([]string, len(grd.columns))
	for i, col := range grd.columns {
		order[i] = col.key
	}

	return func() tea.Msg {
		return nt.ReorderEvent{FromClient: true, Order: order}
	}
}

func (grd *Grid) resize(delta int) tea.Cmd {

	if grd.col >= len(grd.columns) {
		return nil
	}
	col := grd.columns[grd.col]

	width, ok := col.resize(delta)
	if !ok {
		return nil
	}

	key := col.key
	return func() tea.Msg {
		return nt.ResizeEvent{Id: key, Width: width}
	}
}

func (grd *Grid) navigate(key string) tea.Cmd {

	pageSize := grd.PageSize()

	switch key {
	case "up", "k":
		if grd.selected > 0 {
			grd.selected--
		}

	case "down", "j":
		if grd.selected < grd.total-1 {
			grd.selected++
		}

	case "pgup", "ctrl+u":
		grd.selected = max(grd.selected-pageSize, 0)

	case "pgdown", "ctrl+d":
		grd.selected = max(min(grd.selected+pageSize, grd.total-1), 0)

	case "g":
		grd.selected = 0

	case "G":
		grd.selected = max(grd.total-1, 0)

	default:
		return nil
	}

	// keep the selected line on the page
	oldOffset := grd.offset
	if grd.selected < grd.offset {
		grd.offset = grd.selected
	} else if grd.selected >= grd.offset+pageSize {
		grd.offset = grd.selected - pageSize + 1
	}

	if grd.offset != oldOffset {
		return message.GetPageCmd(grd.offset, pageSize)
	}
	return nil
}

func (grd *Grid) selectCol(idx int) {

	grd.col = idx
	grd.clampCol()

	frozen := grd.frozenCount()
	if grd.col < frozen {
		return
	}
	if grd.col < grd.scroll {
		grd.scroll = grd.col
	}
	for grd.scroll < grd.col && !grd.shows(grd.col) {
		grd.scroll++
	}
}

func (grd *Grid) clampCol() {
	if grd.col >= len(grd.columns) {
		grd.col = len(grd.columns) - 1
	}
	if grd.col < 0 {
		grd.col = 0
	}
}

func (grd *Grid) frozenCount() int {
	for i, col := range grd.columns {
		if !col.frozen {
			return i
		}
	}
	return len(grd.columns)
}

// window returns the indexes of the columns that fit: the leading frozen
// columns, then thawed columns from scroll on.
// Before the width is known every column is shown.
func (grd *Grid) window() []int {

	frozen := grd.frozenCount()
	shown := make([]int, 0, len(grd.columns))
	used := 0

	for i := 0; i < frozen; i++ {
		shown = append(shown, i)
		used += grd.columns[i].Cells() + 1
	}

	for i := max(grd.scroll, frozen); i < len(grd.columns); i++ {
		need := grd.columns[i].Cells() + 1
		if grd.width > 0 && used+need > grd.width && len(shown) > 0 {
			break
		}
		shown = append(shown, i)
		used += need
	}
	return shown
}

func (grd *Grid) shows(idx int) bool {
	for _, i := range grd.window() {
		if i == idx {
			return true
		}
	}
	return false
}

// help

// fit truncates or pads text to exactly width cells.
func fit(text string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(text, width, ellipsis), width)
}
