package grid

import (
	"fmt"
	"strconv"
	"strings"

	nt "colman/entity"
)

const (
	minCells     = 3
	defaultCells = 10
	pxSuffix     = "px"
)

// Column is a column attached to a Grid.
type Column struct {
	key       string
	header    nt.Header
	width     string
	frozen    bool
	sortable  bool
	resizable bool
	accessor  nt.Accessor
	pxPerCell int
}

func (col *Column) Key() string {
	return col.key
}

func (col *Column) SetKey(key string) nt.Handle {
	col.key = key
	return col
}

func (col *Column) Header() nt.Header {
	return col.header
}

func (col *Column) SetHeader(header nt.Header) nt.Handle {
	col.header = header
	return col
}

func (col *Column) Width() string {
	return col.width
}

func (col *Column) SetWidth(width string) nt.Handle {
	col.width = width
	return col
}

func (col *Column) Frozen() bool {
	return col.frozen
}

func (col *Column) SetFrozen(frozen bool) nt.Handle {
	col.frozen = frozen
	return col
}

func (col *Column) Sortable() bool {
	return col.sortable
}

func (col *Column) SetSortable(sortable bool) nt.Handle {
	col.sortable = sortable
	return col
}

func (col *Column) Resizable() bool {
	return col.resizable
}

func (col *Column) SetResizable(resizable bool) nt.Handle {
	col.resizable = resizable
	return col
}

// Cells returns the rendered width in terminal cells.
func (col *Column) Cells() int {
	return Cells(col.width, col.pxPerCell)
}

// unexported

func (col *Column) cell(line nt.Line) string {
	if col.accessor == nil {
		return ""
	}
	return col.accessor(line).String()
}

func (col *Column) resize(delta int) (width string, ok bool) {

	cells := col.Cells() + delta
	if !col.resizable || cells < minCells {
		return
	}

	col.width = Pixels(cells, col.pxPerCell)
	return col.width, true
}

// help

// Cells converts a css width to terminal cells.
// Only pixel widths are understood; anything else gets the default.
func Cells(width string, pxPerCell int) int {

	if pxPerCell < 1 {
		pxPerCell = DefaultPxPerCell
	}

	num, ok := strings.CutSuffix(strings.TrimSpace(width), pxSuffix)
	if !ok {
		return defaultCells
	}
	px, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return defaultCells
	}

	cells := (px + pxPerCell/2) / pxPerCell
	if cells < minCells {
		cells = minCells
	}
	return cells
}

// Pixels converts terminal cells to a css width.
func Pixels(cells, pxPerCell int) string {

	if pxPerCell < 1 {
		pxPerCell = DefaultPxPerCell
	}
	return fmt.Sprintf("%d%s", cells*pxPerCell, pxSuffix)
}
