package grid

import nt "colman/entity"

// GridMsg is a marker interface for messages destined for Grid
type GridMsg interface {
	isGridMsg()
}

func (SizeMsg) isGridMsg() {}
func (PageMsg) isGridMsg() {}

// SizeMsg tells the grid its display size
type SizeMsg struct {
	Width  int
	Height int
}

// PageMsg delivers a page of rows
type PageMsg struct {
	Lines []nt.Line
	Count int
}

// OpenMenuMsg asks for the visibility menu
type OpenMenuMsg struct{}
