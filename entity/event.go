package entity

// Event is a column state change raised by the grid widget or the
// visibility controls.
type Event interface {
	isEvent()
}

func (ReorderEvent) isEvent()    {}
func (ResizeEvent) isEvent()     {}
func (ToggleEvent) isEvent()     {}
func (ShowAllEvent) isEvent()    {}
func (ShowOneEvent) isEvent()    {}
func (MenuClosedEvent) isEvent() {}

// ReorderEvent carries the attached column keys in their new order.
// Only events with FromClient set change state.
type ReorderEvent struct {
	FromClient bool
	Order      []string
}

// ResizeEvent carries the new width of one column.
type ResizeEvent struct {
	Id    string
	Width string
}

// ToggleEvent shows or hides one column.
type ToggleEvent struct {
	Id      string
	Visible bool
}

// ShowAllEvent shows every column.
type ShowAllEvent struct{}

// ShowOneEvent shows only the first data column.
type ShowOneEvent struct{}

// MenuClosedEvent applies pending visibility changes.
type MenuClosedEvent struct{}
