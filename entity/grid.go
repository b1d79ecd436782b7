package entity

// Accessor extracts a cell value from a row.
type Accessor func(line Line) Value

// FieldAccessor returns an Accessor reading the field at idx.
func FieldAccessor(idx int) Accessor {
	return func(line Line) Value {
		return line.Get(idx)
	}
}

// Header is display content placed in a column header.
type Header interface {
	// Text returns the plain text of the header.
	Text() string
}

// Labeler is implemented by headers that name themselves differently in
// the visibility controls than in the grid, e.g. an input placed in a header.
type Labeler interface {
	Label() string
}

// TextHeader is a plain text header.
type TextHeader string

func (th TextHeader) Text() string {
	return string(th)
}

// LabeledHeader is a header whose control label differs from its text.
type LabeledHeader struct {
	Content string
	Name    string
}

func (lh LabeledHeader) Text() string {
	return lh.Content
}

func (lh LabeledHeader) Label() string {
	return lh.Name
}

// Handle is a column attached to, or materialized for, a grid.
type Handle interface {
	Key() string
	SetKey(key string) Handle
	Header() Header
	SetHeader(header Header) Handle
	Width() string
	SetWidth(width string) Handle
	Frozen() bool
	SetFrozen(frozen bool) Handle
	Sortable() bool
	SetSortable(sortable bool) Handle
	Resizable() bool
	SetResizable(resizable bool) Handle
}

// Grid specifies the grid widget whose columns are managed.
type Grid interface {
	// AddColumn attaches a new column reading cells with accessor.
	AddColumn(accessor Accessor) Handle
	// RemoveColumnByKey detaches the column with key, if attached.
	RemoveColumnByKey(key string)
	// SetColumnOrder reorders attached columns; it never raises a ReorderEvent.
	SetColumnOrder(handles []Handle)
	// Columns returns the attached columns in display order.
	Columns() []Handle
}

// HeaderText returns the text of header, tolerating nil.
func HeaderText(header Header) string {
	if header == nil {
		return ""
	}
	return header.Text()
}

// HeaderLabel returns the control label of header, falling back to its text.
func HeaderLabel(header Header) string {
	if lb, ok := header.(Labeler); ok && lb.Label() != "" {
		return lb.Label()
	}
	return HeaderText(header)
}
