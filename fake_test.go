package colman

import (
	"context"

	"github.com/pkg/errors"

	nt "colman/entity"
)

// fakeHandle is a column of fakeGrid.
type fakeHandle struct {
	key       string
	header    nt.Header
	width     string
	frozen    bool
	sortable  bool
	resizable bool
}

func (fh *fakeHandle) Key() string                           { return fh.key }
func (fh *fakeHandle) SetKey(key string) nt.Handle           { fh.key = key; return fh }
func (fh *fakeHandle) Header() nt.Header                     { return fh.header }
func (fh *fakeHandle) SetHeader(header nt.Header) nt.Handle  { fh.header = header; return fh }
func (fh *fakeHandle) Width() string                         { return fh.width }
func (fh *fakeHandle) SetWidth(width string) nt.Handle       { fh.width = width; return fh }
func (fh *fakeHandle) Frozen() bool                          { return fh.frozen }
func (fh *fakeHandle) SetFrozen(frozen bool) nt.Handle       { fh.frozen = frozen; return fh }
func (fh *fakeHandle) Sortable() bool                        { return fh.sortable }
func (fh *fakeHandle) SetSortable(sortable bool) nt.Handle   { fh.sortable = sortable; return fh }
func (fh *fakeHandle) Resizable() bool                       { return fh.resizable }
func (fh *fakeHandle) SetResizable(resizable bool) nt.Handle { fh.resizable = resizable; return fh }

// fakeGrid records the commands it receives.
type fakeGrid struct {
	columns []*fakeHandle
	adds    int
	removes int
	orders  int
}

func (fg *fakeGrid) AddColumn(accessor nt.Accessor) nt.Handle {
	fg.adds++
	hdl := &fakeHandle{}
	fg.columns = append(fg.columns, hdl)
	return hdl
}

func (fg *fakeGrid) RemoveColumnByKey(key string) {
	for i, hdl := range fg.columns {
		if hdl.key == key {
			fg.removes++
			fg.columns = append(fg.columns[:i], fg.columns[i+1:]...)
			return
		}
	}
}

func (fg *fakeGrid) SetColumnOrder(handles []nt.Handle) {
	fg.orders++

	listed := map[*fakeHandle]bool{}
	ordered := []*fakeHandle{}
	for _, hdl := range handles {
		fh := hdl.(*fakeHandle)
		listed[fh] = true
		ordered = append(ordered, fh)
	}
	for _, fh := range fg.columns {
		if !listed[fh] {
			ordered = append(ordered, fh)
		}
	}
	fg.columns = ordered
}

func (fg *fakeGrid) Columns() []nt.Handle {
	handles := make([]nt.Handle, len(fg.columns))
	for i, fh := range fg.columns {
		handles[i] = fh
	}
	return handles
}

func (fg *fakeGrid) keys() []string {
	keys := make([]string, len(fg.columns))
	for i, fh := range fg.columns {
		keys[i] = fh.key
	}
	return keys
}

func (fg *fakeGrid) widths() []string {
	widths := make([]string, len(fg.columns))
	for i, fh := range fg.columns {
		widths[i] = fh.width
	}
	return widths
}

// fakeStore keeps records in memory.
type fakeStore struct {
	records map[string][]nt.Column
	saves   int
	loadErr error
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string][]nt.Column{}}
}

func (fs *fakeStore) Load(key string) (columns []nt.Column, found bool, err error) {
	if fs.loadErr != nil {
		err = fs.loadErr
		return
	}
	columns, found = fs.records[key]
	return
}

func (fs *fakeStore) Save(key string, columns []nt.Column) (err error) {
	if fs.saveErr != nil {
		err = fs.saveErr
		return
	}
	fs.saves++
	fs.records[key] = append([]nt.Column{}, columns...)
	return
}

var errDisk = errors.New("disk on fire")

// noticeLog collects notices.
type noticeLog struct {
	notices []Notice
}

func (nl *noticeLog) Notify(notice Notice) {
	nl.notices = append(nl.notices, notice)
}

func (nl *noticeLog) last() Notice {
	if len(nl.notices) == 0 {
		return Notice{}
	}
	return nl.notices[len(nl.notices)-1]
}

// debugLog keeps debug lines, as a logger with a debug level would.
type debugLog struct {
	nt.Discard
	lines [][]any
}

func (dl *debugLog) Debug(ctx context.Context, msg string, kv ...any) {
	dl.lines = append(dl.lines, append([]any{msg}, kv...))
}

func def(width string, frozen bool) Def {
	return Def{
		Accessor:  nt.FieldAccessor(0),
		Width:     width,
		Sortable:  true,
		Resizable: true,
		Frozen:    frozen,
	}
}

func entryIds(entries []Entry) []string {
	ids := make([]string, len(entries))
	for i, ent := range entries {
		ids[i] = ent.Id
	}
	return ids
}

func columnIds(columns []nt.Column) []string {
	ids := make([]string, len(columns))
	for i, col := range columns {
		ids[i] = col.Id
	}
	return ids
}
