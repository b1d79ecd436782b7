package colman

import (
	"sync"
)

// Entry is the current state of one column.
type Entry struct {
	Id      string
	Visible bool
	Width   string
	Frozen  bool
}

// activeSet is the ordered id -> Entry mapping of the desired column layout.
// Reads copy under the read lock so iteration never races a write.
type activeSet struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[string]int
}

func newActiveSet() *activeSet {
	return &activeSet{
		index: map[string]int{},
	}
}

// list returns a copy of the entries in order.
func (as *activeSet) list() []Entry {
	as.mu.RLock()
	defer as.mu.RUnlock()

	entries := make([]Entry, len(as.entries))
	copy(entries, as.entries)
	return entries
}

func (as *activeSet) get(id string) (ent Entry, ok bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	idx, ok := as.index[id]
	if !ok {
		return
	}
	ent = as.entries[idx]
	return
}

// replace swaps in entries wholesale, keeping the first of any duplicate ids.
func (as *activeSet) replace(entries []Entry) {

	next := make([]Entry, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, ent := range entries {
		if _, dup := index[ent.Id]; dup {
			continue
		}
		index[ent.Id] = len(next)
		next = append(next, ent)
	}

	as.mu.Lock()
	defer as.mu.Unlock()

	as.entries = next
	as.index = index
}

// add appends ent unless its id is present.
func (as *activeSet) add(ent Entry) (added bool) {
	as.mu.Lock()
	defer as.mu.Unlock()

	if _, ok := as.index[ent.Id]; ok {
		return
	}
	as.index[ent.Id] = len(as.entries)
	as.entries = append(as.entries, ent)
	return true
}

// setFrozen updates the frozen flag of id's entry, if present.
func (as *activeSet) setFrozen(id string, frozen bool) {
	as.mu.Lock()
	defer as.mu.Unlock()

	idx, ok := as.index[id]
	if !ok {
		return
	}
	as.entries[idx].Frozen = frozen
}
