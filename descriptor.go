package colman

import (
	"sync"

	nt "colman/entity"
)

// Descriptor is the registered configuration of one column.
// Width, Frozen, Sortable and Resizable are read from the handle
// materialized at registration.
type Descriptor struct {
	Id             string
	Header         nt.Header
	Width          string
	Sortable       bool
	Resizable      bool
	Frozen         bool
	PopulateKey    bool
	PopulateHeader bool
	Blueprint      Blueprint
}

// materialize creates a new handle on grid, keyed and headed per populate flags.
func (dsc *Descriptor) materialize(grid nt.Grid) nt.Handle {

	hdl := dsc.Blueprint.Materialize(grid)
	dsc.populate(hdl)
	return hdl
}

func (dsc *Descriptor) populate(hdl nt.Handle) {
	if dsc.PopulateKey {
		hdl.SetKey(dsc.Id)
	}
	if dsc.PopulateHeader {
		hdl.SetHeader(dsc.Header)
	}
}

// entry returns registration defaults.
func (dsc *Descriptor) entry() Entry {
	return Entry{
		Id:      dsc.Id,
		Visible: true,
		Width:   dsc.Width,
		Frozen:  dsc.Frozen,
	}
}

// registry holds descriptors in registration order.
type registry struct {
	mu    sync.RWMutex
	order []string
	byId  map[string]*Descriptor
}

func newRegistry() *registry {
	return &registry{
		byId: map[string]*Descriptor{},
	}
}

// put adds dsc, replacing any descriptor with the same id in place.
func (reg *registry) put(dsc *Descriptor) (replaced bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	_, replaced = reg.byId[dsc.Id]
	if !replaced {
		reg.order = append(reg.order, dsc.Id)
	}
	reg.byId[dsc.Id] = dsc
	return
}

func (reg *registry) get(id string) (dsc *Descriptor, ok bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	dsc, ok = reg.byId[id]
	return
}

func (reg *registry) list() []*Descriptor {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	dscs := make([]*Descriptor, len(reg.order))
	for i, id := range reg.order {
		dscs[i] = reg.byId[id]
	}
	return dscs
}

// entries returns registration defaults in registration order.
func (reg *registry) entries() []Entry {

	dscs := reg.list()
	entries := make([]Entry, len(dscs))
	for i, dsc := range dscs {
		entries[i] = dsc.entry()
	}
	return entries
}
