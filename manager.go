package colman

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"

	nt "colman/entity"
)

// Config configures a Manager.
type Config struct {
	// Prefix tags the persisted record's key, DefaultPrefix when empty.
	Prefix string `yaml:"prefix"`
}

// Manager reconciles registered columns, the grid's attached columns and the
// persisted record for one grid.
//
// Mutating methods serialize on one lock, so a single logical writer is
// active at a time. Snapshot and Controls may be called from any goroutine.
type Manager struct {
	key      string
	grid     nt.Grid
	store    Store
	notifier Notifier
	logger   nt.Logger
	ctx      context.Context

	mu          sync.Mutex
	registered  *registry
	active      *activeSet
	handles     map[string]nt.Handle
	loaded      bool
	initialized bool

	cmu      sync.RWMutex
	controls []Control
}

// New creates a Manager for grid, keyed by ids joined with an underscore.
// The sentinel column is registered straight away.
func (cfg *Config) New(ctx context.Context, grid nt.Grid, store Store, ntf Notifier, lgr nt.Logger, ids ...any) *Manager {

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if ntf == nil {
		ntf = discardNotices
	}
	if lgr == nil {
		lgr = nt.Discard{}
	}

	mgr := &Manager{
		key:        prefix + joinIds(ids),
		grid:       grid,
		store:      store,
		notifier:   ntf,
		logger:     lgr,
		ctx:        ctx,
		registered: newRegistry(),
		active:     newActiveSet(),
		handles:    map[string]nt.Handle{},
	}

	mgr.Register(Sentinel, nt.TextHeader("≡"), true, true, sentinelDef())
	return mgr
}

// Key returns the key the grid's record is stored under.
func (mgr *Manager) Key() string {
	return mgr.key
}

// Loaded reports whether Initialize has run, after which saves are allowed.
func (mgr *Manager) Loaded() bool {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	return mgr.loaded
}

// Register adds a column, materializing it once to learn its default width
// and frozen state.
//
// Re-registering an id replaces the earlier descriptor in place; last write wins.
// Columns registered after Initialize are appended to the active layout, and
// columns registered again keep their entry, taking the new frozen flag.
func (mgr *Manager) Register(id string, header nt.Header, populateKey, populateHeader bool, bp Blueprint) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if _, ok := mgr.registered.get(id); ok {
		mgr.grid.RemoveColumnByKey(id)
	}

	hdl := bp.Materialize(mgr.grid)
	dsc := &Descriptor{
		Id:             id,
		Header:         header,
		Width:          hdl.Width(),
		Sortable:       hdl.Sortable(),
		Resizable:      hdl.Resizable(),
		Frozen:         hdl.Frozen(),
		PopulateKey:    populateKey,
		PopulateHeader: populateHeader,
		Blueprint:      bp,
	}
	dsc.populate(hdl)
	mgr.handles[id] = hdl

	if mgr.registered.put(dsc) {
		mgr.logger.Info(mgr.ctx, "column registered again, replacing descriptor", "grid_key", mgr.key, "column_id", id)
	}

	if !mgr.initialized {
		return
	}
	if !mgr.active.add(dsc.entry()) {
		mgr.active.setFrozen(id, dsc.Frozen)
	}
	mgr.rebuildControls()
	mgr.refresh()
}

// RegisterText adds a column with a plain text header, setting key and header itself.
func (mgr *Manager) RegisterText(id, header string, bp Blueprint) {
	mgr.Register(id, nt.TextHeader(header), true, true, bp)
}

// Initialize loads the persisted record, or seeds and saves defaults when
// there is none, and lays the grid out accordingly.
// Call once, after every column is registered.
func (mgr *Manager) Initialize() (err error) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if mgr.initialized {
		err = ErrInitialized
		return
	}
	mgr.initialized = true

	registered := mgr.registered.entries()
	entries := registered
	save := true

	persisted, found, err := mgr.store.Load(mgr.key)
	switch {
	case err != nil:
		err = errors.Wrapf(err, "failed to load grid settings for %s", mgr.key)
		mgr.logger.Error(mgr.ctx, "using default columns", err, "grid_key", mgr.key)
		mgr.notify(NoticeError, "Grid settings not loaded: "+err.Error())
		err = nil
		save = false

	case found:
		entries, save = Merge(persisted, registered)
		mgr.logger.Info(mgr.ctx, "loaded grid settings", "grid_key", mgr.key, "columns", len(persisted), "heal", save)

	default:
		mgr.logger.Info(mgr.ctx, "no grid settings found, seeding defaults", "grid_key", mgr.key)
	}

	mgr.active.replace(entries)
	mgr.loaded = true

	mgr.rebuildControls()
	mgr.refresh()

	if save {
		_ = mgr.persist()
	}
	return
}

// Refresh restores the layout invariants and lays the grid out to match.
// It is a no-op before Initialize.
func (mgr *Manager) Refresh() {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	mgr.refresh()
}

// Persist saves the current layout.
// Before Initialize nothing is written and ErrNotLoaded is returned.
func (mgr *Manager) Persist() (err error) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	err = mgr.persist()
	return
}

// Apply runs an event from the grid or the visibility controls.
func (mgr *Manager) Apply(ev nt.Event) (err error) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	entries, eff := Transition(mgr.active.list(), mgr.registered.entries(), ev)
	mgr.active.replace(entries)

	if eff.Has(EffectRefresh) {
		mgr.refresh()
	}
	if eff.Has(EffectControls) {
		mgr.rebuildControls()
	}
	if eff.Has(EffectPersist) {
		err = mgr.persist()
	}
	return
}

// Snapshot returns the active layout as persisted columns.
func (mgr *Manager) Snapshot() []nt.Column {
	return mgr.columns(mgr.active.list())
}

// Entries returns the active layout.
func (mgr *Manager) Entries() []Entry {
	return mgr.active.list()
}

// Has reports whether id is registered.
func (mgr *Manager) Has(id string) bool {
	_, ok := mgr.registered.get(id)
	return ok
}

// unexported

// refresh is Refresh with the lock held.
func (mgr *Manager) refresh() {

	entries, ok := Arrange(mgr.active.list())
	if !ok {
		return
	}
	mgr.active.replace(entries)

	attached := map[string]nt.Handle{}
	for _, hdl := range mgr.grid.Columns() {
		attached[hdl.Key()] = hdl
	}

	added, removed := 0, 0
	for _, ent := range entries {
		hdl, isAttached := attached[ent.Id]

		switch {
		case ent.Visible && !isAttached:
			dsc, ok := mgr.registered.get(ent.Id)
			if !ok {
				continue
			}
			hdl = dsc.materialize(mgr.grid)
			hdl.SetWidth(ent.Width)
			mgr.handles[ent.Id] = hdl
			added++

		case !ent.Visible && isAttached:
			mgr.grid.RemoveColumnByKey(ent.Id)
			delete(mgr.handles, ent.Id)
			removed++

		case isAttached:
			mgr.handles[ent.Id] = hdl
		}
	}

	var order []nt.Handle
	var widths []string
	for _, ent := range entries {
		hdl, ok := mgr.handles[ent.Id]
		if !ent.Visible || !ok {
			continue
		}
		order = append(order, hdl)
		widths = append(widths, ent.Width)
	}
	mgr.grid.SetColumnOrder(order)

	for i, hdl := range order {
		hdl.SetWidth(widths[i])
	}

	mgr.debug("refreshed grid", "grid_key", mgr.key, "attached", added, "detached", removed, "shown", len(order))
}

// persist is Persist with the lock held.
func (mgr *Manager) persist() (err error) {

	if !mgr.loaded {
		mgr.notify(NoticeWarn, "Grid settings didn't load. Check configuration: "+mgr.key)
		err = ErrNotLoaded
		return
	}

	entries, ok := Arrange(mgr.active.list())
	if ok {
		mgr.active.replace(entries)
	}

	err = mgr.store.Save(mgr.key, mgr.columns(entries))
	if err != nil {
		err = errors.Wrapf(err, "failed to save grid settings for %s", mgr.key)
		mgr.logger.Error(mgr.ctx, "grid settings not saved", err, "grid_key", mgr.key)
		mgr.notify(NoticeError, "Grid settings not saved: "+err.Error())
		return
	}

	mgr.notify(NoticeInfo, "Grid settings saved...")
	return
}

func (mgr *Manager) columns(entries []Entry) []nt.Column {

	columns := make([]nt.Column, len(entries))
	for i, ent := range entries {
		columns[i] = nt.Column{
			Id:      ent.Id,
			Visible: ent.Visible,
			Width:   ent.Width,
		}
		if dsc, ok := mgr.registered.get(ent.Id); ok {
			columns[i].Header = nt.HeaderText(dsc.Header)
		}
	}
	return columns
}

func (mgr *Manager) debug(msg string, kv ...any) {
	if dbg, ok := mgr.logger.(nt.Debugger); ok {
		dbg.Debug(mgr.ctx, msg, kv...)
	}
}

func (mgr *Manager) notify(lvl NoticeLevel, text string) {
	mgr.notifier.Notify(Notice{Level: lvl, Text: text})
}

func joinIds(ids []any) string {

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, "_")
}
