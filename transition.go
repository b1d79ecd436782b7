package colman

import (
	nt "colman/entity"
)

// Effect flags the work an event leaves for the manager after the state change.
type Effect uint8

const (
	EffectRefresh Effect = 1 << iota
	EffectControls
	EffectPersist
)

// Has reports whether flag is set.
func (eff Effect) Has(flag Effect) bool {
	return eff&flag != 0
}

// Transition returns entries updated for ev, along with the effects to run.
// Registered lists registration defaults in registration order and supplies
// the columns a reorder leaves unplaced. Entries is not modified.
func Transition(entries, registered []Entry, ev nt.Event) ([]Entry, Effect) {

	next := make([]Entry, len(entries))
	copy(next, entries)

	switch ev := ev.(type) {

	case nt.ReorderEvent:
		if !ev.FromClient {
			return next, 0
		}
		return reorder(next, registered, ev.Order), EffectPersist | EffectControls

	case nt.ResizeEvent:
		idx := indexOf(next, ev.Id)
		if idx < 0 {
			return next, 0
		}
		next[idx].Width = ev.Width
		return next, EffectPersist

	case nt.ToggleEvent:
		idx := indexOf(next, ev.Id)
		if idx < 0 || ev.Id == Sentinel {
			return next, 0
		}
		next[idx].Visible = ev.Visible
		return next, 0

	case nt.ShowAllEvent:
		for i := range next {
			next[i].Visible = true
		}
		return next, 0

	case nt.ShowOneEvent:
		first := true
		for i := range next {
			switch {
			case next[i].Id == Sentinel:
				next[i].Visible = true
			case first:
				next[i].Visible = true
				first = false
			default:
				next[i].Visible = false
			}
		}
		return next, 0

	case nt.MenuClosedEvent:
		return next, EffectRefresh | EffectControls | EffectPersist
	}

	return next, 0
}

// Arrange puts the sentinel first, then frozen entries ahead of the rest,
// keeping relative order within each group.
// When the sentinel is missing, ok is false and entries come back as given.
func Arrange(entries []Entry) (arranged []Entry, ok bool) {

	idx := indexOf(entries, Sentinel)
	if idx < 0 {
		return entries, false
	}

	arranged = make([]Entry, 0, len(entries))
	arranged = append(arranged, entries[idx])

	var thawed []Entry
	for i, ent := range entries {
		switch {
		case i == idx:
		case ent.Frozen:
			arranged = append(arranged, ent)
		default:
			thawed = append(thawed, ent)
		}
	}

	arranged = append(arranged, thawed...)
	return arranged, true
}

// Merge lays persisted columns over registration defaults.
// Registered ids found in persisted come first in record order carrying the
// record's visibility and width; unknown ids are dropped. The remaining
// registered entries follow in registration order and missing reports
// whether there were any.
func Merge(persisted []nt.Column, registered []Entry) (merged []Entry, missing bool) {

	defaults := map[string]Entry{}
	for _, ent := range registered {
		defaults[ent.Id] = ent
	}

	placed := map[string]bool{}
	merged = make([]Entry, 0, len(registered))
	for _, col := range persisted {
		ent, ok := defaults[col.Id]
		if !ok || placed[col.Id] {
			continue
		}
		ent.Visible = col.Visible
		ent.Width = col.Width
		merged = append(merged, ent)
		placed[col.Id] = true
	}

	for _, ent := range registered {
		if placed[ent.Id] {
			continue
		}
		merged = append(merged, ent)
		missing = true
	}
	return
}

// unexported

// reorder follows the widget's order, then appends unplaced registered columns.
func reorder(entries, registered []Entry, order []string) []Entry {

	current := map[string]Entry{}
	for _, ent := range entries {
		current[ent.Id] = ent
	}
	for _, ent := range registered {
		if _, ok := current[ent.Id]; !ok {
			current[ent.Id] = ent
		}
	}

	placed := map[string]bool{}
	next := make([]Entry, 0, len(registered))
	for _, id := range order {
		ent, ok := current[id]
		if !ok || placed[id] || !isRegistered(registered, id) {
			continue
		}
		next = append(next, ent)
		placed[id] = true
	}

	for _, reg := range registered {
		if placed[reg.Id] {
			continue
		}
		next = append(next, current[reg.Id])
		placed[reg.Id] = true
	}
	return next
}

func isRegistered(registered []Entry, id string) bool {
	return indexOf(registered, id) >= 0
}

func indexOf(entries []Entry, id string) int {
	for i, ent := range entries {
		if ent.Id == id {
			return i
		}
	}
	return -1
}
