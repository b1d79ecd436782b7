package colman

import (
	nt "colman/entity"
)

const frozenMark = "(*)"

// Control is the visibility toggle of one column.
type Control struct {
	Id      string
	Label   string
	Checked bool
	Frozen  bool
}

// Controls returns the visibility toggles in layout order, sentinel excluded.
// They are rebuilt on Initialize, on reorders and when the menu closes.
func (mgr *Manager) Controls() []Control {
	mgr.cmu.RLock()
	defer mgr.cmu.RUnlock()

	controls := make([]Control, len(mgr.controls))
	copy(controls, mgr.controls)
	return controls
}

// rebuildControls derives the toggles from the active layout.
func (mgr *Manager) rebuildControls() {

	var controls []Control
	for _, ent := range mgr.active.list() {
		if ent.Id == Sentinel {
			continue
		}
		dsc, ok := mgr.registered.get(ent.Id)
		if !ok {
			continue
		}

		label := nt.HeaderLabel(dsc.Header)
		if dsc.Frozen {
			label += frozenMark
		}

		controls = append(controls, Control{
			Id:      ent.Id,
			Label:   label,
			Checked: ent.Visible,
			Frozen:  dsc.Frozen,
		})
	}

	mgr.cmu.Lock()
	defer mgr.cmu.Unlock()

	mgr.controls = controls
}
