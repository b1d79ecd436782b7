package colman

import (
	nt "colman/entity"
)

// Blueprint materializes a fresh column on a grid.
// A blueprint is invoked once at registration and again each time its column
// is shown after having been detached.
type Blueprint interface {
	Materialize(grid nt.Grid) nt.Handle
}

// BlueprintFunc adapts a func to Blueprint.
type BlueprintFunc func(grid nt.Grid) nt.Handle

func (fn BlueprintFunc) Materialize(grid nt.Grid) nt.Handle {
	return fn(grid)
}

// Def is a Blueprint for a column reading its cells with Accessor.
type Def struct {
	Accessor  nt.Accessor
	Width     string
	Sortable  bool
	Resizable bool
	Frozen    bool
}

func (def Def) Materialize(grid nt.Grid) nt.Handle {

	hdl := grid.AddColumn(def.Accessor)
	hdl.SetWidth(def.Width)
	hdl.SetSortable(def.Sortable)
	hdl.SetResizable(def.Resizable)
	hdl.SetFrozen(def.Frozen)

	return hdl
}

func sentinelDef() Def {
	return Def{
		Accessor: func(nt.Line) nt.Value { return nt.Value{} },
		Width:    sentinelWidth,
		Frozen:   true,
	}
}
