// Package colman manages the columns of a grid widget: which are shown, in
// what order and at what width, persisting those preferences per grid.
//
// Callers register every column once, then Initialize. From there on widget
// and visibility-control events go through Apply, which keeps three things
// consistent: the registered columns, the columns attached to the widget and
// the persisted record.
package colman

import (
	"github.com/pkg/errors"

	nt "colman/entity"
)

const (
	// Sentinel is the id of the always-first, always-frozen column whose
	// header hosts the visibility controls.
	Sentinel = "#COLUMNS_MANAGER#"

	// DefaultPrefix tags persisted records with their format version.
	DefaultPrefix = "v4_"

	sentinelWidth = "20px"
)

var (
	// ErrNotLoaded is returned by saves attempted before Initialize.
	ErrNotLoaded = errors.New("grid settings not loaded")
	// ErrInitialized is returned by a second Initialize.
	ErrInitialized = errors.New("grid settings already initialized")
	// ErrUnknownColumn is returned for ids that were never registered.
	ErrUnknownColumn = errors.New("unknown column")
)

// Store specifies the persistence collaborator.
type Store interface {
	// Load returns the columns saved under key, found is false when nothing was saved
	Load(key string) (columns []nt.Column, found bool, err error)
	// Save replaces whatever was saved under key
	Save(key string, columns []nt.Column) (err error)
}
