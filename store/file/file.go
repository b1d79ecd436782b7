// Package file stores grid settings as one plain text file per grid.
package file

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	nt "colman/entity"
)

const (
	// DefaultRoot is the settings folder used when none is configured.
	DefaultRoot = "ui_params"

	dirMode  = 0755
	fileMode = 0644
)

// Store keeps each grid's settings in a file named by its key under Root.
type Store struct {
	Root   string
	logger nt.Logger
}

// New creates a Store, creating root if need be.
// Failing to create root is logged; each Save or Load then fails on its own.
func New(root string, lgr nt.Logger) *Store {

	if root == "" {
		root = DefaultRoot
	}
	if lgr == nil {
		lgr = nt.Discard{}
	}

	err := os.MkdirAll(root, dirMode)
	if err != nil {
		lgr.Error(context.Background(), "failed to create settings folder", err, "root", root)
	}

	return &Store{
		Root:   root,
		logger: lgr,
	}
}

// Path returns the file a key is stored in, directly under Root.
// Separators in key are escaped so distinct keys never share a file.
func (st *Store) Path(key string) string {

	name := strings.ReplaceAll(escaper.Replace(key), `\`, "%5C")
	switch {
	case name == "":
		name = "%"
	case strings.Trim(name, ".") == "":
		name = strings.Repeat("%2E", len(name))
	}
	return filepath.Join(st.Root, name)
}

// Load reads the columns saved under key.
func (st *Store) Load(key string) (columns []nt.Column, found bool, err error) {

	path := st.Path(key)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		err = nil
		return
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	columns, err = Decode(bytes.NewReader(data))
	if err != nil {
		return
	}
	found = true
	return
}

// Save replaces the file for key with columns.
// The content goes to a temporary file first and is renamed into place, so a
// failed write leaves the previous content.
func (st *Store) Save(key string, columns []nt.Column) (err error) {

	path := st.Path(key)
	tmp, err := os.CreateTemp(st.Root, ".tmp-"+filepath.Base(key)+"-*")
	if err != nil {
		err = errors.Wrapf(err, "failed to create temp file in %s", st.Root)
		return
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after rename

	_, err = tmp.Write(Encode(columns))
	if err != nil {
		tmp.Close()
		err = errors.Wrapf(err, "failed to write to %s", tmp.Name())
		return
	}

	err = tmp.Close()
	if err != nil {
		err = errors.Wrapf(err, "failed to close %s", tmp.Name())
		return
	}

	err = os.Chmod(tmp.Name(), fileMode)
	if err != nil {
		err = errors.Wrapf(err, "failed to chmod %s", tmp.Name())
		return
	}

	err = os.Rename(tmp.Name(), path)
	err = errors.Wrapf(err, "failed to rename into %s", path)
	return
}
