// Package util loads config and opens the log for commands.
package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OpenLog opens path for appending, creating its folder if need be.
// The TUI owns the terminal, so logs always go to a file.
func OpenLog(path string, mode os.FileMode) (file io.Writer, err error) {

	if path == "" {
		file = io.Discard
		return
	}

	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		err = errors.Wrapf(err, "failed to create folder for %s", path)
		return
	}

	file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	err = errors.Wrapf(err, "failed to open log %s", path)
	return
}

// CloseLog closes file if it is an *os.File.
func CloseLog(file io.Writer) {

	actually, ok := file.(*os.File)
	if ok {
		actually.Close()
	}
}

// LoadConfig unmarshals the yaml at path over cfg, so fields absent from
// the file keep the values cfg came with.
func LoadConfig(cfg any, path string) (err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	err = yaml.Unmarshal(data, cfg)
	err = errors.Wrapf(err, "failed to unmarshal %s", path)
	return
}

// SampleConfig writes data to path unless something is already there.
func SampleConfig(data []byte, path string, mode os.FileMode) (written bool, err error) {

	_, err = os.Stat(path)
	if err == nil {
		return // already have a cfg
	}

	err = os.WriteFile(path, data, mode)
	if err != nil {
		err = errors.Wrapf(err, "failed to write to %s", path)
		return
	}
	written = true
	return
}
