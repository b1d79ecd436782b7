package main

import (
	"colman"
	"colman/grid"
)

const (
	storeFile   = "file"
	storeDuck   = "duck"
	storeSqlite = "sqlite"

	formatText = "text"
	formatJson = "json"
)

// Config is the command's yaml config.
type Config struct {
	Settings SettingsConfig `yaml:"settings"`
	Log      LogConfig      `yaml:"log"`
	Api      ApiConfig      `yaml:"api"`
	Grid     *grid.Config   `yaml:"grid"`
}

type SettingsConfig struct {
	Kind   string `yaml:"kind"`
	Root   string `yaml:"root"`
	Path   string `yaml:"path"`
	Prefix string `yaml:"prefix"`
}

type LogConfig struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"`
	Debug  bool   `yaml:"debug"`
}

type ApiConfig struct {
	Listen string `yaml:"listen"`
}

func defaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			Kind:   storeFile,
			Root:   "ui_params",
			Prefix: colman.DefaultPrefix,
		},
		Log: LogConfig{
			File:   "colman.log",
			Format: formatText,
		},
		Grid: &grid.Config{PxPerCell: grid.DefaultPxPerCell},
	}
}

// Manager returns the column manager's part of the config.
func (cfg *Config) Manager() *colman.Config {
	return &colman.Config{Prefix: cfg.Settings.Prefix}
}

var sampleConfig = []byte(`settings:
  kind: file        # file | duck | sqlite
  root: ui_params   # settings root for kind=file
  path: ""          # database path for duck/sqlite, in-memory when empty
  prefix: v4_
log:
  file: colman.log
  format: text      # text | json
  debug: false
api:
  listen: ""        # e.g. localhost:8087, empty disables the control api
grid:
  px_per_cell: 8
`)
