package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colman/logger"
	"colman/store/duck"
	"colman/store/file"
	"colman/store/lite"
	"colman/util"
)

func TestSampleConfigLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colman.yaml")
	require.NoError(t, os.WriteFile(path, sampleConfig, 0644))

	loaded := defaultConfig()
	err := util.LoadConfig(loaded, path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), loaded)
	assert.Equal(t, "v4_", loaded.Manager().Prefix)
}

func TestOpenStores(t *testing.T) {
	root := t.TempDir()

	rows, store, closeAll, err := openStores(SettingsConfig{Kind: storeFile, Root: root}, nil)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.IsType(t, &file.Store{}, store)
	closeAll()

	rows, store, closeAll, err = openStores(SettingsConfig{Kind: storeDuck}, nil)
	require.NoError(t, err)
	assert.IsType(t, &duck.Duck{}, store)
	assert.Same(t, rows, store)
	closeAll()

	_, store, closeAll, err = openStores(SettingsConfig{Kind: storeSqlite}, nil)
	require.NoError(t, err)
	assert.IsType(t, &lite.Lite{}, store)
	closeAll()

	_, _, _, err = openStores(SettingsConfig{Kind: "etcd"}, nil)
	assert.ErrorContains(t, err, "etcd")
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}

	lgr, flush := newLogger(buf, LogConfig{Format: formatJson})
	assert.IsType(t, &logger.Zapper{}, lgr)

	ctx := lgr.WithFields(context.Background(), "run_id", "abc")
	lgr.Info(ctx, "starting")
	flush()
	assert.Contains(t, buf.String(), `"run_id":"abc"`)

	buf.Reset()
	lgr, flush = newLogger(buf, LogConfig{Format: formatText})
	lgr.Info(context.Background(), "starting")
	flush()
	assert.Contains(t, buf.String(), "starting")
}
