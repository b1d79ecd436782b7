package provinces

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colman"
	"colman/grid"
	"colman/store/file"
)

func TestRegister(t *testing.T) {
	grd := (&grid.Config{}).New(context.Background(), nil)
	store := file.New(t.TempDir(), nil)

	mgr := (&colman.Config{}).New(context.Background(), grd, store, nil, nil, GridId)
	Register(mgr)
	require.NoError(t, mgr.Initialize())

	assert.Equal(t, "v4_ProvincesGrid", mgr.Key())
	assert.Len(t, grd.Columns(), 11)
	assert.Equal(t, colman.Sentinel, grd.Columns()[0].Key())

	controls := mgr.Controls()
	require.Len(t, controls, 10)
	for i, ctl := range controls {
		assert.Equal(t, i < 4, ctl.Frozen, ctl.Id)
		assert.Equal(t, i < 4, strings.HasSuffix(ctl.Label, "(*)"), ctl.Label)
	}
	assert.Equal(t, "Province or Special Region / F(*)", controls[1].Label)
	assert.Equal(t, "Province or Special Region / F: ", grd.Columns()[2].Header().Text())

	saved, found, err := store.Load(mgr.Key())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, saved, 11)
}

func TestRows(t *testing.T) {
	rows := Rows()
	assert.Len(t, rows, 11)
	for _, row := range rows {
		assert.Len(t, row, len(Fields))
	}
}
