package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "colman/entity"
)

var _ nt.Logger = &Zapper{}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var decoded []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var obj map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &obj))
		decoded = append(decoded, obj)
	}
	return decoded
}

func TestInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	zpr := New(buf, false)

	ctx := zpr.WithFields(context.Background(), "grid_key", "v4_ProvincesGrid")
	zpr.Info(ctx, "loaded grid settings", "columns", 4)
	zpr.Debug(ctx, "not shown")

	logged := lines(t, buf)
	require.Len(t, logged, 1)
	assert.Equal(t, "loaded grid settings", logged[0][MessageKey])
	assert.Equal(t, "v4_ProvincesGrid", logged[0]["grid_key"])
	assert.EqualValues(t, 4, logged[0]["columns"])
	assert.Contains(t, logged[0], TimeStampKey)
}

func TestError(t *testing.T) {
	buf := &bytes.Buffer{}
	zpr := New(buf, true)

	zpr.Error(context.Background(), "grid settings not saved", errors.New("disk full"), "column_id", "AREA")
	zpr.Debug(context.Background(), "shown")

	logged := lines(t, buf)
	require.Len(t, logged, 2)
	assert.Equal(t, "error", logged[0]["level"])
	assert.Equal(t, "disk full", logged[0]["error"])
	assert.Equal(t, "AREA", logged[0]["column_id"])
	assert.Equal(t, "debug", logged[1]["level"])
}

func TestWithFieldsAccumulates(t *testing.T) {
	buf := &bytes.Buffer{}
	zpr := New(buf, false)

	ctx := zpr.WithFields(context.Background(), "a", 1)
	ctx = zpr.WithFields(ctx, "b", 2)
	zpr.Info(ctx, "both")
	zpr.Info(context.Background(), "neither")

	logged := lines(t, buf)
	require.Len(t, logged, 2)
	assert.EqualValues(t, 1, logged[0]["a"])
	assert.EqualValues(t, 2, logged[0]["b"])
	assert.NotContains(t, logged[1], "a")
}
