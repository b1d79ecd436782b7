package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colman"
	nt "colman/entity"
	"colman/grid"
	"colman/message"
	"colman/store/file"
)

type fakeRows struct {
	lines []nt.Line
	err   error
}

func (fr *fakeRows) GetPage(offset, size int) (lines []nt.Line, err error) {
	if fr.err != nil {
		err = fr.err
		return
	}
	end := min(offset+size, len(fr.lines))
	if offset < end {
		lines = fr.lines[offset:end]
	}
	return
}

func (fr *fakeRows) Count() (count int, err error) {
	return len(fr.lines), fr.err
}

func char(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

type fixture struct {
	model  tea.Model
	mgr    *colman.Manager
	grid   *grid.Grid
	footer *Footer
	store  *file.Store
}

// send runs msg through the model and feeds back any resulting message.
func (fx *fixture) send(t *testing.T, msg tea.Msg) {
	t.Helper()

	var cmd tea.Cmd
	fx.model, cmd = fx.model.Update(msg)
	for cmd != nil {
		next := cmd()
		if next == nil {
			return
		}
		if _, ok := next.(tea.QuitMsg); ok {
			return
		}
		fx.model, cmd = fx.model.Update(next)
	}
}

func newFixture(t *testing.T, rows RowSource) *fixture {
	t.Helper()

	ctx := context.Background()
	grd := (&grid.Config{}).New(ctx, nil)
	store := file.New(t.TempDir(), nil)
	ftr := &Footer{}

	mgr := (&colman.Config{}).New(ctx, grd, store, ftr, nil, "test")
	for i, id := range []string{"A", "B", "C"} {
		mgr.RegisterText(id, id+" header", colman.Def{
			Accessor:  nt.FieldAccessor(i),
			Width:     "60px",
			Resizable: true,
		})
	}
	require.NoError(t, mgr.Initialize())

	return &fixture{
		model:  New(ctx, mgr, grd, ftr, rows, nil),
		mgr:    mgr,
		grid:   grd,
		footer: ftr,
		store:  store,
	}
}

func keys(grd *grid.Grid) []string {
	var keys []string
	for _, hdl := range grd.Columns() {
		keys = append(keys, hdl.Key())
	}
	return keys
}

func TestPages(t *testing.T) {
	rows := &fakeRows{lines: []nt.Line{
		{Id: "1", Values: []nt.Value{{Raw: "one"}}},
		{Id: "2", Values: []nt.Value{{Raw: "two"}}},
	}}
	fx := newFixture(t, rows)

	fx.send(t, tea.WindowSizeMsg{Width: 100, Height: 20})

	row, total := fx.grid.Selected()
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, total)
	assert.Contains(t, fx.grid.Render(), "two")
}

func TestPageError(t *testing.T) {
	fx := newFixture(t, &fakeRows{err: errors.New("duck down")})

	fx.send(t, message.GetPageMsg{Offset: 0, Size: 5})

	notice, ok := fx.footer.Notice()
	require.True(t, ok)
	assert.Equal(t, colman.NoticeError, notice.Level)
	assert.Equal(t, "duck down", notice.Text)
}

func TestHideThroughMenu(t *testing.T) {
	fx := newFixture(t, &fakeRows{})

	fx.send(t, char("m"))
	require.True(t, fx.model.(Model).MenuOpen())

	// second control is B
	fx.send(t, tea.KeyPressMsg{Code: tea.KeyDown})
	fx.send(t, char("t"))
	assert.Equal(t, []string{colman.Sentinel, "A", "B", "C"}, keys(fx.grid), "applied on close")

	fx.send(t, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.False(t, fx.model.(Model).MenuOpen())
	assert.Equal(t, []string{colman.Sentinel, "A", "C"}, keys(fx.grid))

	notice, ok := fx.footer.Notice()
	require.True(t, ok)
	assert.Equal(t, "Grid settings saved...", notice.Text)

	saved, _, err := fx.store.Load(fx.mgr.Key())
	require.NoError(t, err)
	assert.False(t, saved[2].Visible)
}

func TestMoveAndResize(t *testing.T) {
	fx := newFixture(t, &fakeRows{})

	fx.send(t, tea.KeyPressMsg{Code: tea.KeyRight})
	fx.send(t, char(">"))
	fx.send(t, char("+"))

	assert.Equal(t, []string{colman.Sentinel, "B", "A", "C"}, keys(fx.grid))

	saved, _, err := fx.store.Load(fx.mgr.Key())
	require.NoError(t, err)
	assert.Equal(t, []string{colman.Sentinel, "B", "A", "C"}, []string{saved[0].Id, saved[1].Id, saved[2].Id, saved[3].Id})
	assert.Equal(t, "72px", saved[2].Width)
}

func TestQuit(t *testing.T) {
	fx := newFixture(t, &fakeRows{})

	_, cmd := fx.model.Update(char("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	// q toggles nothing while the menu is open, ctrl+c still quits
	fx.send(t, char("m"))
	_, cmd = fx.model.Update(char("q"))
	assert.Nil(t, cmd)

	_, cmd = fx.model.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestFooter(t *testing.T) {
	ftr := &Footer{}

	out := ftr.Render(3, 11, "v4_ProvincesGrid", 40)
	assert.Contains(t, out, "3/11")
	assert.Contains(t, out, "v4_ProvincesGrid")

	ftr.Notify(colman.Notice{Level: colman.NoticeWarn, Text: "Grid settings didn't load"})
	out = ftr.Render(3, 11, "v4_ProvincesGrid", 40)
	assert.Contains(t, out, "Grid settings didn't load")
	assert.NotContains(t, out, "v4_ProvincesGrid")

	ftr.Clear()
	_, ok := ftr.Notice()
	assert.False(t, ok)
}
