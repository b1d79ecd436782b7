// Package tui composes the grid, the visibility menu and the footer around
// a column manager.
package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"colman"
	nt "colman/entity"
	"colman/grid"
	"colman/menu"
	"colman/message"
)

const (
	footerHeight = 2
)

// RowSource supplies the grid's rows a page at a time.
type RowSource interface {
	GetPage(offset, size int) (lines []nt.Line, err error)
	Count() (count int, err error)
}

// Model is the bubbletea model for the managed grid.
type Model struct {
	manager *colman.Manager
	grid    *grid.Grid
	menu    menu.Menu
	footer  *Footer
	rows    RowSource

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

// New creates a Model; ftr should be the notifier mgr was created with.
func New(ctx context.Context, mgr *colman.Manager, grd *grid.Grid, ftr *Footer, rows RowSource, lgr nt.Logger) Model {

	if lgr == nil {
		lgr = nt.Discard{}
	}

	return Model{
		manager: mgr,
		grid:    grd,
		menu:    menu.New(),
		footer:  ftr,
		rows:    rows,
		ctx:     ctx,
		logger:  lgr,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		_, cmd := m.grid.Update(grid.SizeMsg{
			Width:  msg.Width,
			Height: msg.Height - footerHeight,
		})
		return m, cmd

	case message.GetPageMsg:
		return m, m.getPage(msg.Offset, msg.Size)

	case grid.GridMsg:
		_, cmd := m.grid.Update(msg)
		return m, cmd

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.footer.Notify(colman.Notice{Level: colman.NoticeError, Text: msg.Err.Error()})
		return m, nil

	case grid.OpenMenuMsg:
		m.menu = m.menu.Open(m.manager.Controls())
		return m, nil

	case nt.Event:
		// failures are logged and shown by the manager
		_ = m.manager.Apply(msg)
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.footer.Clear()

		if m.menu.IsOpen() {
			var cmd tea.Cmd
			m.menu, cmd = m.menu.Update(msg)
			return m, cmd
		}

		if msg.String() == "q" {
			return m, tea.Quit
		}

		_, cmd := m.grid.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() tea.View {

	if m.width == 0 {
		return tea.NewView("Loading...")
	}

	row, total := m.grid.Selected()
	footer := m.footer.Render(row, total, m.manager.Key(), m.width)

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.grid.Render()),
		lipgloss.NewLayer(footer).Y(m.height - 1),
	}
	if m.menu.IsOpen() {
		// drop the menu just under the sentinel header
		layers = append(layers, lipgloss.NewLayer(m.menu.Render()).X(1).Y(1).Z(1))
	}

	view := tea.NewView(lipgloss.NewCanvas(layers...))
	view.AltScreen = true
	return view
}

// MenuOpen reports whether the visibility menu is shown.
func (m Model) MenuOpen() bool {
	return m.menu.IsOpen()
}

// unexported

func (m Model) getPage(offset, size int) tea.Cmd {

	rows := m.rows
	return func() tea.Msg {

		lines, err := rows.GetPage(offset, size)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		count, err := rows.Count()
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		return grid.PageMsg{
			Lines: lines,
			Count: count,
		}
	}
}
