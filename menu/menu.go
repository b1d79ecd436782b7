// Package menu is the column visibility panel: a checkbox per column plus
// One and All buttons.
package menu

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"colman"
	nt "colman/entity"
	"colman/style"
)

const title = "Columns visibility"

type item struct {
	id    string
	label string
	box   Checkbox
}

// Menu holds the checkbox state while open. The manager learns of changes
// only through the events it emits.
// Items are copied before a change, so earlier Menu values stay as they were.
type Menu struct {
	items  []item
	one    Button
	all    Button
	cursor int
	open   bool
}

func New() Menu {
	return Menu{
		one: NewButton("One", "o"),
		all: NewButton("All", "a"),
	}
}

// Open shows the menu with controls.
func (mnu Menu) Open(controls []colman.Control) Menu {

	mnu.items = make([]item, len(controls))
	for i, ctl := range controls {
		mnu.items[i] = item{
			id:    ctl.Id,
			label: ctl.Label,
			box:   NewCheckbox(ctl.Checked),
		}
	}
	mnu.cursor = 0
	mnu.open = true
	return mnu
}

// IsOpen reports whether the menu is shown.
func (mnu Menu) IsOpen() bool {
	return mnu.open
}

// Checked returns the checked state by column id.
func (mnu Menu) Checked() map[string]bool {

	checked := make(map[string]bool, len(mnu.items))
	for _, itm := range mnu.items {
		checked[itm.id] = itm.box.Checked()
	}
	return checked
}

func (mnu Menu) Init() tea.Cmd {
	return nil
}

func (mnu Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {

	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !mnu.open {
		return mnu, nil
	}

	switch key.String() {
	case "up", "k":
		if mnu.cursor > 0 {
			mnu.cursor--
		}

	case "down", "j":
		if mnu.cursor < mnu.last() {
			mnu.cursor++
		}

	case "space", " ", "t":
		return mnu.toggle()

	case "enter":
		switch mnu.cursor {
		case len(mnu.items):
			return mnu.showOne()
		case len(mnu.items) + 1:
			return mnu.showAll()
		}
		return mnu.toggle()

	case mnu.one.Key():
		return mnu.showOne()

	case mnu.all.Key():
		return mnu.showAll()

	case "esc", "m":
		mnu.open = false
		return mnu, emit(nt.MenuClosedEvent{})
	}

	return mnu, nil
}

func (mnu Menu) View() tea.View {
	return tea.NewView(mnu.Render())
}

// Render draws the menu, or nothing when closed.
func (mnu Menu) Render() string {

	if !mnu.open {
		return ""
	}

	var bld strings.Builder
	bld.WriteString(style.MenuTitleStyle.Render(title))
	bld.WriteString("\n")

	for i, itm := range mnu.items {
		line := itm.box.Render() + " " + itm.label
		bld.WriteString(mnu.highlight(i, line))
		bld.WriteString("\n")
	}

	bld.WriteString(mnu.highlight(len(mnu.items), mnu.one.Render()))
	bld.WriteString(" ")
	bld.WriteString(mnu.highlight(len(mnu.items)+1, mnu.all.Render()))

	return style.MenuStyle.Render(bld.String())
}

// unexported

func (mnu Menu) toggle() (Menu, tea.Cmd) {

	if mnu.cursor >= len(mnu.items) {
		return mnu, nil
	}

	mnu.items = slices.Clone(mnu.items)
	itm := &mnu.items[mnu.cursor]
	itm.box = itm.box.Toggle()
	return mnu, emit(nt.ToggleEvent{Id: itm.id, Visible: itm.box.Checked()})
}

// showOne checks the first column only.
func (mnu Menu) showOne() (Menu, tea.Cmd) {

	mnu.items = slices.Clone(mnu.items)
	for i := range mnu.items {
		mnu.items[i].box = mnu.items[i].box.Set(i == 0)
	}
	return mnu, emit(nt.ShowOneEvent{})
}

func (mnu Menu) showAll() (Menu, tea.Cmd) {

	mnu.items = slices.Clone(mnu.items)
	for i := range mnu.items {
		mnu.items[i].box = mnu.items[i].box.Set(true)
	}
	return mnu, emit(nt.ShowAllEvent{})
}

func (mnu Menu) last() int {
	return len(mnu.items) + 1
}

func (mnu Menu) highlight(idx int, text string) string {
	if idx == mnu.cursor {
		return style.HlItemStyle.Render(text)
	}
	return text
}

func emit(ev nt.Event) tea.Cmd {
	return func() tea.Msg {
		return ev
	}
}
