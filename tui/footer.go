package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"colman"
	"colman/style"
)

// Footer shows the row position, the grid key and the latest notice.
// It is the manager's Notifier; both are driven from the bubbletea loop.
type Footer struct {
	notice colman.Notice
	shown  bool
}

// Notify keeps notice until the next Clear.
func (ftr *Footer) Notify(notice colman.Notice) {
	ftr.notice = notice
	ftr.shown = true
}

// Clear drops the current notice.
func (ftr *Footer) Clear() {
	ftr.shown = false
}

// Notice returns the current notice, if any.
func (ftr *Footer) Notice() (notice colman.Notice, ok bool) {
	return ftr.notice, ftr.shown
}

// Render renders the footer to width.
func (ftr *Footer) Render(current, total int, key string, width int) string {

	left := fmt.Sprintf("%d/%d", current, total)
	right := style.FooterStyle.Render(key)
	if ftr.shown {
		right = noticeStyle(ftr.notice.Level).Render(ftr.notice.Text)
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return style.FooterStyle.Render(left+strings.Repeat(" ", padding)) + right
}

// help

func noticeStyle(lvl colman.NoticeLevel) lipgloss.Style {
	switch lvl {
	case colman.NoticeWarn:
		return style.WarnStyle
	case colman.NoticeError:
		return style.ErrorStyle
	}
	return style.InfoStyle
}
