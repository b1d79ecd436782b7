package message

import tea "charm.land/bubbletea/v2"

// GetPageCmd returns a command requesting size lines from offset.
func GetPageCmd(offset, size int) tea.Cmd {
	return func() tea.Msg {
		return GetPageMsg{
			Offset: offset,
			Size:   size,
		}
	}
}
