package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.state {
	case stateHelp:
		body = m.helpView()
	case stateConfirming:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.reviewView(),
			lipgloss.Place(m.width, 0, lipgloss.Center, lipgloss.Center, m.confirm.View()),
		)
	case stateReview:
		body = m.reviewView()
	default:
		body = m.summaryView()
	}

	if m.toasts.HasToasts() {
		body = lipgloss.JoinVertical(lipgloss.Left, m.toastView(), body)
	}
	return body
}
