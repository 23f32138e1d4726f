// Package components holds small reusable TUI widgets.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/curator/internal/core/styles"
)

// ConfirmModal is a simple yes/no confirmation dialog.
type ConfirmModal struct {
	title   string
	message string
}

// NewConfirmModal creates a new confirmation modal.
func NewConfirmModal(title, message string) ConfirmModal {
	return ConfirmModal{title: title, message: message}
}

// Handle interprets a key press. done is false while the modal is still
// waiting for an answer.
func (m ConfirmModal) Handle(k string) (confirmed, done bool) {
	switch k {
	case "y", "Y", "enter":
		return true, true
	case "n", "N", "esc":
		return false, true
	}
	return false, false
}

// View renders the confirmation modal.
func (m ConfirmModal) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(m.title),
		"",
		m.message,
		"",
		styles.ModalHelpStyle.Render("y/enter confirm • n/esc cancel"),
	)
	return styles.ModalStyle.Render(body)
}
