package tui

import (
	"strings"

	"github.com/colonyops/curator/internal/core/notify"
	"github.com/colonyops/curator/internal/core/styles"
)

// toastView renders the active toast stack, oldest first.
func (m *Model) toastView() string {
	var b strings.Builder
	for i, t := range m.toasts.Toasts() {
		if i > 0 {
			b.WriteString("\n")
		}

		var style = styles.ToastInfoStyle
		switch t.notification.Level {
		case notify.LevelWarning:
			style = styles.ToastWarningStyle
		case notify.LevelError:
			style = styles.ToastErrorStyle
		}
		b.WriteString(style.Render(t.notification.Message))
	}
	return b.String()
}
