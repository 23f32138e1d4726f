// Package notify defines the transient notification events shown as toasts.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event. Notifications live
// for the session only; nothing here persists.
type Notification struct {
	ID        string
	Level     Level
	Message   string
	CreatedAt time.Time
}
