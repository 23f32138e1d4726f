package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/curator/internal/core/notify"
)

func TestToastControllerPushAndEvict(t *testing.T) {
	c := NewToastController()
	assert.False(t, c.HasToasts())

	for i := 0; i < defaultMaxToasts+2; i++ {
		c.Push(notify.Notification{Message: fmt.Sprintf("toast %d", i)})
	}

	toasts := c.Toasts()
	assert.Len(t, toasts, defaultMaxToasts)
	// Oldest two were evicted.
	assert.Equal(t, "toast 2", toasts[0].notification.Message)
	assert.Equal(t, fmt.Sprintf("toast %d", defaultMaxToasts+1), toasts[len(toasts)-1].notification.Message)
}

func TestToastControllerTickExpiry(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Notification{Message: "short lived"})

	c.Tick(defaultToastTTL - time.Millisecond)
	assert.True(t, c.HasToasts())

	c.Tick(time.Millisecond)
	assert.False(t, c.HasToasts())
}

func TestToastControllerDismiss(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Notification{Message: "first"})
	c.Push(notify.Notification{Message: "second"})

	c.Dismiss()

	toasts := c.Toasts()
	assert.Len(t, toasts, 1)
	assert.Equal(t, "first", toasts[0].notification.Message)

	c.Dismiss()
	assert.False(t, c.HasToasts())
	c.Dismiss() // no-op on empty stack
}

func TestToastControllerTicking(t *testing.T) {
	c := NewToastController()
	assert.False(t, c.Ticking())
	c.SetTicking(true)
	assert.True(t, c.Ticking())
}
