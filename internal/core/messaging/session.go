package messaging

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"
)

// DefaultWindowTTL is how long an opened companion window is reused before
// it is treated as stale and a fresh one is spawned.
const DefaultWindowTTL = 5 * time.Minute

// Opener launches a URL in the platform's default handler and reports
// whether a previously launched handle is still live.
type Opener interface {
	Open(url string) (Handle, error)
}

// Handle is a reference to a launched external window process.
type Handle interface {
	// Alive reports whether the process behind the handle is still running.
	Alive() bool
}

// Session owns the last opened companion window: repeated sends reuse one
// window while it is live and unexpired instead of spawning many.
// All access happens on the TUI event loop, so no locking is needed.
type Session struct {
	opener   Opener
	ttl      time.Duration
	now      func() time.Time
	handle   Handle
	openedAt time.Time
}

// NewSession creates a messaging window session. A nil opener uses the
// platform opener; a zero ttl uses DefaultWindowTTL.
func NewSession(opener Opener, ttl time.Duration) *Session {
	if opener == nil {
		opener = execOpener{}
	}
	if ttl <= 0 {
		ttl = DefaultWindowTTL
	}
	return &Session{opener: opener, ttl: ttl, now: time.Now}
}

// Open makes a companion window available for url. While the previous
// window is live and within the TTL no new one is spawned: the message is
// already on the clipboard, so the reviewer pastes into the open window.
// Returns true when the existing window was reused.
func (s *Session) Open(url string) (reused bool, err error) {
	if s.handle != nil && s.handle.Alive() && s.now().Sub(s.openedAt) < s.ttl {
		return true, nil
	}

	h, err := s.opener.Open(url)
	if err != nil {
		return false, fmt.Errorf("open messaging window: %w", err)
	}
	s.handle = h
	s.openedAt = s.now()
	return false, nil
}

// execOpener shells out to the platform URL handler.
type execOpener struct{}

func (execOpener) Open(url string) (Handle, error) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	h := processHandle{done: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(h.done)
	}()
	return h, nil
}

// processHandle signals process exit through a closed channel so Alive can
// be read from the event loop without racing the Wait goroutine.
type processHandle struct {
	done chan struct{}
}

func (h processHandle) Alive() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}
