package messaging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	alive bool
}

func (h *fakeHandle) Alive() bool { return h.alive }

type fakeOpener struct {
	handles []*fakeHandle
	urls    []string
	fail    error
}

func (o *fakeOpener) Open(url string) (Handle, error) {
	if o.fail != nil {
		return nil, o.fail
	}
	h := &fakeHandle{alive: true}
	o.handles = append(o.handles, h)
	o.urls = append(o.urls, url)
	return h, nil
}

func TestSessionReusesLiveWindow(t *testing.T) {
	opener := &fakeOpener{}
	s := NewSession(opener, time.Minute)

	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	reused, err := s.Open("https://wa.me/1?text=a")
	require.NoError(t, err)
	assert.False(t, reused, "first open has nothing to reuse")

	now = now.Add(30 * time.Second)
	reused, err = s.Open("https://wa.me/2?text=b")
	require.NoError(t, err)
	assert.True(t, reused, "live unexpired window is reused")

	now = now.Add(10 * time.Second)
	reused, err = s.Open("https://wa.me/3?text=c")
	require.NoError(t, err)
	assert.True(t, reused)

	// Reuse means no extra windows: one spawn covers all three sends.
	assert.Equal(t, []string{"https://wa.me/1?text=a"}, opener.urls)
	assert.Len(t, opener.handles, 1)
}

func TestSessionExpiry(t *testing.T) {
	opener := &fakeOpener{}
	s := NewSession(opener, time.Minute)

	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	_, err := s.Open("u1")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	reused, err := s.Open("u2")
	require.NoError(t, err)
	assert.False(t, reused, "expired window is stale even while alive")
	assert.Len(t, opener.handles, 2, "a stale window is replaced by a fresh spawn")
}

func TestSessionDeadWindowNotReused(t *testing.T) {
	opener := &fakeOpener{}
	s := NewSession(opener, time.Minute)

	_, err := s.Open("u1")
	require.NoError(t, err)
	opener.handles[0].alive = false

	reused, err := s.Open("u2")
	require.NoError(t, err)
	assert.False(t, reused)
	assert.Len(t, opener.handles, 2)
}

func TestSessionOpenError(t *testing.T) {
	opener := &fakeOpener{fail: errors.New("no handler")}
	s := NewSession(opener, time.Minute)

	_, err := s.Open("u1")
	assert.Error(t, err)
}

func TestSessionDefaults(t *testing.T) {
	s := NewSession(nil, 0)
	assert.Equal(t, DefaultWindowTTL, s.ttl)
	assert.NotNil(t, s.opener)
}
