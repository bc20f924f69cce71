package ws

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeSession records what the registry does to it instead of touching a
// real websocket.
type fakeSession struct {
	mu       sync.Mutex
	received [][]byte
	rejects  bool
	closed   bool
	reason   string
}

func (f *fakeSession) TrySend(data []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rejects {
		return false
	}
	f.received = append(f.received, data)
	return true
}

func (f *fakeSession) Close(reason string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		f.reason = reason
	}
}

func (f *fakeSession) closedWith() (bool, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed, f.reason
}

func (f *fakeSession) messages() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.received...)
}

func TestPresenceRegistry_ConnectSupersedes(t *testing.T) {
	reg := NewPresenceRegistry()
	userID := uuid.New()

	first := &fakeSession{}
	second := &fakeSession{}

	reg.Connect(userID, first)
	require.True(t, reg.IsOnline(userID))
	require.Equal(t, 1, reg.Count())

	reg.Connect(userID, second)
	require.Equal(t, 1, reg.Count())

	closed, reason := first.closedWith()
	require.True(t, closed, "old session must be closed on reconnect")
	require.Equal(t, "superseded by new connection", reason)

	closed, _ = second.closedWith()
	require.False(t, closed)

	// the new session receives, the old one does not
	require.True(t, reg.Send(userID, []byte("hello")))
	require.Len(t, second.messages(), 1)
	require.Empty(t, first.messages())
}

func TestPresenceRegistry_DisconnectOnlyCurrentSession(t *testing.T) {
	reg := NewPresenceRegistry()
	userID := uuid.New()

	first := &fakeSession{}
	second := &fakeSession{}

	reg.Connect(userID, first)
	reg.Connect(userID, second)

	// the superseded session's cleanup must not evict its replacement
	require.False(t, reg.Disconnect(userID, first))
	require.True(t, reg.IsOnline(userID))

	require.True(t, reg.Disconnect(userID, second))
	require.False(t, reg.IsOnline(userID))

	// disconnecting twice is a no-op
	require.False(t, reg.Disconnect(userID, second))
}

func TestPresenceRegistry_SendEvictsStalledSession(t *testing.T) {
	reg := NewPresenceRegistry()
	userID := uuid.New()

	stalled := &fakeSession{rejects: true}
	reg.Connect(userID, stalled)

	require.False(t, reg.Send(userID, []byte("x")))
	require.False(t, reg.IsOnline(userID), "stalled session must be evicted")

	closed, reason := stalled.closedWith()
	require.True(t, closed)
	require.Equal(t, "send buffer overflow", reason)
}

func TestPresenceRegistry_SendToOfflineUser(t *testing.T) {
	reg := NewPresenceRegistry()
	require.False(t, reg.Send(uuid.New(), []byte("x")))
}

func TestPresenceRegistry_OnlineUsers(t *testing.T) {
	reg := NewPresenceRegistry()
	alice := uuid.New()
	bob := uuid.New()

	reg.Connect(alice, &fakeSession{})
	reg.Connect(bob, &fakeSession{})

	users := reg.OnlineUsers()
	require.Len(t, users, 2)
	require.ElementsMatch(t, []uuid.UUID{alice, bob}, users)
}

func TestPresenceRegistry_CloseAll(t *testing.T) {
	reg := NewPresenceRegistry()
	a := &fakeSession{}
	b := &fakeSession{}
	reg.Connect(uuid.New(), a)
	reg.Connect(uuid.New(), b)

	reg.CloseAll("server shutting down")

	require.Equal(t, 0, reg.Count())
	for _, s := range []*fakeSession{a, b} {
		closed, reason := s.closedWith()
		require.True(t, closed)
		require.Equal(t, "server shutting down", reason)
	}
}
