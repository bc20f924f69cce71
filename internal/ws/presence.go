package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Session is one live transport attachment for a user. TrySend must never
// block; Close must be safe to call more than once.
type Session interface {
	TrySend(data []byte) bool
	Close(reason string)
}

// PresenceRegistry maps each user to at most one live session. A reconnect
// always wins: the previous session is closed and replaced.
type PresenceRegistry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]Session
}

func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{sessions: make(map[uuid.UUID]Session)}
}

// Connect stores s as the user's only session. Any session already
// registered is closed after the swap, outside the lock.
func (p *PresenceRegistry) Connect(userID uuid.UUID, s Session) {
	p.mu.Lock()
	old := p.sessions[userID]
	p.sessions[userID] = s
	p.mu.Unlock()

	if old != nil {
		old.Close("superseded by new connection")
		log.Printf("→ presence: superseded existing session for user %s", userID)
	}
}

// Disconnect drops the mapping only while it still points at s, so a
// superseded session's deferred cleanup cannot evict its replacement.
// It reports whether the user actually went offline.
func (p *PresenceRegistry) Disconnect(userID uuid.UUID, s Session) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cur, ok := p.sessions[userID]; ok && cur == s {
		delete(p.sessions, userID)
		return true
	}
	return false
}

// Send pushes raw bytes to the user's session without blocking. A session
// that cannot accept the write is treated as dead and evicted on the spot;
// delivery is best effort and nothing is queued.
func (p *PresenceRegistry) Send(userID uuid.UUID, data []byte) bool {
	p.mu.RLock()
	s, ok := p.sessions[userID]
	p.mu.RUnlock()

	if !ok {
		return false
	}
	if s.TrySend(data) {
		return true
	}

	if p.Disconnect(userID, s) {
		s.Close("send buffer overflow")
		log.Printf("✗ presence: evicted stalled session for user %s", userID)
	}
	return false
}

func (p *PresenceRegistry) IsOnline(userID uuid.UUID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.sessions[userID]
	return ok
}

// OnlineUsers returns a snapshot of every connected user ID.
func (p *PresenceRegistry) OnlineUsers() []uuid.UUID {
	p.mu.RLock()
	defer p.mu.RUnlock()

	users := make([]uuid.UUID, 0, len(p.sessions))
	for id := range p.sessions {
		users = append(users, id)
	}
	return users
}

func (p *PresenceRegistry) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.sessions)
}

// CloseAll closes every session with the given reason and empties the
// registry. Used on server shutdown.
func (p *PresenceRegistry) CloseAll(reason string) {
	p.mu.Lock()
	sessions := p.sessions
	p.sessions = make(map[uuid.UUID]Session)
	p.mu.Unlock()

	for _, s := range sessions {
		s.Close(reason)
	}
}
