package ws

import (
	"sync"

	"github.com/google/uuid"
)

// Roster is the mutation surface services use to keep the directory in
// step with storage when participants come and go.
type Roster interface {
	Join(userID, conversationID uuid.UUID)
	Leave(userID, conversationID uuid.UUID)
}

// MembershipDirectory tracks which conversations each connected user
// belongs to. It is a cache over storage: rebuilt with ReplaceAll on every
// connect and dropped with Forget on disconnect, so routing never touches
// the database.
type MembershipDirectory struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID]map[uuid.UUID]struct{}
}

func NewMembershipDirectory() *MembershipDirectory {
	return &MembershipDirectory{conversations: make(map[uuid.UUID]map[uuid.UUID]struct{})}
}

func (d *MembershipDirectory) Join(userID, conversationID uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	set, ok := d.conversations[userID]
	if !ok {
		set = make(map[uuid.UUID]struct{})
		d.conversations[userID] = set
	}
	set[conversationID] = struct{}{}
}

func (d *MembershipDirectory) Leave(userID, conversationID uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if set, ok := d.conversations[userID]; ok {
		delete(set, conversationID)
		if len(set) == 0 {
			delete(d.conversations, userID)
		}
	}
}

// ReplaceAll swaps the user's entire membership set in one step.
func (d *MembershipDirectory) ReplaceAll(userID uuid.UUID, conversationIDs []uuid.UUID) {
	set := make(map[uuid.UUID]struct{}, len(conversationIDs))
	for _, id := range conversationIDs {
		set[id] = struct{}{}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if len(set) == 0 {
		delete(d.conversations, userID)
		return
	}
	d.conversations[userID] = set
}

// Forget drops every membership entry for the user.
func (d *MembershipDirectory) Forget(userID uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.conversations, userID)
}

func (d *MembershipDirectory) IsMember(userID, conversationID uuid.UUID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	set, ok := d.conversations[userID]
	if !ok {
		return false
	}
	_, ok = set[conversationID]
	return ok
}

// Conversations returns the user's tracked conversation IDs.
func (d *MembershipDirectory) Conversations(userID uuid.UUID) []uuid.UUID {
	d.mu.RLock()
	defer d.mu.RUnlock()

	set := d.conversations[userID]
	ids := make([]uuid.UUID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

// MembersOf returns every connected user tracked as a member of the
// conversation. It scans the per-user sets rather than holding a reverse
// index, which keeps Join and Leave trivial at the scale of one node.
func (d *MembershipDirectory) MembersOf(conversationID uuid.UUID) []uuid.UUID {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var members []uuid.UUID
	for userID, set := range d.conversations {
		if _, ok := set[conversationID]; ok {
			members = append(members, userID)
		}
	}
	return members
}
