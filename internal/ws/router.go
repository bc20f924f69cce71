package ws

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

// Broadcaster is the fan-out surface services publish through after their
// storage writes commit.
type Broadcaster interface {
	SendToUser(userID uuid.UUID, ev Event)
	BroadcastToConversation(conversationID uuid.UUID, ev Event, exclude ...uuid.UUID)
	BroadcastToAll(ev Event, exclude ...uuid.UUID)
}

// Router resolves recipients through presence and membership and pushes
// events best effort. Delivery is non-durable: an offline recipient simply
// misses the event and catches up over REST on reconnect.
type Router struct {
	presence  *PresenceRegistry
	directory *MembershipDirectory
}

func NewRouter(presence *PresenceRegistry, directory *MembershipDirectory) *Router {
	return &Router{presence: presence, directory: directory}
}

// SendToUser delivers the event to one user if connected. A miss is logged
// and swallowed.
func (r *Router) SendToUser(userID uuid.UUID, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("✗ router: marshal %s event: %v", ev.Type, err)
		return
	}
	if !r.presence.Send(userID, data) {
		log.Printf("→ router: dropped %s event for offline user %s", ev.Type, userID)
	}
}

// BroadcastToConversation delivers the event to every connected member of
// the conversation, skipping the excluded users. The envelope is marshaled
// once and the same bytes go to every recipient.
func (r *Router) BroadcastToConversation(conversationID uuid.UUID, ev Event, exclude ...uuid.UUID) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("✗ router: marshal %s event: %v", ev.Type, err)
		return
	}

	skip := excludeSet(exclude)
	for _, userID := range r.directory.MembersOf(conversationID) {
		if _, skipped := skip[userID]; skipped {
			continue
		}
		r.presence.Send(userID, data)
	}
}

// Join subscribes a user to a conversation's live events. Offline users are
// skipped; their directory entries are rebuilt from storage on reconnect.
func (r *Router) Join(userID, conversationID uuid.UUID) {
	if !r.presence.IsOnline(userID) {
		return
	}
	r.directory.Join(userID, conversationID)
}

// Leave unsubscribes a user from a conversation's live events.
func (r *Router) Leave(userID, conversationID uuid.UUID) {
	r.directory.Leave(userID, conversationID)
}

// BroadcastToAll delivers the event to every connected user, skipping the
// excluded users.
func (r *Router) BroadcastToAll(ev Event, exclude ...uuid.UUID) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("✗ router: marshal %s event: %v", ev.Type, err)
		return
	}

	skip := excludeSet(exclude)
	for _, userID := range r.presence.OnlineUsers() {
		if _, skipped := skip[userID]; skipped {
			continue
		}
		r.presence.Send(userID, data)
	}
}

func excludeSet(exclude []uuid.UUID) map[uuid.UUID]struct{} {
	if len(exclude) == 0 {
		return nil
	}
	set := make(map[uuid.UUID]struct{}, len(exclude))
	for _, id := range exclude {
		set[id] = struct{}{}
	}
	return set
}
