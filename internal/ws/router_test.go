package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (*Router, *PresenceRegistry, *MembershipDirectory) {
	presence := NewPresenceRegistry()
	directory := NewMembershipDirectory()
	return NewRouter(presence, directory), presence, directory
}

func lastEvent(t *testing.T, s *fakeSession) Event {
	t.Helper()
	msgs := s.messages()
	require.NotEmpty(t, msgs)

	var ev struct {
		Type      EventType       `json:"type"`
		Data      json.RawMessage `json:"data"`
		Timestamp string          `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(msgs[len(msgs)-1], &ev))
	require.NotEmpty(t, ev.Timestamp)
	return Event{Type: ev.Type}
}

func TestRouter_SendToUser(t *testing.T) {
	router, presence, _ := newTestRouter()
	userID := uuid.New()
	sess := &fakeSession{}
	presence.Connect(userID, sess)

	router.SendToUser(userID, NewEvent(PongPayload{Message: "pong"}))

	ev := lastEvent(t, sess)
	require.Equal(t, EventPong, ev.Type)

	// an offline recipient is silently skipped
	router.SendToUser(uuid.New(), NewEvent(PongPayload{Message: "pong"}))
}

func TestRouter_BroadcastToConversation(t *testing.T) {
	router, presence, directory := newTestRouter()
	conv := uuid.New()

	sender := uuid.New()
	member := uuid.New()
	outsider := uuid.New()

	senderSess := &fakeSession{}
	memberSess := &fakeSession{}
	outsiderSess := &fakeSession{}

	presence.Connect(sender, senderSess)
	presence.Connect(member, memberSess)
	presence.Connect(outsider, outsiderSess)

	directory.Join(sender, conv)
	directory.Join(member, conv)

	router.BroadcastToConversation(conv, NewEvent(TypingPayload{
		ConversationID: conv,
		UserID:         sender,
		Username:       "alice",
		IsTyping:       true,
	}), sender)

	require.Empty(t, senderSess.messages(), "excluded sender must not receive")
	require.Empty(t, outsiderSess.messages(), "non-member must not receive")

	ev := lastEvent(t, memberSess)
	require.Equal(t, EventTyping, ev.Type)
}

func TestRouter_BroadcastToConversation_OfflineMemberSkipped(t *testing.T) {
	router, presence, directory := newTestRouter()
	conv := uuid.New()

	online := uuid.New()
	offline := uuid.New()

	onlineSess := &fakeSession{}
	presence.Connect(online, onlineSess)

	directory.Join(online, conv)
	directory.Join(offline, conv)

	router.BroadcastToConversation(conv, NewEvent(MessageDeletedPayload{
		MessageID:      uuid.New(),
		ConversationID: conv,
		SenderID:       online,
	}))

	require.Len(t, onlineSess.messages(), 1)
}

func TestRouter_BroadcastToAll(t *testing.T) {
	router, presence, _ := newTestRouter()

	self := uuid.New()
	peer := uuid.New()

	selfSess := &fakeSession{}
	peerSess := &fakeSession{}
	presence.Connect(self, selfSess)
	presence.Connect(peer, peerSess)

	router.BroadcastToAll(NewEvent(UserOnlinePayload{
		UserID:   self,
		Username: "alice",
		Status:   StatusOnline,
	}), self)

	require.Empty(t, selfSess.messages())
	ev := lastEvent(t, peerSess)
	require.Equal(t, EventUserOnline, ev.Type)
}

func TestRouter_JoinRequiresPresence(t *testing.T) {
	router, presence, directory := newTestRouter()
	conv := uuid.New()

	online := uuid.New()
	offline := uuid.New()
	presence.Connect(online, &fakeSession{})

	router.Join(online, conv)
	router.Join(offline, conv)

	require.True(t, directory.IsMember(online, conv))
	require.False(t, directory.IsMember(offline, conv), "offline users must not accumulate directory entries")

	router.Leave(online, conv)
	require.False(t, directory.IsMember(online, conv))
}

func TestRouter_EnvelopeShape(t *testing.T) {
	router, presence, _ := newTestRouter()
	userID := uuid.New()
	sess := &fakeSession{}
	presence.Connect(userID, sess)

	msgID := uuid.New()
	convID := uuid.New()
	router.SendToUser(userID, NewEvent(MessageReadPayload{
		MessageID:      msgID,
		ConversationID: convID,
		ReadByUserID:   userID,
		ReadByUsername: "aria",
		ReadAt:         time.Now().UTC(),
	}))

	var envelope map[string]json.RawMessage
	msgs := sess.messages()
	require.NoError(t, json.Unmarshal(msgs[0], &envelope))
	require.Contains(t, envelope, "type")
	require.Contains(t, envelope, "data")
	require.Contains(t, envelope, "timestamp")

	var data MessageReadPayload
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	require.Equal(t, msgID, data.MessageID)
	require.Equal(t, convID, data.ConversationID)
	require.Equal(t, userID, data.ReadByUserID)
	require.Equal(t, "aria", data.ReadByUsername)
}
