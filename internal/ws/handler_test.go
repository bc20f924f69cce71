package ws

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// frameClient wires a bare client (no socket) into a real presence
// registry so handleFrame output can be captured.
func frameClient(presence *PresenceRegistry, username string) (*Client, *fakeSession) {
	userID := uuid.New()
	c := &Client{
		userID:   userID,
		username: username,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
	}
	// capture delivery through the registry the way the router does
	sess := &fakeSession{}
	presence.Connect(userID, sess)
	return c, sess
}

func decodeEvent(t *testing.T, raw []byte) (EventType, json.RawMessage) {
	t.Helper()
	var ev struct {
		Type EventType       `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &ev))
	return ev.Type, ev.Data
}

func TestHandler_HandleFrame(t *testing.T) {
	presence := NewPresenceRegistry()
	directory := NewMembershipDirectory()
	router := NewRouter(presence, directory)
	h := NewHandler(presence, directory, router, nil)

	conv := uuid.New()

	sender, senderSess := frameClient(presence, "alice")
	peer, peerSess := frameClient(presence, "bob")
	directory.Join(sender.userID, conv)
	directory.Join(peer.userID, conv)

	tests := []struct {
		name       string
		raw        string
		wantSelf   EventType
		wantCode   string
		wantPeer   EventType
		peerSilent bool
	}{
		{
			name:       "ping answered with pong",
			raw:        `{"type":"ping"}`,
			wantSelf:   EventPong,
			peerSilent: true,
		},
		{
			name:     "typing rebroadcast to conversation",
			raw:      fmt.Sprintf(`{"type":"typing","data":{"conversation_id":%q,"is_typing":true}}`, conv),
			wantPeer: EventTyping,
		},
		{
			name:       "typing outside own conversations dropped",
			raw:        fmt.Sprintf(`{"type":"typing","data":{"conversation_id":%q,"is_typing":true}}`, uuid.New()),
			peerSilent: true,
		},
		{
			name:       "malformed JSON earns error event",
			raw:        `{"type":`,
			wantSelf:   EventError,
			wantCode:   ErrCodeInvalidJSON,
			peerSilent: true,
		},
		{
			name:       "unknown type earns error event",
			raw:        `{"type":"subscribe","data":{}}`,
			wantSelf:   EventError,
			wantCode:   ErrCodeUnknownType,
			peerSilent: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			selfBefore := len(senderSess.messages())
			peerBefore := len(peerSess.messages())

			h.handleFrame(sender, []byte(tc.raw))

			selfMsgs := senderSess.messages()
			if tc.wantSelf != "" {
				require.Len(t, selfMsgs, selfBefore+1)
				typ, data := decodeEvent(t, selfMsgs[len(selfMsgs)-1])
				require.Equal(t, tc.wantSelf, typ)
				if tc.wantCode != "" {
					var payload ErrorPayload
					require.NoError(t, json.Unmarshal(data, &payload))
					require.Equal(t, tc.wantCode, payload.Code)
				}
			} else {
				require.Len(t, selfMsgs, selfBefore, "sender must not receive its own typing")
			}

			peerMsgs := peerSess.messages()
			if tc.peerSilent {
				require.Len(t, peerMsgs, peerBefore)
			} else {
				require.Len(t, peerMsgs, peerBefore+1)
				typ, data := decodeEvent(t, peerMsgs[len(peerMsgs)-1])
				require.Equal(t, tc.wantPeer, typ)

				var payload TypingPayload
				require.NoError(t, json.Unmarshal(data, &payload))
				require.Equal(t, conv, payload.ConversationID)
				require.Equal(t, sender.userID, payload.UserID)
				require.Equal(t, "alice", payload.Username)
				require.True(t, payload.IsTyping)
			}
		})
	}
}

func TestHandler_Shutdown(t *testing.T) {
	presence := NewPresenceRegistry()
	directory := NewMembershipDirectory()
	h := NewHandler(presence, directory, NewRouter(presence, directory), nil)

	sess := &fakeSession{}
	presence.Connect(uuid.New(), sess)

	h.Shutdown()

	require.Equal(t, 0, presence.Count())
	closed, reason := sess.closedWith()
	require.True(t, closed)
	require.Equal(t, "server shutting down", reason)
}

func TestClient_TrySend(t *testing.T) {
	c := newClient(uuid.New(), "alice", nil)

	require.True(t, c.TrySend([]byte("a")))

	// fill the buffer; the next send must fail instead of blocking
	for i := 1; i < sendBufferSize; i++ {
		require.True(t, c.TrySend([]byte("x")))
	}
	require.False(t, c.TrySend([]byte("overflow")))
}

func TestClient_TrySendAfterClose(t *testing.T) {
	c := newClient(uuid.New(), "alice", nil)
	c.Close("superseded by new connection")
	require.False(t, c.TrySend([]byte("late")))

	// closing again keeps the first reason
	c.Close("other")
	require.Equal(t, "superseded by new connection", c.closeReason)
}
