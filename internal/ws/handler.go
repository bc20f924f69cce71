package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"GoChatter/internal/common"
	"GoChatter/internal/dbmysql"
)

// SessionStore is the slice of storage the handler needs while a session
// starts up: the connecting user's row and their conversation IDs.
type SessionStore interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*dbmysql.User, error)
	ListConversationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// browser clients connect cross-origin; auth happens via the token
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades authenticated requests into live sessions and owns the
// connect and disconnect choreography.
type Handler struct {
	presence  *PresenceRegistry
	directory *MembershipDirectory
	router    Broadcaster
	store     SessionStore
}

func NewHandler(presence *PresenceRegistry, directory *MembershipDirectory, router Broadcaster, store SessionStore) *Handler {
	return &Handler{
		presence:  presence,
		directory: directory,
		router:    router,
		store:     store,
	}
}

// ServeWS is the GET /ws endpoint. The token travels in the query string
// because browser websocket clients cannot set headers; a bad token is
// rejected before the upgrade.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		common.WriteError(w, common.Unauthenticated("missing token"))
		return
	}

	claims, err := common.ValidToken(token)
	if err != nil {
		common.WriteError(w, common.Unauthenticated("invalid or expired token"))
		return
	}
	userID, err := claims.UserUUID()
	if err != nil {
		common.WriteError(w, common.Unauthenticated("invalid or expired token"))
		return
	}

	user, err := h.store.GetUserByID(r.Context(), userID)
	if err != nil || !user.IsActive {
		common.WriteError(w, common.Unauthenticated("user not found or inactive"))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		log.Printf("✗ ws: upgrade failed for user %s: %v", user.Username, err)
		return
	}

	client := newClient(user.ID, user.Username, conn)
	h.presence.Connect(user.ID, client)

	conversationIDs, err := h.store.ListConversationIDs(r.Context(), user.ID)
	if err != nil {
		log.Printf("✗ ws: loading conversations for user %s: %v", user.Username, err)
		if h.presence.Disconnect(user.ID, client) {
			client.Close("failed to load conversations")
		}
		conn.Close()
		return
	}
	h.directory.ReplaceAll(user.ID, conversationIDs)

	go client.writePump()

	h.router.SendToUser(user.ID, NewEvent(ConnectedPayload{
		UserID:   user.ID,
		Username: user.Username,
		Message:  fmt.Sprintf("Connected successfully as %s", user.Username),
	}))
	h.router.BroadcastToAll(NewEvent(UserOnlinePayload{
		UserID:   user.ID,
		Username: user.Username,
		Status:   StatusOnline,
	}), user.ID)
	log.Printf("✓ ws: user %s connected (%d online)", user.Username, h.presence.Count())

	client.readPump(func(raw []byte) {
		h.handleFrame(client, raw)
	})

	// a session superseded by a reconnect must not tear down its
	// replacement's state, so only the current session cleans up
	if h.presence.Disconnect(user.ID, client) {
		h.directory.Forget(user.ID)
		lastSeen := time.Now().UTC()
		h.router.BroadcastToAll(NewEvent(UserOfflinePayload{
			UserID:     user.ID,
			Username:   user.Username,
			Status:     StatusOffline,
			LastSeenAt: &lastSeen,
		}), user.ID)
		log.Printf("✓ ws: user %s disconnected (%d online)", user.Username, h.presence.Count())
	}
	client.Close("connection closed")
}

// handleFrame dispatches one inbound frame. Malformed or unknown frames
// earn an error event; the connection stays open either way.
func (h *Handler) handleFrame(c *Client, raw []byte) {
	var cmd Command
	if err := json.Unmarshal(raw, &cmd); err != nil {
		h.sendError(c, ErrCodeInvalidJSON, "Invalid JSON format")
		return
	}

	switch cmd.Type {
	case EventTyping:
		var t TypingCommand
		if err := json.Unmarshal(cmd.Data, &t); err != nil {
			h.sendError(c, ErrCodeInvalidJSON, "Invalid JSON format")
			return
		}
		if !h.directory.IsMember(c.userID, t.ConversationID) {
			return
		}
		h.router.BroadcastToConversation(t.ConversationID, NewEvent(TypingPayload{
			ConversationID: t.ConversationID,
			UserID:         c.userID,
			Username:       c.username,
			IsTyping:       t.IsTyping,
		}), c.userID)

	case EventPing:
		h.router.SendToUser(c.userID, NewEvent(PongPayload{Message: "pong"}))

	default:
		h.sendError(c, ErrCodeUnknownType, fmt.Sprintf("Unknown message type: %s", cmd.Type))
	}
}

func (h *Handler) sendError(c *Client, code, message string) {
	h.router.SendToUser(c.userID, NewEvent(ErrorPayload{Message: message, Code: code}))
}

// Shutdown closes every live session. Called before the HTTP server stops
// so clients see a clean close frame instead of a dropped TCP connection.
func (h *Handler) Shutdown() {
	h.presence.CloseAll("server shutting down")
	log.Println("✓ ws: all sessions closed")
}
