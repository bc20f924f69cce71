package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType tags every frame crossing the socket.
type EventType string

const (
	// server -> client
	EventConnected       EventType = "connected"
	EventNewMessage      EventType = "new_message"
	EventMessageEdited   EventType = "message_edited"
	EventMessageDeleted  EventType = "message_deleted"
	EventMessageRead     EventType = "message_read"
	EventReactionAdded   EventType = "reaction_added"
	EventReactionRemoved EventType = "reaction_removed"
	EventNewConversation EventType = "new_conversation"
	EventUserOnline      EventType = "user_online"
	EventUserOffline     EventType = "user_offline"
	EventError           EventType = "error"
	EventPong            EventType = "pong"

	// both directions
	EventTyping EventType = "typing"

	// client -> server
	EventPing EventType = "ping"
)

// error codes carried in ErrorPayload
const (
	ErrCodeInvalidJSON = "INVALID_JSON"
	ErrCodeUnknownType = "UNKNOWN_MESSAGE_TYPE"
)

// user presence states carried in the user_online/user_offline payloads
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Event is the wire envelope. Data always holds one of the payload structs
// below; the closed set keeps event construction type-checked instead of
// assembling loose maps per call site.
type Event struct {
	Type      EventType `json:"type"`
	Data      Payload   `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Payload is implemented by every event body. The unexported method keeps
// the set closed to this package.
type Payload interface {
	eventType() EventType
}

// NewEvent wraps a payload in its envelope, stamping the type from the
// payload itself so the two can never disagree.
func NewEvent(p Payload) Event {
	return Event{Type: p.eventType(), Data: p, Timestamp: time.Now().UTC()}
}

type ConnectedPayload struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Message  string    `json:"message"`
}

func (ConnectedPayload) eventType() EventType { return EventConnected }

// MessagePayload rides on new_message for both user and system messages;
// a nil SenderID marks the latter, with "System" in the name fields.
type MessagePayload struct {
	ConversationID    uuid.UUID  `json:"conversation_id"`
	MessageID         uuid.UUID  `json:"message_id"`
	SenderID          *uuid.UUID `json:"sender_id"`
	SenderUsername    string     `json:"sender_username"`
	SenderDisplayName string     `json:"sender_display_name"`
	Content           string     `json:"content"`
	MessageType       string     `json:"message_type"`
	FileURL           *string    `json:"file_url,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func (MessagePayload) eventType() EventType { return EventNewMessage }

type MessageEditedPayload struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	MessageID      uuid.UUID `json:"message_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Content        string    `json:"content"`
	EditedAt       time.Time `json:"edited_at"`
}

func (MessageEditedPayload) eventType() EventType { return EventMessageEdited }

type MessageDeletedPayload struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	MessageID      uuid.UUID `json:"message_id"`
	SenderID       uuid.UUID `json:"sender_id"`
}

func (MessageDeletedPayload) eventType() EventType { return EventMessageDeleted }

type MessageReadPayload struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	MessageID      uuid.UUID `json:"message_id"`
	ReadByUserID   uuid.UUID `json:"read_by_user_id"`
	ReadByUsername string    `json:"read_by_username"`
	ReadAt         time.Time `json:"read_at"`
}

func (MessageReadPayload) eventType() EventType { return EventMessageRead }

type ReactionAddedPayload struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	MessageID      uuid.UUID `json:"message_id"`
	UserID         uuid.UUID `json:"user_id"`
	Username       string    `json:"username"`
	Emoji          string    `json:"emoji"`
	CreatedAt      time.Time `json:"created_at"`
}

func (ReactionAddedPayload) eventType() EventType { return EventReactionAdded }

type ReactionRemovedPayload struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	MessageID      uuid.UUID `json:"message_id"`
	UserID         uuid.UUID `json:"user_id"`
	Emoji          string    `json:"emoji"`
}

func (ReactionRemovedPayload) eventType() EventType { return EventReactionRemoved }

// ConversationPayload nests the conversation under its own key so clients
// can reuse their REST response decoding.
type ConversationPayload struct {
	Conversation ConversationData `json:"conversation"`
}

func (ConversationPayload) eventType() EventType { return EventNewConversation }

type ConversationData struct {
	ID           uuid.UUID         `json:"id"`
	Type         string            `json:"type"`
	Title        *string           `json:"title"`
	CreatedBy    uuid.UUID         `json:"created_by"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Participants []ParticipantData `json:"participants"`
	LastMessage  *string           `json:"last_message"`
	UnreadCount  int64             `json:"unread_count"`
}

type ParticipantData struct {
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	JoinedAt    time.Time `json:"joined_at"`
}

type TypingPayload struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	UserID         uuid.UUID `json:"user_id"`
	Username       string    `json:"username"`
	IsTyping       bool      `json:"is_typing"`
}

func (TypingPayload) eventType() EventType { return EventTyping }

type UserOnlinePayload struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Status   string    `json:"status"`
}

func (UserOnlinePayload) eventType() EventType { return EventUserOnline }

type UserOfflinePayload struct {
	UserID     uuid.UUID  `json:"user_id"`
	Username   string     `json:"username"`
	Status     string     `json:"status"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
}

func (UserOfflinePayload) eventType() EventType { return EventUserOffline }

type ErrorPayload struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (ErrorPayload) eventType() EventType { return EventError }

type PongPayload struct {
	Message string `json:"message"`
}

func (PongPayload) eventType() EventType { return EventPong }

// Command is the inbound envelope. Data stays raw until the type is known.
type Command struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data"`
}

type TypingCommand struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	IsTyping       bool      `json:"is_typing"`
}
