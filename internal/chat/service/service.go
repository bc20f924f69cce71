// Package service holds the conversation, message, and reaction lifecycle
// rules. Every mutation commits to storage first and only then fans out its
// events; a recipient that misses an event catches up over REST.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"GoChatter/internal/dbmysql"
	"GoChatter/internal/ws"
)

// UserDirectory is the slice of the user store the chat services need:
// resolving display identities for events and system notices.
type UserDirectory interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*dbmysql.User, error)
	GetUsersByIDs(ctx context.Context, userIDs []uuid.UUID) ([]*dbmysql.User, error)
}

// FriendshipGate answers whether two users may share a group and severs the
// link on unfriend. Implemented by the user package's friendship repository.
type FriendshipGate interface {
	HasAcceptedFriendship(ctx context.Context, userA, userB uuid.UUID) (bool, error)
	RemoveAcceptedFriendship(ctx context.Context, userA, userB uuid.UUID) (bool, error)
}

// ConversationView pairs a conversation with the per-viewer fields the list
// endpoint carries: the latest message content and the unread counter.
type ConversationView struct {
	Conversation *dbmysql.Conversation
	LastMessage  *string
	UnreadCount  int64
}

// Reactor identifies one user inside an aggregated reaction bucket.
type Reactor struct {
	UserID      uuid.UUID
	Username    string
	DisplayName string
}

// ReactionSummary is one emoji bucket on a message.
type ReactionSummary struct {
	Emoji       string
	Count       int
	Users       []Reactor
	ReactedByMe bool
}

// MessageReactions is the aggregated reaction view of a single message.
type MessageReactions struct {
	MessageID uuid.UUID
	Reactions []ReactionSummary
	Total     int
}

const (
	systemUsername    = "System"
	systemDisplayName = "System"
)

// systemNotice builds an unsaved system message for a membership change.
func systemNotice(conversationID uuid.UUID, content string) *dbmysql.Message {
	return &dbmysql.Message{
		ConversationID: conversationID,
		Content:        content,
		MessageType:    dbmysql.MessageTypeSystem,
	}
}

// systemMessagePayload shapes a system message for the new_message fan-out.
func systemMessagePayload(notice *dbmysql.Message) ws.MessagePayload {
	return ws.MessagePayload{
		ConversationID:    notice.ConversationID,
		MessageID:         notice.ID,
		SenderID:          nil,
		SenderUsername:    systemUsername,
		SenderDisplayName: systemDisplayName,
		Content:           notice.Content,
		MessageType:       dbmysql.MessageTypeSystem,
		CreatedAt:         notice.CreatedAt,
	}
}

// conversationData shapes a conversation for the new_conversation fan-out.
// Freshly created or joined conversations have no history for the recipient,
// so last message and unread count stay empty.
func conversationData(conversation *dbmysql.Conversation) ws.ConversationData {
	participants := make([]ws.ParticipantData, 0, len(conversation.Participants))
	for _, p := range conversation.Participants {
		participants = append(participants, ws.ParticipantData{
			UserID:      p.UserID,
			Username:    p.User.Username,
			DisplayName: p.User.DisplayName,
			JoinedAt:    p.JoinedAt,
		})
	}
	return ws.ConversationData{
		ID:           conversation.ID,
		Type:         conversation.Type,
		Title:        conversation.Title,
		CreatedBy:    conversation.CreatedBy,
		CreatedAt:    conversation.CreatedAt,
		UpdatedAt:    conversation.UpdatedAt,
		Participants: participants,
	}
}

// joinNames renders "A", "A and B", "A, B and C" for group notices.
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return fmt.Sprintf("%s and %s", strings.Join(names[:len(names)-1], ", "), names[len(names)-1])
	}
}
