package handler

import (
	"time"

	"github.com/google/uuid"

	"GoChatter/internal/chat/service"
	"GoChatter/internal/dbmysql"
)

type createConversationRequest struct {
	Type           string      `json:"type"`
	Title          *string     `json:"title"`
	ParticipantIDs []uuid.UUID `json:"participant_ids"`
}

type updateConversationRequest struct {
	Title *string `json:"title"`
}

type batchAddParticipantsRequest struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

type sendMessageRequest struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	Content        string    `json:"content"`
	FileURL        *string   `json:"file_url"`
	FileType       *string   `json:"file_type"`
	FileName       *string   `json:"file_name"`
}

type editMessageRequest struct {
	Content string `json:"content"`
}

type addReactionRequest struct {
	Emoji string `json:"emoji"`
}

// ParticipantResponse is one member row inside a conversation payload.
type ParticipantResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	JoinedAt    time.Time `json:"joined_at"`
}

// ConversationResponse is the wire shape of a conversation. LastMessage and
// UnreadCount are per-viewer and only filled on the list endpoint.
type ConversationResponse struct {
	ID           uuid.UUID             `json:"id"`
	Type         string                `json:"type"`
	Title        *string               `json:"title"`
	CreatedBy    uuid.UUID             `json:"created_by"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Participants []ParticipantResponse `json:"participants"`
	LastMessage  *string               `json:"last_message"`
	UnreadCount  int64                 `json:"unread_count"`
}

type batchAddParticipantsResponse struct {
	Message    string `json:"message"`
	AddedCount int    `json:"added_count"`
}

// MessageResponse is the wire shape of a message. Sender fields are
// flattened so clients never chase a second lookup.
type MessageResponse struct {
	ID                uuid.UUID  `json:"id"`
	ConversationID    uuid.UUID  `json:"conversation_id"`
	SenderID          *uuid.UUID `json:"sender_id"`
	SenderUsername    string     `json:"sender_username"`
	SenderDisplayName string     `json:"sender_display_name"`
	Content           string     `json:"content"`
	FileURL           *string    `json:"file_url"`
	FileType          *string    `json:"file_type"`
	FileName          *string    `json:"file_name"`
	CreatedAt         time.Time  `json:"created_at"`
	EditedAt          *time.Time `json:"edited_at"`
	IsDeleted         bool       `json:"is_deleted"`
	DeliveredAt       *time.Time `json:"delivered_at"`
	ReadAt            *time.Time `json:"read_at"`
	ReadByUserID      *uuid.UUID `json:"read_by_user_id"`
}

// MessageReadResponse acknowledges a read receipt.
type MessageReadResponse struct {
	MessageID    uuid.UUID  `json:"message_id"`
	ReadAt       *time.Time `json:"read_at"`
	ReadByUserID *uuid.UUID `json:"read_by_user_id"`
}

// ReactionResponse is the wire shape of a single stored reaction.
type ReactionResponse struct {
	ID              uuid.UUID `json:"id"`
	MessageID       uuid.UUID `json:"message_id"`
	UserID          uuid.UUID `json:"user_id"`
	UserUsername    string    `json:"user_username"`
	UserDisplayName string    `json:"user_display_name"`
	Emoji           string    `json:"emoji"`
	CreatedAt       time.Time `json:"created_at"`
}

// ReactionUser identifies one reactor inside an emoji bucket.
type ReactionUser struct {
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
}

// ReactionSummaryResponse is one aggregated emoji bucket on a message.
type ReactionSummaryResponse struct {
	Emoji       string         `json:"emoji"`
	Count       int            `json:"count"`
	Users       []ReactionUser `json:"users"`
	ReactedByMe bool           `json:"reacted_by_me"`
}

// MessageReactionsResponse aggregates every reaction on one message.
type MessageReactionsResponse struct {
	MessageID      uuid.UUID                 `json:"message_id"`
	Reactions      []ReactionSummaryResponse `json:"reactions"`
	TotalReactions int                       `json:"total_reactions"`
}

func newParticipantResponse(p dbmysql.ConversationParticipant) ParticipantResponse {
	return ParticipantResponse{
		UserID:      p.UserID,
		Username:    p.User.Username,
		DisplayName: p.User.DisplayName,
		JoinedAt:    p.JoinedAt,
	}
}

func newConversationResponse(c *dbmysql.Conversation, lastMessage *string, unreadCount int64) ConversationResponse {
	participants := make([]ParticipantResponse, 0, len(c.Participants))
	for _, p := range c.Participants {
		participants = append(participants, newParticipantResponse(p))
	}
	return ConversationResponse{
		ID:           c.ID,
		Type:         c.Type,
		Title:        c.Title,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		Participants: participants,
		LastMessage:  lastMessage,
		UnreadCount:  unreadCount,
	}
}

// senderNames resolves the flattened sender identity. System notices carry
// no sender row; a dangling sender id degrades instead of failing the list.
func senderNames(m *dbmysql.Message) (username, displayName string) {
	switch {
	case m.IsSystem():
		return "System", "System"
	case m.Sender != nil:
		return m.Sender.Username, m.Sender.DisplayName
	default:
		return "Unknown", "Unknown User"
	}
}

func newMessageResponse(m *dbmysql.Message) MessageResponse {
	username, displayName := senderNames(m)
	return MessageResponse{
		ID:                m.ID,
		ConversationID:    m.ConversationID,
		SenderID:          m.SenderID,
		SenderUsername:    username,
		SenderDisplayName: displayName,
		Content:           m.Content,
		FileURL:           m.FileURL,
		FileType:          m.FileType,
		FileName:          m.FileName,
		CreatedAt:         m.CreatedAt,
		EditedAt:          m.EditedAt,
		IsDeleted:         m.IsDeleted,
		DeliveredAt:       m.DeliveredAt,
		ReadAt:            m.ReadAt,
		ReadByUserID:      m.ReadByUserID,
	}
}

func newReactionResponse(reaction *dbmysql.MessageReaction) ReactionResponse {
	return ReactionResponse{
		ID:              reaction.ID,
		MessageID:       reaction.MessageID,
		UserID:          reaction.UserID,
		UserUsername:    reaction.User.Username,
		UserDisplayName: reaction.User.DisplayName,
		Emoji:           reaction.Emoji,
		CreatedAt:       reaction.CreatedAt,
	}
}

func newMessageReactionsResponse(summary *service.MessageReactions) MessageReactionsResponse {
	reactions := make([]ReactionSummaryResponse, 0, len(summary.Reactions))
	for _, bucket := range summary.Reactions {
		users := make([]ReactionUser, 0, len(bucket.Users))
		for _, u := range bucket.Users {
			users = append(users, ReactionUser{UserID: u.UserID, Username: u.Username, DisplayName: u.DisplayName})
		}
		reactions = append(reactions, ReactionSummaryResponse{
			Emoji:       bucket.Emoji,
			Count:       bucket.Count,
			Users:       users,
			ReactedByMe: bucket.ReactedByMe,
		})
	}
	return MessageReactionsResponse{
		MessageID:      summary.MessageID,
		Reactions:      reactions,
		TotalReactions: summary.Total,
	}
}
