package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"GoChatter/internal/chat/repository"
	"GoChatter/internal/common"
	"GoChatter/internal/dbmysql"
	"GoChatter/internal/ws"
)

// SendMessageInput carries everything a new message needs besides its sender.
type SendMessageInput struct {
	ConversationID uuid.UUID
	Content        string
	FileURL        *string
	FileType       *string
	FileName       *string
}

// MessageService drives the message lifecycle: send, edit, soft delete, and
// read receipts, with the matching event fan-out after each commit.
type MessageService interface {
	Send(ctx context.Context, senderID uuid.UUID, in SendMessageInput) (*dbmysql.Message, error)
	History(ctx context.Context, conversationID, userID uuid.UUID, limit, offset int) ([]*dbmysql.Message, error)
	Edit(ctx context.Context, messageID, editorID uuid.UUID, content string) (*dbmysql.Message, error)
	Delete(ctx context.Context, messageID, actorID uuid.UUID) error
	MarkRead(ctx context.Context, messageID, readerID uuid.UUID) (*dbmysql.Message, error)
}

type messageService struct {
	messages      repository.MessageRepository
	conversations repository.ConversationRepository
	users         UserDirectory
	router        ws.Broadcaster
}

func NewMessageService(
	messages repository.MessageRepository,
	conversations repository.ConversationRepository,
	users UserDirectory,
	router ws.Broadcaster,
) MessageService {
	return &messageService{
		messages:      messages,
		conversations: conversations,
		users:         users,
		router:        router,
	}
}

// Send persists the message and broadcasts new_message to every member of
// the conversation, the sender included so clients get a delivery echo.
func (s *messageService) Send(ctx context.Context, senderID uuid.UUID, in SendMessageInput) (*dbmysql.Message, error) {
	if in.Content == "" {
		return nil, common.InvalidArgument("message content cannot be empty")
	}

	member, err := s.conversations.IsParticipant(ctx, in.ConversationID, senderID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, common.PermissionDenied("you are not a participant in this conversation")
	}

	sender, err := s.users.GetUserByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	messageType := dbmysql.MessageTypeText
	if in.FileURL != nil {
		messageType = dbmysql.MessageTypeFile
	}
	message := &dbmysql.Message{
		ConversationID: in.ConversationID,
		SenderID:       &senderID,
		Content:        in.Content,
		MessageType:    messageType,
		FileURL:        in.FileURL,
		FileType:       in.FileType,
		FileName:       in.FileName,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}
	message.Sender = sender

	s.router.BroadcastToConversation(in.ConversationID, ws.NewEvent(ws.MessagePayload{
		ConversationID:    message.ConversationID,
		MessageID:         message.ID,
		SenderID:          message.SenderID,
		SenderUsername:    sender.Username,
		SenderDisplayName: sender.DisplayName,
		Content:           message.Content,
		MessageType:       message.MessageType,
		FileURL:           message.FileURL,
		CreatedAt:         message.CreatedAt,
	}))
	return message, nil
}

// History returns messages newest first. Only members may read.
func (s *messageService) History(ctx context.Context, conversationID, userID uuid.UUID, limit, offset int) ([]*dbmysql.Message, error) {
	member, err := s.conversations.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, common.PermissionDenied("you are not a participant in this conversation")
	}
	return s.messages.ListByConversation(ctx, conversationID, limit, offset)
}

// Edit replaces the content of the editor's own message and broadcasts
// message_edited to all members. Deleted messages stay frozen.
func (s *messageService) Edit(ctx context.Context, messageID, editorID uuid.UUID, content string) (*dbmysql.Message, error) {
	if content == "" {
		return nil, common.InvalidArgument("message content cannot be empty")
	}

	message, err := s.messages.GetByID(ctx, messageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFoundError("message not found")
	}
	if err != nil {
		return nil, err
	}
	if message.SenderID == nil || *message.SenderID != editorID {
		return nil, common.PermissionDenied("you can only edit your own messages")
	}
	if message.IsDeleted {
		return nil, common.InvalidState("cannot edit deleted messages")
	}

	now := time.Now().UTC()
	message.Content = content
	message.EditedAt = &now
	if err := s.messages.Update(ctx, message); err != nil {
		return nil, err
	}

	s.router.BroadcastToConversation(message.ConversationID, ws.NewEvent(ws.MessageEditedPayload{
		ConversationID: message.ConversationID,
		MessageID:      message.ID,
		SenderID:       *message.SenderID,
		Content:        message.Content,
		EditedAt:       now,
	}))
	return message, nil
}

// Delete soft-deletes the actor's own message: the content and any file
// pointers are scrubbed, the row stays so the thread keeps its shape.
// Broadcasts message_deleted to all members.
func (s *messageService) Delete(ctx context.Context, messageID, actorID uuid.UUID) error {
	message, err := s.messages.GetByID(ctx, messageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NotFoundError("message not found")
	}
	if err != nil {
		return err
	}
	if message.SenderID == nil || *message.SenderID != actorID {
		return common.PermissionDenied("you can only delete your own messages")
	}
	if message.IsDeleted {
		return common.InvalidState("message already deleted")
	}

	if err := s.messages.SoftDelete(ctx, messageID); err != nil {
		return err
	}

	s.router.BroadcastToConversation(message.ConversationID, ws.NewEvent(ws.MessageDeletedPayload{
		ConversationID: message.ConversationID,
		MessageID:      message.ID,
		SenderID:       *message.SenderID,
	}))
	return nil
}

// MarkRead stamps a message read by the caller and advances their last-read
// pointer. Senders cannot read their own messages; the reader is excluded
// from the message_read broadcast.
func (s *messageService) MarkRead(ctx context.Context, messageID, readerID uuid.UUID) (*dbmysql.Message, error) {
	message, err := s.messages.GetByID(ctx, messageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFoundError("message not found")
	}
	if err != nil {
		return nil, err
	}

	member, err := s.conversations.IsParticipant(ctx, message.ConversationID, readerID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, common.PermissionDenied("you are not a participant in this conversation")
	}
	if message.SenderID != nil && *message.SenderID == readerID {
		return nil, common.InvalidState("cannot mark your own message as read")
	}

	reader, err := s.users.GetUserByID(ctx, readerID)
	if err != nil {
		return nil, err
	}
	if err := s.messages.MarkRead(ctx, message, readerID); err != nil {
		return nil, err
	}

	s.router.BroadcastToConversation(message.ConversationID, ws.NewEvent(ws.MessageReadPayload{
		ConversationID: message.ConversationID,
		MessageID:      message.ID,
		ReadByUserID:   readerID,
		ReadByUsername: reader.Username,
		ReadAt:         *message.ReadAt,
	}), readerID)
	return message, nil
}
