package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"GoChatter/internal/dbmysql"
)

type MessageRepository interface {
	Create(ctx context.Context, message *dbmysql.Message) error
	GetByID(ctx context.Context, messageID uuid.UUID) (*dbmysql.Message, error)
	ListByConversation(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*dbmysql.Message, error)
	Update(ctx context.Context, message *dbmysql.Message) error
	SoftDelete(ctx context.Context, messageID uuid.UUID) error
	MarkRead(ctx context.Context, message *dbmysql.Message, readerID uuid.UUID) error
	GetLastMessage(ctx context.Context, conversationID uuid.UUID) (*dbmysql.Message, error)
	CountUnread(ctx context.Context, conversationID, userID uuid.UUID) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts the message and bumps the conversation's updated_at in the
// same transaction so listings sort by latest activity.
func (r *messageRepository) Create(ctx context.Context, message *dbmysql.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return touchConversation(tx, message.ConversationID)
	})
}

func (r *messageRepository) GetByID(ctx context.Context, messageID uuid.UUID) (*dbmysql.Message, error) {
	var message dbmysql.Message
	err := r.db.WithContext(ctx).
		Preload("Sender").
		First(&message, "id = ?", messageID).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// ListByConversation pages newest first; callers reverse for display.
func (r *messageRepository) ListByConversation(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Preload("Sender").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) Update(ctx context.Context, message *dbmysql.Message) error {
	return r.db.WithContext(ctx).Save(message).Error
}

// SoftDelete scrubs the content and any attachment pointers in place; the
// row survives so history keeps its shape for every participant.
func (r *messageRepository) SoftDelete(ctx context.Context, messageID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("id = ?", messageID).
		Updates(map[string]interface{}{
			"content":    dbmysql.DeletedMessageContent,
			"file_name":  nil,
			"file_type":  nil,
			"file_url":   nil,
			"is_deleted": true,
		}).Error
}

// MarkRead stamps the message and advances the reader's last-read pointer
// in one transaction. Re-reading overwrites the previous stamp. The passed
// message is updated in place so callers see the stored values.
func (r *messageRepository) MarkRead(ctx context.Context, message *dbmysql.Message, readerID uuid.UUID) error {
	now := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&dbmysql.Message{}).
			Where("id = ?", message.ID).
			Updates(map[string]interface{}{
				"read_at":         now,
				"read_by_user_id": readerID,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&dbmysql.ConversationParticipant{}).
			Where("conversation_id = ? AND user_id = ?", message.ConversationID, readerID).
			Update("last_read_message_id", message.ID).Error
	})
	if err != nil {
		return err
	}
	message.ReadAt = &now
	message.ReadByUserID = &readerID
	return nil
}

// GetLastMessage returns nil without error when the conversation is empty.
func (r *messageRepository) GetLastMessage(ctx context.Context, conversationID uuid.UUID) (*dbmysql.Message, error) {
	var message dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Preload("Sender").
		Order("created_at DESC").
		First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// CountUnread counts messages from others that arrived after the reader's
// last-read pointer. A reader who never read anything counts the whole
// conversation.
func (r *messageRepository) CountUnread(ctx context.Context, conversationID, userID uuid.UUID) (int64, error) {
	var participant dbmysql.ConversationParticipant
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		First(&participant).Error
	if err != nil {
		return 0, err
	}

	query := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("conversation_id = ?", conversationID).
		Where("sender_id IS NULL OR sender_id <> ?", userID)

	if participant.LastReadMessageID != nil {
		var lastRead dbmysql.Message
		err := r.db.WithContext(ctx).
			Select("created_at").
			First(&lastRead, "id = ?", *participant.LastReadMessageID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
		if err == nil {
			query = query.Where("created_at > ?", lastRead.CreatedAt)
		}
	}

	var count int64
	err = query.Count(&count).Error
	return count, err
}
