package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"GoChatter/internal/dbmysql"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *dbmysql.Conversation) error
	GetByID(ctx context.Context, conversationID uuid.UUID) (*dbmysql.Conversation, error)
	FindDirectBetween(ctx context.Context, userA, userB uuid.UUID) (*dbmysql.Conversation, error)
	ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*dbmysql.Conversation, error)
	ListConversationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	IsParticipant(ctx context.Context, conversationID, userID uuid.UUID) (bool, error)
	GetParticipant(ctx context.Context, conversationID, userID uuid.UUID) (*dbmysql.ConversationParticipant, error)
	CountParticipants(ctx context.Context, conversationID uuid.UUID) (int64, error)
	AddParticipant(ctx context.Context, participant *dbmysql.ConversationParticipant, notice *dbmysql.Message) error
	AddParticipants(ctx context.Context, participants []*dbmysql.ConversationParticipant, notices []*dbmysql.Message) error
	RemoveParticipant(ctx context.Context, conversationID, userID uuid.UUID, notice *dbmysql.Message) error
	UpdateTitle(ctx context.Context, conversationID uuid.UUID, title string) error
	Delete(ctx context.Context, conversationID uuid.UUID) error
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// Create inserts the conversation together with its participant rows in one
// transaction; gorm cascades the association from Participants.
func (r *conversationRepository) Create(ctx context.Context, conversation *dbmysql.Conversation) error {
	return r.db.WithContext(ctx).Create(conversation).Error
}

func (r *conversationRepository) GetByID(ctx context.Context, conversationID uuid.UUID) (*dbmysql.Conversation, error) {
	var conversation dbmysql.Conversation
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Preload("Participants.User").
		First(&conversation, "id = ?", conversationID).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// FindDirectBetween locates the direct conversation both users are in,
// regardless of who created it.
func (r *conversationRepository) FindDirectBetween(ctx context.Context, userA, userB uuid.UUID) (*dbmysql.Conversation, error) {
	var conversation dbmysql.Conversation
	err := r.db.WithContext(ctx).
		Joins("JOIN conversation_participants p1 ON p1.conversation_id = conversations.id AND p1.user_id = ?", userA).
		Joins("JOIN conversation_participants p2 ON p2.conversation_id = conversations.id AND p2.user_id = ?", userB).
		Where("conversations.type = ?", dbmysql.ConversationTypeDirect).
		First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*dbmysql.Conversation, error) {
	var conversations []*dbmysql.Conversation
	err := r.db.WithContext(ctx).
		Joins("JOIN conversation_participants cp ON cp.conversation_id = conversations.id AND cp.user_id = ?", userID).
		Preload("Participants").
		Preload("Participants.User").
		Order("conversations.updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&conversations).Error
	return conversations, err
}

func (r *conversationRepository) ListConversationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&dbmysql.ConversationParticipant{}).
		Where("user_id = ?", userID).
		Pluck("conversation_id", &ids).Error
	return ids, err
}

func (r *conversationRepository) IsParticipant(ctx context.Context, conversationID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.ConversationParticipant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *conversationRepository) GetParticipant(ctx context.Context, conversationID, userID uuid.UUID) (*dbmysql.ConversationParticipant, error) {
	var participant dbmysql.ConversationParticipant
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		First(&participant).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *conversationRepository) CountParticipants(ctx context.Context, conversationID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.ConversationParticipant{}).
		Where("conversation_id = ?", conversationID).
		Count(&count).Error
	return count, err
}

// AddParticipant inserts the participant and the joining notice in one
// transaction so the roster and the visible history never disagree.
func (r *conversationRepository) AddParticipant(ctx context.Context, participant *dbmysql.ConversationParticipant, notice *dbmysql.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(participant).Error; err != nil {
			return err
		}
		if notice != nil {
			if err := tx.Create(notice).Error; err != nil {
				return err
			}
		}
		return touchConversation(tx, participant.ConversationID)
	})
}

func (r *conversationRepository) AddParticipants(ctx context.Context, participants []*dbmysql.ConversationParticipant, notices []*dbmysql.Message) error {
	if len(participants) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&participants).Error; err != nil {
			return err
		}
		if len(notices) > 0 {
			if err := tx.Create(&notices).Error; err != nil {
				return err
			}
		}
		return touchConversation(tx, participants[0].ConversationID)
	})
}

// RemoveParticipant deletes the membership row and, when a notice is given,
// records it and bumps the conversation's activity timestamp. A silent
// removal leaves updated_at alone.
func (r *conversationRepository) RemoveParticipant(ctx context.Context, conversationID, userID uuid.UUID, notice *dbmysql.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("conversation_id = ? AND user_id = ?", conversationID, userID).
			Delete(&dbmysql.ConversationParticipant{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if notice == nil {
			return nil
		}
		if err := tx.Create(notice).Error; err != nil {
			return err
		}
		return touchConversation(tx, conversationID)
	})
}

func (r *conversationRepository) UpdateTitle(ctx context.Context, conversationID uuid.UUID, title string) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Conversation{}).
		Where("id = ?", conversationID).
		Update("title", title).Error
}

// Delete removes the conversation and everything hanging off it: reactions
// on its messages, the messages, the participant rows, then the row itself.
func (r *conversationRepository) Delete(ctx context.Context, conversationID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		messageIDs := tx.Model(&dbmysql.Message{}).
			Select("id").
			Where("conversation_id = ?", conversationID)
		if err := tx.Where("message_id IN (?)", messageIDs).
			Delete(&dbmysql.MessageReaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("conversation_id = ?", conversationID).
			Delete(&dbmysql.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("conversation_id = ?", conversationID).
			Delete(&dbmysql.ConversationParticipant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dbmysql.Conversation{}, "id = ?", conversationID).Error
	})
}

func touchConversation(tx *gorm.DB, conversationID uuid.UUID) error {
	return tx.Model(&dbmysql.Conversation{}).
		Where("id = ?", conversationID).
		Update("updated_at", time.Now()).Error
}
