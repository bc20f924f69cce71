package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"GoChatter/internal/dbmysql"
)

type ReactionRepository interface {
	Get(ctx context.Context, messageID, userID uuid.UUID, emoji string) (*dbmysql.MessageReaction, error)
	Create(ctx context.Context, reaction *dbmysql.MessageReaction) error
	Delete(ctx context.Context, messageID, userID uuid.UUID, emoji string) (bool, error)
	ListByMessage(ctx context.Context, messageID uuid.UUID) ([]*dbmysql.MessageReaction, error)
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) Get(ctx context.Context, messageID, userID uuid.UUID, emoji string) (*dbmysql.MessageReaction, error) {
	var reaction dbmysql.MessageReaction
	err := r.db.WithContext(ctx).
		Where("message_id = ? AND user_id = ? AND emoji = ?", messageID, userID, emoji).
		First(&reaction).Error
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

func (r *reactionRepository) Create(ctx context.Context, reaction *dbmysql.MessageReaction) error {
	return r.db.WithContext(ctx).Create(reaction).Error
}

// Delete reports whether a row was actually removed so callers can tell a
// repeat removal apart from a real one.
func (r *reactionRepository) Delete(ctx context.Context, messageID, userID uuid.UUID, emoji string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("message_id = ? AND user_id = ? AND emoji = ?", messageID, userID, emoji).
		Delete(&dbmysql.MessageReaction{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *reactionRepository) ListByMessage(ctx context.Context, messageID uuid.UUID) ([]*dbmysql.MessageReaction, error) {
	var reactions []*dbmysql.MessageReaction
	err := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Preload("User").
		Order("created_at ASC").
		Find(&reactions).Error
	return reactions, err
}
