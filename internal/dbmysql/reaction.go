package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageReaction is one emoji from one user on one message. The unique
// index makes the triple idempotent at the storage layer; a user can still
// react with several different emojis on the same message.
type MessageReaction struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	MessageID uuid.UUID `gorm:"column:message_id;type:char(36);not null;index:idx_message_user_emoji,unique" json:"message_id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:char(36);not null;index:idx_message_user_emoji,unique" json:"user_id"`
	Emoji     string    `gorm:"column:emoji;size:20;not null;index:idx_message_user_emoji,unique" json:"emoji"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (r *MessageReaction) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
