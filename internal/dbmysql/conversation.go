package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ConversationTypeDirect = "direct"
	ConversationTypeGroup  = "group"
)

// MaxGroupParticipants caps group membership, batch adds included.
const MaxGroupParticipants = 100

type Conversation struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Type      string    `gorm:"column:type;type:enum('direct','group');not null" json:"type"`
	Title     *string   `gorm:"column:title;size:255" json:"title,omitempty"`
	CreatedBy uuid.UUID `gorm:"column:created_by;type:char(36);not null;index" json:"created_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;index" json:"updated_at"`

	Participants []ConversationParticipant `gorm:"foreignKey:ConversationID" json:"participants,omitempty"`
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type ConversationParticipant struct {
	ID                uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	ConversationID    uuid.UUID  `gorm:"column:conversation_id;type:char(36);not null;index:idx_conv_user,unique" json:"conversation_id"`
	UserID            uuid.UUID  `gorm:"column:user_id;type:char(36);not null;index:idx_conv_user,unique;index" json:"user_id"`
	JoinedAt          time.Time  `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
	LastReadMessageID *uuid.UUID `gorm:"column:last_read_message_id;type:char(36)" json:"last_read_message_id,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (p *ConversationParticipant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
