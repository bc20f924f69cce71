package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MessageTypeText   = "text"
	MessageTypeFile   = "file"
	MessageTypeSystem = "system"
)

// DeletedMessageContent replaces the content of a soft-deleted message.
const DeletedMessageContent = "This message was deleted"

// Message rows survive soft deletion so threads keep their shape; content
// and file fields are scrubbed and IsDeleted flips, nothing else changes.
// A nil SenderID marks a system message.
type Message struct {
	ID             uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	ConversationID uuid.UUID  `gorm:"column:conversation_id;type:char(36);not null;index" json:"conversation_id"`
	SenderID       *uuid.UUID `gorm:"column:sender_id;type:char(36);index" json:"sender_id"`
	Content        string     `gorm:"column:content;type:text;not null" json:"content"`
	MessageType    string     `gorm:"column:message_type;size:20;not null;default:'text'" json:"message_type"`
	FileURL        *string    `gorm:"column:file_url;size:512" json:"file_url,omitempty"`
	FileType       *string    `gorm:"column:file_type;size:100" json:"file_type,omitempty"`
	FileName       *string    `gorm:"column:file_name;size:255" json:"file_name,omitempty"`
	IsDeleted      bool       `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	EditedAt       *time.Time `gorm:"column:edited_at" json:"edited_at,omitempty"`
	DeliveredAt    *time.Time `gorm:"column:delivered_at" json:"delivered_at,omitempty"`
	ReadAt         *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
	ReadByUserID   *uuid.UUID `gorm:"column:read_by_user_id;type:char(36)" json:"read_by_user_id,omitempty"`

	Sender *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsSystem reports whether the message was synthesized by the server.
func (m *Message) IsSystem() bool {
	return m.SenderID == nil
}
