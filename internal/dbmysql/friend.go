package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FriendStatusPending  = "pending"
	FriendStatusAccepted = "accepted"
	FriendStatusRejected = "rejected"
	FriendStatusBlocked  = "blocked"
)

// Friendship keeps one row per user pair. UserID is the requester and
// FriendID the recipient; a rejected row gets overwritten in place when the
// other side re-requests, so the direction can flip over the row's lifetime.
type Friendship struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:char(36);not null;index:idx_user_friend,unique" json:"user_id"`
	FriendID  uuid.UUID `gorm:"column:friend_id;type:char(36);not null;index:idx_user_friend,unique" json:"friend_id"`
	Status    string    `gorm:"column:status;type:enum('pending','accepted','rejected','blocked');default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Friend *User `gorm:"foreignKey:FriendID" json:"friend,omitempty"`
}

func (f *Friendship) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// OtherUser returns the counterpart of userID in this friendship.
func (f *Friendship) OtherUser(userID uuid.UUID) uuid.UUID {
	if f.UserID == userID {
		return f.FriendID
	}
	return f.UserID
}
