package user

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"GoChatter/internal/dbmysql"
)

// FriendRepository stores friendship rows. One row covers both directions
// of a pair, so every pair lookup here is symmetric.
type FriendRepository interface {
	Create(ctx context.Context, friendship *dbmysql.Friendship) error
	GetByID(ctx context.Context, friendshipID uuid.UUID) (*dbmysql.Friendship, error)
	GetByPair(ctx context.Context, userA, userB uuid.UUID) (*dbmysql.Friendship, error)
	Update(ctx context.Context, friendship *dbmysql.Friendship) error
	Delete(ctx context.Context, friendshipID uuid.UUID) error
	ListAccepted(ctx context.Context, userID uuid.UUID) ([]*dbmysql.Friendship, error)
	ListPendingIncoming(ctx context.Context, userID uuid.UUID) ([]*dbmysql.Friendship, error)
	ListPendingOutgoing(ctx context.Context, userID uuid.UUID) ([]*dbmysql.Friendship, error)
	HasAcceptedFriendship(ctx context.Context, userA, userB uuid.UUID) (bool, error)
	RemoveAcceptedFriendship(ctx context.Context, userA, userB uuid.UUID) (bool, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Create(ctx context.Context, friendship *dbmysql.Friendship) error {
	return r.db.WithContext(ctx).Create(friendship).Error
}

func (r *friendRepository) GetByID(ctx context.Context, friendshipID uuid.UUID) (*dbmysql.Friendship, error) {
	var friendship dbmysql.Friendship
	if err := r.db.WithContext(ctx).First(&friendship, "id = ?", friendshipID).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendRepository) GetByPair(ctx context.Context, userA, userB uuid.UUID) (*dbmysql.Friendship, error) {
	var friendship dbmysql.Friendship
	err := r.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", userA, userB, userB, userA).
		First(&friendship).Error
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendRepository) Update(ctx context.Context, friendship *dbmysql.Friendship) error {
	return r.db.WithContext(ctx).Save(friendship).Error
}

func (r *friendRepository) Delete(ctx context.Context, friendshipID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Friendship{}, "id = ?", friendshipID).Error
}

// ListAccepted returns accepted friendships with both user rows loaded;
// callers pick the counterpart side.
func (r *friendRepository) ListAccepted(ctx context.Context, userID uuid.UUID) ([]*dbmysql.Friendship, error) {
	var friendships []*dbmysql.Friendship
	err := r.db.WithContext(ctx).
		Where("(user_id = ? OR friend_id = ?) AND status = ?", userID, userID, dbmysql.FriendStatusAccepted).
		Preload("User").
		Preload("Friend").
		Find(&friendships).Error
	return friendships, err
}

func (r *friendRepository) ListPendingIncoming(ctx context.Context, userID uuid.UUID) ([]*dbmysql.Friendship, error) {
	var friendships []*dbmysql.Friendship
	err := r.db.WithContext(ctx).
		Where("friend_id = ? AND status = ?", userID, dbmysql.FriendStatusPending).
		Preload("User").
		Order("created_at DESC").
		Find(&friendships).Error
	return friendships, err
}

func (r *friendRepository) ListPendingOutgoing(ctx context.Context, userID uuid.UUID) ([]*dbmysql.Friendship, error) {
	var friendships []*dbmysql.Friendship
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, dbmysql.FriendStatusPending).
		Preload("Friend").
		Order("created_at DESC").
		Find(&friendships).Error
	return friendships, err
}

func (r *friendRepository) HasAcceptedFriendship(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Friendship{}).
		Where("((user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)) AND status = ?",
			userA, userB, userB, userA, dbmysql.FriendStatusAccepted).
		Count(&count).Error
	return count > 0, err
}

// RemoveAcceptedFriendship deletes the accepted row between two users and
// reports whether one existed.
func (r *friendRepository) RemoveAcceptedFriendship(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("((user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)) AND status = ?",
			userA, userB, userB, userA, dbmysql.FriendStatusAccepted).
		Delete(&dbmysql.Friendship{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
