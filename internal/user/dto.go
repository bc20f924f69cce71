package user

import (
	"time"

	"github.com/google/uuid"

	"GoChatter/internal/dbmysql"
)

type registerRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Email       *string `json:"email"`
}

type sendFriendRequestRequest struct {
	FriendID uuid.UUID `json:"friend_id"`
}

type respondFriendRequestRequest struct {
	FriendshipID uuid.UUID `json:"friendship_id"`
	Action       string    `json:"action"`
}

// UserResponse is the public wire shape of an account; the password hash
// never leaves this package.
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	CreatedAt   time.Time  `json:"created_at"`
	LastSeenAt  *time.Time `json:"last_seen_at"`
	IsActive    bool       `json:"is_active"`
}

// TokenResponse is the login payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// FriendshipResponse is the raw friendship row on the wire.
type FriendshipResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FriendID  uuid.UUID `json:"friend_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FriendWithUserResponse is a user plus the caller's friendship fields.
// The friendship fields are null for search hits with no relation yet.
type FriendWithUserResponse struct {
	FriendshipID *uuid.UUID `json:"friendship_id"`
	UserID       uuid.UUID  `json:"user_id"`
	Username     string     `json:"username"`
	DisplayName  string     `json:"display_name"`
	Email        string     `json:"email"`
	LastSeenAt   *time.Time `json:"last_seen_at"`
	IsActive     bool       `json:"is_active"`
	Status       *string    `json:"status"`
	CreatedAt    *time.Time `json:"created_at"`
}

// FriendshipStatusResponse answers "what are we to each other".
type FriendshipStatusResponse struct {
	AreFriends   bool       `json:"are_friends"`
	Status       *string    `json:"status"`
	FriendshipID *uuid.UUID `json:"friendship_id"`
	InitiatedBy  *uuid.UUID `json:"initiated_by"`
}

func newUserResponse(u *dbmysql.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
		LastSeenAt:  u.LastSeenAt,
		IsActive:    u.IsActive,
	}
}

func newFriendshipResponse(f *dbmysql.Friendship) FriendshipResponse {
	return FriendshipResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		FriendID:  f.FriendID,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func newFriendWithUserResponse(u *dbmysql.User, f *dbmysql.Friendship) FriendWithUserResponse {
	resp := FriendWithUserResponse{
		UserID:      u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		LastSeenAt:  u.LastSeenAt,
		IsActive:    u.IsActive,
	}
	if f != nil {
		id := f.ID
		status := f.Status
		createdAt := f.CreatedAt
		resp.FriendshipID = &id
		resp.Status = &status
		resp.CreatedAt = &createdAt
	}
	return resp
}
