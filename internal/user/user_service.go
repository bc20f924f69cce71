package user

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"GoChatter/internal/common"
	"GoChatter/internal/dbmysql"
)

// RegisterInput carries a new account's fields.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
}

// UpdateProfileInput carries the editable profile fields; nil means keep.
type UpdateProfileInput struct {
	DisplayName *string
	Email       *string
}

// UserService drives accounts: registration, login, profile, and the user
// directory the rest of the app reads.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*dbmysql.User, error)
	Login(ctx context.Context, username, password string) (*dbmysql.User, string, error)
	Me(ctx context.Context, userID uuid.UUID) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (*dbmysql.User, error)
	List(ctx context.Context, limit, offset int) ([]*dbmysql.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*dbmysql.User, error)
}

type userService struct {
	users UserRepository
}

func NewUserService(users UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*dbmysql.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := common.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := common.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	if err := common.ValidateDisplayName(in.DisplayName); err != nil {
		return nil, err
	}

	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return nil, common.Conflict("username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, common.Conflict("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := common.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &dbmysql.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		DisplayName:  strings.TrimSpace(in.DisplayName),
		IsActive:     true,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ user %s registered", user.Username)
	return user, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (*dbmysql.User, string, error) {
	if username == "" || password == "" {
		return nil, "", common.InvalidArgument("username and password required")
	}

	user, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", common.Unauthenticated("incorrect username or password")
	}
	if err != nil {
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", common.Unauthenticated("incorrect username or password")
	}
	if !user.IsActive {
		return nil, "", common.InvalidState("inactive user")
	}

	token, err := common.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	// login doubles as a liveness signal; failing to stamp it must not
	// fail the login
	now := time.Now().UTC()
	if err := s.users.UpdateLastSeen(ctx, user.ID, now); err != nil {
		log.Printf("✗ user: stamping last seen for %s: %v", user.Username, err)
	} else {
		user.LastSeenAt = &now
	}

	return user, token, nil
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*dbmysql.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFoundError("User not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (*dbmysql.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFoundError("User not found")
	}
	if err != nil {
		return nil, err
	}

	if in.DisplayName != nil {
		if err := common.ValidateDisplayName(*in.DisplayName); err != nil {
			return nil, err
		}
		user.DisplayName = strings.TrimSpace(*in.DisplayName)
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if err := common.ValidateEmail(email); err != nil {
			return nil, err
		}
		taken, err := s.users.EmailTaken(ctx, email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, common.InvalidArgument("Email already taken")
		}
		user.Email = email
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, limit, offset int) ([]*dbmysql.User, error) {
	return s.users.ListActive(ctx, limit, offset)
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*dbmysql.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFoundError("User not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
