package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"GoChatter/internal/common"
	"GoChatter/internal/dbmysql"
)

func strPtr(s string) *string { return &s }

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUsers)
	ctx := context.Background()

	tests := []struct {
		name        string
		in          RegisterInput
		mockSetup   func()
		expectError bool
		errorMsg    string
		wantCode    common.ErrorCode
	}{
		{
			name: "registers and normalizes fields",
			in:   RegisterInput{Username: "  aria  ", Email: " Aria@Example.COM ", Password: "sekret1", DisplayName: " Aria Blake "},
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByUsername(ctx, "aria").Return(nil, gorm.ErrRecordNotFound)
				mockUsers.EXPECT().GetUserByEmail(ctx, "aria@example.com").Return(nil, gorm.ErrRecordNotFound)
				mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *dbmysql.User) error {
					u.ID = uuid.New()
					return nil
				})
			},
		},
		{
			name:        "username too short",
			in:          RegisterInput{Username: "ab", Email: "ab@example.com", Password: "sekret1", DisplayName: "Ab"},
			mockSetup:   func() {},
			expectError: true,
			errorMsg:    "username must be between 3 and 50 characters",
		},
		{
			name:        "malformed email",
			in:          RegisterInput{Username: "aria", Email: "not-an-email", Password: "sekret1", DisplayName: "Aria"},
			mockSetup:   func() {},
			expectError: true,
			errorMsg:    "invalid email format",
		},
		{
			name:        "password too short",
			in:          RegisterInput{Username: "aria", Email: "aria@example.com", Password: "nope", DisplayName: "Aria"},
			mockSetup:   func() {},
			expectError: true,
			errorMsg:    "password must be at least 6 characters long",
		},
		{
			name:        "blank display name",
			in:          RegisterInput{Username: "aria", Email: "aria@example.com", Password: "sekret1", DisplayName: "   "},
			mockSetup:   func() {},
			expectError: true,
			errorMsg:    "display name must be between 1 and 100 characters",
		},
		{
			name: "username already taken",
			in:   RegisterInput{Username: "aria", Email: "aria@example.com", Password: "sekret1", DisplayName: "Aria"},
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByUsername(ctx, "aria").Return(&dbmysql.User{Username: "aria"}, nil)
			},
			expectError: true,
			errorMsg:    "username already taken",
			wantCode:    common.CodeConflict,
		},
		{
			name: "email already registered",
			in:   RegisterInput{Username: "aria", Email: "aria@example.com", Password: "sekret1", DisplayName: "Aria"},
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByUsername(ctx, "aria").Return(nil, gorm.ErrRecordNotFound)
				mockUsers.EXPECT().GetUserByEmail(ctx, "aria@example.com").Return(&dbmysql.User{Email: "aria@example.com"}, nil)
			},
			expectError: true,
			errorMsg:    "email already registered",
			wantCode:    common.CodeConflict,
		},
		{
			name: "username lookup failure",
			in:   RegisterInput{Username: "aria", Email: "aria@example.com", Password: "sekret1", DisplayName: "Aria"},
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByUsername(ctx, "aria").Return(nil, errors.New("db is down"))
			},
			expectError: true,
			errorMsg:    "db is down",
		},
		{
			name: "create failure",
			in:   RegisterInput{Username: "aria", Email: "aria@example.com", Password: "sekret1", DisplayName: "Aria"},
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByUsername(ctx, "aria").Return(nil, gorm.ErrRecordNotFound)
				mockUsers.EXPECT().GetUserByEmail(ctx, "aria@example.com").Return(nil, gorm.ErrRecordNotFound)
				mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(errors.New("insert failed"))
			},
			expectError: true,
			errorMsg:    "insert failed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			user, err := svc.Register(ctx, tc.in)
			if tc.expectError {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.errorMsg)
				if tc.wantCode != "" {
					require.Equal(t, tc.wantCode, common.CodeOf(err))
				}
				require.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, "aria", user.Username)
				assert.Equal(t, "aria@example.com", user.Email)
				assert.Equal(t, "Aria Blake", user.DisplayName)
				assert.True(t, user.IsActive)
				assert.NoError(t, common.CheckPassword(tc.in.Password, user.PasswordHash))
			}
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUsers)
	ctx := context.Background()

	userID := uuid.New()
	hash, err := common.HashPassword("open sesame")
	require.NoError(t, err)

	// Login stamps LastSeenAt on the returned user, so every case gets a
	// fresh copy.
	account := func() *dbmysql.User {
		return &dbmysql.User{ID: userID, Username: "aria", PasswordHash: hash, IsActive: true}
	}

	tests := []struct {
		name        string
		username    string
		password    string
		mockSetup   func()
		expectError bool
		errorMsg    string
		wantCode    common.ErrorCode
		wantStamped bool
	}{
		{
			name:     "success stamps last seen",
			username: "aria",
			password: "open sesame",
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByUsername(ctx, "aria").Return(account(), nil)
				mockUsers.EXPECT().UpdateLastSeen(ctx, userID, gomock.Any()).Return(nil)
			},
			wantStamped: true,
		},
		{
			name:        "missing credentials",
			username:    "",
			password:    "open sesame",
			mockSetup:   func() {},
			expectError: true,
			errorMsg:    "username and password required",
			wantCode:    common.CodeInvalidArgument,
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "open sesame",
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByUsername(ctx, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectError: true,
			errorMsg:    "incorrect username or password",
			wantCode:    common.CodeUnauthenticated,
		},
		{
			name:     "wrong password",
			username: "aria",
			password: "guessing",
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByUsername(ctx, "aria").Return(account(), nil)
			},
			expectError: true,
			errorMsg:    "incorrect username or password",
			wantCode:    common.CodeUnauthenticated,
		},
		{
			name:     "deactivated account",
			username: "aria",
			password: "open sesame",
			mockSetup: func() {
				u := account()
				u.IsActive = false
				mockUsers.EXPECT().GetUserByUsername(ctx, "aria").Return(u, nil)
			},
			expectError: true,
			errorMsg:    "inactive user",
			wantCode:    common.CodeInvalidState,
		},
		{
			name:     "last seen stamp failure is not fatal",
			username: "aria",
			password: "open sesame",
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByUsername(ctx, "aria").Return(account(), nil)
				mockUsers.EXPECT().UpdateLastSeen(ctx, userID, gomock.Any()).Return(errors.New("timeout"))
			},
			wantStamped: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			user, token, err := svc.Login(ctx, tc.username, tc.password)
			if tc.expectError {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.errorMsg)
				require.Equal(t, tc.wantCode, common.CodeOf(err))
				require.Nil(t, user)
				require.Empty(t, token)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
			require.NotEmpty(t, token)

			claims, err := common.ValidToken(token)
			require.NoError(t, err)
			assert.Equal(t, userID.String(), claims.UserID)
			assert.Equal(t, "aria", claims.Username)

			assert.Equal(t, tc.wantStamped, user.LastSeenAt != nil)
		})
	}
}

func TestUserService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUsers)
	ctx := context.Background()

	userID := uuid.New()

	t.Run("returns the account", func(t *testing.T) {
		mockUsers.EXPECT().GetUserByID(ctx, userID).Return(&dbmysql.User{ID: userID, Username: "aria"}, nil)

		user, err := svc.Me(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "aria", user.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mockUsers.EXPECT().GetUserByID(ctx, userID).Return(nil, gorm.ErrRecordNotFound)

		user, err := svc.Me(ctx, userID)
		require.Error(t, err)
		require.Nil(t, user)
		assert.Equal(t, common.CodeNotFound, common.CodeOf(err))
		assert.Contains(t, err.Error(), "User not found")
	})

	t.Run("repo failure", func(t *testing.T) {
		mockUsers.EXPECT().GetUserByID(ctx, userID).Return(nil, errors.New("db is down"))

		_, err := svc.Me(ctx, userID)
		require.Error(t, err)
		assert.Equal(t, common.CodeInternal, common.CodeOf(err))
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUsers)
	ctx := context.Background()

	userID := uuid.New()
	account := func() *dbmysql.User {
		return &dbmysql.User{ID: userID, Username: "aria", Email: "aria@example.com", DisplayName: "Aria"}
	}

	tests := []struct {
		name        string
		in          UpdateProfileInput
		mockSetup   func()
		expectError bool
		errorMsg    string
		check       func(t *testing.T, u *dbmysql.User)
	}{
		{
			name: "updates display name",
			in:   UpdateProfileInput{DisplayName: strPtr(" Night Owl ")},
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByID(ctx, userID).Return(account(), nil)
				mockUsers.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, u *dbmysql.User) {
				assert.Equal(t, "Night Owl", u.DisplayName)
				assert.Equal(t, "aria@example.com", u.Email)
			},
		},
		{
			name: "updates email when free",
			in:   UpdateProfileInput{Email: strPtr(" Owl@Example.com ")},
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByID(ctx, userID).Return(account(), nil)
				mockUsers.EXPECT().EmailTaken(ctx, "owl@example.com", userID).Return(false, nil)
				mockUsers.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, u *dbmysql.User) {
				assert.Equal(t, "owl@example.com", u.Email)
				assert.Equal(t, "Aria", u.DisplayName)
			},
		},
		{
			name: "rejects taken email",
			in:   UpdateProfileInput{Email: strPtr("owl@example.com")},
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByID(ctx, userID).Return(account(), nil)
				mockUsers.EXPECT().EmailTaken(ctx, "owl@example.com", userID).Return(true, nil)
			},
			expectError: true,
			errorMsg:    "Email already taken",
		},
		{
			name: "invalid display name",
			in:   UpdateProfileInput{DisplayName: strPtr("  ")},
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByID(ctx, userID).Return(account(), nil)
			},
			expectError: true,
			errorMsg:    "display name must be between 1 and 100 characters",
		},
		{
			name: "invalid email",
			in:   UpdateProfileInput{Email: strPtr("not-an-email")},
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByID(ctx, userID).Return(account(), nil)
			},
			expectError: true,
			errorMsg:    "invalid email format",
		},
		{
			name: "user not found",
			in:   UpdateProfileInput{DisplayName: strPtr("Aria")},
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByID(ctx, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectError: true,
			errorMsg:    "User not found",
		},
		{
			name: "save failure",
			in:   UpdateProfileInput{DisplayName: strPtr("Aria")},
			mockSetup: func() {
				mockUsers.EXPECT().GetUserByID(ctx, userID).Return(account(), nil)
				mockUsers.EXPECT().UpdateUser(ctx, gomock.Any()).Return(errors.New("save failed"))
			},
			expectError: true,
			errorMsg:    "save failed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			user, err := svc.UpdateProfile(ctx, userID, tc.in)
			if tc.expectError {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.errorMsg)
				require.Nil(t, user)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
			if tc.check != nil {
				tc.check(t, user)
			}
		})
	}
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUsers)
	ctx := context.Background()

	t.Run("passes paging through", func(t *testing.T) {
		active := []*dbmysql.User{
			{ID: uuid.New(), Username: "aria"},
			{ID: uuid.New(), Username: "bram"},
		}
		mockUsers.EXPECT().ListActive(ctx, 25, 50).Return(active, nil)

		users, err := svc.List(ctx, 25, 50)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "aria", users[0].Username)
	})

	t.Run("repo failure", func(t *testing.T) {
		mockUsers.EXPECT().ListActive(ctx, 100, 0).Return(nil, errors.New("db is down"))

		_, err := svc.List(ctx, 100, 0)
		require.Error(t, err)
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUsers)
	ctx := context.Background()

	userID := uuid.New()

	t.Run("returns the user", func(t *testing.T) {
		seen := time.Now().UTC()
		mockUsers.EXPECT().GetUserByID(ctx, userID).Return(&dbmysql.User{ID: userID, Username: "bram", LastSeenAt: &seen}, nil)

		user, err := svc.GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "bram", user.Username)
		require.NotNil(t, user.LastSeenAt)
	})

	t.Run("not found", func(t *testing.T) {
		mockUsers.EXPECT().GetUserByID(ctx, userID).Return(nil, gorm.ErrRecordNotFound)

		user, err := svc.GetByID(ctx, userID)
		require.Error(t, err)
		require.Nil(t, user)
		assert.Equal(t, common.CodeNotFound, common.CodeOf(err))
	})
}
