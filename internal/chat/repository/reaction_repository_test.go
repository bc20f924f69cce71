package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"GoChatter/internal/dbmysql"
)

func TestReactionRepository_Delete(t *testing.T) {
	messageID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name        string
		mockSetup   func(sqlmock.Sqlmock)
		wantRemoved bool
		wantErr     bool
	}{
		{
			name: "existing reaction removed",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(
					"DELETE FROM `message_reactions` WHERE message_id = ? AND user_id = ? AND emoji = ?")).
					WithArgs(messageID, userID, "👍").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantRemoved: true,
		},
		{
			name: "nothing to remove",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(
					"DELETE FROM `message_reactions` WHERE message_id = ? AND user_id = ? AND emoji = ?")).
					WithArgs(messageID, userID, "👍").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			wantRemoved: false,
		},
		{
			name: "database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `message_reactions`")).
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			tt.mockSetup(mock)

			repo := NewReactionRepository(db)
			removed, err := repo.Delete(context.Background(), messageID, userID, "👍")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantRemoved, removed)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReactionRepository_Get_NotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `message_reactions`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "message_id", "user_id", "emoji"}))

	repo := NewReactionRepository(db)
	reaction, err := repo.Get(context.Background(), uuid.New(), uuid.New(), "🎉")

	assert.Nil(t, reaction)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReactionRepository_ListByMessage(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	messageID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `message_reactions` WHERE message_id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "message_id", "user_id", "emoji", "created_at"}).
			AddRow(uuid.New().String(), messageID.String(), alice.String(), "👍", now.Add(-time.Minute)).
			AddRow(uuid.New().String(), messageID.String(), bob.String(), "👍", now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow(alice.String(), "alice").
			AddRow(bob.String(), "bob"))

	repo := NewReactionRepository(db)
	reactions, err := repo.ListByMessage(context.Background(), messageID)

	assert.NoError(t, err)
	require.Len(t, reactions, 2)
	assert.Equal(t, "alice", reactions[0].User.Username)
	assert.Equal(t, "👍", reactions[1].Emoji)
	assert.NoError(t, mock.ExpectationsWereMet())
}
