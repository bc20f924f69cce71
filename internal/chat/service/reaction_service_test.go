package service

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/google/uuid"

	"GoChatter/internal/chat/service/mocks"
	"GoChatter/internal/dbmysql"
	"GoChatter/internal/ws"
)

func TestReactionService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReactions := mocks.NewMockReactionRepository(ctrl)
	mockMsgs := mocks.NewMockMessageRepository(ctrl)
	mockConvs := mocks.NewMockConversationRepository(ctrl)
	mockUsers := mocks.NewMockUserDirectory(ctrl)
	mockRouter := mocks.NewMockBroadcaster(ctrl)
	svc := NewReactionService(mockReactions, mockMsgs, mockConvs, mockUsers, mockRouter)
	ctx := context.Background()

	userID := uuid.New()
	messageID := uuid.New()
	convID := uuid.New()
	message := &dbmysql.Message{ID: messageID, ConversationID: convID}
	user := &dbmysql.User{ID: userID, Username: "aria", DisplayName: "Aria"}

	tests := []struct {
		name        string
		emoji       string
		mockSetup   func()
		expectError bool
		errorMsg    string
	}{
		{
			name:  "first reaction is stored and announced",
			emoji: "👍",
			mockSetup: func() {
				mockMsgs.EXPECT().GetByID(ctx, messageID).Return(message, nil)
				mockConvs.EXPECT().IsParticipant(ctx, convID, userID).Return(true, nil)
				mockUsers.EXPECT().GetUserByID(ctx, userID).Return(user, nil)
				mockReactions.EXPECT().Get(ctx, messageID, userID, "👍").Return(nil, gorm.ErrRecordNotFound)
				mockReactions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *dbmysql.MessageReaction) error {
					r.ID = uuid.New()
					return nil
				})
				mockRouter.EXPECT().BroadcastToConversation(convID, gomock.Any()).Do(func(_ uuid.UUID, ev ws.Event) {
					assert.Equal(t, ws.EventReactionAdded, ev.Type)
					payload, ok := ev.Data.(ws.ReactionAddedPayload)
					require.True(t, ok)
					assert.Equal(t, "👍", payload.Emoji)
					assert.Equal(t, "aria", payload.Username)
				})
			},
		},
		{
			name:  "repeating a reaction is a silent no-op",
			emoji: "👍",
			mockSetup: func() {
				mockMsgs.EXPECT().GetByID(ctx, messageID).Return(message, nil)
				mockConvs.EXPECT().IsParticipant(ctx, convID, userID).Return(true, nil)
				mockUsers.EXPECT().GetUserByID(ctx, userID).Return(user, nil)
				mockReactions.EXPECT().Get(ctx, messageID, userID, "👍").Return(&dbmysql.MessageReaction{
					ID: uuid.New(), MessageID: messageID, UserID: userID, Emoji: "👍",
				}, nil)
			},
		},
		{
			name:        "empty emoji",
			emoji:       "",
			mockSetup:   func() {},
			expectError: true,
			errorMsg:    "emoji must be 1 to 10 characters",
		},
		{
			name:        "oversized emoji",
			emoji:       strings.Repeat("x", 11),
			mockSetup:   func() {},
			expectError: true,
			errorMsg:    "emoji must be 1 to 10 characters",
		},
		{
			name:  "missing message",
			emoji: "👍",
			mockSetup: func() {
				mockMsgs.EXPECT().GetByID(ctx, messageID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectError: true,
			errorMsg:    "message not found",
		},
		{
			name:  "outsiders cannot react",
			emoji: "👍",
			mockSetup: func() {
				mockMsgs.EXPECT().GetByID(ctx, messageID).Return(message, nil)
				mockConvs.EXPECT().IsParticipant(ctx, convID, userID).Return(false, nil)
			},
			expectError: true,
			errorMsg:    "not a participant",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			reaction, err := svc.Add(ctx, messageID, userID, tc.emoji)
			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorMsg)
				assert.Nil(t, reaction)
			} else {
				require.NoError(t, err)
				require.NotNil(t, reaction)
				assert.Equal(t, tc.emoji, reaction.Emoji)
				assert.Equal(t, "aria", reaction.User.Username)
			}
		})
	}
}

func TestReactionService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReactions := mocks.NewMockReactionRepository(ctrl)
	mockMsgs := mocks.NewMockMessageRepository(ctrl)
	mockConvs := mocks.NewMockConversationRepository(ctrl)
	mockUsers := mocks.NewMockUserDirectory(ctrl)
	mockRouter := mocks.NewMockBroadcaster(ctrl)
	svc := NewReactionService(mockReactions, mockMsgs, mockConvs, mockUsers, mockRouter)
	ctx := context.Background()

	userID := uuid.New()
	messageID := uuid.New()
	convID := uuid.New()
	message := &dbmysql.Message{ID: messageID, ConversationID: convID}

	tests := []struct {
		name        string
		mockSetup   func()
		expectError bool
		errorMsg    string
	}{
		{
			name: "own reaction is removed and announced",
			mockSetup: func() {
				mockMsgs.EXPECT().GetByID(ctx, messageID).Return(message, nil)
				mockReactions.EXPECT().Delete(ctx, messageID, userID, "👍").Return(true, nil)
				mockRouter.EXPECT().BroadcastToConversation(convID, gomock.Any()).Do(func(_ uuid.UUID, ev ws.Event) {
					assert.Equal(t, ws.EventReactionRemoved, ev.Type)
				})
			},
		},
		{
			name: "nothing to remove",
			mockSetup: func() {
				mockMsgs.EXPECT().GetByID(ctx, messageID).Return(message, nil)
				mockReactions.EXPECT().Delete(ctx, messageID, userID, "👍").Return(false, nil)
			},
			expectError: true,
			errorMsg:    "reaction not found",
		},
		{
			name: "missing message",
			mockSetup: func() {
				mockMsgs.EXPECT().GetByID(ctx, messageID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectError: true,
			errorMsg:    "message not found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			err := svc.Remove(ctx, messageID, userID, "👍")
			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReactionService_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReactions := mocks.NewMockReactionRepository(ctrl)
	mockMsgs := mocks.NewMockMessageRepository(ctrl)
	mockConvs := mocks.NewMockConversationRepository(ctrl)
	mockUsers := mocks.NewMockUserDirectory(ctrl)
	mockRouter := mocks.NewMockBroadcaster(ctrl)
	svc := NewReactionService(mockReactions, mockMsgs, mockConvs, mockUsers, mockRouter)
	ctx := context.Background()

	userID := uuid.New()
	otherID := uuid.New()
	messageID := uuid.New()
	convID := uuid.New()
	message := &dbmysql.Message{ID: messageID, ConversationID: convID}

	t.Run("buckets group by emoji in first-use order", func(t *testing.T) {
		mockMsgs.EXPECT().GetByID(ctx, messageID).Return(message, nil)
		mockConvs.EXPECT().IsParticipant(ctx, convID, userID).Return(true, nil)
		mockReactions.EXPECT().ListByMessage(ctx, messageID).Return([]*dbmysql.MessageReaction{
			{MessageID: messageID, UserID: userID, Emoji: "👍", User: dbmysql.User{ID: userID, Username: "aria", DisplayName: "Aria"}},
			{MessageID: messageID, UserID: otherID, Emoji: "👍", User: dbmysql.User{ID: otherID, Username: "bram", DisplayName: "Bram"}},
			{MessageID: messageID, UserID: otherID, Emoji: "❤️", User: dbmysql.User{ID: otherID, Username: "bram", DisplayName: "Bram"}},
		}, nil)

		summary, err := svc.Summarize(ctx, messageID, userID)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.Total)
		require.Len(t, summary.Reactions, 2)

		thumbs := summary.Reactions[0]
		assert.Equal(t, "👍", thumbs.Emoji)
		assert.Equal(t, 2, thumbs.Count)
		assert.True(t, thumbs.ReactedByMe)
		require.Len(t, thumbs.Users, 2)
		assert.Equal(t, "aria", thumbs.Users[0].Username)

		hearts := summary.Reactions[1]
		assert.Equal(t, "❤️", hearts.Emoji)
		assert.Equal(t, 1, hearts.Count)
		assert.False(t, hearts.ReactedByMe)
	})

	t.Run("no reactions yields an empty summary", func(t *testing.T) {
		mockMsgs.EXPECT().GetByID(ctx, messageID).Return(message, nil)
		mockConvs.EXPECT().IsParticipant(ctx, convID, userID).Return(true, nil)
		mockReactions.EXPECT().ListByMessage(ctx, messageID).Return(nil, nil)

		summary, err := svc.Summarize(ctx, messageID, userID)
		require.NoError(t, err)
		assert.Zero(t, summary.Total)
		assert.Empty(t, summary.Reactions)
	})

	t.Run("outsiders cannot read the summary", func(t *testing.T) {
		mockMsgs.EXPECT().GetByID(ctx, messageID).Return(message, nil)
		mockConvs.EXPECT().IsParticipant(ctx, convID, userID).Return(false, nil)

		summary, err := svc.Summarize(ctx, messageID, userID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not a participant")
		assert.Nil(t, summary)
	})
}
