package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GoChatter/internal/chat/handler/mocks"
	"GoChatter/internal/chat/service"
	"GoChatter/internal/common"
	"GoChatter/internal/dbmysql"
)

func sampleMessage(conversationID, senderID uuid.UUID) *dbmysql.Message {
	sender := senderID
	return &dbmysql.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       &sender,
		Content:        "lunch at noon?",
		MessageType:    dbmysql.MessageTypeText,
		CreatedAt:      time.Now().UTC(),
		Sender:         &dbmysql.User{ID: senderID, Username: "aria", DisplayName: "Aria"},
	}
}

func TestMessageHandler_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockMessageService(ctrl)
	h := NewMessageHandler(mockSvc)

	userID := uuid.New()
	conversationID := uuid.New()

	t.Run("sends a text message", func(t *testing.T) {
		message := sampleMessage(conversationID, userID)
		mockSvc.EXPECT().
			Send(gomock.Any(), userID, service.SendMessageInput{ConversationID: conversationID, Content: "lunch at noon?"}).
			Return(message, nil)

		req := asUser(newJSONRequest(t, http.MethodPost, "/messages",
			sendMessageRequest{ConversationID: conversationID, Content: "lunch at noon?"}), userID)
		rec := dispatch(h, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp MessageResponse
		decodeInto(t, rec, &resp)
		assert.Equal(t, message.ID, resp.ID)
		assert.Equal(t, "lunch at noon?", resp.Content)
		assert.Equal(t, "aria", resp.SenderUsername)
		assert.Equal(t, "Aria", resp.SenderDisplayName)
		assert.False(t, resp.IsDeleted)
		assert.NotContains(t, rec.Body.String(), "message_type")
	})

	t.Run("carries attachment metadata", func(t *testing.T) {
		message := sampleMessage(conversationID, userID)
		message.MessageType = dbmysql.MessageTypeFile
		message.FileURL = strPtr("/api/files/download/images/report.png")
		message.FileName = strPtr("report.png")
		in := service.SendMessageInput{
			ConversationID: conversationID,
			Content:        "here it is",
			FileURL:        strPtr("/api/files/download/images/report.png"),
			FileName:       strPtr("report.png"),
		}
		mockSvc.EXPECT().Send(gomock.Any(), userID, in).Return(message, nil)

		req := asUser(newJSONRequest(t, http.MethodPost, "/messages", sendMessageRequest{
			ConversationID: conversationID,
			Content:        "here it is",
			FileURL:        strPtr("/api/files/download/images/report.png"),
			FileName:       strPtr("report.png"),
		}), userID)
		rec := dispatch(h, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp MessageResponse
		decodeInto(t, rec, &resp)
		require.NotNil(t, resp.FileURL)
		assert.Equal(t, "/api/files/download/images/report.png", *resp.FileURL)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		mockSvc.EXPECT().
			Send(gomock.Any(), userID, service.SendMessageInput{ConversationID: conversationID}).
			Return(nil, common.InvalidArgument("message content cannot be empty"))

		req := asUser(newJSONRequest(t, http.MethodPost, "/messages",
			sendMessageRequest{ConversationID: conversationID}), userID)
		rec := dispatch(h, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "message content cannot be empty", decodeError(t, rec).Message)
	})

	t.Run("requires authentication", func(t *testing.T) {
		req := newJSONRequest(t, http.MethodPost, "/messages",
			sendMessageRequest{ConversationID: conversationID, Content: "hi"})
		rec := dispatch(h, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, common.CodeUnauthenticated, decodeError(t, rec).Code)
	})
}

func TestMessageHandler_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockMessageService(ctrl)
	h := NewMessageHandler(mockSvc)

	userID := uuid.New()
	conversationID := uuid.New()

	t.Run("pages through a conversation", func(t *testing.T) {
		first := sampleMessage(conversationID, userID)
		second := sampleMessage(conversationID, userID)
		second.Content = "and dessert after"
		mockSvc.EXPECT().
			History(gomock.Any(), conversationID, userID, 20, 40).
			Return([]*dbmysql.Message{first, second}, nil)

		target := fmt.Sprintf("/messages?conversation_id=%s&limit=20&skip=40", conversationID)
		req := asUser(newJSONRequest(t, http.MethodGet, target, nil), userID)
		rec := dispatch(h, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []MessageResponse
		decodeInto(t, rec, &resp)
		require.Len(t, resp, 2)
		assert.Equal(t, "and dessert after", resp[1].Content)
	})

	t.Run("labels system notices", func(t *testing.T) {
		notice := sampleMessage(conversationID, userID)
		notice.SenderID = nil
		notice.Sender = nil
		notice.MessageType = dbmysql.MessageTypeSystem
		notice.Content = "Aria added Bram to the group"
		mockSvc.EXPECT().
			History(gomock.Any(), conversationID, userID, 50, 0).
			Return([]*dbmysql.Message{notice}, nil)

		target := fmt.Sprintf("/messages?conversation_id=%s", conversationID)
		req := asUser(newJSONRequest(t, http.MethodGet, target, nil), userID)
		rec := dispatch(h, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []MessageResponse
		decodeInto(t, rec, &resp)
		require.Len(t, resp, 1)
		assert.Nil(t, resp[0].SenderID)
		assert.Equal(t, "System", resp[0].SenderUsername)
		assert.Equal(t, "System", resp[0].SenderDisplayName)
	})

	t.Run("falls back when the sender row is gone", func(t *testing.T) {
		orphan := sampleMessage(conversationID, userID)
		orphan.Sender = nil
		mockSvc.EXPECT().
			History(gomock.Any(), conversationID, userID, 50, 0).
			Return([]*dbmysql.Message{orphan}, nil)

		target := fmt.Sprintf("/messages?conversation_id=%s", conversationID)
		req := asUser(newJSONRequest(t, http.MethodGet, target, nil), userID)
		rec := dispatch(h, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []MessageResponse
		decodeInto(t, rec, &resp)
		require.Len(t, resp, 1)
		assert.Equal(t, "Unknown", resp[0].SenderUsername)
		assert.Equal(t, "Unknown User", resp[0].SenderDisplayName)
	})

	t.Run("requires a conversation id", func(t *testing.T) {
		req := asUser(newJSONRequest(t, http.MethodGet, "/messages", nil), userID)
		rec := dispatch(h, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid conversation id", decodeError(t, rec).Message)
	})

	t.Run("forbids outsiders", func(t *testing.T) {
		mockSvc.EXPECT().
			History(gomock.Any(), conversationID, userID, 50, 0).
			Return(nil, common.PermissionDenied("you are not a participant in this conversation"))

		target := fmt.Sprintf("/messages?conversation_id=%s", conversationID)
		req := asUser(newJSONRequest(t, http.MethodGet, target, nil), userID)
		rec := dispatch(h, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestMessageHandler_Edit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockMessageService(ctrl)
	h := NewMessageHandler(mockSvc)

	userID := uuid.New()
	conversationID := uuid.New()

	t.Run("edits own message", func(t *testing.T) {
		message := sampleMessage(conversationID, userID)
		message.Content = "lunch at one, actually"
		editedAt := time.Now().UTC()
		message.EditedAt = &editedAt
		mockSvc.EXPECT().
			Edit(gomock.Any(), message.ID, userID, "lunch at one, actually").
			Return(message, nil)

		req := asUser(newJSONRequest(t, http.MethodPut, "/messages/"+message.ID.String(),
			editMessageRequest{Content: "lunch at one, actually"}), userID)
		rec := dispatch(h, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp MessageResponse
		decodeInto(t, rec, &resp)
		assert.Equal(t, "lunch at one, actually", resp.Content)
		assert.NotNil(t, resp.EditedAt)
	})

	t.Run("forbids editing someone else's message", func(t *testing.T) {
		messageID := uuid.New()
		mockSvc.EXPECT().
			Edit(gomock.Any(), messageID, userID, "mine now").
			Return(nil, common.PermissionDenied("you can only edit your own messages"))

		req := asUser(newJSONRequest(t, http.MethodPut, "/messages/"+messageID.String(),
			editMessageRequest{Content: "mine now"}), userID)
		rec := dispatch(h, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestMessageHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockMessageService(ctrl)
	h := NewMessageHandler(mockSvc)

	userID := uuid.New()
	messageID := uuid.New()

	t.Run("soft deletes and confirms", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), messageID, userID).Return(nil)

		req := asUser(newJSONRequest(t, http.MethodDelete, "/messages/"+messageID.String(), nil), userID)
		rec := dispatch(h, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Message deleted successfully"}`, rec.Body.String())
	})

	t.Run("reports unknown messages", func(t *testing.T) {
		mockSvc.EXPECT().
			Delete(gomock.Any(), messageID, userID).
			Return(common.NotFoundError("message not found"))

		req := asUser(newJSONRequest(t, http.MethodDelete, "/messages/"+messageID.String(), nil), userID)
		rec := dispatch(h, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMessageHandler_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockMessageService(ctrl)
	h := NewMessageHandler(mockSvc)

	userID := uuid.New()
	conversationID := uuid.New()

	t.Run("acknowledges the read receipt", func(t *testing.T) {
		message := sampleMessage(conversationID, uuid.New())
		readAt := time.Now().UTC()
		reader := userID
		message.ReadAt = &readAt
		message.ReadByUserID = &reader
		mockSvc.EXPECT().MarkRead(gomock.Any(), message.ID, userID).Return(message, nil)

		req := asUser(newJSONRequest(t, http.MethodPut, "/messages/"+message.ID.String()+"/read", nil), userID)
		rec := dispatch(h, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp MessageReadResponse
		decodeInto(t, rec, &resp)
		assert.Equal(t, message.ID, resp.MessageID)
		require.NotNil(t, resp.ReadByUserID)
		assert.Equal(t, userID, *resp.ReadByUserID)
		assert.NotNil(t, resp.ReadAt)
	})

	t.Run("rejects reading your own message", func(t *testing.T) {
		messageID := uuid.New()
		mockSvc.EXPECT().
			MarkRead(gomock.Any(), messageID, userID).
			Return(nil, common.InvalidState("cannot mark your own message as read"))

		req := asUser(newJSONRequest(t, http.MethodPut, "/messages/"+messageID.String()+"/read", nil), userID)
		rec := dispatch(h, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "cannot mark your own message as read", decodeError(t, rec).Message)
	})
}
