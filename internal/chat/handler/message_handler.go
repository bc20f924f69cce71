package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"GoChatter/internal/chat/service"
	"GoChatter/internal/common"
)

// MessageHandler serves the /messages routes.
type MessageHandler struct {
	messages service.MessageService
}

func NewMessageHandler(messages service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

func (h *MessageHandler) Register(api *mux.Router) {
	api.HandleFunc("/messages", h.send).Methods(http.MethodPost)
	api.HandleFunc("/messages", h.history).Methods(http.MethodGet)
	api.HandleFunc("/messages/{message_id}", h.edit).Methods(http.MethodPut)
	api.HandleFunc("/messages/{message_id}", h.delete).Methods(http.MethodDelete)
	api.HandleFunc("/messages/{message_id}/read", h.markRead).Methods(http.MethodPut)
}

func (h *MessageHandler) send(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	var req sendMessageRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	message, err := h.messages.Send(r.Context(), userID, service.SendMessageInput{
		ConversationID: req.ConversationID,
		Content:        req.Content,
		FileURL:        req.FileURL,
		FileType:       req.FileType,
		FileName:       req.FileName,
	})
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, newMessageResponse(message))
}

func (h *MessageHandler) history(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	conversationID, err := uuid.Parse(r.URL.Query().Get("conversation_id"))
	if err != nil {
		common.WriteError(w, common.InvalidArgument("invalid conversation id"))
		return
	}
	limit, offset := pagination(r)
	messages, err := h.messages.History(r.Context(), conversationID, userID, limit, offset)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	out := make([]MessageResponse, 0, len(messages))
	for _, message := range messages {
		out = append(out, newMessageResponse(message))
	}
	common.WriteJSON(w, http.StatusOK, out)
}

func (h *MessageHandler) edit(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	messageID, err := pathUUID(r, "message_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	var req editMessageRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	message, err := h.messages.Edit(r.Context(), messageID, userID, req.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, newMessageResponse(message))
}

func (h *MessageHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	messageID, err := pathUUID(r, "message_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if err := h.messages.Delete(r.Context(), messageID, userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, statusResponse{Message: "Message deleted successfully"})
}

func (h *MessageHandler) markRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	messageID, err := pathUUID(r, "message_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	message, err := h.messages.MarkRead(r.Context(), messageID, userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, MessageReadResponse{
		MessageID:    message.ID,
		ReadAt:       message.ReadAt,
		ReadByUserID: message.ReadByUserID,
	})
}
