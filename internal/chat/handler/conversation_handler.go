package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"GoChatter/internal/chat/service"
	"GoChatter/internal/common"
)

// ConversationHandler serves the /conversations routes.
type ConversationHandler struct {
	conversations service.ConversationService
}

func NewConversationHandler(conversations service.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversations: conversations}
}

// Register mounts the conversation routes on the given router. The batch
// participant route must precede the single one so "batch" is never read
// as a user id.
func (h *ConversationHandler) Register(api *mux.Router) {
	api.HandleFunc("/conversations", h.create).Methods(http.MethodPost)
	api.HandleFunc("/conversations", h.list).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{conversation_id}", h.get).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{conversation_id}", h.update).Methods(http.MethodPut)
	api.HandleFunc("/conversations/{conversation_id}", h.delete).Methods(http.MethodDelete)
	api.HandleFunc("/conversations/{conversation_id}/participants", h.participants).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{conversation_id}/participants/batch", h.addParticipants).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{conversation_id}/participants/{user_id}", h.addParticipant).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{conversation_id}/participants/{user_id}", h.removeParticipant).Methods(http.MethodDelete)
	api.HandleFunc("/conversations/{conversation_id}/unfriend", h.unfriend).Methods(http.MethodDelete)
	api.HandleFunc("/conversations/{conversation_id}/leave", h.leave).Methods(http.MethodDelete)
}

func (h *ConversationHandler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	var req createConversationRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	conversation, err := h.conversations.Create(r.Context(), userID, req.Type, req.Title, req.ParticipantIDs)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, newConversationResponse(conversation, nil, 0))
}

func (h *ConversationHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	limit, offset := pagination(r)
	views, err := h.conversations.List(r.Context(), userID, limit, offset)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	out := make([]ConversationResponse, 0, len(views))
	for _, view := range views {
		out = append(out, newConversationResponse(view.Conversation, view.LastMessage, view.UnreadCount))
	}
	common.WriteJSON(w, http.StatusOK, out)
}

func (h *ConversationHandler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	conversationID, err := pathUUID(r, "conversation_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	conversation, err := h.conversations.Get(r.Context(), conversationID, userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, newConversationResponse(conversation, nil, 0))
}

func (h *ConversationHandler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	conversationID, err := pathUUID(r, "conversation_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	var req updateConversationRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	title := ""
	if req.Title != nil {
		title = *req.Title
	}
	conversation, err := h.conversations.UpdateTitle(r.Context(), conversationID, userID, title)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, newConversationResponse(conversation, nil, 0))
}

func (h *ConversationHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	conversationID, err := pathUUID(r, "conversation_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if err := h.conversations.Delete(r.Context(), conversationID, userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *ConversationHandler) participants(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	conversationID, err := pathUUID(r, "conversation_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	members, err := h.conversations.Participants(r.Context(), conversationID, userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	out := make([]ParticipantResponse, 0, len(members))
	for _, member := range members {
		out = append(out, newParticipantResponse(member))
	}
	common.WriteJSON(w, http.StatusOK, out)
}

func (h *ConversationHandler) addParticipant(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	conversationID, err := pathUUID(r, "conversation_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	targetID, err := pathUUID(r, "user_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if err := h.conversations.AddParticipant(r.Context(), conversationID, userID, targetID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, statusResponse{Message: "Participant added successfully"})
}

func (h *ConversationHandler) addParticipants(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	conversationID, err := pathUUID(r, "conversation_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	var req batchAddParticipantsRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	added, err := h.conversations.AddParticipants(r.Context(), conversationID, userID, req.UserIDs)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, batchAddParticipantsResponse{
		Message:    fmt.Sprintf("Added %d participant(s) successfully", added),
		AddedCount: added,
	})
}

func (h *ConversationHandler) removeParticipant(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	conversationID, err := pathUUID(r, "conversation_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	targetID, err := pathUUID(r, "user_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if err := h.conversations.RemoveParticipant(r.Context(), conversationID, userID, targetID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *ConversationHandler) unfriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	conversationID, err := pathUUID(r, "conversation_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if err := h.conversations.Unfriend(r.Context(), conversationID, userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *ConversationHandler) leave(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	conversationID, err := pathUUID(r, "conversation_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if err := h.conversations.Leave(r.Context(), conversationID, userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}
