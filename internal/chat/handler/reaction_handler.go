package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"GoChatter/internal/chat/service"
	"GoChatter/internal/common"
)

// ReactionHandler serves the reaction routes nested under /messages.
type ReactionHandler struct {
	reactions service.ReactionService
}

func NewReactionHandler(reactions service.ReactionService) *ReactionHandler {
	return &ReactionHandler{reactions: reactions}
}

func (h *ReactionHandler) Register(api *mux.Router) {
	api.HandleFunc("/messages/{message_id}/reactions", h.add).Methods(http.MethodPost)
	api.HandleFunc("/messages/{message_id}/reactions", h.summary).Methods(http.MethodGet)
	api.HandleFunc("/messages/{message_id}/reactions/{emoji}", h.remove).Methods(http.MethodDelete)
}

func (h *ReactionHandler) add(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	messageID, err := pathUUID(r, "message_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	var req addReactionRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	reaction, err := h.reactions.Add(r.Context(), messageID, userID, req.Emoji)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, newReactionResponse(reaction))
}

func (h *ReactionHandler) remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	messageID, err := pathUUID(r, "message_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	emoji := mux.Vars(r)["emoji"]
	if err := h.reactions.Remove(r.Context(), messageID, userID, emoji); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, statusResponse{Message: "Reaction removed successfully"})
}

func (h *ReactionHandler) summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	messageID, err := pathUUID(r, "message_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	reactions, err := h.reactions.Summarize(r.Context(), messageID, userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, newMessageReactionsResponse(reactions))
}
