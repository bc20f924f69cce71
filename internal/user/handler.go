package user

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"GoChatter/internal/common"
)

const defaultUserPageSize = 100

// AuthHandler serves the public /auth routes; everything else in this
// package sits behind the auth middleware.
type AuthHandler struct {
	users UserService
}

func NewAuthHandler(users UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) Register(api *mux.Router) {
	api.HandleFunc("/auth/register", h.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.login).Methods(http.MethodPost)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	account, err := h.users.Register(r.Context(), RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, newUserResponse(account))
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	_, token, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// UserHandler serves the /users routes.
type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Register(api *mux.Router) {
	api.HandleFunc("/users/me", h.me).Methods(http.MethodGet)
	api.HandleFunc("/users/me", h.updateMe).Methods(http.MethodPut)
	api.HandleFunc("/users", h.list).Methods(http.MethodGet)
	api.HandleFunc("/users/{user_id}", h.getByID).Methods(http.MethodGet)
}

func (h *UserHandler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	account, err := h.users.Me(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, newUserResponse(account))
}

func (h *UserHandler) updateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req updateProfileRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	account, err := h.users.UpdateProfile(r.Context(), userID, UpdateProfileInput{
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, newUserResponse(account))
}

func (h *UserHandler) list(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	limit, offset := userPagination(r)
	accounts, err := h.users.List(r.Context(), limit, offset)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	out := make([]UserResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, newUserResponse(account))
	}
	common.WriteJSON(w, http.StatusOK, out)
}

func (h *UserHandler) getByID(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	targetID, err := pathID(r, "user_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	account, err := h.users.GetByID(r.Context(), targetID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, newUserResponse(account))
}

// FriendshipHandler serves the /friendships routes.
type FriendshipHandler struct {
	friendships FriendshipService
}

func NewFriendshipHandler(friendships FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{friendships: friendships}
}

func (h *FriendshipHandler) Register(api *mux.Router) {
	api.HandleFunc("/friendships/send-request", h.sendRequest).Methods(http.MethodPost)
	api.HandleFunc("/friendships/respond", h.respond).Methods(http.MethodPost)
	api.HandleFunc("/friendships/requests/received", h.received).Methods(http.MethodGet)
	api.HandleFunc("/friendships/requests/sent", h.sent).Methods(http.MethodGet)
	api.HandleFunc("/friendships/friends", h.friends).Methods(http.MethodGet)
	api.HandleFunc("/friendships/status/{user_id}", h.status).Methods(http.MethodGet)
	api.HandleFunc("/friendships/search/{query}", h.search).Methods(http.MethodGet)
	api.HandleFunc("/friendships/{friendship_id}", h.remove).Methods(http.MethodDelete)
}

func (h *FriendshipHandler) sendRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req sendFriendRequestRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	friendship, err := h.friendships.SendRequest(r.Context(), userID, req.FriendID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, newFriendshipResponse(friendship))
}

func (h *FriendshipHandler) respond(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req respondFriendRequestRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	friendship, err := h.friendships.Respond(r.Context(), userID, req.FriendshipID, req.Action)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, newFriendshipResponse(friendship))
}

func (h *FriendshipHandler) received(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	entries, err := h.friendships.Received(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, friendEntryResponses(entries))
}

func (h *FriendshipHandler) sent(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	entries, err := h.friendships.Sent(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, friendEntryResponses(entries))
}

func (h *FriendshipHandler) friends(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	entries, err := h.friendships.Friends(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, friendEntryResponses(entries))
}

func (h *FriendshipHandler) status(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	otherID, err := pathID(r, "user_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	status, err := h.friendships.Status(r.Context(), userID, otherID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, FriendshipStatusResponse{
		AreFriends:   status.AreFriends,
		Status:       status.Status,
		FriendshipID: status.FriendshipID,
		InitiatedBy:  status.InitiatedBy,
	})
}

func (h *FriendshipHandler) search(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	query := mux.Vars(r)["query"]
	results, err := h.friendships.SearchUsers(r.Context(), userID, query)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	out := make([]FriendWithUserResponse, 0, len(results))
	for _, result := range results {
		out = append(out, newFriendWithUserResponse(result.User, result.Friendship))
	}
	common.WriteJSON(w, http.StatusOK, out)
}

func (h *FriendshipHandler) remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	friendshipID, err := pathID(r, "friendship_id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if err := h.friendships.Remove(r.Context(), userID, friendshipID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}

func friendEntryResponses(entries []FriendEntry) []FriendWithUserResponse {
	out := make([]FriendWithUserResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, newFriendWithUserResponse(entry.Counterpart, entry.Friendship))
	}
	return out
}

func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return uuid.Nil, false
	}
	return userID, true
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, common.InvalidArgument("invalid " + strings.ReplaceAll(name, "_", " "))
	}
	return id, nil
}

func userPagination(r *http.Request) (limit, offset int) {
	limit = defaultUserPageSize
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}
