// Package handler exposes the chat REST surface: conversations, messages,
// and reactions. Handlers stay thin; every rule lives in the service layer
// and every response body is shaped here.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"GoChatter/internal/common"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// pagination reads skip/limit query parameters. Bad or missing values fall
// back to the defaults; limit is capped so one request cannot drain a
// whole history.
func pagination(r *http.Request) (limit, offset int) {
	limit = defaultPageSize
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, common.InvalidArgument("invalid " + strings.ReplaceAll(name, "_", " "))
	}
	return id, nil
}

// identity pulls the authenticated user out of the request context. The
// auth middleware guarantees it on protected routes; a miss means the
// handler was mounted without it.
func identity(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return uuid.Nil, false
	}
	return userID, true
}

type statusResponse struct {
	Message string `json:"message"`
}
