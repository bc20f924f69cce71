package common

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const (
	ctxKeyUserID   contextKey = "user_id"
	ctxKeyUsername contextKey = "username"
)

// AuthMiddleware checks the Authorization header, validates the JWT and
// injects the user identity into the request context. Public routes
// (register, login) are registered outside the protected subrouter, so
// everything passing through here must carry a token.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			WriteError(w, Unauthenticated("authorization required"))
			return
		}

		// header = Bearer <token>
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			WriteError(w, Unauthenticated("invalid auth header"))
			return
		}

		claims, err := ValidToken(parts[1])
		if err != nil {
			WriteError(w, Unauthenticated("invalid or expired token"))
			return
		}

		userID, err := claims.UserUUID()
		if err != nil {
			WriteError(w, Unauthenticated("invalid token subject"))
			return
		}

		ctx := ContextWithUser(r.Context(), userID, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ContextWithUser binds the authenticated identity to the context. The ws
// handshake uses it too, after validating the token from the query string.
func ContextWithUser(ctx context.Context, userID uuid.UUID, username string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, userID)
	return context.WithValue(ctx, ctxKeyUsername, username)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxKeyUserID).(uuid.UUID)
	return id, ok
}

func UsernameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(ctxKeyUsername).(string)
	return name, ok
}
