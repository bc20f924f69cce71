// Package di assembles the application graph. wire.go declares the graph,
// wire_gen.go is generated from it, and the providers here adapt the seams
// wire cannot infer: interface narrowing and config-driven scalars.
package di

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"GoChatter/internal/chat/handler"
	"GoChatter/internal/chat/repository"
	"GoChatter/internal/chat/service"
	"GoChatter/internal/config"
	"GoChatter/internal/dbmongo"
	"GoChatter/internal/dbmysql"
	"GoChatter/internal/media"
	"GoChatter/internal/user"
	"GoChatter/internal/ws"
)

// Application bundles everything main mounts and tears down.
type Application struct {
	Config              *config.Config
	DB                  *gorm.DB
	Mongo               *dbmongo.MongoClient
	AuthHandler         *user.AuthHandler
	UserHandler         *user.UserHandler
	FriendshipHandler   *user.FriendshipHandler
	ConversationHandler *handler.ConversationHandler
	MessageHandler      *handler.MessageHandler
	ReactionHandler     *handler.ReactionHandler
	MediaHandler        *media.Handler
	WSHandler           *ws.Handler
}

func provideUserDirectory(users user.UserRepository) service.UserDirectory {
	return users
}

func provideFriendshipGate(friends user.FriendRepository) service.FriendshipGate {
	return friends
}

func provideBroadcaster(router *ws.Router) ws.Broadcaster {
	return router
}

// provideRoster hands services the router, not the bare directory, so
// membership updates for offline users are skipped instead of cached.
func provideRoster(router *ws.Router) ws.Roster {
	return router
}

func provideMediaHandler(storage *dbmongo.MediaStorage, cfg *config.Config) *media.Handler {
	return media.NewHandler(storage, cfg.Upload.MaxFileSize)
}

// sessionStore joins the two repositories the ws handshake reads from.
type sessionStore struct {
	users         user.UserRepository
	conversations repository.ConversationRepository
}

func (s *sessionStore) GetUserByID(ctx context.Context, userID uuid.UUID) (*dbmysql.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

func (s *sessionStore) ListConversationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.conversations.ListConversationIDs(ctx, userID)
}

func provideSessionStore(users user.UserRepository, conversations repository.ConversationRepository) ws.SessionStore {
	return &sessionStore{users: users, conversations: conversations}
}
