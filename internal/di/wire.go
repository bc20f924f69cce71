//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"GoChatter/internal/chat/handler"
	"GoChatter/internal/chat/repository"
	"GoChatter/internal/chat/service"
	"GoChatter/internal/config"
	"GoChatter/internal/dbmongo"
	"GoChatter/internal/dbmysql"
	"GoChatter/internal/user"
	"GoChatter/internal/ws"
)

// InitializeApplication builds the full dependency graph from one config.
// wire generates the real body into wire_gen.go.
func InitializeApplication(cfg *config.Config) (*Application, error) {
	wire.Build(
		dbmysql.NewMySQL,
		dbmongo.NewMongoConnection,
		dbmongo.NewMediaStorage,

		user.NewUserRepository,
		user.NewFriendRepository,
		user.NewUserService,
		user.NewFriendshipService,
		user.NewAuthHandler,
		user.NewUserHandler,
		user.NewFriendshipHandler,

		repository.NewConversationRepository,
		repository.NewMessageRepository,
		repository.NewReactionRepository,
		service.NewConversationService,
		service.NewMessageService,
		service.NewReactionService,
		handler.NewConversationHandler,
		handler.NewMessageHandler,
		handler.NewReactionHandler,

		ws.NewPresenceRegistry,
		ws.NewMembershipDirectory,
		ws.NewRouter,
		ws.NewHandler,

		provideUserDirectory,
		provideFriendshipGate,
		provideBroadcaster,
		provideRoster,
		provideSessionStore,
		provideMediaHandler,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
