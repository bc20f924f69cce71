package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"GoChatter/internal/chat/repository"
	"GoChatter/internal/common"
	"GoChatter/internal/dbmysql"
	"GoChatter/internal/ws"
)

const maxEmojiLength = 10

// ReactionService keeps the per-(message, user, emoji) reaction set and
// serves the aggregated summary view.
type ReactionService interface {
	Add(ctx context.Context, messageID, userID uuid.UUID, emoji string) (*dbmysql.MessageReaction, error)
	Remove(ctx context.Context, messageID, userID uuid.UUID, emoji string) error
	Summarize(ctx context.Context, messageID, userID uuid.UUID) (*MessageReactions, error)
}

type reactionService struct {
	reactions     repository.ReactionRepository
	messages      repository.MessageRepository
	conversations repository.ConversationRepository
	users         UserDirectory
	router        ws.Broadcaster
}

func NewReactionService(
	reactions repository.ReactionRepository,
	messages repository.MessageRepository,
	conversations repository.ConversationRepository,
	users UserDirectory,
	router ws.Broadcaster,
) ReactionService {
	return &reactionService{
		reactions:     reactions,
		messages:      messages,
		conversations: conversations,
		users:         users,
		router:        router,
	}
}

// Add reacts to a message. Repeating an identical reaction returns the
// existing row without a new event, so retries are harmless.
func (s *reactionService) Add(ctx context.Context, messageID, userID uuid.UUID, emoji string) (*dbmysql.MessageReaction, error) {
	if emoji == "" || utf8.RuneCountInString(emoji) > maxEmojiLength {
		return nil, common.InvalidArgument("emoji must be 1 to 10 characters")
	}

	message, err := s.messages.GetByID(ctx, messageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFoundError("message not found")
	}
	if err != nil {
		return nil, err
	}

	member, err := s.conversations.IsParticipant(ctx, message.ConversationID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, common.PermissionDenied("you are not a participant in this conversation")
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.reactions.Get(ctx, messageID, userID, emoji)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		existing.User = *user
		return existing, nil
	}

	reaction := &dbmysql.MessageReaction{
		MessageID: messageID,
		UserID:    userID,
		Emoji:     emoji,
	}
	if err := s.reactions.Create(ctx, reaction); err != nil {
		return nil, err
	}
	reaction.User = *user

	s.router.BroadcastToConversation(message.ConversationID, ws.NewEvent(ws.ReactionAddedPayload{
		ConversationID: message.ConversationID,
		MessageID:      messageID,
		UserID:         userID,
		Username:       user.Username,
		Emoji:          emoji,
		CreatedAt:      reaction.CreatedAt,
	}))
	return reaction, nil
}

// Remove deletes the caller's reaction and broadcasts reaction_removed.
// Removing a reaction that was never added is NotFound.
func (s *reactionService) Remove(ctx context.Context, messageID, userID uuid.UUID, emoji string) error {
	message, err := s.messages.GetByID(ctx, messageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NotFoundError("message not found")
	}
	if err != nil {
		return err
	}

	removed, err := s.reactions.Delete(ctx, messageID, userID, emoji)
	if err != nil {
		return err
	}
	if !removed {
		return common.NotFoundError("reaction not found")
	}

	s.router.BroadcastToConversation(message.ConversationID, ws.NewEvent(ws.ReactionRemovedPayload{
		ConversationID: message.ConversationID,
		MessageID:      messageID,
		UserID:         userID,
		Emoji:          emoji,
	}))
	return nil
}

// Summarize groups a message's reactions by emoji, in order of first use,
// and marks the buckets the requesting user is part of.
func (s *reactionService) Summarize(ctx context.Context, messageID, userID uuid.UUID) (*MessageReactions, error) {
	message, err := s.messages.GetByID(ctx, messageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFoundError("message not found")
	}
	if err != nil {
		return nil, err
	}

	member, err := s.conversations.IsParticipant(ctx, message.ConversationID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, common.PermissionDenied("you are not a participant in this conversation")
	}

	reactions, err := s.reactions.ListByMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}

	var order []string
	buckets := make(map[string]*ReactionSummary)
	for _, reaction := range reactions {
		bucket, ok := buckets[reaction.Emoji]
		if !ok {
			bucket = &ReactionSummary{Emoji: reaction.Emoji}
			buckets[reaction.Emoji] = bucket
			order = append(order, reaction.Emoji)
		}
		bucket.Count++
		bucket.Users = append(bucket.Users, Reactor{
			UserID:      reaction.UserID,
			Username:    reaction.User.Username,
			DisplayName: reaction.User.DisplayName,
		})
		if reaction.UserID == userID {
			bucket.ReactedByMe = true
		}
	}

	summary := &MessageReactions{
		MessageID: messageID,
		Reactions: make([]ReactionSummary, 0, len(order)),
		Total:     len(reactions),
	}
	for _, emoji := range order {
		summary.Reactions = append(summary.Reactions, *buckets[emoji])
	}
	return summary, nil
}
