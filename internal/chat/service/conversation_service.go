package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"GoChatter/internal/chat/repository"
	"GoChatter/internal/common"
	"GoChatter/internal/dbmysql"
	"GoChatter/internal/ws"
)

// ConversationService owns the conversation lifecycle: creation, membership,
// titles, leaving, disbanding, and the events each change fans out.
type ConversationService interface {
	Create(ctx context.Context, creatorID uuid.UUID, convType string, title *string, participantIDs []uuid.UUID) (*dbmysql.Conversation, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*ConversationView, error)
	Get(ctx context.Context, conversationID, userID uuid.UUID) (*dbmysql.Conversation, error)
	Participants(ctx context.Context, conversationID, userID uuid.UUID) ([]dbmysql.ConversationParticipant, error)
	UpdateTitle(ctx context.Context, conversationID, actorID uuid.UUID, title string) (*dbmysql.Conversation, error)
	Delete(ctx context.Context, conversationID, actorID uuid.UUID) error
	AddParticipant(ctx context.Context, conversationID, actorID, targetID uuid.UUID) error
	AddParticipants(ctx context.Context, conversationID, actorID uuid.UUID, targetIDs []uuid.UUID) (int, error)
	RemoveParticipant(ctx context.Context, conversationID, actorID, targetID uuid.UUID) error
	Leave(ctx context.Context, conversationID, userID uuid.UUID) error
	Unfriend(ctx context.Context, conversationID, userID uuid.UUID) error
}

type conversationService struct {
	conversations repository.ConversationRepository
	messages      repository.MessageRepository
	users         UserDirectory
	friends       FriendshipGate
	router        ws.Broadcaster
	roster        ws.Roster
}

func NewConversationService(
	conversations repository.ConversationRepository,
	messages repository.MessageRepository,
	users UserDirectory,
	friends FriendshipGate,
	router ws.Broadcaster,
	roster ws.Roster,
) ConversationService {
	return &conversationService{
		conversations: conversations,
		messages:      messages,
		users:         users,
		friends:       friends,
		router:        router,
		roster:        roster,
	}
}

// Create validates the participant set, persists the conversation with all
// its membership rows, and sends new_conversation to every participant, the
// creator included.
func (s *conversationService) Create(ctx context.Context, creatorID uuid.UUID, convType string, title *string, participantIDs []uuid.UUID) (*dbmysql.Conversation, error) {
	switch convType {
	case dbmysql.ConversationTypeDirect:
		if len(participantIDs) != 1 {
			return nil, common.InvalidArgument("direct conversation must have exactly 1 other participant")
		}
		existing, err := s.conversations.FindDirectBetween(ctx, creatorID, participantIDs[0])
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, common.Conflict("direct conversation already exists with this user")
		}
	case dbmysql.ConversationTypeGroup:
		if title == nil || *title == "" {
			return nil, common.InvalidArgument("group conversation must have a title")
		}
		if len(participantIDs)+1 > dbmysql.MaxGroupParticipants {
			return nil, common.InvalidState(fmt.Sprintf("group can have maximum %d members", dbmysql.MaxGroupParticipants))
		}
	default:
		return nil, common.InvalidArgument("conversation type must be direct or group")
	}

	if len(participantIDs) == 0 {
		return nil, common.InvalidArgument("at least 1 participant is required")
	}

	found, err := s.users.GetUsersByIDs(ctx, participantIDs)
	if err != nil {
		return nil, err
	}
	if len(found) != len(participantIDs) {
		return nil, common.NotFoundError("one or more participants not found")
	}

	conversation := &dbmysql.Conversation{
		Type:      convType,
		Title:     title,
		CreatedBy: creatorID,
	}
	conversation.Participants = append(conversation.Participants, dbmysql.ConversationParticipant{UserID: creatorID})
	for _, id := range participantIDs {
		conversation.Participants = append(conversation.Participants, dbmysql.ConversationParticipant{UserID: id})
	}
	if err := s.conversations.Create(ctx, conversation); err != nil {
		return nil, err
	}

	conversation, err = s.conversations.GetByID(ctx, conversation.ID)
	if err != nil {
		return nil, err
	}

	event := ws.NewEvent(ws.ConversationPayload{Conversation: conversationData(conversation)})
	for _, p := range conversation.Participants {
		s.roster.Join(p.UserID, conversation.ID)
		s.router.SendToUser(p.UserID, event)
	}
	return conversation, nil
}

// List returns the user's conversations newest-activity first, each carrying
// its latest message content and the caller's unread count.
func (s *conversationService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*ConversationView, error) {
	conversations, err := s.conversations.ListForUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	views := make([]*ConversationView, 0, len(conversations))
	for _, conversation := range conversations {
		view := &ConversationView{Conversation: conversation}
		last, err := s.messages.GetLastMessage(ctx, conversation.ID)
		if err != nil {
			return nil, err
		}
		if last != nil {
			view.LastMessage = &last.Content
		}
		view.UnreadCount, err = s.messages.CountUnread(ctx, conversation.ID, userID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *conversationService) Get(ctx context.Context, conversationID, userID uuid.UUID) (*dbmysql.Conversation, error) {
	conversation, err := s.conversations.GetByID(ctx, conversationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFoundError("conversation not found or you are not a participant")
	}
	if err != nil {
		return nil, err
	}
	member, err := s.conversations.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, common.NotFoundError("conversation not found or you are not a participant")
	}
	return conversation, nil
}

func (s *conversationService) Participants(ctx context.Context, conversationID, userID uuid.UUID) ([]dbmysql.ConversationParticipant, error) {
	member, err := s.conversations.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, common.PermissionDenied("you are not a participant in this conversation")
	}
	conversation, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return conversation.Participants, nil
}

// UpdateTitle renames a group. Only the creator may rename; an empty title
// leaves the current one untouched.
func (s *conversationService) UpdateTitle(ctx context.Context, conversationID, actorID uuid.UUID, title string) (*dbmysql.Conversation, error) {
	conversation, err := s.conversations.GetByID(ctx, conversationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFoundError("conversation not found")
	}
	if err != nil {
		return nil, err
	}
	if conversation.CreatedBy != actorID {
		return nil, common.PermissionDenied("only conversation creator can update")
	}
	if conversation.Type != dbmysql.ConversationTypeGroup {
		return nil, common.InvalidState("cannot update direct conversation")
	}
	if title == "" {
		return conversation, nil
	}
	if err := s.conversations.UpdateTitle(ctx, conversationID, title); err != nil {
		return nil, err
	}
	return s.conversations.GetByID(ctx, conversationID)
}

// Delete removes the conversation with all its messages and memberships.
// Creator only; no events, the conversation simply stops resolving.
func (s *conversationService) Delete(ctx context.Context, conversationID, actorID uuid.UUID) error {
	conversation, err := s.conversations.GetByID(ctx, conversationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NotFoundError("conversation not found")
	}
	if err != nil {
		return err
	}
	if conversation.CreatedBy != actorID {
		return common.PermissionDenied("only conversation creator can delete")
	}
	if err := s.conversations.Delete(ctx, conversationID); err != nil {
		return err
	}
	for _, p := range conversation.Participants {
		s.roster.Leave(p.UserID, conversationID)
	}
	return nil
}

// AddParticipant puts one friend of the creator into a group. The join is
// narrated with a system message to current members, and the new member gets
// the conversation pushed as new_conversation.
func (s *conversationService) AddParticipant(ctx context.Context, conversationID, actorID, targetID uuid.UUID) error {
	conversation, err := s.groupManagedBy(ctx, conversationID, actorID)
	if err != nil {
		return err
	}

	count, err := s.conversations.CountParticipants(ctx, conversationID)
	if err != nil {
		return err
	}
	if count >= dbmysql.MaxGroupParticipants {
		return common.InvalidState(fmt.Sprintf("group has reached maximum %d members", dbmysql.MaxGroupParticipants))
	}

	target, err := s.users.GetUserByID(ctx, targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NotFoundError("user not found")
	}
	if err != nil {
		return err
	}

	friends, err := s.friends.HasAcceptedFriendship(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if !friends {
		return common.PermissionDenied("you can only add friends to the group")
	}

	member, err := s.conversations.IsParticipant(ctx, conversationID, targetID)
	if err != nil {
		return err
	}
	if member {
		return common.Conflict("user is already a participant")
	}

	actor, err := s.users.GetUserByID(ctx, actorID)
	if err != nil {
		return err
	}

	notice := systemNotice(conversationID, fmt.Sprintf("%s added %s to the group", actor.DisplayName, target.DisplayName))
	participant := &dbmysql.ConversationParticipant{ConversationID: conversationID, UserID: targetID}
	if err := s.conversations.AddParticipant(ctx, participant, notice); err != nil {
		return err
	}

	s.router.BroadcastToConversation(conversationID, ws.NewEvent(systemMessagePayload(notice)))

	conversation, err = s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return err
	}
	s.router.SendToUser(targetID, ws.NewEvent(ws.ConversationPayload{Conversation: conversationData(conversation)}))
	s.roster.Join(targetID, conversationID)
	return nil
}

// AddParticipants adds several friends at once. Users already in the group
// are skipped; a missing user or a non-friend aborts the whole batch. One
// system message narrates all additions. Returns how many users were added.
func (s *conversationService) AddParticipants(ctx context.Context, conversationID, actorID uuid.UUID, targetIDs []uuid.UUID) (int, error) {
	if _, err := s.groupManagedBy(ctx, conversationID, actorID); err != nil {
		return 0, err
	}

	count, err := s.conversations.CountParticipants(ctx, conversationID)
	if err != nil {
		return 0, err
	}
	if count+int64(len(targetIDs)) > dbmysql.MaxGroupParticipants {
		return 0, common.InvalidState(fmt.Sprintf(
			"group can have maximum %d members, current: %d, trying to add: %d",
			dbmysql.MaxGroupParticipants, count, len(targetIDs)))
	}

	actor, err := s.users.GetUserByID(ctx, actorID)
	if err != nil {
		return 0, err
	}

	var (
		added        []*dbmysql.User
		participants []*dbmysql.ConversationParticipant
	)
	for _, targetID := range targetIDs {
		target, err := s.users.GetUserByID(ctx, targetID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, common.NotFoundError(fmt.Sprintf("user %s not found", targetID))
		}
		if err != nil {
			return 0, err
		}

		friends, err := s.friends.HasAcceptedFriendship(ctx, actorID, targetID)
		if err != nil {
			return 0, err
		}
		if !friends {
			return 0, common.PermissionDenied(fmt.Sprintf("you can only add friends, %s is not your friend", target.DisplayName))
		}

		member, err := s.conversations.IsParticipant(ctx, conversationID, targetID)
		if err != nil {
			return 0, err
		}
		if member {
			continue
		}

		added = append(added, target)
		participants = append(participants, &dbmysql.ConversationParticipant{ConversationID: conversationID, UserID: targetID})
	}

	if len(added) == 0 {
		return 0, nil
	}

	names := make([]string, 0, len(added))
	for _, user := range added {
		names = append(names, user.DisplayName)
	}
	notice := systemNotice(conversationID, fmt.Sprintf("%s added %s to the group", actor.DisplayName, joinNames(names)))
	if err := s.conversations.AddParticipants(ctx, participants, []*dbmysql.Message{notice}); err != nil {
		return 0, err
	}

	s.router.BroadcastToConversation(conversationID, ws.NewEvent(systemMessagePayload(notice)))

	conversation, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return len(added), err
	}
	event := ws.NewEvent(ws.ConversationPayload{Conversation: conversationData(conversation)})
	for _, user := range added {
		s.router.SendToUser(user.ID, event)
		s.roster.Join(user.ID, conversationID)
	}
	return len(added), nil
}

// RemoveParticipant kicks a member out of a group. Members may remove
// themselves; only the creator may remove others. The removal is silent:
// no system message, no event.
func (s *conversationService) RemoveParticipant(ctx context.Context, conversationID, actorID, targetID uuid.UUID) error {
	conversation, err := s.conversations.GetByID(ctx, conversationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NotFoundError("conversation not found")
	}
	if err != nil {
		return err
	}
	if conversation.Type != dbmysql.ConversationTypeGroup {
		return common.InvalidState("cannot remove participants from direct conversations")
	}
	if targetID != actorID && conversation.CreatedBy != actorID {
		return common.PermissionDenied("you can only remove yourself or be the creator to remove others")
	}

	err = s.conversations.RemoveParticipant(ctx, conversationID, targetID, nil)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NotFoundError("participant not found in conversation")
	}
	if err != nil {
		return err
	}
	s.roster.Leave(targetID, conversationID)
	return nil
}

// Leave removes the caller from a conversation. Leaving a direct chat just
// drops the membership row. Leaving a group writes a system message for the
// remaining members; if only one member would remain, the group disbands:
// the survivor is notified first, then the conversation is deleted whole.
func (s *conversationService) Leave(ctx context.Context, conversationID, userID uuid.UUID) error {
	if _, err := s.conversations.GetParticipant(ctx, conversationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NotFoundError("you are not a participant in this conversation")
		}
		return err
	}
	conversation, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return err
	}

	if conversation.Type == dbmysql.ConversationTypeDirect {
		if err := s.conversations.RemoveParticipant(ctx, conversationID, userID, nil); err != nil {
			return err
		}
		s.roster.Leave(userID, conversationID)
		return nil
	}

	leaver, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	notice := systemNotice(conversationID, fmt.Sprintf("%s left the group", leaver.DisplayName))
	if err := s.conversations.RemoveParticipant(ctx, conversationID, userID, notice); err != nil {
		return err
	}

	remaining, err := s.conversations.CountParticipants(ctx, conversationID)
	if err != nil {
		return err
	}
	if remaining == 1 {
		return s.disband(ctx, conversation, userID)
	}

	s.router.BroadcastToConversation(conversationID, ws.NewEvent(systemMessagePayload(notice)), userID)
	s.roster.Leave(userID, conversationID)
	return nil
}

// disband tears down a group reduced to a single member. The survivor is
// told first; the disband notice is synthesized rather than stored since the
// cascade delete would erase it immediately anyway.
func (s *conversationService) disband(ctx context.Context, conversation *dbmysql.Conversation, leaverID uuid.UUID) error {
	var lastID uuid.UUID
	for _, p := range conversation.Participants {
		if p.UserID != leaverID {
			lastID = p.UserID
			break
		}
	}

	notice := systemNotice(conversation.ID, "The group was automatically disbanded because you are the only member left")
	notice.ID = uuid.New()
	notice.CreatedAt = time.Now().UTC()
	s.router.SendToUser(lastID, ws.NewEvent(systemMessagePayload(notice)))

	if err := s.conversations.Delete(ctx, conversation.ID); err != nil {
		return err
	}
	s.roster.Leave(leaverID, conversation.ID)
	s.roster.Leave(lastID, conversation.ID)
	return nil
}

// Unfriend severs the accepted friendship behind a direct chat. The
// conversation itself stays.
func (s *conversationService) Unfriend(ctx context.Context, conversationID, userID uuid.UUID) error {
	conversation, err := s.conversations.GetByID(ctx, conversationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NotFoundError("conversation not found")
	}
	if err != nil {
		return err
	}
	if conversation.Type != dbmysql.ConversationTypeDirect {
		return common.InvalidState("can only unfriend in direct conversations")
	}

	var other *dbmysql.ConversationParticipant
	caller := false
	for i := range conversation.Participants {
		p := &conversation.Participants[i]
		if p.UserID == userID {
			caller = true
		} else {
			other = p
		}
	}
	if !caller {
		return common.PermissionDenied("you are not a participant in this conversation")
	}
	if other == nil {
		return common.InvalidState("direct conversation must have exactly 2 participants")
	}

	removed, err := s.friends.RemoveAcceptedFriendship(ctx, userID, other.UserID)
	if err != nil {
		return err
	}
	if !removed {
		return common.InvalidState("you are not friends with this user")
	}
	return nil
}

// groupManagedBy loads the conversation and checks it is a group whose
// creator is the actor. Shared by the participant-mutating operations.
func (s *conversationService) groupManagedBy(ctx context.Context, conversationID, actorID uuid.UUID) (*dbmysql.Conversation, error) {
	conversation, err := s.conversations.GetByID(ctx, conversationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFoundError("conversation not found")
	}
	if err != nil {
		return nil, err
	}
	if conversation.Type != dbmysql.ConversationTypeGroup {
		return nil, common.InvalidState("can only add participants to group conversations")
	}
	if conversation.CreatedBy != actorID {
		return nil, common.PermissionDenied("only conversation creator can add participants")
	}
	return conversation, nil
}
