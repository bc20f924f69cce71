package user

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"GoChatter/internal/common"
	"GoChatter/internal/dbmysql"
)

const searchResultLimit = 20

// FriendEntry pairs a friendship row with the counterpart's user row, so
// handlers never have to work out which side of the row the caller is on.
type FriendEntry struct {
	Friendship  *dbmysql.Friendship
	Counterpart *dbmysql.User
}

// FriendshipStatus describes the relation between two users; the optional
// fields are nil when no row exists.
type FriendshipStatus struct {
	AreFriends   bool
	Status       *string
	FriendshipID *uuid.UUID
	InitiatedBy  *uuid.UUID
}

// SearchResult is one user search hit with the caller's friendship row, if
// any.
type SearchResult struct {
	User       *dbmysql.User
	Friendship *dbmysql.Friendship
}

// FriendshipService drives the friend request lifecycle and the friend
// directory views.
type FriendshipService interface {
	SendRequest(ctx context.Context, userID, friendID uuid.UUID) (*dbmysql.Friendship, error)
	Respond(ctx context.Context, userID, friendshipID uuid.UUID, action string) (*dbmysql.Friendship, error)
	Received(ctx context.Context, userID uuid.UUID) ([]FriendEntry, error)
	Sent(ctx context.Context, userID uuid.UUID) ([]FriendEntry, error)
	Friends(ctx context.Context, userID uuid.UUID) ([]FriendEntry, error)
	Status(ctx context.Context, userID, otherID uuid.UUID) (*FriendshipStatus, error)
	Remove(ctx context.Context, userID, friendshipID uuid.UUID) error
	SearchUsers(ctx context.Context, userID uuid.UUID, query string) ([]SearchResult, error)
}

type friendshipService struct {
	friends FriendRepository
	users   UserRepository
}

func NewFriendshipService(friends FriendRepository, users UserRepository) FriendshipService {
	return &friendshipService{friends: friends, users: users}
}

// SendRequest creates a pending friendship toward friendID. A rejected row
// between the pair is recycled: it flips to pending with the caller as the
// new requester.
func (s *friendshipService) SendRequest(ctx context.Context, userID, friendID uuid.UUID) (*dbmysql.Friendship, error) {
	if friendID == userID {
		return nil, common.InvalidArgument("Cannot send friend request to yourself")
	}

	if _, err := s.users.GetUserByID(ctx, friendID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundError("User not found")
		}
		return nil, err
	}

	existing, err := s.friends.GetByPair(ctx, userID, friendID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		switch existing.Status {
		case dbmysql.FriendStatusPending:
			return nil, common.InvalidState("Friend request already sent or received")
		case dbmysql.FriendStatusAccepted:
			return nil, common.InvalidState("Already friends with this user")
		case dbmysql.FriendStatusBlocked:
			return nil, common.PermissionDenied("Cannot send friend request to this user")
		default:
			existing.Status = dbmysql.FriendStatusPending
			existing.UserID = userID
			existing.FriendID = friendID
			if err := s.friends.Update(ctx, existing); err != nil {
				return nil, err
			}
			return existing, nil
		}
	}

	friendship := &dbmysql.Friendship{
		UserID:   userID,
		FriendID: friendID,
		Status:   dbmysql.FriendStatusPending,
	}
	if err := s.friends.Create(ctx, friendship); err != nil {
		return nil, err
	}
	return friendship, nil
}

// Respond settles a pending request. Only the recipient may respond, and
// the action maps straight onto the stored status.
func (s *friendshipService) Respond(ctx context.Context, userID, friendshipID uuid.UUID, action string) (*dbmysql.Friendship, error) {
	if action != "accept" && action != "reject" && action != "block" {
		return nil, common.InvalidArgument("action must be accept, reject or block")
	}

	friendship, err := s.friends.GetByID(ctx, friendshipID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFoundError("Friend request not found")
	}
	if err != nil {
		return nil, err
	}

	if friendship.FriendID != userID {
		return nil, common.PermissionDenied("You can only respond to friend requests sent to you")
	}
	if friendship.Status != dbmysql.FriendStatusPending {
		return nil, common.InvalidState(fmt.Sprintf("Friend request is already %s", friendship.Status))
	}

	friendship.Status = action + "ed"
	if err := s.friends.Update(ctx, friendship); err != nil {
		return nil, err
	}
	return friendship, nil
}

func (s *friendshipService) Received(ctx context.Context, userID uuid.UUID) ([]FriendEntry, error) {
	friendships, err := s.friends.ListPendingIncoming(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := make([]FriendEntry, 0, len(friendships))
	for _, f := range friendships {
		entries = append(entries, FriendEntry{Friendship: f, Counterpart: f.User})
	}
	return entries, nil
}

func (s *friendshipService) Sent(ctx context.Context, userID uuid.UUID) ([]FriendEntry, error) {
	friendships, err := s.friends.ListPendingOutgoing(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := make([]FriendEntry, 0, len(friendships))
	for _, f := range friendships {
		entries = append(entries, FriendEntry{Friendship: f, Counterpart: f.Friend})
	}
	return entries, nil
}

// Friends lists accepted friendships ordered by the counterpart's display
// name.
func (s *friendshipService) Friends(ctx context.Context, userID uuid.UUID) ([]FriendEntry, error) {
	friendships, err := s.friends.ListAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := make([]FriendEntry, 0, len(friendships))
	for _, f := range friendships {
		counterpart := f.Friend
		if f.UserID != userID {
			counterpart = f.User
		}
		entries = append(entries, FriendEntry{Friendship: f, Counterpart: counterpart})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Counterpart.DisplayName < entries[j].Counterpart.DisplayName
	})
	return entries, nil
}

func (s *friendshipService) Status(ctx context.Context, userID, otherID uuid.UUID) (*FriendshipStatus, error) {
	friendship, err := s.friends.GetByPair(ctx, userID, otherID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &FriendshipStatus{}, nil
	}
	if err != nil {
		return nil, err
	}

	status := friendship.Status
	id := friendship.ID
	initiator := friendship.UserID
	return &FriendshipStatus{
		AreFriends:   friendship.Status == dbmysql.FriendStatusAccepted,
		Status:       &status,
		FriendshipID: &id,
		InitiatedBy:  &initiator,
	}, nil
}

// Remove deletes a friendship or cancels a pending request; either party
// may do it.
func (s *friendshipService) Remove(ctx context.Context, userID, friendshipID uuid.UUID) error {
	friendship, err := s.friends.GetByID(ctx, friendshipID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NotFoundError("Friendship not found")
	}
	if err != nil {
		return err
	}

	if friendship.UserID != userID && friendship.FriendID != userID {
		return common.PermissionDenied("You are not part of this friendship")
	}

	return s.friends.Delete(ctx, friendshipID)
}

// SearchUsers finds users by name fragment and decorates each hit with the
// caller's friendship row, so clients can render the right action button.
func (s *friendshipService) SearchUsers(ctx context.Context, userID uuid.UUID, query string) ([]SearchResult, error) {
	if utf8.RuneCountInString(query) < 2 {
		return nil, common.InvalidArgument("Search query must be at least 2 characters")
	}

	users, err := s.users.Search(ctx, query, userID, searchResultLimit)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(users))
	for _, u := range users {
		friendship, err := s.friends.GetByPair(ctx, userID, u.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		results = append(results, SearchResult{User: u, Friendship: friendship})
	}
	return results, nil
}
