package services

import (
	"context"
	"errors"

	"github.com/fritime/auth-service/internal/logger"
	"github.com/fritime/auth-service/internal/models"
	"github.com/fritime/auth-service/internal/repositories"
)

// ErrFriendshipExists is returned when the ordered (user, friend) pair
// is already present.
var ErrFriendshipExists = errors.New("friendship already exists")

// FriendshipReader defines read-only operations for friendships.
type FriendshipReader interface {
	Exists(ctx context.Context, userID, friendID int64) (bool, error)
	ListByUserID(ctx context.Context, userID int64, skip, limit int) ([]models.FriendshipDB, error)
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}

// FriendshipWriter defines write operations for friendships.
type FriendshipWriter interface {
	Save(ctx context.Context, userID, friendID int64, name string) error
}

// FriendService manages the friend list of a user.
type FriendService struct {
	users  UserReader
	reader FriendshipReader
	writer FriendshipWriter
}

// NewFriendService creates a new FriendService instance.
func NewFriendService(users UserReader, reader FriendshipReader, writer FriendshipWriter) *FriendService {
	return &FriendService{
		users:  users,
		reader: reader,
		writer: writer,
	}
}

// AddFriend records a directed friendship from userID to friendID. Both
// users must exist; the existence checks run before the duplicate check.
// Like registration, the duplicate pre-check is best effort and the storage
// constraint settles concurrent adds.
func (svc *FriendService) AddFriend(ctx context.Context, userID, friendID int64, name string) error {
	for _, id := range []int64{userID, friendID} {
		user, err := svc.users.GetByID(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to check user", "id", id, "err", err)
			return err
		}
		if user == nil {
			logger.Log.Warnw("user not found", "id", id)
			return ErrUserNotFound
		}
	}

	exists, err := svc.reader.Exists(ctx, userID, friendID)
	if err != nil {
		logger.Log.Errorw("failed to check friendship", "err", err)
		return err
	}
	if exists {
		logger.Log.Warnw("friendship already exists", "user_id", userID, "friend_id", friendID)
		return ErrFriendshipExists
	}

	if err := svc.writer.Save(ctx, userID, friendID, name); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Warnw("friendship already exists", "user_id", userID, "friend_id", friendID)
			return ErrFriendshipExists
		}
		logger.Log.Errorw("failed to save friendship", "err", err)
		return err
	}

	return nil
}

// ListFriends returns one page of the user's friendships in insertion order,
// plus the total count for pagination metadata.
func (svc *FriendService) ListFriends(ctx context.Context, userID int64, skip, limit int) ([]models.FriendshipDB, int64, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user", "id", userID, "err", err)
		return nil, 0, err
	}
	if user == nil {
		logger.Log.Warnw("user not found", "id", userID)
		return nil, 0, ErrUserNotFound
	}

	items, err := svc.reader.ListByUserID(ctx, userID, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list friendships", "err", err)
		return nil, 0, err
	}

	total, err := svc.reader.CountByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count friendships", "err", err)
		return nil, 0, err
	}

	return items, total, nil
}
