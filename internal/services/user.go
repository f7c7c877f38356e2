package services

import (
	"context"
	"errors"

	"github.com/fritime/auth-service/internal/logger"
	"github.com/fritime/auth-service/internal/models"
)

// ErrUserNotFound is returned when a referenced user does not exist.
var ErrUserNotFound = errors.New("user not found")

// FriendIDLister lists the ids of a user's friends.
type FriendIDLister interface {
	ListFriendIDs(ctx context.Context, userID int64) ([]int64, error)
}

// UserService serves user profiles.
type UserService struct {
	reader  UserReader
	friends FriendIDLister
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, friends FriendIDLister) *UserService {
	return &UserService{
		reader:  reader,
		friends: friends,
	}
}

// GetByID returns the user and the ids of its friends.
func (svc *UserService) GetByID(ctx context.Context, id int64) (*models.UserDB, []int64, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	friendIDs, err := svc.friends.ListFriendIDs(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to list friend ids", "err", err)
		return nil, nil, err
	}

	return user, friendIDs, nil
}
