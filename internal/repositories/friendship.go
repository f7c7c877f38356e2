package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fritime/auth-service/internal/logger"
	"github.com/fritime/auth-service/internal/models"
)

type FriendshipReadRepository struct {
	db *sqlx.DB
}

func NewFriendshipReadRepository(db *sqlx.DB) *FriendshipReadRepository {
	return &FriendshipReadRepository{db: db}
}

// Exists reports whether the ordered (userID, friendID) pair is already present.
func (r *FriendshipReadRepository) Exists(ctx context.Context, userID, friendID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM friends WHERE user_id = $1 AND friend_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, friendID)

	logger.Log.Infow("friendship query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, friendID},
		"error", err,
	)

	return exists, err
}

// ListByUserID returns a page of the user's friendships in insertion order.
func (r *FriendshipReadRepository) ListByUserID(ctx context.Context, userID int64, skip, limit int) ([]models.FriendshipDB, error) {
	const query = `
		SELECT user_id, friend_id, name, created_at
		FROM friends
		WHERE user_id = $1
		ORDER BY created_at, friend_id
		OFFSET $2 LIMIT $3
	`

	items := []models.FriendshipDB{}
	err := r.db.SelectContext(ctx, &items, query, userID, skip, limit)

	logger.Log.Infow("friendship query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, skip, limit},
		"count", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// CountByUserID returns the total number of friendships for the user.
func (r *FriendshipReadRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	const query = `
		SELECT COUNT(*) FROM friends WHERE user_id = $1
	`

	var total int64
	err := r.db.GetContext(ctx, &total, query, userID)

	logger.Log.Infow("friendship query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return total, err
}

// ListFriendIDs returns the ids of all friends of the user in insertion order.
func (r *FriendshipReadRepository) ListFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	const query = `
		SELECT friend_id
		FROM friends
		WHERE user_id = $1
		ORDER BY created_at, friend_id
	`

	ids := []int64{}
	err := r.db.SelectContext(ctx, &ids, query, userID)

	logger.Log.Infow("friendship query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(ids),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return ids, nil
}

type FriendshipWriteRepository struct {
	db *sqlx.DB
}

func NewFriendshipWriteRepository(db *sqlx.DB) *FriendshipWriteRepository {
	return &FriendshipWriteRepository{db: db}
}

// Save inserts a new friendship row. It returns ErrUniqueViolation when the
// ordered pair already exists.
func (r *FriendshipWriteRepository) Save(ctx context.Context, userID, friendID int64, name string) error {
	const query = `
		INSERT INTO friends (user_id, friend_id, name)
		VALUES ($1, $2, $3)
	`
	args := []any{userID, friendID, name}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("friendship insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows_affected", rowsAffected,
		"error", err,
	)

	if isUniqueViolation(err) {
		return ErrUniqueViolation
	}
	return err
}
