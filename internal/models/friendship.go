package models

import "time"

// FriendshipDB represents a directed, named friend relationship.
// The (user_id, friend_id) pair is the primary key; A→B does not imply B→A.
type FriendshipDB struct {
	UserID    int64     `json:"user_id" db:"user_id"`
	FriendID  int64     `json:"friend_id" db:"friend_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
