package models

// UserDB represents a user record in the database
type UserDB struct {
	ID             int64  `json:"id" db:"id"`                           // Primary key, caller-supplied
	Email          string `json:"email" db:"email"`                     // Unique email
	HashedPassword string `json:"hashed_password" db:"hashed_password"` // bcrypt hash, never the plaintext
	IsActive       bool   `json:"is_active" db:"is_active"`             // Defaults to true
}
