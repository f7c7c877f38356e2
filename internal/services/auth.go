package services

import (
	"context"
	"errors"

	"github.com/fritime/auth-service/internal/logger"
	"github.com/fritime/auth-service/internal/models"
	"github.com/fritime/auth-service/internal/password"
	"github.com/fritime/auth-service/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user id or email already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, id int64, email, hashedPassword string) error
}

// TokenGenerator defines an interface for issuing access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user with the caller-supplied id. The id and email
// checks are best effort; a concurrent registration is still caught by the
// storage constraint and reported as ErrUserAlreadyExists.
func (svc *AuthService) Register(ctx context.Context, id int64, email, plainPassword string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to check user id", "err", err)
		return nil, err
	}
	if existing == nil {
		if existing, err = svc.reader.GetByEmail(ctx, email); err != nil {
			logger.Log.Errorw("failed to check user email", "err", err)
			return nil, err
		}
	}
	if existing != nil {
		logger.Log.Warnw("user already exists", "id", id, "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashed, err := password.Hash(plainPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	if err := svc.writer.Save(ctx, id, email, hashed); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Warnw("user already exists", "id", id, "email", email)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return &models.UserDB{
		ID:             id,
		Email:          email,
		HashedPassword: hashed,
		IsActive:       true,
	}, nil
}

// Login authenticates a user by email and returns a signed access token.
// ErrUserDoesNotExist and ErrInvalidCredentials are distinct here; handlers
// present them identically so the response does not reveal which one it was.
func (svc *AuthService) Login(ctx context.Context, email, plainPassword string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "email", email)
		return "", ErrUserDoesNotExist
	}

	if !password.Verify(plainPassword, user.HashedPassword) {
		logger.Log.Warnw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}
