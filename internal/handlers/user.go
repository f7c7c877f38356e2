package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fritime/auth-service/internal/logger"
	"github.com/fritime/auth-service/internal/models"
	"github.com/fritime/auth-service/internal/services"
)

// UserGetter defines the interface that the user service must implement.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, []int64, error)
}

// UserResponse represents a user profile with its friend ids
// swagger:model UserResponse
type UserResponse struct {
	// User id
	// default: 1
	ID int64 `json:"id"`

	// Email
	// default: john@example.com
	Email string `json:"email"`

	// Whether the account is active
	// default: true
	IsActive bool `json:"is_active"`

	// Ids of the user's friends
	Friends []int64 `json:"friends"`
}

// UserErrorResponse represents an error response for user lookup
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewGetUserHandler returns an HTTP handler for fetching a user by id.
// @Summary Get user by id
// @Description Returns the user profile and the ids of its friends
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} handlers.UserResponse "User profile"
// @Failure 400 {object} handlers.UserErrorResponse "Invalid user id"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			logger.Log.Warnw("invalid user id", "id", chi.URLParam(r, "id"))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Invalid user id"})
			return
		}

		user, friendIDs, err := svc.GetByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "Internal server error"})
			}
			return
		}

		if friendIDs == nil {
			friendIDs = []int64{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			IsActive: user.IsActive,
			Friends:  friendIDs,
		})
	}
}
