package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fritime/auth-service/internal/logger"
	"github.com/fritime/auth-service/internal/services"
)

// maxFriendNameLen bounds the friendship display label.
const maxFriendNameLen = 50

// FriendAdder defines the interface that the friend service must implement.
type FriendAdder interface {
	AddFriend(ctx context.Context, userID, friendID int64, name string) error
}

// AddFriendRequest represents the JSON body for adding a friend
// swagger:model AddFriendRequest
type AddFriendRequest struct {
	// Id of the user being added as a friend
	// required: true
	// default: 2
	FriendID int64 `json:"friend_id"`

	// Display label for the friendship
	// required: true
	// default: Bob
	Name string `json:"name"`
}

// AddFriendResponse represents a successfully created friendship
// swagger:model AddFriendResponse
type AddFriendResponse struct {
	// Owner of the friendship
	// default: 1
	UserID int64 `json:"user_id"`

	// The added friend
	// default: 2
	FriendID int64 `json:"friend_id"`

	// Display label
	// default: Bob
	Name string `json:"name"`
}

// AddFriendErrorResponse represents an error response for adding a friend
// swagger:model AddFriendErrorResponse
type AddFriendErrorResponse struct {
	// Error message
	// default: Friendship already exists
	Error string `json:"error"`
}

// NewAddFriendHandler returns an HTTP handler for adding a friend.
// @Summary Add a friend
// @Description Creates a directed, named friendship from the path user to the body friend. Both users must exist and the pair must not be friended yet.
// @Tags friends
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param addFriendRequest body handlers.AddFriendRequest true "Friend to add"
// @Success 200 {object} handlers.AddFriendResponse "Friendship created"
// @Failure 400 {object} handlers.AddFriendErrorResponse "Invalid id, body or name"
// @Failure 404 {object} handlers.AddFriendErrorResponse "Either user not found"
// @Failure 409 {object} handlers.AddFriendErrorResponse "Friendship already exists"
// @Router /users/{id}/friends [post]
func NewAddFriendHandler(svc FriendAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			logger.Log.Warnw("invalid user id", "id", chi.URLParam(r, "id"))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddFriendErrorResponse{Error: "Invalid user id"})
			return
		}

		var req AddFriendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode add friend request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddFriendErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Name == "" || len(req.Name) > maxFriendNameLen {
			logger.Log.Warnw("invalid friend name", "name", req.Name)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddFriendErrorResponse{Error: "Invalid friend name"})
			return
		}

		if err := svc.AddFriend(r.Context(), userID, req.FriendID, req.Name); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AddFriendErrorResponse{Error: "User not found"})
			case errors.Is(err, services.ErrFriendshipExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(AddFriendErrorResponse{Error: "Friendship already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AddFriendErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AddFriendResponse{
			UserID:   userID,
			FriendID: req.FriendID,
			Name:     req.Name,
		})
	}
}
