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

// Pagination bounds for the friend list.
const (
	defaultSkip  = 0
	defaultLimit = 10
	maxLimit     = 100
)

// FriendLister defines the interface that the friend service must implement.
type FriendLister interface {
	ListFriends(ctx context.Context, userID int64, skip, limit int) ([]models.FriendshipDB, int64, error)
}

// FriendItem is one entry of the friend list
// swagger:model FriendItem
type FriendItem struct {
	// The friend's user id
	// default: 2
	FriendID int64 `json:"friend_id"`

	// Display label
	// default: Bob
	Name string `json:"name"`
}

// ListFriendsResponse represents one page of a user's friends
// swagger:model ListFriendsResponse
type ListFriendsResponse struct {
	// Page of friendships
	Items []FriendItem `json:"items"`

	// Total number of friendships for the user
	// default: 1
	Total int64 `json:"total"`

	// Zero-based offset of the page
	// default: 0
	Skip int `json:"skip"`

	// Page size bound
	// default: 10
	Limit int `json:"limit"`
}

// ListFriendsErrorResponse represents an error response for listing friends
// swagger:model ListFriendsErrorResponse
type ListFriendsErrorResponse struct {
	// Error message
	// default: Invalid pagination parameters
	Error string `json:"error"`
}

// NewListFriendsHandler returns an HTTP handler for listing a user's friends.
// The skip/limit bounds are validated before the user existence check.
// @Summary List friends
// @Description Returns one page of the user's friendships in insertion order plus the total count
// @Tags friends
// @Produce json
// @Param id path int true "User id"
// @Param skip query int false "Zero-based offset" default(0)
// @Param limit query int false "Page size, 1..100" default(10)
// @Success 200 {object} handlers.ListFriendsResponse "Page of friendships"
// @Failure 400 {object} handlers.ListFriendsErrorResponse "Invalid id or pagination parameters"
// @Failure 404 {object} handlers.ListFriendsErrorResponse "User not found"
// @Router /users/{id}/friends [get]
func NewListFriendsHandler(svc FriendLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			logger.Log.Warnw("invalid user id", "id", chi.URLParam(r, "id"))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListFriendsErrorResponse{Error: "Invalid user id"})
			return
		}

		skip, limit, err := parsePagination(r)
		if err != nil {
			logger.Log.Warnw("invalid pagination", "error", err,
				"skip", r.URL.Query().Get("skip"), "limit", r.URL.Query().Get("limit"))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListFriendsErrorResponse{Error: "Invalid pagination parameters"})
			return
		}

		items, total, err := svc.ListFriends(r.Context(), userID, skip, limit)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListFriendsErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListFriendsErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := ListFriendsResponse{
			Items: make([]FriendItem, 0, len(items)),
			Total: total,
			Skip:  skip,
			Limit: limit,
		}
		for _, item := range items {
			resp.Items = append(resp.Items, FriendItem{
				FriendID: item.FriendID,
				Name:     item.Name,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

func parsePagination(r *http.Request) (skip, limit int, err error) {
	skip, limit = defaultSkip, defaultLimit

	q := r.URL.Query()
	if raw := q.Get("skip"); raw != "" {
		if skip, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}
	if raw := q.Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}

	if skip < 0 {
		return 0, 0, errors.New("skip must be non-negative")
	}
	if limit < 1 || limit > maxLimit {
		return 0, 0, errors.New("limit must be between 1 and 100")
	}
	return skip, limit, nil
}
