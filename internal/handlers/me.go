package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fritime/auth-service/internal/jwt"
	"github.com/fritime/auth-service/internal/logger"
)

// MeTokener defines only the token methods needed by this handler.
type MeTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// MeResponse represents the decoded claims of the presented token
// swagger:model MeResponse
type MeResponse struct {
	// Subject user id
	// default: 1
	Sub string `json:"sub"`

	// Expiration as a Unix timestamp
	// default: 1700000000
	Exp int64 `json:"exp"`
}

// MeErrorResponse represents an error response for the profile endpoint
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	// default: Invalid token
	Error string `json:"error"`
}

// NewMeHandler returns an HTTP handler that echoes the claims of the
// caller's bearer token.
// @Summary Current user claims
// @Description Decodes the presented bearer token and returns its claims
// @Tags users
// @Produce json
// @Success 200 {object} handlers.MeResponse "Decoded token claims"
// @Failure 401 {object} handlers.MeErrorResponse "Missing, invalid or expired token"
// @Router /users/me [get]
// @Security BearerAuth
func NewMeHandler(tokener MeTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Warnw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{Error: "Invalid token"})
			return
		}

		claims, err := tokener.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Warnw("failed to decode token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{Error: "Invalid token"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MeResponse{
			Sub: claims.Subject,
			Exp: claims.ExpiresAt.Unix(),
		})
	}
}
