package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fritime/auth-service/internal/models"
	"github.com/fritime/auth-service/internal/services"
)

func TestListFriendsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page := []models.FriendshipDB{
		{UserID: 1, FriendID: 2, Name: "Bob"},
		{UserID: 1, FriendID: 3, Name: "Carol"},
	}

	tests := []struct {
		name         string
		path         string
		mockSetup    func(m *MockFriendLister)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "explicit skip and limit",
			path: "/users/1/friends?skip=0&limit=2",
			mockSetup: func(m *MockFriendLister) {
				m.EXPECT().ListFriends(gomock.Any(), int64(1), 0, 2).Return(page, int64(5), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{
				"items": []any{
					map[string]any{"friend_id": float64(2), "name": "Bob"},
					map[string]any{"friend_id": float64(3), "name": "Carol"},
				},
				"total": float64(5), "skip": float64(0), "limit": float64(2),
			},
		},
		{
			name: "defaults applied",
			path: "/users/1/friends",
			mockSetup: func(m *MockFriendLister) {
				m.EXPECT().ListFriends(gomock.Any(), int64(1), 0, 10).
					Return([]models.FriendshipDB{}, int64(0), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{
				"items": []any{},
				"total": float64(0), "skip": float64(0), "limit": float64(10),
			},
		},
		{
			name:         "negative skip",
			path:         "/users/1/friends?skip=-1",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid pagination parameters"},
		},
		{
			name:         "zero limit",
			path:         "/users/1/friends?limit=0",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid pagination parameters"},
		},
		{
			name:         "limit above maximum",
			path:         "/users/1/friends?limit=101",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid pagination parameters"},
		},
		{
			name:         "non-numeric limit",
			path:         "/users/1/friends?limit=abc",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid pagination parameters"},
		},
		{
			name:         "invalid user id",
			path:         "/users/abc/friends",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid user id"},
		},
		{
			name: "user not found",
			path: "/users/99/friends",
			mockSetup: func(m *MockFriendLister) {
				m.EXPECT().ListFriends(gomock.Any(), int64(99), 0, 10).
					Return(nil, int64(0), services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]any{"error": "User not found"},
		},
		{
			name: "internal server error",
			path: "/users/1/friends",
			mockSetup: func(m *MockFriendLister) {
				m.EXPECT().ListFriends(gomock.Any(), int64(1), 0, 10).
					Return(nil, int64(0), errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFriendLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Get("/users/{id}/friends", NewListFriendsHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
