package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fritime/auth-service/internal/models"
	"github.com/fritime/auth-service/internal/services"
)

func TestUserService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		id          int64
		mockSetup   func(reader *services.MockUserReader, friends *services.MockFriendIDLister)
		wantFriends []int64
		wantErr     error
	}{
		{
			name: "user with friends",
			id:   1,
			mockSetup: func(reader *services.MockUserReader, friends *services.MockFriendIDLister) {
				reader.EXPECT().GetByID(gomock.Any(), int64(1)).
					Return(&models.UserDB{ID: 1, Email: "a@x.com", IsActive: true}, nil)
				friends.EXPECT().ListFriendIDs(gomock.Any(), int64(1)).Return([]int64{2, 3}, nil)
			},
			wantFriends: []int64{2, 3},
		},
		{
			name: "user without friends",
			id:   2,
			mockSetup: func(reader *services.MockUserReader, friends *services.MockFriendIDLister) {
				reader.EXPECT().GetByID(gomock.Any(), int64(2)).
					Return(&models.UserDB{ID: 2, Email: "b@x.com", IsActive: true}, nil)
				friends.EXPECT().ListFriendIDs(gomock.Any(), int64(2)).Return([]int64{}, nil)
			},
			wantFriends: []int64{},
		},
		{
			name: "user not found",
			id:   3,
			mockSetup: func(reader *services.MockUserReader, friends *services.MockFriendIDLister) {
				reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, nil)
			},
			wantErr: services.ErrUserNotFound,
		},
		{
			name: "reader error",
			id:   4,
			mockSetup: func(reader *services.MockUserReader, friends *services.MockFriendIDLister) {
				reader.EXPECT().GetByID(gomock.Any(), int64(4)).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name: "friend lister error",
			id:   5,
			mockSetup: func(reader *services.MockUserReader, friends *services.MockFriendIDLister) {
				reader.EXPECT().GetByID(gomock.Any(), int64(5)).
					Return(&models.UserDB{ID: 5, Email: "e@x.com", IsActive: true}, nil)
				friends.EXPECT().ListFriendIDs(gomock.Any(), int64(5)).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockFriends := services.NewMockFriendIDLister(ctrl)
			tt.mockSetup(mockReader, mockFriends)

			svc := services.NewUserService(mockReader, mockFriends)

			user, friendIDs, err := svc.GetByID(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.id, user.ID)
			assert.Equal(t, tt.wantFriends, friendIDs)
		})
	}
}
