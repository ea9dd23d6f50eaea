package ctrl

import (
	"context"
	"errors"
	"testing"

	"github.com/medicard/backend/internal/dto"
	"github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo"
	"github.com/medicard/backend/tests/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestController_GetUserByID(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, nil)

	testUser := &models.User{
		ID:        int64(42),
		FirstName: "Jan",
		LastName:  "Kowalski",
		Email:     "jan@example.com",
	}

	tests := []struct {
		name     string
		setup    func()
		input    int64
		expected *models.User
		wantErr  bool
		err      error
	}{
		{
			name: "CacheHit",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), "user:42", gomock.Any()).
					DoAndReturn(
						func(_ context.Context, _ string, dest any) error {
							*dest.(*models.User) = *testUser
							return nil
						},
					)
			},
			input:    testUser.ID,
			expected: testUser,
			wantErr:  false,
		},
		{
			name: "CacheMiss",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), "user:42", gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testUser.ID).
					Return(testUser, nil)
				mockCache.EXPECT().
					Set(gomock.Any(), gomock.Any(), "user:42", gomock.Any())
			},
			input:    testUser.ID,
			expected: testUser,
			wantErr:  false,
		},
		{
			name: "NotFound",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), "user:42", gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testUser.ID).
					Return(nil, repo.ErrNotFound)
			},
			input:   testUser.ID,
			wantErr: true,
			err:     ErrNotFound,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), "user:42", gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testUser.ID).
					Return(nil, errors.New("db error"))
			},
			input:   testUser.ID,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				res, err := ctrl.GetUserByID(ctx, tt.input)
				if tt.wantErr {
					assert.Error(t, err)
					if tt.err != nil {
						assert.ErrorIs(t, err, tt.err)
					}
					return
				}

				assert.NoError(t, err)
				assert.Equal(t, tt.expected, res)
			},
		)
	}
}

func TestController_RegisterUser(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, nil)

	mockCache.EXPECT().
		InvalidateKeysByPattern(gomock.Any(), userPattern).
		AnyTimes()

	tests := []struct {
		name     string
		setup    func()
		input    *dto.RegisterUserRequest
		expected int64
		wantErr  bool
		err      error
	}{
		{
			name: "Success",
			setup: func() {
				mockAuth.EXPECT().
					Hash("plainpassword").
					Return("$2a$10$hashed", nil)
				mockRepo.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(
						func(_ context.Context, req *dto.RegisterUserRequest) (int64, error) {
							assert.Equal(t, "$2a$10$hashed", req.Password)
							assert.Equal(t, models.RolePatient, req.Role)
							return int64(42), nil
						},
					)
			},
			input: &dto.RegisterUserRequest{
				Email:    "jan@example.com",
				Password: "plainpassword",
			},
			expected: int64(42),
			wantErr:  false,
		},
		{
			name: "ExplicitRoleKept",
			setup: func() {
				mockAuth.EXPECT().
					Hash("plainpassword").
					Return("$2a$10$hashed", nil)
				mockRepo.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(
						func(_ context.Context, req *dto.RegisterUserRequest) (int64, error) {
							assert.Equal(t, models.RoleDoctor, req.Role)
							return int64(43), nil
						},
					)
			},
			input: &dto.RegisterUserRequest{
				Email:    "doctor@example.com",
				Password: "plainpassword",
				Role:     models.RoleDoctor,
			},
			expected: int64(43),
			wantErr:  false,
		},
		{
			name: "HashError",
			setup: func() {
				mockAuth.EXPECT().
					Hash("plainpassword").
					Return("", errors.New("hash error"))
			},
			input: &dto.RegisterUserRequest{
				Email:    "jan@example.com",
				Password: "plainpassword",
			},
			wantErr: true,
		},
		{
			name: "AlreadyExists",
			setup: func() {
				mockAuth.EXPECT().
					Hash("plainpassword").
					Return("$2a$10$hashed", nil)
				mockRepo.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(int64(0), repo.ErrAlreadyExists)
			},
			input: &dto.RegisterUserRequest{
				Email:    "jan@example.com",
				Password: "plainpassword",
			},
			wantErr: true,
			err:     ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				id, err := ctrl.RegisterUser(ctx, tt.input)
				if tt.wantErr {
					assert.Error(t, err)
					if tt.err != nil {
						assert.ErrorIs(t, err, tt.err)
					}
					return
				}

				assert.NoError(t, err)
				assert.Equal(t, tt.expected, id)
			},
		)
	}
}

func TestController_DeleteUser(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, nil)

	mockCache.EXPECT().
		InvalidateKeysByPattern(gomock.Any(), userPattern).
		AnyTimes()

	tests := []struct {
		name    string
		setup   func()
		input   int64
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					DeleteUser(gomock.Any(), int64(42)).
					Return(nil)
				mockCache.EXPECT().
					Delete(gomock.Any(), "user:42")
				mockCache.EXPECT().
					Delete(gomock.Any(), "user-role:42")
			},
			input:   int64(42),
			wantErr: false,
		},
		{
			name: "NotFound",
			setup: func() {
				mockRepo.EXPECT().
					DeleteUser(gomock.Any(), int64(42)).
					Return(repo.ErrNotFound)
			},
			input:   int64(42),
			wantErr: true,
			err:     ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				err := ctrl.DeleteUser(ctx, tt.input)
				if tt.wantErr {
					assert.Error(t, err)
					if tt.err != nil {
						assert.ErrorIs(t, err, tt.err)
					}
					return
				}

				assert.NoError(t, err)
			},
		)
	}
}
