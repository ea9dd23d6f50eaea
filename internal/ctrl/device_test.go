package ctrl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medicard/backend/internal/auth"
	"github.com/medicard/backend/internal/dto"
	"github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo"
	"github.com/medicard/backend/tests/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestController_DeviceLogin(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, nil)

	testRequest := &dto.DeviceLoginRequest{
		ID:  int64(7),
		Pin: "1234",
	}
	testDevice := &models.Device{
		ID:  int64(7),
		Pin: "1234",
	}

	tests := []struct {
		name    string
		setup   func()
		input   *dto.DeviceLoginRequest
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.ID).
					Return(testDevice, nil)
			},
			input:   testRequest,
			wantErr: false,
		},
		{
			name: "DeviceNotFound",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.ID).
					Return(nil, repo.ErrNotFound)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrDeviceNotFound,
		},
		{
			name: "WrongPin",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.ID).
					Return(&models.Device{ID: int64(7), Pin: "9999"}, nil)
			},
			input:   testRequest,
			wantErr: true,
			err:     auth.ErrInvalidCredentials,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.ID).
					Return(nil, errors.New("db error"))
			},
			input:   testRequest,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				err := ctrl.DeviceLogin(ctx, tt.input)
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

func TestController_AddUserToDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, nil)

	testRequest := &dto.DeviceUserRequest{
		UserID:   int64(42),
		DeviceID: int64(7),
		Pin:      "555888",
	}
	testDevice := &models.Device{ID: int64(7), Pin: "1234"}
	testUser := &models.User{ID: int64(42)}
	freshPin := &models.DeviceVerificationPin{
		DeviceID: int64(7),
		Pin:      "555888",
		IssuedAt: time.Now(),
	}

	tests := []struct {
		name    string
		setup   func()
		input   *dto.DeviceUserRequest
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.DeviceID).
					Return(testDevice, nil)
				mockRepo.EXPECT().
					GetVerificationPin(gomock.Any(), testRequest.DeviceID).
					Return(freshPin, nil)
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testRequest.UserID).
					Return(testUser, nil)
				mockRepo.EXPECT().
					LinkUserToDevice(gomock.Any(), testRequest.UserID, testRequest.DeviceID).
					Return(true, nil)
			},
			input:   testRequest,
			wantErr: false,
		},
		{
			name: "DeviceNotFound",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.DeviceID).
					Return(nil, repo.ErrNotFound)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrDeviceNotFound,
		},
		{
			name: "NoPinIssued",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.DeviceID).
					Return(testDevice, nil)
				mockRepo.EXPECT().
					GetVerificationPin(gomock.Any(), testRequest.DeviceID).
					Return(nil, repo.ErrNotFound)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrVerificationPinExpired,
		},
		{
			name: "StalePin",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.DeviceID).
					Return(testDevice, nil)
				mockRepo.EXPECT().
					GetVerificationPin(gomock.Any(), testRequest.DeviceID).
					Return(
						&models.DeviceVerificationPin{
							DeviceID: testRequest.DeviceID,
							Pin:      testRequest.Pin,
							IssuedAt: time.Now().Add(-time.Minute),
						}, nil,
					)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrVerificationPinExpired,
		},
		{
			name: "PinMismatch",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.DeviceID).
					Return(testDevice, nil)
				mockRepo.EXPECT().
					GetVerificationPin(gomock.Any(), testRequest.DeviceID).
					Return(
						&models.DeviceVerificationPin{
							DeviceID: testRequest.DeviceID,
							Pin:      "000000",
							IssuedAt: time.Now(),
						}, nil,
					)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrPinMismatch,
		},
		{
			name: "UserNotFound",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.DeviceID).
					Return(testDevice, nil)
				mockRepo.EXPECT().
					GetVerificationPin(gomock.Any(), testRequest.DeviceID).
					Return(freshPin, nil)
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testRequest.UserID).
					Return(nil, repo.ErrNotFound)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrUserNotFound,
		},
		{
			name: "AlreadyLinked",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.DeviceID).
					Return(testDevice, nil)
				mockRepo.EXPECT().
					GetVerificationPin(gomock.Any(), testRequest.DeviceID).
					Return(freshPin, nil)
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testRequest.UserID).
					Return(testUser, nil)
				mockRepo.EXPECT().
					LinkUserToDevice(gomock.Any(), testRequest.UserID, testRequest.DeviceID).
					Return(false, nil)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrAlreadyExists,
		},
		{
			name: "LinkError",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.DeviceID).
					Return(testDevice, nil)
				mockRepo.EXPECT().
					GetVerificationPin(gomock.Any(), testRequest.DeviceID).
					Return(freshPin, nil)
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testRequest.UserID).
					Return(testUser, nil)
				mockRepo.EXPECT().
					LinkUserToDevice(gomock.Any(), testRequest.UserID, testRequest.DeviceID).
					Return(false, errors.New("db error"))
			},
			input:   testRequest,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				err := ctrl.AddUserToDevice(ctx, tt.input)
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

func TestController_ChooseDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, nil)

	testRequest := &dto.ChooseDeviceRequest{
		UserID:   int64(42),
		DeviceID: int64(7),
	}
	testUser := &models.User{ID: int64(42)}

	tests := []struct {
		name    string
		setup   func()
		input   *dto.ChooseDeviceRequest
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testRequest.UserID).
					Return(testUser, nil)
				mockRepo.EXPECT().
					SetDeviceLastUser(gomock.Any(), testRequest.DeviceID, testRequest.UserID).
					Return(nil)
			},
			input:   testRequest,
			wantErr: false,
		},
		{
			name: "UserNotFound",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testRequest.UserID).
					Return(nil, repo.ErrNotFound)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrUserNotFound,
		},
		{
			name: "DeviceNotFound",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testRequest.UserID).
					Return(testUser, nil)
				mockRepo.EXPECT().
					SetDeviceLastUser(gomock.Any(), testRequest.DeviceID, testRequest.UserID).
					Return(repo.ErrNotFound)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrDeviceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				err := ctrl.ChooseDevice(ctx, tt.input)
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
