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

func TestController_CardScan(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, nil)

	doctorID := int64(11)
	testRequest := &dto.CardScanRequest{
		DeviceID: int64(7),
		CardUID:  "04A1B2C3",
		CardPin:  "4321",
	}
	testCard := &models.Card{
		ID:     int64(3),
		UID:    "04A1B2C3",
		Pin:    "4321",
		UserID: int64(42),
	}
	testDevice := &models.Device{
		ID:       int64(7),
		LastUser: &doctorID,
	}

	tests := []struct {
		name        string
		setup       func()
		input       *dto.CardScanRequest
		expectedID  int64
		expectedNew bool
		wantErr     bool
		err         error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					GetCardByUID(gomock.Any(), testRequest.CardUID).
					Return(testCard, nil)
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.DeviceID).
					Return(testDevice, nil)
				mockRepo.EXPECT().
					CreateVisit(gomock.Any(), "", "", doctorID, testCard.UserID).
					Return(int64(100), true, nil)
			},
			input:       testRequest,
			expectedID:  int64(100),
			expectedNew: true,
			wantErr:     false,
		},
		{
			name: "RepeatScanSameDay",
			setup: func() {
				mockRepo.EXPECT().
					GetCardByUID(gomock.Any(), testRequest.CardUID).
					Return(testCard, nil)
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.DeviceID).
					Return(testDevice, nil)
				mockRepo.EXPECT().
					CreateVisit(gomock.Any(), "", "", doctorID, testCard.UserID).
					Return(int64(0), false, nil)
			},
			input:       testRequest,
			expectedID:  int64(0),
			expectedNew: false,
			wantErr:     false,
		},
		{
			name: "CardNotFound",
			setup: func() {
				mockRepo.EXPECT().
					GetCardByUID(gomock.Any(), testRequest.CardUID).
					Return(nil, repo.ErrNotFound)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrCardNotFound,
		},
		{
			name: "AmbiguousCard",
			setup: func() {
				mockRepo.EXPECT().
					GetCardByUID(gomock.Any(), testRequest.CardUID).
					Return(nil, repo.ErrAmbiguous)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrAmbiguousCard,
		},
		{
			name: "PinMismatch",
			setup: func() {
				mockRepo.EXPECT().
					GetCardByUID(gomock.Any(), testRequest.CardUID).
					Return(&models.Card{UID: testRequest.CardUID, Pin: "0000", UserID: int64(42)}, nil)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrPinMismatch,
		},
		{
			name: "DeviceNotFound",
			setup: func() {
				mockRepo.EXPECT().
					GetCardByUID(gomock.Any(), testRequest.CardUID).
					Return(testCard, nil)
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.DeviceID).
					Return(nil, repo.ErrNotFound)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrDeviceNotFound,
		},
		{
			name: "NoDoctorChosen",
			setup: func() {
				mockRepo.EXPECT().
					GetCardByUID(gomock.Any(), testRequest.CardUID).
					Return(testCard, nil)
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.DeviceID).
					Return(&models.Device{ID: testRequest.DeviceID}, nil)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrNoDoctorChosen,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockRepo.EXPECT().
					GetCardByUID(gomock.Any(), testRequest.CardUID).
					Return(testCard, nil)
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testRequest.DeviceID).
					Return(testDevice, nil)
				mockRepo.EXPECT().
					CreateVisit(gomock.Any(), "", "", doctorID, testCard.UserID).
					Return(int64(0), false, errors.New("db error"))
			},
			input:   testRequest,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				id, created, err := ctrl.CardScan(ctx, tt.input)
				if tt.wantErr {
					assert.Error(t, err)
					if tt.err != nil {
						assert.ErrorIs(t, err, tt.err)
					}
					return
				}

				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
				assert.Equal(t, tt.expectedNew, created)
			},
		)
	}
}

func TestController_AddVisit(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, nil)

	testRequest := &dto.AddVisitRequest{
		Reason:      "checkup",
		Description: "annual checkup",
		DoctorID:    int64(11),
		PatientID:   int64(42),
	}
	testPatient := &models.User{ID: int64(42)}

	tests := []struct {
		name     string
		setup    func()
		input    *dto.AddVisitRequest
		expected int64
		wantErr  bool
		err      error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testRequest.PatientID).
					Return(testPatient, nil)
				mockRepo.EXPECT().
					CreateVisit(
						gomock.Any(),
						testRequest.Reason, testRequest.Description,
						testRequest.DoctorID, testRequest.PatientID,
					).
					Return(int64(100), true, nil)
			},
			input:    testRequest,
			expected: int64(100),
			wantErr:  false,
		},
		{
			name: "PatientNotFound",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testRequest.PatientID).
					Return(nil, repo.ErrNotFound)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrUserNotFound,
		},
		{
			name: "DuplicateSameDay",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testRequest.PatientID).
					Return(testPatient, nil)
				mockRepo.EXPECT().
					CreateVisit(
						gomock.Any(),
						testRequest.Reason, testRequest.Description,
						testRequest.DoctorID, testRequest.PatientID,
					).
					Return(int64(0), false, nil)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrAlreadyExists,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testRequest.PatientID).
					Return(testPatient, nil)
				mockRepo.EXPECT().
					CreateVisit(
						gomock.Any(),
						testRequest.Reason, testRequest.Description,
						testRequest.DoctorID, testRequest.PatientID,
					).
					Return(int64(0), false, errors.New("db error"))
			},
			input:   testRequest,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				id, err := ctrl.AddVisit(ctx, tt.input)
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
