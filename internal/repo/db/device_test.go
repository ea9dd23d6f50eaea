package db

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	md "github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo"
	"github.com/stretchr/testify/assert"
)

func TestRepository_GetDeviceByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := &Repository{conn: sqlxDB}

	lastUser := int64(11)
	testDevice := &md.Device{
		ID:        int64(7),
		Pin:       "1234",
		LastUser:  &lastUser,
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name        string
		mock        func()
		deviceID    int64
		expected    *md.Device
		expectedErr error
	}{
		{
			name:     "Success",
			deviceID: testDevice.ID,
			mock: func() {
				rows := sqlmock.NewRows([]string{"id", "pin", "last_user", "created_at"}).
					AddRow(testDevice.ID, testDevice.Pin, testDevice.LastUser, testDevice.CreatedAt)

				mock.ExpectQuery(regexp.QuoteMeta(deviceGetByIDQ)).
					WithArgs(testDevice.ID).
					WillReturnRows(rows)
			},
			expected:    testDevice,
			expectedErr: nil,
		},
		{
			name:     "ErrNotFound",
			deviceID: testDevice.ID,
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(deviceGetByIDQ)).
					WithArgs(testDevice.ID).
					WillReturnError(sql.ErrNoRows)
			},
			expected:    nil,
			expectedErr: repo.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			result, err := r.GetDeviceByID(context.Background(), tt.deviceID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected.ID, result.ID)
				assert.Equal(t, tt.expected.Pin, result.Pin)
				assert.Equal(t, tt.expected.LastUser, result.LastUser)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpsertVerificationPin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := &Repository{conn: sqlxDB}

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(devicePinUpsertQ)).
					WithArgs(int64(7), "555888").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedErr: nil,
		},
		{
			name: "Reissue",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(devicePinUpsertQ)).
					WithArgs(int64(7), "555888").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedErr: nil,
		},
		{
			name: "ErrInternal",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(devicePinUpsertQ)).
					WithArgs(int64(7), "555888").
					WillReturnError(errors.New("test error"))
			},
			expectedErr: errors.New("test error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			err := r.UpsertVerificationPin(context.Background(), int64(7), "555888")

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LinkUserToDevice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := &Repository{conn: sqlxDB}

	tests := []struct {
		name        string
		mock        func()
		expected    bool
		expectedErr error
	}{
		{
			name: "Created",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(deviceUserLinkQ)).
					WithArgs(int64(42), int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expected:    true,
			expectedErr: nil,
		},
		{
			name: "AlreadyLinked",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(deviceUserLinkQ)).
					WithArgs(int64(42), int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expected:    false,
			expectedErr: nil,
		},
		{
			name: "ErrInternal",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(deviceUserLinkQ)).
					WithArgs(int64(42), int64(7)).
					WillReturnError(errors.New("test error"))
			},
			expected:    false,
			expectedErr: errors.New("test error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			created, err := r.LinkUserToDevice(context.Background(), int64(42), int64(7))

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, created)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetCardByUID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := &Repository{conn: sqlxDB}

	testCard := &md.Card{
		ID:     int64(3),
		UID:    "04A1B2C3",
		Pin:    "4321",
		UserID: int64(42),
	}

	tests := []struct {
		name        string
		mock        func()
		expected    *md.Card
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				rows := sqlmock.NewRows([]string{"id", "uid", "pin", "user_id"}).
					AddRow(testCard.ID, testCard.UID, testCard.Pin, testCard.UserID)

				mock.ExpectQuery(regexp.QuoteMeta(cardGetByUIDQ)).
					WithArgs(testCard.UID).
					WillReturnRows(rows)
			},
			expected:    testCard,
			expectedErr: nil,
		},
		{
			name: "ErrNotFound",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(cardGetByUIDQ)).
					WithArgs(testCard.UID).
					WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "pin", "user_id"}))
			},
			expected:    nil,
			expectedErr: repo.ErrNotFound,
		},
		{
			name: "ErrAmbiguous",
			mock: func() {
				rows := sqlmock.NewRows([]string{"id", "uid", "pin", "user_id"}).
					AddRow(testCard.ID, testCard.UID, testCard.Pin, testCard.UserID).
					AddRow(int64(4), testCard.UID, "9999", int64(43))

				mock.ExpectQuery(regexp.QuoteMeta(cardGetByUIDQ)).
					WithArgs(testCard.UID).
					WillReturnRows(rows)
			},
			expected:    nil,
			expectedErr: repo.ErrAmbiguous,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			result, err := r.GetCardByUID(context.Background(), testCard.UID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
