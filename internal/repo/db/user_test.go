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
	"github.com/medicard/backend/internal/dto"
	md "github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo"
	"github.com/stretchr/testify/assert"
)

func TestRepository_GetUserByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := &Repository{conn: sqlxDB}

	testUser := &md.User{
		ID:           int64(42),
		Email:        "jan@example.com",
		Pesel:        "90010112345",
		Role:         md.RolePatient,
		FirstName:    "Jan",
		SecondName:   "",
		LastName:     "Kowalski",
		MotherName:   "Anna",
		FatherName:   "Piotr",
		Gender:       "M",
		Height:       180,
		DateOfBirth:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		PlaceOfBirth: "Warszawa",
		Address:      "ul. Testowa 1",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	tests := []struct {
		name        string
		mock        func()
		userID      int64
		expected    *md.User
		expectedErr error
	}{
		{
			name:   "Success",
			userID: testUser.ID,
			mock: func() {
				rows := sqlmock.NewRows([]string{
					"id", "email", "pesel", "role",
					"first_name", "second_name", "last_name", "mother_name", "father_name",
					"gender", "height", "date_of_birth", "place_of_birth", "address",
					"created_at", "updated_at",
				})
				rows.AddRow(
					testUser.ID, testUser.Email, testUser.Pesel, testUser.Role,
					testUser.FirstName, testUser.SecondName, testUser.LastName,
					testUser.MotherName, testUser.FatherName,
					testUser.Gender, testUser.Height, testUser.DateOfBirth,
					testUser.PlaceOfBirth, testUser.Address,
					testUser.CreatedAt, testUser.UpdatedAt,
				)

				mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
					WithArgs(testUser.ID).
					WillReturnRows(rows)
			},
			expected:    testUser,
			expectedErr: nil,
		},
		{
			name:   "ErrNotFound",
			userID: testUser.ID,
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
					WithArgs(testUser.ID).
					WillReturnError(sql.ErrNoRows)
			},
			expected:    nil,
			expectedErr: repo.ErrNotFound,
		},
		{
			name:   "ErrInternal",
			userID: testUser.ID,
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
					WithArgs(testUser.ID).
					WillReturnError(errors.New("test error"))
			},
			expected:    nil,
			expectedErr: errors.New("test error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			result, err := r.GetUserByID(context.Background(), tt.userID)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected.ID, result.ID)
				assert.Equal(t, tt.expected.Email, result.Email)
				assert.Equal(t, tt.expected.Pesel, result.Pesel)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := &Repository{conn: sqlxDB}

	testReq := &dto.RegisterUserRequest{
		Email:        "jan@example.com",
		Password:     "$2a$10$hashed",
		Pesel:        "90010112345",
		Role:         md.RolePatient,
		FirstName:    "Jan",
		LastName:     "Kowalski",
		MotherName:   "Anna",
		FatherName:   "Piotr",
		Gender:       "M",
		Height:       180,
		DateOfBirth:  "1990-01-01",
		PlaceOfBirth: "Warszawa",
		Address:      "ul. Testowa 1",
	}

	tests := []struct {
		name        string
		mock        func()
		req         *dto.RegisterUserRequest
		expected    int64
		expectedErr error
	}{
		{
			name: "Success",
			req:  testReq,
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
			},
			expected:    int64(42),
			expectedErr: nil,
		},
		{
			name: "ErrAlreadyExists",
			req:  testReq,
			mock: func() {
				// ON CONFLICT DO NOTHING yields no row on duplicates.
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WillReturnError(sql.ErrNoRows)
			},
			expected:    0,
			expectedErr: repo.ErrAlreadyExists,
		},
		{
			name: "ErrInternal",
			req:  testReq,
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WillReturnError(errors.New("test error"))
			},
			expected:    0,
			expectedErr: errors.New("test error"),
		},
		{
			name: "BadDateOfBirth",
			req: &dto.RegisterUserRequest{
				Email:       "jan@example.com",
				Password:    "$2a$10$hashed",
				DateOfBirth: "01.01.1990",
			},
			mock:        func() {},
			expected:    0,
			expectedErr: errors.New("cannot parse"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			id, err := r.CreateUser(context.Background(), tt.req)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, id)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SwapLastTokens(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := &Repository{conn: sqlxDB}

	userID := int64(42)

	tests := []struct {
		name        string
		mock        func()
		expected    bool
		expectedErr error
	}{
		{
			name: "Swapped",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userSwapLastTokensQ)).
					WithArgs("new-access", "new-refresh", userID, "old-access", "old-refresh").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expected:    true,
			expectedErr: nil,
		},
		{
			name: "StalePair",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userSwapLastTokensQ)).
					WithArgs("new-access", "new-refresh", userID, "old-access", "old-refresh").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expected:    false,
			expectedErr: nil,
		},
		{
			name: "ErrInternal",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userSwapLastTokensQ)).
					WithArgs("new-access", "new-refresh", userID, "old-access", "old-refresh").
					WillReturnError(errors.New("test error"))
			},
			expected:    false,
			expectedErr: errors.New("test error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			swapped, err := r.SwapLastTokens(
				context.Background(), userID,
				"new-access", "new-refresh", "old-access", "old-refresh",
			)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, swapped)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetLastTokens(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := &Repository{conn: sqlxDB}

	userID := int64(42)

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userSetLastTokensQ)).
					WithArgs("access", "refresh", userID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedErr: nil,
		},
		{
			name: "ErrNotFound",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userSetLastTokensQ)).
					WithArgs("access", "refresh", userID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedErr: repo.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			err := r.SetLastTokens(context.Background(), userID, "access", "refresh")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
