package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/medicard/backend/internal/auth/jwt"
	"github.com/medicard/backend/internal/config"
	"github.com/medicard/backend/internal/ctrl"
	md "github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/tests/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuth(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockCtrl := mocks.NewMockAppCtrl(ctrlMock)

	uid := int64(42)
	next := http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, uid, r.Context().Value(config.UidKey))
			w.WriteHeader(http.StatusOK)
		},
	)

	tests := []struct {
		name     string
		setup    func()
		request  func() *http.Request
		allowed  []md.Role
		expected int
	}{
		{
			name:  "MissingToken",
			setup: func() {},
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/", nil)
			},
			allowed:  []md.Role{md.RoleAdmin},
			expected: http.StatusUnauthorized,
		},
		{
			name: "InvalidToken",
			setup: func() {
				mockAuth.EXPECT().
					ParseAccess(gomock.Any(), "bad-token").
					Return(jwt.Claims{}, errors.New("invalid token"))
			},
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set("Authorization", "Bearer bad-token")
				return req
			},
			allowed:  []md.Role{md.RoleAdmin},
			expected: http.StatusUnauthorized,
		},
		{
			name: "UserGone",
			setup: func() {
				mockAuth.EXPECT().
					ParseAccess(gomock.Any(), "token").
					Return(jwt.Claims{UID: uid}, nil)
				mockCtrl.EXPECT().
					GetUserRole(gomock.Any(), uid).
					Return(md.Role(0), ctrl.ErrNotFound)
			},
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set("Authorization", "Bearer token")
				return req
			},
			allowed:  []md.Role{md.RoleAdmin},
			expected: http.StatusUnauthorized,
		},
		{
			name: "RoleLookupError",
			setup: func() {
				mockAuth.EXPECT().
					ParseAccess(gomock.Any(), "token").
					Return(jwt.Claims{UID: uid}, nil)
				mockCtrl.EXPECT().
					GetUserRole(gomock.Any(), uid).
					Return(md.Role(0), errors.New("db error"))
			},
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set("Authorization", "Bearer token")
				return req
			},
			allowed:  []md.Role{md.RoleAdmin},
			expected: http.StatusInternalServerError,
		},
		{
			name: "RoleNotAllowed",
			setup: func() {
				mockAuth.EXPECT().
					ParseAccess(gomock.Any(), "token").
					Return(jwt.Claims{UID: uid}, nil)
				mockCtrl.EXPECT().
					GetUserRole(gomock.Any(), uid).
					Return(md.RolePatient, nil)
			},
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set("Authorization", "Bearer token")
				return req
			},
			allowed:  []md.Role{md.RoleDoctor, md.RoleAdmin},
			expected: http.StatusUnauthorized,
		},
		{
			name: "Allowed",
			setup: func() {
				mockAuth.EXPECT().
					ParseAccess(gomock.Any(), "token").
					Return(jwt.Claims{UID: uid}, nil)
				mockCtrl.EXPECT().
					GetUserRole(gomock.Any(), uid).
					Return(md.RoleAdmin, nil)
			},
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set("Authorization", "Bearer token")
				return req
			},
			allowed:  []md.Role{md.RoleDoctor, md.RoleAdmin},
			expected: http.StatusOK,
		},
		{
			name: "AnyAuthenticated",
			setup: func() {
				mockAuth.EXPECT().
					ParseAccess(gomock.Any(), "token").
					Return(jwt.Claims{UID: uid}, nil)
				mockCtrl.EXPECT().
					GetUserRole(gomock.Any(), uid).
					Return(md.RolePatient, nil)
			},
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set("Authorization", "Bearer token")
				return req
			},
			allowed:  nil,
			expected: http.StatusOK,
		},
		{
			name: "BodyTokenFallback",
			setup: func() {
				mockAuth.EXPECT().
					ParseAccess(gomock.Any(), "body-token").
					Return(jwt.Claims{UID: uid}, nil)
				mockCtrl.EXPECT().
					GetUserRole(gomock.Any(), uid).
					Return(md.RoleDoctor, nil)
			},
			request: func() *http.Request {
				return httptest.NewRequest(
					http.MethodPost, "/",
					strings.NewReader(`{"token": "body-token", "device_id": 7}`),
				)
			},
			allowed:  []md.Role{md.RoleDoctor},
			expected: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				w := httptest.NewRecorder()
				Auth(mockAuth, mockCtrl, tt.allowed...)(next).ServeHTTP(w, tt.request())

				assert.Equal(t, tt.expected, w.Code)
			},
		)
	}
}

func TestAuthRestoresBody(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockCtrl := mocks.NewMockAppCtrl(ctrlMock)

	payload := `{"token": "body-token", "device_id": 7}`
	mockAuth.EXPECT().
		ParseAccess(gomock.Any(), "body-token").
		Return(jwt.Claims{UID: int64(42)}, nil)
	mockCtrl.EXPECT().
		GetUserRole(gomock.Any(), int64(42)).
		Return(md.RoleDoctor, nil)

	next := http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Equal(t, payload, string(body))
			w.WriteHeader(http.StatusOK)
		},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	Auth(mockAuth, mockCtrl)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
