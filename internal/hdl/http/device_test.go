package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/medicard/backend/internal/auth"
	"github.com/medicard/backend/internal/ctrl"
	"github.com/medicard/backend/internal/hdl/http/utils"
	"github.com/medicard/backend/tests/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_DeviceLogin(t *testing.T) {
	const uri = "/api/device/login"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockPort(mock)
	h := New(mauth, mctrl)

	validPayload := map[string]any{"id": 7, "pin": "1234"}

	tests := []struct {
		name       string
		payload    interface{}
		status     int
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:    "ErrDecodeRequest_MissingPin",
			payload: map[string]any{"id": 7},
			status:  http.StatusBadRequest,
			expect:  func() {},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.NotEmpty(t, res.Errors)
			},
		},
		{
			name:    "StatusNotFound",
			payload: validPayload,
			status:  http.StatusNotFound,
			expect: func() {
				mctrl.EXPECT().
					DeviceLogin(gomock.Any(), gomock.Any()).
					Return(ctrl.ErrDeviceNotFound)
			},
			assertions: func(r *httptest.ResponseRecorder) {},
		},
		{
			name:    "StatusUnauthorized",
			payload: validPayload,
			status:  http.StatusUnauthorized,
			expect: func() {
				mctrl.EXPECT().
					DeviceLogin(gomock.Any(), gomock.Any()).
					Return(auth.ErrInvalidCredentials)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.Equal(t, auth.ErrInvalidCredentials.Error(), res.Error)
			},
		},
		{
			name:    "Success",
			payload: validPayload,
			status:  http.StatusOK,
			expect: func() {
				mctrl.EXPECT().
					DeviceLogin(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.MessageResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.Equal(t, "Auth successful", res.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()

			var body bytes.Buffer
			err := json.NewEncoder(&body).Encode(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, uri, &body)
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			h.deviceLogin(w, req)
			assert.Equal(t, tt.status, w.Result().StatusCode)

			defer func() {
				assert.Nil(t, w.Result().Body.Close())
			}()

			tt.assertions(w)
		})
	}
}

func TestHandler_AddUserToDevice(t *testing.T) {
	const uri = "/api/device/add_user"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockPort(mock)
	h := New(mauth, mctrl)

	validPayload := map[string]any{"userId": 42, "deviceId": 7, "pin": "555888"}

	tests := []struct {
		name       string
		payload    interface{}
		status     int
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:    "StatusNotFound_Device",
			payload: validPayload,
			status:  http.StatusNotFound,
			expect: func() {
				mctrl.EXPECT().
					AddUserToDevice(gomock.Any(), gomock.Any()).
					Return(ctrl.ErrDeviceNotFound)
			},
			assertions: func(r *httptest.ResponseRecorder) {},
		},
		{
			name:    "StatusNotFound_User",
			payload: validPayload,
			status:  http.StatusNotFound,
			expect: func() {
				mctrl.EXPECT().
					AddUserToDevice(gomock.Any(), gomock.Any()).
					Return(ctrl.ErrUserNotFound)
			},
			assertions: func(r *httptest.ResponseRecorder) {},
		},
		{
			name:    "StatusBadRequest_PinExpired",
			payload: validPayload,
			status:  http.StatusBadRequest,
			expect: func() {
				mctrl.EXPECT().
					AddUserToDevice(gomock.Any(), gomock.Any()).
					Return(ctrl.ErrVerificationPinExpired)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.Equal(t, ctrl.ErrVerificationPinExpired.Error(), res.Error)
			},
		},
		{
			name:    "StatusBadRequest_PinMismatch",
			payload: validPayload,
			status:  http.StatusBadRequest,
			expect: func() {
				mctrl.EXPECT().
					AddUserToDevice(gomock.Any(), gomock.Any()).
					Return(ctrl.ErrPinMismatch)
			},
			assertions: func(r *httptest.ResponseRecorder) {},
		},
		{
			name:    "StatusConflict",
			payload: validPayload,
			status:  http.StatusConflict,
			expect: func() {
				mctrl.EXPECT().
					AddUserToDevice(gomock.Any(), gomock.Any()).
					Return(ctrl.ErrAlreadyExists)
			},
			assertions: func(r *httptest.ResponseRecorder) {},
		},
		{
			name:    "StatusInternalServerError",
			payload: validPayload,
			status:  http.StatusInternalServerError,
			expect: func() {
				mctrl.EXPECT().
					AddUserToDevice(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			assertions: func(r *httptest.ResponseRecorder) {},
		},
		{
			name:    "Success",
			payload: validPayload,
			status:  http.StatusOK,
			expect: func() {
				mctrl.EXPECT().
					AddUserToDevice(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.MessageResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.Equal(t, "User added to device", res.Message)
				assert.Equal(t, int64(42), res.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()

			var body bytes.Buffer
			err := json.NewEncoder(&body).Encode(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, uri, &body)
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			h.addUserToDevice(w, req)
			assert.Equal(t, tt.status, w.Result().StatusCode)

			defer func() {
				assert.Nil(t, w.Result().Body.Close())
			}()

			tt.assertions(w)
		})
	}
}

func TestHandler_CardScan(t *testing.T) {
	const uri = "/api/device/scan"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockPort(mock)
	h := New(mauth, mctrl)

	validPayload := map[string]any{"deviceId": 7, "cardUid": "04A1B2C3", "cardPin": "4321"}

	tests := []struct {
		name       string
		payload    interface{}
		status     int
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:    "ErrDecodeRequest_MissingCardUID",
			payload: map[string]any{"deviceId": 7, "cardPin": "4321"},
			status:  http.StatusBadRequest,
			expect:  func() {},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.NotEmpty(t, res.Errors)
			},
		},
		{
			name:    "StatusNotFound_Card",
			payload: validPayload,
			status:  http.StatusNotFound,
			expect: func() {
				mctrl.EXPECT().
					CardScan(gomock.Any(), gomock.Any()).
					Return(int64(0), false, ctrl.ErrCardNotFound)
			},
			assertions: func(r *httptest.ResponseRecorder) {},
		},
		{
			name:    "StatusBadRequest_PinMismatch",
			payload: validPayload,
			status:  http.StatusBadRequest,
			expect: func() {
				mctrl.EXPECT().
					CardScan(gomock.Any(), gomock.Any()).
					Return(int64(0), false, ctrl.ErrPinMismatch)
			},
			assertions: func(r *httptest.ResponseRecorder) {},
		},
		{
			name:    "StatusConflict_Ambiguous",
			payload: validPayload,
			status:  http.StatusConflict,
			expect: func() {
				mctrl.EXPECT().
					CardScan(gomock.Any(), gomock.Any()).
					Return(int64(0), false, ctrl.ErrAmbiguousCard)
			},
			assertions: func(r *httptest.ResponseRecorder) {},
		},
		{
			name:    "StatusConflict_NoDoctor",
			payload: validPayload,
			status:  http.StatusConflict,
			expect: func() {
				mctrl.EXPECT().
					CardScan(gomock.Any(), gomock.Any()).
					Return(int64(0), false, ctrl.ErrNoDoctorChosen)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.Equal(t, ctrl.ErrNoDoctorChosen.Error(), res.Error)
			},
		},
		{
			name:    "Success_AlreadyLoggedToday",
			payload: validPayload,
			status:  http.StatusOK,
			expect: func() {
				mctrl.EXPECT().
					CardScan(gomock.Any(), gomock.Any()).
					Return(int64(0), false, nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.MessageResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.Equal(t, "Visit already logged today", res.Message)
				assert.Zero(t, res.ID)
			},
		},
		{
			name:    "Success_Created",
			payload: validPayload,
			status:  http.StatusCreated,
			expect: func() {
				mctrl.EXPECT().
					CardScan(gomock.Any(), gomock.Any()).
					Return(int64(100), true, nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.MessageResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.Equal(t, "Scan successful", res.Message)
				assert.Equal(t, int64(100), res.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()

			var body bytes.Buffer
			err := json.NewEncoder(&body).Encode(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, uri, &body)
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			h.cardScan(w, req)
			assert.Equal(t, tt.status, w.Result().StatusCode)

			defer func() {
				assert.Nil(t, w.Result().Body.Close())
			}()

			tt.assertions(w)
		})
	}
}
