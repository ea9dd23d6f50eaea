package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/medicard/backend/internal/auth"
	"github.com/medicard/backend/internal/ctrl"
	"github.com/medicard/backend/internal/dto"
	"github.com/medicard/backend/internal/hdl"
	mid "github.com/medicard/backend/internal/hdl/http/middleware"
	"github.com/medicard/backend/internal/hdl/http/utils"
	md "github.com/medicard/backend/internal/models"
)

func (h *Handler) RegisterDeviceRoutes() {
	h.router.Route(
		"/api/device", func(r chi.Router) {
			// terminals carry no JWT, they authenticate with their pin
			r.Post("/register", h.registerDevice)
			r.Post("/login", h.deviceLogin)
			r.Post("/scan", h.cardScan)

			r.With(mid.Auth(h.au, h.ctrl)).Get("/{id}", h.getDevice)
			r.With(mid.Auth(h.au, h.ctrl)).Post("/verify", h.verifyDevice)
			r.With(mid.Auth(h.au, h.ctrl)).Post("/add_user", h.addUserToDevice)
			r.With(mid.Auth(h.au, h.ctrl)).Post("/remove_user", h.removeUserFromDevice)
			r.With(mid.Auth(h.au, h.ctrl)).Post("/choose", h.chooseDevice)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleAdmin)).Delete("/{id}", h.deleteDevice)
		},
	)
}

// getDevice godoc
//
//	@Summary		Get device by ID
//	@Tags			Device
//	@Produce		json
//	@Param			id	path		int	true	"Device ID"
//	@Success		200	{object}	models.Device
//	@Failure		401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure		404	{object}	utils.ErrorResponse	"device not found"
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/device/{id} [get]
func (h *Handler) getDevice(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.ctrl.GetDevice(r.Context(), id)
	if err != nil {
		if errors.Is(err, ctrl.ErrDeviceNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// registerDevice godoc
//
//	@Summary		Register a new device
//	@Tags			Device
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RegisterDeviceRequest	true	"Device pin"
//	@Success		201		{object}	utils.MessageResponse
//	@Failure		400		{object}	utils.ErrorsResponse	"bad request"
//	@Failure		500		{object}	utils.ErrorResponse		"internal error"
//	@Router			/api/device/register [post]
func (h *Handler) registerDevice(w http.ResponseWriter, r *http.Request) {
	req := &dto.RegisterDeviceRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	id, err := h.ctrl.RegisterDevice(r.Context(), req)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusCreated, "Device registered", id)
}

// deviceLogin godoc
//
//	@Summary		Device pin login
//	@Description	Legacy terminal login by id and plaintext pin
//	@Tags			Device
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.DeviceLoginRequest	true	"Device credentials"
//	@Success		200		{object}	utils.MessageResponse
//	@Failure		400		{object}	utils.ErrorsResponse	"bad request"
//	@Failure		401		{object}	utils.ErrorResponse		"auth failed"
//	@Failure		404		{object}	utils.ErrorResponse		"device not found"
//	@Failure		500		{object}	utils.ErrorResponse		"internal error"
//	@Router			/api/device/login [post]
func (h *Handler) deviceLogin(w http.ResponseWriter, r *http.Request) {
	req := &dto.DeviceLoginRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	err := h.ctrl.DeviceLogin(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrDeviceNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusOK, "Auth successful", 0)
}

// deleteDevice godoc
//
//	@Summary		Delete a device
//	@Tags			Device
//	@Produce		json
//	@Param			id	path		int	true	"Device ID"
//	@Success		200	{object}	utils.MessageResponse
//	@Failure		401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure		404	{object}	utils.ErrorResponse	"device not found"
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/device/{id} [delete]
func (h *Handler) deleteDevice(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err = h.ctrl.DeleteDevice(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrDeviceNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusOK, "Device deleted", id)
}

// verifyDevice godoc
//
//	@Summary		Issue a device verification pin
//	@Description	Stores a short-lived pin shown at the terminal for pairing
//	@Tags			Device
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.IssueVerificationPinRequest	true	"Device id and pin"
//	@Success		200		{object}	utils.MessageResponse
//	@Failure		400		{object}	utils.ErrorsResponse	"bad request"
//	@Failure		401		{object}	utils.ErrorResponse		"unauthorized"
//	@Failure		404		{object}	utils.ErrorResponse		"device not found"
//	@Failure		500		{object}	utils.ErrorResponse		"internal error"
//	@Router			/api/device/verify [post]
func (h *Handler) verifyDevice(w http.ResponseWriter, r *http.Request) {
	req := &dto.IssueVerificationPinRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	err := h.ctrl.IssueVerificationPin(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrDeviceNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusOK, "Verification pin issued", req.DeviceID)
}

// addUserToDevice godoc
//
//	@Summary		Link a user to a device
//	@Description	Requires the verification pin issued at the terminal within the last 30 seconds
//	@Tags			Device
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.DeviceUserRequest	true	"User, device and pin"
//	@Success		200		{object}	utils.MessageResponse
//	@Failure		400		{object}	utils.ErrorResponse		"pin expired or mismatched"
//	@Failure		401		{object}	utils.ErrorResponse		"unauthorized"
//	@Failure		404		{object}	utils.ErrorResponse		"device or user not found"
//	@Failure		409		{object}	utils.ErrorResponse		"already linked"
//	@Failure		500		{object}	utils.ErrorResponse		"internal error"
//	@Router			/api/device/add_user [post]
func (h *Handler) addUserToDevice(w http.ResponseWriter, r *http.Request) {
	req := &dto.DeviceUserRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	err := h.ctrl.AddUserToDevice(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrDeviceNotFound), errors.Is(err, ctrl.ErrUserNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		case errors.Is(err, ctrl.ErrVerificationPinExpired), errors.Is(err, ctrl.ErrPinMismatch):
			utils.ErrResponse(w, http.StatusBadRequest, err)
		case errors.Is(err, ctrl.ErrAlreadyExists):
			utils.ErrResponse(w, http.StatusConflict, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.MsgResponse(w, http.StatusOK, "User added to device", req.UserID)
}

// removeUserFromDevice godoc
//
//	@Summary		Unlink a user from a device
//	@Tags			Device
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.DeviceUserRequest	true	"User and device"
//	@Success		200		{object}	utils.MessageResponse
//	@Failure		401		{object}	utils.ErrorResponse	"unauthorized"
//	@Failure		404		{object}	utils.ErrorResponse	"link not found"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/device/remove_user [post]
func (h *Handler) removeUserFromDevice(w http.ResponseWriter, r *http.Request) {
	req := &dto.DeviceUserRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	err := h.ctrl.RemoveUserFromDevice(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusOK, "User removed from device", req.UserID)
}

// chooseDevice godoc
//
//	@Summary		Choose a device
//	@Description	Marks the calling doctor as the one attending the terminal
//	@Tags			Device
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.ChooseDeviceRequest	true	"User and device"
//	@Success		200		{object}	utils.MessageResponse
//	@Failure		401		{object}	utils.ErrorResponse	"unauthorized"
//	@Failure		404		{object}	utils.ErrorResponse	"device or user not found"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/device/choose [post]
func (h *Handler) chooseDevice(w http.ResponseWriter, r *http.Request) {
	req := &dto.ChooseDeviceRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	err := h.ctrl.ChooseDevice(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrDeviceNotFound) || errors.Is(err, ctrl.ErrUserNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusOK, "Device chosen", req.DeviceID)
}

// cardScan godoc
//
//	@Summary		Log a visit by card scan
//	@Description	Logs a visit for the card owner with the doctor chosen at the device; repeat same-day scans are idempotent
//	@Tags			Device
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.CardScanRequest	true	"Device id, card uid and card pin"
//	@Success		200		{object}	utils.MessageResponse	"visit already logged today"
//	@Success		201		{object}	utils.MessageResponse	"visit created"
//	@Failure		400		{object}	utils.ErrorResponse		"pin mismatch"
//	@Failure		404		{object}	utils.ErrorResponse		"card or device not found"
//	@Failure		409		{object}	utils.ErrorResponse		"ambiguous card or no doctor chosen"
//	@Failure		500		{object}	utils.ErrorResponse		"internal error"
//	@Router			/api/device/scan [post]
func (h *Handler) cardScan(w http.ResponseWriter, r *http.Request) {
	req := &dto.CardScanRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	id, created, err := h.ctrl.CardScan(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrCardNotFound), errors.Is(err, ctrl.ErrDeviceNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		case errors.Is(err, ctrl.ErrPinMismatch):
			utils.ErrResponse(w, http.StatusBadRequest, err)
		case errors.Is(err, ctrl.ErrAmbiguousCard), errors.Is(err, ctrl.ErrNoDoctorChosen):
			utils.ErrResponse(w, http.StatusConflict, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	if !created {
		utils.MsgResponse(w, http.StatusOK, "Visit already logged today", 0)
		return
	}

	utils.MsgResponse(w, http.StatusCreated, "Scan successful", id)
}
