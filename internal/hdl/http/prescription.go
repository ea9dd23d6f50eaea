package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/medicard/backend/internal/config"
	"github.com/medicard/backend/internal/ctrl"
	"github.com/medicard/backend/internal/dto"
	"github.com/medicard/backend/internal/hdl"
	mid "github.com/medicard/backend/internal/hdl/http/middleware"
	"github.com/medicard/backend/internal/hdl/http/utils"
	md "github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo/s3"
	"go.uber.org/zap"
)

func (h *Handler) RegisterPrescriptionRoutes() {
	h.router.Route(
		"/api/prescription", func(r chi.Router) {
			r.Get("/", h.listPrescriptions)

			r.With(mid.Auth(h.au, h.ctrl, md.RoleStaff, md.RoleDoctor, md.RoleAdmin)).
				Get("/{id}", h.getPrescription)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleStaff, md.RoleDoctor, md.RoleAdmin)).
				Get("/patient/{id}", h.listPrescriptionsByPatient)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleDoctor, md.RoleAdmin)).
				Post("/add", h.addPrescription)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleDoctor, md.RoleAdmin)).
				Post("/{id}/attachment", h.uploadPrescriptionAttachment)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleAdmin)).
				Delete("/{id}", h.deletePrescription)
		},
	)
}

// listPrescriptions godoc
//
//	@Summary	List prescriptions
//	@Tags		Prescription
//	@Produce	json
//	@Success	200	{array}		models.Prescription
//	@Failure	500	{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/prescription [get]
func (h *Handler) listPrescriptions(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.ListPrescriptions(r.Context())
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// getPrescription godoc
//
//	@Summary	Get prescription by ID
//	@Tags		Prescription
//	@Produce	json
//	@Param		id	path		int	true	"Prescription ID"
//	@Success	200	{object}	models.Prescription
//	@Failure	401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure	404	{object}	utils.ErrorResponse	"prescription not found"
//	@Failure	500	{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/prescription/{id} [get]
func (h *Handler) getPrescription(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.ctrl.GetPrescription(r.Context(), id)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// listPrescriptionsByPatient godoc
//
//	@Summary	List prescriptions of a patient
//	@Tags		Prescription
//	@Produce	json
//	@Param		id	path		int	true	"Patient ID"
//	@Success	200	{array}		models.Prescription
//	@Failure	401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure	500	{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/prescription/patient/{id} [get]
func (h *Handler) listPrescriptionsByPatient(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.ctrl.ListPrescriptionsByPatient(r.Context(), id)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// addPrescription godoc
//
//	@Summary	Add a prescription
//	@Tags		Prescription
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.AddPrescriptionRequest	true	"Prescription payload"
//	@Success	201		{object}	utils.MessageResponse
//	@Failure	400		{object}	utils.ErrorsResponse	"bad request"
//	@Failure	401		{object}	utils.ErrorResponse		"unauthorized"
//	@Failure	404		{object}	utils.ErrorResponse		"patient or medicine not found"
//	@Failure	500		{object}	utils.ErrorResponse		"internal error"
//	@Router		/api/prescription/add [post]
func (h *Handler) addPrescription(w http.ResponseWriter, r *http.Request) {
	req := &dto.AddPrescriptionRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	id, err := h.ctrl.AddPrescription(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrUserNotFound) || errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusCreated, "Prescription added", id)
}

// uploadPrescriptionAttachment godoc
//
//	@Summary	Upload a prescription attachment
//	@Description	Stores the scanned document and binds its URL to the prescription
//	@Tags		Prescription
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id			path		int		true	"Prescription ID"
//	@Param		attachment	formData	file	true	"Document file"
//	@Success	200			{object}	utils.Response
//	@Failure	400			{object}	utils.ErrorResponse	"bad request or file too large"
//	@Failure	401			{object}	utils.ErrorResponse	"unauthorized"
//	@Failure	404			{object}	utils.ErrorResponse	"prescription not found"
//	@Failure	500			{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/prescription/{id}/attachment [post]
func (h *Handler) uploadPrescriptionAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err = r.ParseMultipartForm(config.MaxMemory); err != nil {
		zap.L().Debug("failed to parse multipart form", zap.Error(err))
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return
	}

	fileReq := &s3.UploadFileRequest{}
	if err = utils.ParseFileField(r, "attachment", fileReq); err != nil {
		if errors.Is(err, hdl.ErrInternal) {
			utils.ErrResponse(w, http.StatusInternalServerError, err)
			return
		}

		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	url, err := h.ctrl.UploadPrescriptionAttachment(r.Context(), id, fileReq)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, url)
}

// deletePrescription godoc
//
//	@Summary	Delete a prescription
//	@Tags		Prescription
//	@Produce	json
//	@Param		id	path		int	true	"Prescription ID"
//	@Success	200	{object}	utils.MessageResponse
//	@Failure	401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure	404	{object}	utils.ErrorResponse	"prescription not found"
//	@Failure	500	{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/prescription/{id} [delete]
func (h *Handler) deletePrescription(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err = h.ctrl.DeletePrescription(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusOK, "Prescription deleted", id)
}
