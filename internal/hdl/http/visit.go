package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/medicard/backend/internal/ctrl"
	"github.com/medicard/backend/internal/dto"
	"github.com/medicard/backend/internal/hdl"
	mid "github.com/medicard/backend/internal/hdl/http/middleware"
	"github.com/medicard/backend/internal/hdl/http/utils"
	md "github.com/medicard/backend/internal/models"
)

func (h *Handler) RegisterVisitRoutes() {
	h.router.Route(
		"/api/visit", func(r chi.Router) {
			r.With(mid.Auth(h.au, h.ctrl, md.RoleStaff, md.RoleDoctor, md.RoleAdmin)).
				Get("/", h.listVisits)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleStaff, md.RoleDoctor, md.RoleAdmin)).
				Get("/patient/{id}", h.listVisitsByPatient)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleDoctor, md.RoleAdmin)).
				Post("/add", h.addVisit)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleAdmin)).
				Delete("/{id}", h.deleteVisit)
		},
	)
}

// listVisits godoc
//
//	@Summary		List all visits
//	@Tags			Visit
//	@Produce		json
//	@Success		200	{array}		models.Visit
//	@Failure		401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/visit [get]
func (h *Handler) listVisits(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.ListVisits(r.Context())
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// listVisitsByPatient godoc
//
//	@Summary		List visits of a patient
//	@Tags			Visit
//	@Produce		json
//	@Param			id	path		int	true	"Patient ID"
//	@Success		200	{array}		models.Visit
//	@Failure		401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/visit/patient/{id} [get]
func (h *Handler) listVisitsByPatient(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.ctrl.ListVisitsByPatient(r.Context(), id)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// addVisit godoc
//
//	@Summary		Create a visit
//	@Description	Logs a visit directly; one visit per doctor, patient and day
//	@Tags			Visit
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.AddVisitRequest	true	"Visit payload"
//	@Success		201		{object}	utils.MessageResponse
//	@Failure		400		{object}	utils.ErrorsResponse	"bad request"
//	@Failure		401		{object}	utils.ErrorResponse		"unauthorized"
//	@Failure		404		{object}	utils.ErrorResponse		"patient not found"
//	@Failure		409		{object}	utils.ErrorResponse		"visit already logged today"
//	@Failure		500		{object}	utils.ErrorResponse		"internal error"
//	@Router			/api/visit/add [post]
func (h *Handler) addVisit(w http.ResponseWriter, r *http.Request) {
	req := &dto.AddVisitRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	id, err := h.ctrl.AddVisit(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrUserNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		case errors.Is(err, ctrl.ErrAlreadyExists):
			utils.ErrResponse(w, http.StatusConflict, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.MsgResponse(w, http.StatusCreated, "Visit created", id)
}

// deleteVisit godoc
//
//	@Summary		Delete a visit
//	@Tags			Visit
//	@Produce		json
//	@Param			id	path		int	true	"Visit ID"
//	@Success		200	{object}	utils.MessageResponse
//	@Failure		401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure		404	{object}	utils.ErrorResponse	"visit not found"
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/visit/{id} [delete]
func (h *Handler) deleteVisit(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err = h.ctrl.DeleteVisit(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusOK, "Visit deleted", id)
}
