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

func (h *Handler) RegisterInstitutionRoutes() {
	h.router.Route(
		"/api/institution", func(r chi.Router) {
			r.With(mid.Auth(h.au, h.ctrl, md.RoleStaff, md.RoleDoctor, md.RoleAdmin)).
				Get("/", h.listInstitutions)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleStaff, md.RoleDoctor, md.RoleAdmin)).
				Get("/{id}", h.getInstitution)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleAdmin)).
				Post("/add", h.addInstitution)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleAdmin)).
				Delete("/{id}", h.deleteInstitution)
		},
	)
}

// listInstitutions godoc
//
//	@Summary	List institutions
//	@Tags		Institution
//	@Produce	json
//	@Success	200	{array}		models.Institution
//	@Failure	401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure	500	{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/institution [get]
func (h *Handler) listInstitutions(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.ListInstitutions(r.Context())
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// getInstitution godoc
//
//	@Summary	Get institution by ID
//	@Tags		Institution
//	@Produce	json
//	@Param		id	path		int	true	"Institution ID"
//	@Success	200	{object}	models.Institution
//	@Failure	401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure	404	{object}	utils.ErrorResponse	"institution not found"
//	@Failure	500	{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/institution/{id} [get]
func (h *Handler) getInstitution(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.ctrl.GetInstitution(r.Context(), id)
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

// addInstitution godoc
//
//	@Summary	Add an institution
//	@Tags		Institution
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.AddInstitutionRequest	true	"Institution payload"
//	@Success	201		{object}	utils.MessageResponse
//	@Failure	400		{object}	utils.ErrorsResponse	"bad request"
//	@Failure	401		{object}	utils.ErrorResponse		"unauthorized"
//	@Failure	409		{object}	utils.ErrorResponse		"institution already exists"
//	@Failure	500		{object}	utils.ErrorResponse		"internal error"
//	@Router		/api/institution/add [post]
func (h *Handler) addInstitution(w http.ResponseWriter, r *http.Request) {
	req := &dto.AddInstitutionRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	id, err := h.ctrl.AddInstitution(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) {
			utils.ErrResponse(w, http.StatusConflict, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusCreated, "Institution added", id)
}

// deleteInstitution godoc
//
//	@Summary	Delete an institution
//	@Tags		Institution
//	@Produce	json
//	@Param		id	path		int	true	"Institution ID"
//	@Success	200	{object}	utils.MessageResponse
//	@Failure	401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure	404	{object}	utils.ErrorResponse	"institution not found"
//	@Failure	500	{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/institution/{id} [delete]
func (h *Handler) deleteInstitution(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err = h.ctrl.DeleteInstitution(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusOK, "Institution deleted", id)
}
