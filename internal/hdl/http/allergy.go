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

func (h *Handler) RegisterAllergyRoutes() {
	h.router.Route(
		"/api/allergy", func(r chi.Router) {
			r.With(mid.Auth(h.au, h.ctrl, md.RoleStaff, md.RoleDoctor, md.RoleAdmin)).
				Get("/", h.listAllergies)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleStaff, md.RoleDoctor, md.RoleAdmin)).
				Get("/{id}", h.getAllergy)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleAdmin)).
				Post("/add", h.addAllergy)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleAdmin)).
				Delete("/{id}", h.deleteAllergy)
		},
	)
}

// listAllergies godoc
//
//	@Summary	List allergies
//	@Tags		Allergy
//	@Produce	json
//	@Success	200	{array}		models.Allergy
//	@Failure	401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure	500	{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/allergy [get]
func (h *Handler) listAllergies(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.ListAllergies(r.Context())
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// getAllergy godoc
//
//	@Summary	Get allergy by ID
//	@Tags		Allergy
//	@Produce	json
//	@Param		id	path		int	true	"Allergy ID"
//	@Success	200	{object}	models.Allergy
//	@Failure	401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure	404	{object}	utils.ErrorResponse	"allergy not found"
//	@Failure	500	{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/allergy/{id} [get]
func (h *Handler) getAllergy(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.ctrl.GetAllergy(r.Context(), id)
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

// addAllergy godoc
//
//	@Summary	Add an allergy
//	@Tags		Allergy
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.AddAllergyRequest	true	"Allergy payload"
//	@Success	201		{object}	utils.MessageResponse
//	@Failure	400		{object}	utils.ErrorsResponse	"bad request"
//	@Failure	401		{object}	utils.ErrorResponse		"unauthorized"
//	@Failure	409		{object}	utils.ErrorResponse		"allergy already exists"
//	@Failure	500		{object}	utils.ErrorResponse		"internal error"
//	@Router		/api/allergy/add [post]
func (h *Handler) addAllergy(w http.ResponseWriter, r *http.Request) {
	req := &dto.AddAllergyRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	id, err := h.ctrl.AddAllergy(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) {
			utils.ErrResponse(w, http.StatusConflict, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusCreated, "Allergy added", id)
}

// deleteAllergy godoc
//
//	@Summary	Delete an allergy
//	@Tags		Allergy
//	@Produce	json
//	@Param		id	path		int	true	"Allergy ID"
//	@Success	200	{object}	utils.MessageResponse
//	@Failure	401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure	404	{object}	utils.ErrorResponse	"allergy not found"
//	@Failure	500	{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/allergy/{id} [delete]
func (h *Handler) deleteAllergy(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err = h.ctrl.DeleteAllergy(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusOK, "Allergy deleted", id)
}
