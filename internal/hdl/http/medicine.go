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

func (h *Handler) RegisterMedicineRoutes() {
	h.router.Route(
		"/api/medicine", func(r chi.Router) {
			r.With(mid.Auth(h.au, h.ctrl, md.RoleStaff, md.RoleDoctor, md.RoleAdmin)).
				Get("/", h.listMedicines)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleStaff, md.RoleDoctor, md.RoleAdmin)).
				Get("/{id}", h.getMedicine)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleAdmin)).
				Post("/add", h.addMedicine)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleAdmin)).
				Delete("/{id}", h.deleteMedicine)
		},
	)
}

// listMedicines godoc
//
//	@Summary	List medicines
//	@Tags		Medicine
//	@Produce	json
//	@Success	200	{array}		models.Medicine
//	@Failure	401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure	500	{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/medicine [get]
func (h *Handler) listMedicines(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.ListMedicines(r.Context())
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// getMedicine godoc
//
//	@Summary	Get medicine by ID
//	@Tags		Medicine
//	@Produce	json
//	@Param		id	path		int	true	"Medicine ID"
//	@Success	200	{object}	models.Medicine
//	@Failure	401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure	404	{object}	utils.ErrorResponse	"medicine not found"
//	@Failure	500	{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/medicine/{id} [get]
func (h *Handler) getMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.ctrl.GetMedicine(r.Context(), id)
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

// addMedicine godoc
//
//	@Summary	Add a medicine
//	@Tags		Medicine
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.AddMedicineRequest	true	"Medicine payload"
//	@Success	201		{object}	utils.MessageResponse
//	@Failure	400		{object}	utils.ErrorsResponse	"bad request"
//	@Failure	401		{object}	utils.ErrorResponse		"unauthorized"
//	@Failure	409		{object}	utils.ErrorResponse		"medicine already exists"
//	@Failure	500		{object}	utils.ErrorResponse		"internal error"
//	@Router		/api/medicine/add [post]
func (h *Handler) addMedicine(w http.ResponseWriter, r *http.Request) {
	req := &dto.AddMedicineRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	id, err := h.ctrl.AddMedicine(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) {
			utils.ErrResponse(w, http.StatusConflict, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusCreated, "Medicine added", id)
}

// deleteMedicine godoc
//
//	@Summary	Delete a medicine
//	@Tags		Medicine
//	@Produce	json
//	@Param		id	path		int	true	"Medicine ID"
//	@Success	200	{object}	utils.MessageResponse
//	@Failure	401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure	404	{object}	utils.ErrorResponse	"medicine not found"
//	@Failure	500	{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/medicine/{id} [delete]
func (h *Handler) deleteMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err = h.ctrl.DeleteMedicine(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusOK, "Medicine deleted", id)
}
