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
	"go.uber.org/zap"
)

func (h *Handler) RegisterUserRoutes() {
	h.router.Route(
		"/api/user", func(r chi.Router) {
			r.Post("/login", h.login)
			r.Post("/refresh_token", h.refreshToken)

			r.With(mid.Auth(h.au, h.ctrl, md.RoleAdmin)).
				Post("/register", h.registerUser)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleStaff, md.RoleDoctor, md.RoleAdmin)).
				Get("/", h.listUsers)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleDoctor, md.RoleAdmin)).
				Get("/{id}", h.getUserByPesel)
			r.With(mid.Auth(h.au, h.ctrl, md.RoleAdmin)).
				Delete("/{id}", h.deleteUser)
		},
	)
}

// login godoc
//
//	@Summary		Authenticate using email & password
//	@Description	Issues a fresh access/refresh pair and stores it as the user's only active session
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.EmailAndPasswordRequest	true	"Login credentials"
//	@Success		200		{object}	dto.LoginResponse
//	@Failure		400		{object}	utils.ErrorsResponse	"bad request"
//	@Failure		401		{object}	utils.ErrorResponse		"invalid credentials"
//	@Failure		500		{object}	utils.ErrorResponse		"internal error"
//	@Router			/api/user/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	req := &dto.EmailAndPasswordRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessPaginatedResponse(
		w, http.StatusOK, &dto.LoginResponse{
			Message:      "Auth successful",
			Token:        res.Access,
			RefreshToken: res.Refresh,
		},
	)
}

// refreshToken godoc
//
//	@Summary		Refresh the token pair
//	@Description	Swaps the stored pair for a new one when the presented pair is still current
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RefreshRequest	true	"Current token pair"
//	@Success		200		{object}	dto.RefreshResponse
//	@Failure		400		{object}	utils.ErrorsResponse	"bad request"
//	@Failure		401		{object}	utils.ErrorResponse		"invalid or superseded tokens"
//	@Failure		500		{object}	utils.ErrorResponse		"internal error"
//	@Router			/api/user/refresh_token [post]
func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	req := &dto.RefreshRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Refresh(r.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrTokenRevoked) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessPaginatedResponse(
		w, http.StatusOK, &dto.RefreshResponse{
			NewToken:        res.Access,
			NewRefreshToken: res.Refresh,
		},
	)
}

// registerUser godoc
//
//	@Summary		Register a new user
//	@Description	Creates a user with a bcrypt-hashed password; role defaults to patient
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RegisterUserRequest	true	"User profile"
//	@Success		201		{object}	utils.MessageResponse
//	@Failure		400		{object}	utils.ErrorsResponse	"bad request"
//	@Failure		401		{object}	utils.ErrorResponse		"unauthorized"
//	@Failure		409		{object}	utils.ErrorResponse		"email or pesel already taken"
//	@Failure		500		{object}	utils.ErrorResponse		"internal error"
//	@Router			/api/user/register [post]
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	req := &dto.RegisterUserRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	id, err := h.ctrl.RegisterUser(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) {
			utils.ErrResponse(w, http.StatusConflict, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusCreated, "User registered", id)
}

// listUsers godoc
//
//	@Summary		List users
//	@Description	Paginated list with optional role and gender filters
//	@Tags			User
//	@Produce		json
//	@Param			page	query		int	false	"Page number"	default(1)
//	@Param			size	query		int	false	"Page size"		default(40)
//	@Success		200		{object}	dto.PaginatedUserResponse
//	@Failure		401		{object}	utils.ErrorResponse	"unauthorized"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/user [get]
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, size := utils.ParsePaginationValues(r)
	filters := utils.ParseFiltersByURL(r)

	res, err := h.ctrl.ListUsers(r.Context(), page, size, filters)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessPaginatedResponse(w, http.StatusOK, res)
}

// getUserByPesel godoc
//
//	@Summary		Get user by pesel
//	@Description	Retrieve a user profile by national id
//	@Tags			User
//	@Produce		json
//	@Param			id	path		string	true	"Pesel"
//	@Success		200	{object}	models.User
//	@Failure		401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure		404	{object}	utils.ErrorResponse	"user not found"
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/user/{id} [get]
func (h *Handler) getUserByPesel(w http.ResponseWriter, r *http.Request) {
	// the wildcard is shared with deleteUser; here its value is a pesel
	pesel := chi.URLParam(r, "id")
	if pesel == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	res, err := h.ctrl.GetUserByPesel(r.Context(), pesel)
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

// deleteUser godoc
//
//	@Summary		Delete a user
//	@Description	Removes a user by id
//	@Tags			User
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	utils.MessageResponse
//	@Failure		401	{object}	utils.ErrorResponse	"unauthorized"
//	@Failure		404	{object}	utils.ErrorResponse	"user not found"
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/user/{id} [delete]
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePathID(r, "id")
	if err != nil {
		zap.L().Debug(
			hdl.ErrToRetrievePathArg.Error(),
			zap.String("path", r.URL.Path),
		)
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err = h.ctrl.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.MsgResponse(w, http.StatusOK, "User deleted", id)
}
