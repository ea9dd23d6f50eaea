package db

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/medicard/backend/internal/dto"
	md "github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) ListUsers(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedUserResponse, error) {
	const op = "users.ListUsers.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, err := buildUserListQuery(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	var count int64
	if err = r.conn.GetContext(ctx, &count, q.countQ, q.countArgs...); err != nil {
		return nil, err
	}

	res := make([]*md.User, 0, size)
	if err = r.conn.SelectContext(ctx, &res, q.dataQ, q.dataArgs...); err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(count) / float64(size)))
	return &dto.PaginatedUserResponse{
		Data:        res,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID int64) (*md.User, error) {
	const op = "users.GetUserByID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByIDQ, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetUserByPesel(ctx context.Context, pesel string) (*md.User, error) {
	const op = "users.GetUserByPesel.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByPeselQ, pesel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*md.User, error) {
	const op = "users.GetUserByEmail.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByEmailQ, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetUserRole(ctx context.Context, userID int64) (md.Role, error) {
	const op = "users.GetUserRole.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var role md.Role
	err := r.conn.GetContext(ctx, &role, userGetRoleQ, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, repo.ErrNotFound
		}
		return 0, err
	}

	return role, nil
}

func (r *Repository) CreateUser(ctx context.Context, req *dto.RegisterUserRequest) (int64, error) {
	const op = "users.CreateUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.conn.GetContext(
		ctx, &id, userCreateQ,
		req.Email,
		req.Password,
		req.Pesel,
		req.Role,
		req.FirstName,
		req.SecondName,
		req.LastName,
		req.MotherName,
		req.FatherName,
		req.Gender,
		req.Height,
		dob,
		req.PlaceOfBirth,
		req.Address,
	)
	if err != nil {
		// The conditional insert returns no row when pesel or email
		// is already taken.
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
			return 0, repo.ErrAlreadyExists
		}
		return 0, err
	}

	return id, nil
}

func (r *Repository) SetLastTokens(ctx context.Context, userID int64, access, refresh string) error {
	const op = "users.SetLastTokens.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, userSetLastTokensQ, access, refresh, userID)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) SwapLastTokens(
	ctx context.Context,
	userID int64,
	newAccess, newRefresh, oldAccess, oldRefresh string,
) (bool, error) {
	const op = "users.SwapLastTokens.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(
		ctx, userSwapLastTokensQ,
		newAccess, newRefresh, userID, oldAccess, oldRefresh,
	)
	if err != nil {
		return false, err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return aff > 0, nil
}

func (r *Repository) DeleteUser(ctx context.Context, userID int64) error {
	const op = "users.DeleteUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, userDeleteQ, userID)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func parseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", v)
}
