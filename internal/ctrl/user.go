package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/medicard/backend/internal/config"
	"github.com/medicard/backend/internal/dto"
	md "github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type userCtrl interface {
	ListUsers(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedUserResponse, error)
	GetUserByID(ctx context.Context, userID int64) (*md.User, error)
	GetUserByPesel(ctx context.Context, pesel string) (*md.User, error)
	GetUserRole(ctx context.Context, userID int64) (md.Role, error)
	RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (int64, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type userRepo interface {
	ListUsers(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedUserResponse, error)
	GetUserByID(ctx context.Context, userID int64) (*md.User, error)
	GetUserByPesel(ctx context.Context, pesel string) (*md.User, error)
	GetUserByEmail(ctx context.Context, email string) (*md.User, error)
	GetUserRole(ctx context.Context, userID int64) (md.Role, error)
	CreateUser(ctx context.Context, req *dto.RegisterUserRequest) (int64, error)
	DeleteUser(ctx context.Context, userID int64) error
}

const (
	userCacheKey     = "user:%v"
	userRoleCacheKey = "user-role:%v"
	usersListKey     = "users-list:%v:%v:%v"
	userPattern      = "user*"
)

func (c *Controller) ListUsers(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedUserResponse, error) {
	const op = "users.ListUsers.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &dto.PaginatedUserResponse{}
	cacheKey := fmt.Sprintf(usersListKey, page, size, filters)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListUsers(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetUserByID(ctx context.Context, userID int64) (*md.User, error) {
	const op = "users.GetUserByID.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &md.User{}
	cacheKey := fmt.Sprintf(userCacheKey, userID)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetUserByPesel(ctx context.Context, pesel string) (*md.User, error) {
	const op = "users.GetUserByPesel.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &md.User{}
	cacheKey := fmt.Sprintf(userCacheKey, pesel)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetUserByPesel(ctx, pesel)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

// GetUserRole backs the middleware role gate, so it runs on every
// protected request and is worth caching.
func (c *Controller) GetUserRole(ctx context.Context, userID int64) (md.Role, error) {
	const op = "users.GetUserRole.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var cached md.Role
	cacheKey := fmt.Sprintf(userRoleCacheKey, userID)
	if err := c.cache.GetToStruct(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetUserRole(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (int64, error) {
	const op = "users.RegisterUser.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var err error
	req.Password, err = c.au.Hash(req.Password)
	if err != nil {
		return 0, err
	}

	if req.Role == 0 {
		req.Role = md.RolePatient
	}

	id, err := c.repo.CreateUser(ctx, req)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return 0, ErrAlreadyExists
		}
		return 0, err
	}

	go c.cache.InvalidateKeysByPattern(ctx, userPattern)

	if c.email != nil {
		go func() {
			if err := c.email.SendRegistrationNotice(req.Email, req.FirstName); err != nil {
				zap.L().Debug(
					"failed to send registration notice",
					zap.String("op", op),
					zap.Error(err),
				)
			}
		}()
	}

	return id, nil
}

func (c *Controller) DeleteUser(ctx context.Context, userID int64) error {
	const op = "users.DeleteUser.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.DeleteUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	c.cache.Delete(ctx, fmt.Sprintf(userCacheKey, userID))
	c.cache.Delete(ctx, fmt.Sprintf(userRoleCacheKey, userID))

	go c.cache.InvalidateKeysByPattern(ctx, userPattern)

	return nil
}
