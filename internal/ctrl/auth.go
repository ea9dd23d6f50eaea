package ctrl

import (
	"context"
	"errors"

	"github.com/medicard/backend/internal/auth"
	"github.com/medicard/backend/internal/dto"
	"github.com/medicard/backend/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type authCtrl interface {
	Login(ctx context.Context, req *dto.EmailAndPasswordRequest) (*dto.TokenPair, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenPair, error)
}

type authRepo interface {
	SetLastTokens(ctx context.Context, userID int64, access, refresh string) error
	SwapLastTokens(
		ctx context.Context,
		userID int64,
		newAccess, newRefresh, oldAccess, oldRefresh string,
	) (bool, error)
}

func (c *Controller) Login(
	ctx context.Context,
	req *dto.EmailAndPasswordRequest,
) (*dto.TokenPair, error) {
	const op = "auth.Login.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	err = c.au.ComparePasswords([]byte(res.Password), []byte(req.Password))
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	access, refresh, err := c.au.GenPair(ctx, res.ID, res.Email)
	if err != nil {
		return nil, err
	}

	// The stored pair defines the single active session: anything
	// issued earlier stops refreshing from this point on.
	if err = c.repo.SetLastTokens(ctx, res.ID, access, refresh); err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		Access:  access,
		Refresh: refresh,
	}, nil
}

func (c *Controller) Refresh(
	ctx context.Context,
	req *dto.RefreshRequest,
) (*dto.TokenPair, error) {
	const op = "auth.Refresh.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.au.ParseRefresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	res, err := c.repo.GetUserByID(ctx, claims.UID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, auth.ErrTokenRevoked
		}
		return nil, err
	}

	access, refresh, err := c.au.GenPair(ctx, res.ID, res.Email)
	if err != nil {
		return nil, err
	}

	// Compare-and-swap on the stored pair: the presented tokens must
	// still be the last issued ones, otherwise they were superseded
	// by a later login or refresh and the attempt is a replay.
	swapped, err := c.repo.SwapLastTokens(
		ctx, res.ID,
		access, refresh,
		req.Token, req.RefreshToken,
	)
	if err != nil {
		return nil, err
	}

	if !swapped {
		zap.L().Info(
			"stale token pair presented on refresh",
			zap.String("op", op),
			zap.Int64("userID", res.ID),
		)

		return nil, auth.ErrTokenRevoked
	}

	return &dto.TokenPair{
		Access:  access,
		Refresh: refresh,
	}, nil
}
