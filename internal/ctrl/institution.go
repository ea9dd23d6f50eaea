package ctrl

import (
	"context"
	"errors"

	"github.com/goccy/go-json"
	"github.com/medicard/backend/internal/config"
	"github.com/medicard/backend/internal/dto"
	md "github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo"
	"github.com/opentracing/opentracing-go"
)

type institutionCtrl interface {
	ListInstitutions(ctx context.Context) ([]*md.Institution, error)
	GetInstitution(ctx context.Context, id int64) (*md.Institution, error)
	AddInstitution(ctx context.Context, req *dto.AddInstitutionRequest) (int64, error)
	DeleteInstitution(ctx context.Context, id int64) error
}

type institutionRepo interface {
	ListInstitutions(ctx context.Context) ([]*md.Institution, error)
	GetInstitution(ctx context.Context, id int64) (*md.Institution, error)
	CreateInstitution(ctx context.Context, req *dto.AddInstitutionRequest) (int64, error)
	DeleteInstitution(ctx context.Context, id int64) error
}

const (
	institutionsListKey = "institutions-list"
	institutionPattern  = "institution*"
)

func (c *Controller) ListInstitutions(ctx context.Context) ([]*md.Institution, error) {
	const op = "institutions.ListInstitutions.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := make([]*md.Institution, 0)
	if err := c.cache.GetToStruct(ctx, institutionsListKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListInstitutions(ctx)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, institutionsListKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetInstitution(ctx context.Context, id int64) (*md.Institution, error) {
	const op = "institutions.GetInstitution.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetInstitution(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (c *Controller) AddInstitution(ctx context.Context, req *dto.AddInstitutionRequest) (int64, error) {
	const op = "institutions.AddInstitution.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	id, err := c.repo.CreateInstitution(ctx, req)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return 0, ErrAlreadyExists
		}
		return 0, err
	}

	go c.cache.InvalidateKeysByPattern(ctx, institutionPattern)

	return id, nil
}

func (c *Controller) DeleteInstitution(ctx context.Context, id int64) error {
	const op = "institutions.DeleteInstitution.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.DeleteInstitution(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	go c.cache.InvalidateKeysByPattern(ctx, institutionPattern)

	return nil
}
