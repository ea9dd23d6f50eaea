package ctrl

import (
	"context"
	"errors"

	"github.com/medicard/backend/internal/dto"
	md "github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo"
	"github.com/opentracing/opentracing-go"
)

type allergyCtrl interface {
	ListAllergies(ctx context.Context) ([]*md.Allergy, error)
	GetAllergy(ctx context.Context, id int64) (*md.Allergy, error)
	AddAllergy(ctx context.Context, req *dto.AddAllergyRequest) (int64, error)
	DeleteAllergy(ctx context.Context, id int64) error
}

type allergyRepo interface {
	ListAllergies(ctx context.Context) ([]*md.Allergy, error)
	GetAllergy(ctx context.Context, id int64) (*md.Allergy, error)
	CreateAllergy(ctx context.Context, userID int64, name string) (int64, error)
	DeleteAllergy(ctx context.Context, id int64) error
}

func (c *Controller) ListAllergies(ctx context.Context) ([]*md.Allergy, error) {
	const op = "allergies.ListAllergies.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.ListAllergies(ctx)
}

func (c *Controller) GetAllergy(ctx context.Context, id int64) (*md.Allergy, error) {
	const op = "allergies.GetAllergy.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetAllergy(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (c *Controller) AddAllergy(ctx context.Context, req *dto.AddAllergyRequest) (int64, error) {
	const op = "allergies.AddAllergy.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	id, err := c.repo.CreateAllergy(ctx, req.UserID, req.Name)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return 0, ErrAlreadyExists
		}
		return 0, err
	}

	return id, nil
}

func (c *Controller) DeleteAllergy(ctx context.Context, id int64) error {
	const op = "allergies.DeleteAllergy.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.DeleteAllergy(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}
