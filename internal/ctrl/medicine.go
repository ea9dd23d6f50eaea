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

type medicineCtrl interface {
	ListMedicines(ctx context.Context) ([]*md.Medicine, error)
	GetMedicine(ctx context.Context, id int64) (*md.Medicine, error)
	AddMedicine(ctx context.Context, req *dto.AddMedicineRequest) (int64, error)
	DeleteMedicine(ctx context.Context, id int64) error
}

type medicineRepo interface {
	ListMedicines(ctx context.Context) ([]*md.Medicine, error)
	GetMedicine(ctx context.Context, id int64) (*md.Medicine, error)
	CreateMedicine(ctx context.Context, req *dto.AddMedicineRequest) (int64, error)
	DeleteMedicine(ctx context.Context, id int64) error
}

const (
	medicinesListKey = "medicines-list"
	medicinePattern  = "medicine*"
)

// Medicines are reference data that changes rarely, so the full list
// is cached.
func (c *Controller) ListMedicines(ctx context.Context) ([]*md.Medicine, error) {
	const op = "medicines.ListMedicines.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := make([]*md.Medicine, 0)
	if err := c.cache.GetToStruct(ctx, medicinesListKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListMedicines(ctx)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, medicinesListKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetMedicine(ctx context.Context, id int64) (*md.Medicine, error) {
	const op = "medicines.GetMedicine.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetMedicine(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (c *Controller) AddMedicine(ctx context.Context, req *dto.AddMedicineRequest) (int64, error) {
	const op = "medicines.AddMedicine.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	id, err := c.repo.CreateMedicine(ctx, req)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return 0, ErrAlreadyExists
		}
		return 0, err
	}

	go c.cache.InvalidateKeysByPattern(ctx, medicinePattern)

	return id, nil
}

func (c *Controller) DeleteMedicine(ctx context.Context, id int64) error {
	const op = "medicines.DeleteMedicine.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.DeleteMedicine(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	go c.cache.InvalidateKeysByPattern(ctx, medicinePattern)

	return nil
}
