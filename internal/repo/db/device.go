package db

import (
	"context"
	"database/sql"
	"errors"

	md "github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) GetDeviceByID(ctx context.Context, deviceID int64) (*md.Device, error) {
	const op = "devices.GetDeviceByID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, deviceGetByIDQ, deviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateDevice(ctx context.Context, pin string) (int64, error) {
	const op = "devices.CreateDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id int64
	if err := r.conn.GetContext(ctx, &id, deviceCreateQ, pin); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *Repository) DeleteDevice(ctx context.Context, deviceID int64) error {
	const op = "devices.DeleteDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deviceDeleteQ, deviceID)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) SetDeviceLastUser(ctx context.Context, deviceID, userID int64) error {
	const op = "devices.SetDeviceLastUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deviceSetLastUserQ, userID, deviceID)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) UpsertVerificationPin(ctx context.Context, deviceID int64, pin string) error {
	const op = "devices.UpsertVerificationPin.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, devicePinUpsertQ, deviceID, pin)
	return err
}

func (r *Repository) GetVerificationPin(ctx context.Context, deviceID int64) (*md.DeviceVerificationPin, error) {
	const op = "devices.GetVerificationPin.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.DeviceVerificationPin{}
	err := r.conn.GetContext(ctx, res, devicePinGetQ, deviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

// LinkUserToDevice inserts the link if absent. It returns false when
// the link already existed.
func (r *Repository) LinkUserToDevice(ctx context.Context, userID, deviceID int64) (bool, error) {
	const op = "devices.LinkUserToDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deviceUserLinkQ, userID, deviceID)
	if err != nil {
		return false, err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return aff > 0, nil
}

func (r *Repository) UnlinkUserFromDevice(ctx context.Context, userID, deviceID int64) error {
	const op = "devices.UnlinkUserFromDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deviceUserUnlinkQ, userID, deviceID)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

// GetCardByUID requires exactly one match. Several rows with the same
// uid indicate a corrupted card table and surface as ErrAmbiguous.
func (r *Repository) GetCardByUID(ctx context.Context, uid string) (*md.Card, error) {
	const op = "devices.GetCardByUID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Card, 0, 1)
	if err := r.conn.SelectContext(ctx, &res, cardGetByUIDQ, uid); err != nil {
		return nil, err
	}

	switch len(res) {
	case 0:
		return nil, repo.ErrNotFound
	case 1:
		return res[0], nil
	default:
		return nil, repo.ErrAmbiguous
	}
}
