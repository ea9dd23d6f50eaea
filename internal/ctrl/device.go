package ctrl

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/medicard/backend/internal/auth"
	"github.com/medicard/backend/internal/config"
	"github.com/medicard/backend/internal/dto"
	md "github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type deviceCtrl interface {
	GetDevice(ctx context.Context, deviceID int64) (*md.Device, error)
	RegisterDevice(ctx context.Context, req *dto.RegisterDeviceRequest) (int64, error)
	DeviceLogin(ctx context.Context, req *dto.DeviceLoginRequest) error
	DeleteDevice(ctx context.Context, deviceID int64) error
	IssueVerificationPin(ctx context.Context, req *dto.IssueVerificationPinRequest) error
	AddUserToDevice(ctx context.Context, req *dto.DeviceUserRequest) error
	RemoveUserFromDevice(ctx context.Context, req *dto.DeviceUserRequest) error
	ChooseDevice(ctx context.Context, req *dto.ChooseDeviceRequest) error
}

type deviceRepo interface {
	GetDeviceByID(ctx context.Context, deviceID int64) (*md.Device, error)
	CreateDevice(ctx context.Context, pin string) (int64, error)
	DeleteDevice(ctx context.Context, deviceID int64) error
	SetDeviceLastUser(ctx context.Context, deviceID, userID int64) error
	UpsertVerificationPin(ctx context.Context, deviceID int64, pin string) error
	GetVerificationPin(ctx context.Context, deviceID int64) (*md.DeviceVerificationPin, error)
	LinkUserToDevice(ctx context.Context, userID, deviceID int64) (bool, error)
	UnlinkUserFromDevice(ctx context.Context, userID, deviceID int64) error
}

func (c *Controller) GetDevice(ctx context.Context, deviceID int64) (*md.Device, error) {
	const op = "devices.GetDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}

	return res, nil
}

func (c *Controller) RegisterDevice(ctx context.Context, req *dto.RegisterDeviceRequest) (int64, error) {
	const op = "devices.RegisterDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.CreateDevice(ctx, req.Pin)
}

// DeviceLogin is the legacy terminal login: a plaintext pin comparison
// kept for compatibility with deployed devices.
func (c *Controller) DeviceLogin(ctx context.Context, req *dto.DeviceLoginRequest) error {
	const op = "devices.DeviceLogin.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetDeviceByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}

	if subtle.ConstantTimeCompare([]byte(res.Pin), []byte(req.Pin)) != 1 {
		return auth.ErrInvalidCredentials
	}

	return nil
}

func (c *Controller) DeleteDevice(ctx context.Context, deviceID int64) error {
	const op = "devices.DeleteDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.DeleteDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}

	return nil
}

func (c *Controller) IssueVerificationPin(ctx context.Context, req *dto.IssueVerificationPinRequest) error {
	const op = "devices.IssueVerificationPin.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.GetDeviceByID(ctx, req.DeviceID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}

	return c.repo.UpsertVerificationPin(ctx, req.DeviceID, req.Pin)
}

// AddUserToDevice links an account to a terminal once the submitted
// verification pin proves recent physical presence at it.
func (c *Controller) AddUserToDevice(ctx context.Context, req *dto.DeviceUserRequest) error {
	const op = "devices.AddUserToDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.GetDeviceByID(ctx, req.DeviceID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}

	pin, err := c.repo.GetVerificationPin(ctx, req.DeviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrVerificationPinExpired
		}
		return err
	}

	if time.Since(pin.IssuedAt) > config.VerificationPinTTL {
		return ErrVerificationPinExpired
	}

	if subtle.ConstantTimeCompare([]byte(pin.Pin), []byte(req.Pin)) != 1 {
		return ErrPinMismatch
	}

	if _, err = c.repo.GetUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	created, err := c.repo.LinkUserToDevice(ctx, req.UserID, req.DeviceID)
	if err != nil {
		return err
	}

	if !created {
		return ErrAlreadyExists
	}

	zap.L().Info(
		"user linked to device",
		zap.String("op", op),
		zap.Int64("userID", req.UserID),
		zap.Int64("deviceID", req.DeviceID),
	)

	return nil
}

func (c *Controller) RemoveUserFromDevice(ctx context.Context, req *dto.DeviceUserRequest) error {
	const op = "devices.RemoveUserFromDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.UnlinkUserFromDevice(ctx, req.UserID, req.DeviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}

// ChooseDevice marks the calling doctor as the one attending the
// terminal; subsequent card scans attribute visits to them.
func (c *Controller) ChooseDevice(ctx context.Context, req *dto.ChooseDeviceRequest) error {
	const op = "devices.ChooseDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.GetUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	err := c.repo.SetDeviceLastUser(ctx, req.DeviceID, req.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}

	return nil
}
