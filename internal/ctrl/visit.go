package ctrl

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/medicard/backend/internal/dto"
	md "github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type visitCtrl interface {
	CardScan(ctx context.Context, req *dto.CardScanRequest) (int64, bool, error)
	ListVisits(ctx context.Context) ([]*md.Visit, error)
	ListVisitsByPatient(ctx context.Context, patientID int64) ([]*md.Visit, error)
	AddVisit(ctx context.Context, req *dto.AddVisitRequest) (int64, error)
	DeleteVisit(ctx context.Context, visitID int64) error
}

type visitRepo interface {
	GetCardByUID(ctx context.Context, uid string) (*md.Card, error)
	ListVisits(ctx context.Context) ([]*md.Visit, error)
	ListVisitsByPatient(ctx context.Context, patientID int64) ([]*md.Visit, error)
	CreateVisit(
		ctx context.Context,
		reason, description string,
		doctorID, patientID int64,
	) (int64, bool, error)
	DeleteVisit(ctx context.Context, visitID int64) error
}

// CardScan logs a visit for the patient owning the scanned card with
// the doctor currently chosen at the device. A repeat scan on the same
// calendar day is a no-op: the returned bool reports whether a new
// visit was created.
func (c *Controller) CardScan(ctx context.Context, req *dto.CardScanRequest) (int64, bool, error) {
	const op = "visits.CardScan.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	card, err := c.repo.GetCardByUID(ctx, req.CardUID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, false, ErrCardNotFound
		}
		if errors.Is(err, repo.ErrAmbiguous) {
			zap.L().Error(
				"several cards share one uid",
				zap.String("op", op),
				zap.String("cardUID", req.CardUID),
			)
			return 0, false, ErrAmbiguousCard
		}
		return 0, false, err
	}

	if subtle.ConstantTimeCompare([]byte(card.Pin), []byte(req.CardPin)) != 1 {
		return 0, false, ErrPinMismatch
	}

	device, err := c.repo.GetDeviceByID(ctx, req.DeviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, false, ErrDeviceNotFound
		}
		return 0, false, err
	}

	if device.LastUser == nil {
		return 0, false, ErrNoDoctorChosen
	}

	id, created, err := c.repo.CreateVisit(ctx, "", "", *device.LastUser, card.UserID)
	if err != nil {
		return 0, false, err
	}

	if created {
		zap.L().Info(
			"visit logged by card scan",
			zap.String("op", op),
			zap.Int64("doctorID", *device.LastUser),
			zap.Int64("patientID", card.UserID),
		)
	}

	return id, created, nil
}

func (c *Controller) ListVisits(ctx context.Context) ([]*md.Visit, error) {
	const op = "visits.ListVisits.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.ListVisits(ctx)
}

func (c *Controller) ListVisitsByPatient(ctx context.Context, patientID int64) ([]*md.Visit, error) {
	const op = "visits.ListVisitsByPatient.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.ListVisitsByPatient(ctx, patientID)
}

func (c *Controller) AddVisit(ctx context.Context, req *dto.AddVisitRequest) (int64, error) {
	const op = "visits.AddVisit.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.GetUserByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	id, created, err := c.repo.CreateVisit(ctx, req.Reason, req.Description, req.DoctorID, req.PatientID)
	if err != nil {
		return 0, err
	}

	if !created {
		return 0, ErrAlreadyExists
	}

	return id, nil
}

func (c *Controller) DeleteVisit(ctx context.Context, visitID int64) error {
	const op = "visits.DeleteVisit.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.DeleteVisit(ctx, visitID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}
