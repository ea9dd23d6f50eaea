package ctrl

import (
	"context"
	"errors"

	"github.com/medicard/backend/internal/dto"
	md "github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo"
	"github.com/medicard/backend/internal/repo/s3"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type prescriptionCtrl interface {
	ListPrescriptions(ctx context.Context) ([]*md.Prescription, error)
	GetPrescription(ctx context.Context, id int64) (*md.Prescription, error)
	ListPrescriptionsByPatient(ctx context.Context, patientID int64) ([]*md.Prescription, error)
	AddPrescription(ctx context.Context, req *dto.AddPrescriptionRequest) (int64, error)
	UploadPrescriptionAttachment(ctx context.Context, id int64, req *s3.UploadFileRequest) (string, error)
	DeletePrescription(ctx context.Context, id int64) error
}

type prescriptionRepo interface {
	ListPrescriptions(ctx context.Context) ([]*md.Prescription, error)
	GetPrescription(ctx context.Context, id int64) (*md.Prescription, error)
	ListPrescriptionsByPatient(ctx context.Context, patientID int64) ([]*md.Prescription, error)
	CreatePrescription(ctx context.Context, req *dto.AddPrescriptionRequest) (int64, error)
	SetPrescriptionAttachment(ctx context.Context, id int64, url string) error
	DeletePrescription(ctx context.Context, id int64) error
}

func (c *Controller) ListPrescriptions(ctx context.Context) ([]*md.Prescription, error) {
	const op = "prescriptions.ListPrescriptions.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.ListPrescriptions(ctx)
}

func (c *Controller) GetPrescription(ctx context.Context, id int64) (*md.Prescription, error) {
	const op = "prescriptions.GetPrescription.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetPrescription(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (c *Controller) ListPrescriptionsByPatient(ctx context.Context, patientID int64) ([]*md.Prescription, error) {
	const op = "prescriptions.ListPrescriptionsByPatient.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.ListPrescriptionsByPatient(ctx, patientID)
}

func (c *Controller) AddPrescription(ctx context.Context, req *dto.AddPrescriptionRequest) (int64, error) {
	const op = "prescriptions.AddPrescription.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.GetUserByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	if _, err := c.repo.GetMedicine(ctx, req.MedicineID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	return c.repo.CreatePrescription(ctx, req)
}

// UploadPrescriptionAttachment stores the scanned document in the
// object store and binds its public URL to the prescription.
func (c *Controller) UploadPrescriptionAttachment(
	ctx context.Context,
	id int64,
	req *s3.UploadFileRequest,
) (string, error) {
	const op = "prescriptions.UploadPrescriptionAttachment.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.GetPrescription(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	url, err := c.s3.UploadFile(ctx, req)
	if err != nil {
		zap.L().Error(
			"failed to upload prescription attachment",
			zap.String("op", op),
			zap.Int64("prescriptionID", id),
			zap.Error(err),
		)
		return "", err
	}

	if err = c.repo.SetPrescriptionAttachment(ctx, id, url); err != nil {
		return "", err
	}

	return url, nil
}

func (c *Controller) DeletePrescription(ctx context.Context, id int64) error {
	const op = "prescriptions.DeletePrescription.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.DeletePrescription(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}
