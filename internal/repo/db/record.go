package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/medicard/backend/internal/dto"
	md "github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) ListAllergies(ctx context.Context) ([]*md.Allergy, error) {
	const op = "allergies.ListAllergies.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Allergy, 0)
	if err := r.conn.SelectContext(ctx, &res, allergyListQ); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetAllergy(ctx context.Context, id int64) (*md.Allergy, error) {
	const op = "allergies.GetAllergy.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Allergy{}
	if err := r.conn.GetContext(ctx, res, allergyGetQ, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateAllergy(ctx context.Context, userID int64, name string) (int64, error) {
	const op = "allergies.CreateAllergy.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id int64
	if err := r.conn.GetContext(ctx, &id, allergyCreateQ, userID, name); err != nil {
		if isUniqueViolation(err) {
			return 0, repo.ErrAlreadyExists
		}
		return 0, err
	}

	return id, nil
}

func (r *Repository) DeleteAllergy(ctx context.Context, id int64) error {
	const op = "allergies.DeleteAllergy.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, allergyDeleteQ, id)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) ListMedicines(ctx context.Context) ([]*md.Medicine, error) {
	const op = "medicines.ListMedicines.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Medicine, 0)
	if err := r.conn.SelectContext(ctx, &res, medicineListQ); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetMedicine(ctx context.Context, id int64) (*md.Medicine, error) {
	const op = "medicines.GetMedicine.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Medicine{}
	if err := r.conn.GetContext(ctx, res, medicineGetQ, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateMedicine(ctx context.Context, req *dto.AddMedicineRequest) (int64, error) {
	const op = "medicines.CreateMedicine.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id int64
	err := r.conn.GetContext(ctx, &id, medicineCreateQ, req.Name, req.Description, req.TakingFrequency)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repo.ErrAlreadyExists
		}
		return 0, err
	}

	return id, nil
}

func (r *Repository) DeleteMedicine(ctx context.Context, id int64) error {
	const op = "medicines.DeleteMedicine.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, medicineDeleteQ, id)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) ListInstitutions(ctx context.Context) ([]*md.Institution, error) {
	const op = "institutions.ListInstitutions.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Institution, 0)
	if err := r.conn.SelectContext(ctx, &res, institutionListQ); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetInstitution(ctx context.Context, id int64) (*md.Institution, error) {
	const op = "institutions.GetInstitution.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Institution{}
	if err := r.conn.GetContext(ctx, res, institutionGetQ, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateInstitution(ctx context.Context, req *dto.AddInstitutionRequest) (int64, error) {
	const op = "institutions.CreateInstitution.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id int64
	err := r.conn.GetContext(
		ctx, &id, institutionCreateQ,
		req.Name,
		req.PhoneNumber,
		req.AddressStreet,
		req.AddressHouseNumber,
		req.AddressPostcode,
		req.AddressCity,
		req.AddressCountry,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repo.ErrAlreadyExists
		}
		return 0, err
	}

	return id, nil
}

func (r *Repository) DeleteInstitution(ctx context.Context, id int64) error {
	const op = "institutions.DeleteInstitution.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, institutionDeleteQ, id)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) ListPrescriptions(ctx context.Context) ([]*md.Prescription, error) {
	const op = "prescriptions.ListPrescriptions.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Prescription, 0)
	if err := r.conn.SelectContext(ctx, &res, prescriptionListQ); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetPrescription(ctx context.Context, id int64) (*md.Prescription, error) {
	const op = "prescriptions.GetPrescription.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Prescription{}
	if err := r.conn.GetContext(ctx, res, prescriptionGetQ, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListPrescriptionsByPatient(ctx context.Context, patientID int64) ([]*md.Prescription, error) {
	const op = "prescriptions.ListPrescriptionsByPatient.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Prescription, 0)
	if err := r.conn.SelectContext(ctx, &res, prescriptionListByPatientQ, patientID); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreatePrescription(ctx context.Context, req *dto.AddPrescriptionRequest) (int64, error) {
	const op = "prescriptions.CreatePrescription.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id int64
	err := r.conn.GetContext(
		ctx, &id, prescriptionCreateQ,
		req.DoctorID,
		req.PatientID,
		req.MedicineID,
		req.Description,
		req.TakingFrequency,
	)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *Repository) SetPrescriptionAttachment(ctx context.Context, id int64, url string) error {
	const op = "prescriptions.SetPrescriptionAttachment.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, prescriptionSetAttachmentQ, url, id)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) DeletePrescription(ctx context.Context, id int64) error {
	const op = "prescriptions.DeletePrescription.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, prescriptionDeleteQ, id)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}
