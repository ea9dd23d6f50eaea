package db

import (
	"context"
	"database/sql"
	"errors"

	md "github.com/medicard/backend/internal/models"
	"github.com/medicard/backend/internal/repo"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) ListVisits(ctx context.Context) ([]*md.Visit, error) {
	const op = "visits.ListVisits.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Visit, 0)
	if err := r.conn.SelectContext(ctx, &res, visitListQ); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListVisitsByPatient(ctx context.Context, patientID int64) ([]*md.Visit, error) {
	const op = "visits.ListVisitsByPatient.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Visit, 0)
	if err := r.conn.SelectContext(ctx, &res, visitListByPatientQ, patientID); err != nil {
		return nil, err
	}

	return res, nil
}

// CreateVisit inserts a visit unless one already exists for the same
// doctor, patient and calendar day. It returns the new id and true on
// insert, or zero and false when the day already has a visit.
func (r *Repository) CreateVisit(
	ctx context.Context,
	reason, description string,
	doctorID, patientID int64,
) (int64, bool, error) {
	const op = "visits.CreateVisit.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id int64
	err := r.conn.GetContext(ctx, &id, visitCreateQ, reason, description, doctorID, patientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return id, true, nil
}

func (r *Repository) DeleteVisit(ctx context.Context, visitID int64) error {
	const op = "visits.DeleteVisit.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, visitDeleteQ, visitID)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}
