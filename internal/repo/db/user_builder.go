package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	md "github.com/medicard/backend/internal/models"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type userListQuery struct {
	countQ    string
	countArgs []any
	dataQ     string
	dataArgs  []any
}

func buildUserListQuery(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (userListQuery, error) {
	const op = "users.buildUserListQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select().From("users u").PlaceholderFormat(sq.Dollar)

	if role, ok := filters["role"].(md.Role); ok {
		query = query.Where(sq.Eq{"u.role": role})
	}

	if gender, ok := filters["gender"].(string); ok {
		query = query.Where(sq.Eq{"u.gender": gender})
	}

	countSql, countArgs, err := query.Columns("COUNT(DISTINCT u.id)").ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build count query", zap.String("op", op), zap.Error(err))
		return userListQuery{}, err
	}

	dataSql, dataArgs, err := query.
		Columns(
			"u.id",
			"u.email",
			"u.pesel",
			"u.role",
			"u.first_name",
			"u.second_name",
			"u.last_name",
			"u.mother_name",
			"u.father_name",
			"u.gender",
			"u.height",
			"u.date_of_birth",
			"u.place_of_birth",
			"u.address",
			"u.created_at",
			"u.updated_at",
		).
		OrderBy("u.id").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build data query", zap.String("op", op), zap.Error(err))
		return userListQuery{}, err
	}

	return userListQuery{
		countQ:    countSql,
		countArgs: countArgs,
		dataQ:     dataSql,
		dataArgs:  dataArgs,
	}, nil
}
