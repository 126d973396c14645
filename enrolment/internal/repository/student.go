package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/enrolment-service/enrolment/internal/errs"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/model"
)

func (r *repository) CreateStudent(ctx context.Context, student model.StudentEntity) (model.StudentEntity, error) {
	query, args, err := qb.Insert(studentsTableName).
		Columns("first_name", "last_name", "email", "age").
		Values(student.FirstName, student.LastName, student.Email, student.Age).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.StudentEntity{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.StudentEntity{}, err
	}
	defer rows.Close()

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.StudentEntity])
	if err != nil {
		if isPgErr(err, pgerrcode.UniqueViolation) {
			return model.StudentEntity{}, errs.ErrConflict
		}
		return model.StudentEntity{}, err
	}

	return created, nil
}

func (r *repository) GetStudent(ctx context.Context, id int64) (model.StudentEntity, error) {
	query, args, err := qb.Select("id", "first_name", "last_name", "email", "age", "created_at").
		From(studentsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.StudentEntity{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.StudentEntity{}, err
	}
	defer rows.Close()

	student, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.StudentEntity])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.StudentEntity{}, errs.ErrNotFound
		}
		return model.StudentEntity{}, err
	}

	return student, nil
}

func (r *repository) ListStudents(ctx context.Context, page, size int) ([]model.StudentEntity, error) {
	q := qb.Select("id", "first_name", "last_name", "email", "age", "created_at").
		From(studentsTableName).
		OrderBy("id")

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListStudents", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.StudentEntity])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return students, nil
}

func (r *repository) UpdateStudent(ctx context.Context, id int64, student model.StudentEntity) (model.StudentEntity, error) {
	query, args, err := qb.Update(studentsTableName).
		Set("first_name", student.FirstName).
		Set("last_name", student.LastName).
		Set("email", student.Email).
		Set("age", student.Age).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.StudentEntity{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.StudentEntity{}, err
	}
	defer rows.Close()

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.StudentEntity])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.StudentEntity{}, errs.ErrNotFound
		}
		if isPgErr(err, pgerrcode.UniqueViolation) {
			return model.StudentEntity{}, errs.ErrConflict
		}
		return model.StudentEntity{}, err
	}

	return updated, nil
}

func (r *repository) PatchStudent(ctx context.Context, id int64, patch model.StudentPatchRequest) (model.StudentEntity, error) {
	q := qb.Update(studentsTableName)
	if patch.FirstName != nil {
		q = q.Set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		q = q.Set("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		q = q.Set("email", *patch.Email)
	}
	if patch.Age != nil {
		q = q.Set("age", *patch.Age)
	}

	query, args, err := q.Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.StudentEntity{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.StudentEntity{}, err
	}
	defer rows.Close()

	patched, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.StudentEntity])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.StudentEntity{}, errs.ErrNotFound
		}
		if isPgErr(err, pgerrcode.UniqueViolation) {
			return model.StudentEntity{}, errs.ErrConflict
		}
		return model.StudentEntity{}, err
	}

	return patched, nil
}

func (r *repository) DeleteStudent(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(studentsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isPgErr(err, pgerrcode.ForeignKeyViolation) {
			return errs.ErrConflict
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) CreateIdCard(ctx context.Context, studentID int64, cardNumber string) (model.StudentIdCardEntity, error) {
	query, args, err := qb.Insert(studentIdCardsTableName).
		Columns("student_id", "card_number").
		Values(studentID, cardNumber).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.StudentIdCardEntity{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.StudentIdCardEntity{}, err
	}
	defer rows.Close()

	card, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.StudentIdCardEntity])
	if err != nil {
		if isPgErr(err, pgerrcode.UniqueViolation) {
			return model.StudentIdCardEntity{}, errs.ErrConflict
		}
		if isPgErr(err, pgerrcode.ForeignKeyViolation) {
			return model.StudentIdCardEntity{}, errs.ErrNotFound
		}
		return model.StudentIdCardEntity{}, err
	}

	return card, nil
}

func (r *repository) GetIdCard(ctx context.Context, studentID int64) (model.StudentIdCardEntity, error) {
	query, args, err := qb.Select("id", "student_id", "card_number", "issued_at").
		From(studentIdCardsTableName).
		Where(sq.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.StudentIdCardEntity{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.StudentIdCardEntity{}, err
	}
	defer rows.Close()

	card, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.StudentIdCardEntity])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.StudentIdCardEntity{}, errs.ErrNotFound
		}
		return model.StudentIdCardEntity{}, err
	}

	return card, nil
}

func (r *repository) ListIdCards(ctx context.Context, studentIDs []int64) ([]model.StudentIdCardEntity, error) {
	query, args, err := qb.Select("id", "student_id", "card_number", "issued_at").
		From(studentIdCardsTableName).
		Where(sq.Eq{"student_id": studentIDs}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.StudentIdCardEntity])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return cards, nil
}
