package repository

import (
	"context"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/enrolment-service/enrolment/internal/errs"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/model"
)

// CreateRental books one copy and records the rental in a single
// transaction. The decrement is guarded so the available count never goes
// below zero; zero affected rows means no copy was left to rent.
func (r *repository) CreateRental(ctx context.Context, studentID, bookID int64) (model.RentalEntity, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.RentalEntity{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ct, err := tx.Exec(ctx, `
update books
set available_count = available_count - 1
where id = @book_id and available_count > 0`,
		pgx.NamedArgs{"book_id": bookID})
	if err != nil {
		return model.RentalEntity{}, err
	}
	if ct.RowsAffected() == 0 {
		return model.RentalEntity{}, errs.ErrOutOfStock
	}

	query, args, err := qb.Insert(rentalsTableName).
		Columns("student_id", "book_id").
		Values(studentID, bookID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.RentalEntity{}, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return model.RentalEntity{}, err
	}

	rental, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RentalEntity])
	if err != nil {
		if isPgErr(err, pgerrcode.ForeignKeyViolation) {
			return model.RentalEntity{}, errs.ErrNotFound
		}
		r.log.Error("CreateRental", zap.String("q", query), zap.Any("args", args))
		return model.RentalEntity{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.RentalEntity{}, err
	}
	return rental, nil
}

// ReturnRental closes an active rental and releases its copy in a single
// transaction. The update is guarded on returned_at so a rental can be
// returned at most once; the release is capped at the total count.
func (r *repository) ReturnRental(ctx context.Context, id int64) (model.RentalEntity, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.RentalEntity{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
update rentals
set returned_at = now()
where id = @id and returned_at is null
returning *`,
		pgx.NamedArgs{"id": id})
	if err != nil {
		return model.RentalEntity{}, err
	}

	rental, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RentalEntity])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RentalEntity{}, errs.ErrNotFound
		}
		return model.RentalEntity{}, err
	}

	if _, err := tx.Exec(ctx, `
update books
set available_count = least(available_count + 1, total_count)
where id = @book_id`,
		pgx.NamedArgs{"book_id": rental.BookID}); err != nil {
		return model.RentalEntity{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.RentalEntity{}, err
	}
	return rental, nil
}
