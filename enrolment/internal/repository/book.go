package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/enrolment-service/enrolment/internal/errs"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/model"
)

func (r *repository) CreateBook(ctx context.Context, book model.BookEntity) (model.BookEntity, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "total_count", "available_count").
		Values(book.Title, book.Author, book.Isbn, book.TotalCount, book.AvailableCount).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.BookEntity{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.BookEntity{}, err
	}
	defer rows.Close()

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BookEntity])
	if err != nil {
		return model.BookEntity{}, err
	}

	return created, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.BookEntity, error) {
	query, args, err := qb.Select("id", "title", "author", "isbn", "total_count", "available_count", "created_at").
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BookEntity{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.BookEntity{}, err
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BookEntity])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.BookEntity{}, errs.ErrNotFound
		}
		return model.BookEntity{}, err
	}

	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, page, size int) ([]model.BookEntity, error) {
	q := qb.Select("id", "title", "author", "isbn", "total_count", "available_count", "created_at").
		From(booksTableName).
		OrderBy("id")

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.BookEntity])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return books, nil
}

// UpdateBook rewrites book attributes and the total stock. The available
// count keeps the rented-out delta and stays within [0, total].
func (r *repository) UpdateBook(ctx context.Context, id int64, book model.BookEntity) (model.BookEntity, error) {
	q := `
update books
set title = @title,
    author = @author,
    isbn = @isbn,
    available_count = greatest(0, least(available_count + @total_count - total_count, @total_count)),
    total_count = @total_count
where id = @id
returning *`
	args := pgx.NamedArgs{
		"id":          id,
		"title":       book.Title,
		"author":      book.Author,
		"isbn":        book.Isbn,
		"total_count": book.TotalCount,
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return model.BookEntity{}, err
	}
	defer rows.Close()

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BookEntity])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.BookEntity{}, errs.ErrNotFound
		}
		return model.BookEntity{}, err
	}

	return updated, nil
}

func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(booksTableName).
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

// ListRentedBooks returns the books currently held by each of the given
// students, joined through their active rentals.
func (r *repository) ListRentedBooks(ctx context.Context, studentIDs []int64) ([]model.RentedBookEntity, error) {
	query, args, err := qb.Select("r.student_id", "b.id", "b.title", "b.author", "b.isbn", "b.total_count", "b.available_count", "b.created_at").
		From(rentalsTableName + " r").
		Join(fmt.Sprintf("%s b on b.id = r.book_id", booksTableName)).
		Where(sq.Eq{"r.returned_at": nil}).
		Where(sq.Eq{"r.student_id": studentIDs}).
		OrderBy("b.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.RentedBookEntity])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return books, nil
}
