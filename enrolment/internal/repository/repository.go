package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/enrolment-service/enrolment/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type StudentRepository interface {
	CreateStudent(ctx context.Context, student model.StudentEntity) (model.StudentEntity, error)
	GetStudent(ctx context.Context, id int64) (model.StudentEntity, error)
	ListStudents(ctx context.Context, page, size int) ([]model.StudentEntity, error)
	UpdateStudent(ctx context.Context, id int64, student model.StudentEntity) (model.StudentEntity, error)
	PatchStudent(ctx context.Context, id int64, patch model.StudentPatchRequest) (model.StudentEntity, error)
	DeleteStudent(ctx context.Context, id int64) error
	CreateIdCard(ctx context.Context, studentID int64, cardNumber string) (model.StudentIdCardEntity, error)
	GetIdCard(ctx context.Context, studentID int64) (model.StudentIdCardEntity, error)
	ListIdCards(ctx context.Context, studentIDs []int64) ([]model.StudentIdCardEntity, error)
}

type BookRepository interface {
	CreateBook(ctx context.Context, book model.BookEntity) (model.BookEntity, error)
	GetBook(ctx context.Context, id int64) (model.BookEntity, error)
	ListBooks(ctx context.Context, page, size int) ([]model.BookEntity, error)
	UpdateBook(ctx context.Context, id int64, book model.BookEntity) (model.BookEntity, error)
	DeleteBook(ctx context.Context, id int64) error
	ListRentedBooks(ctx context.Context, studentIDs []int64) ([]model.RentedBookEntity, error)
}

type RentalRepository interface {
	CreateRental(ctx context.Context, studentID, bookID int64) (model.RentalEntity, error)
	ReturnRental(ctx context.Context, id int64) (model.RentalEntity, error)
}

var (
	_ StudentRepository = (*repository)(nil)
	_ BookRepository    = (*repository)(nil)
	_ RentalRepository  = (*repository)(nil)
)

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	studentsTableName       = `students`
	studentIdCardsTableName = `student_id_cards`
	booksTableName          = `books`
	rentalsTableName        = `rentals`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func isPgErr(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
