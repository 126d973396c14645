package rental

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/enrolment-service/enrolment/internal/errs"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/model"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/repository"
)

type Service struct {
	log      *zap.Logger
	repo     repository.RentalRepository
	students repository.StudentRepository
	books    repository.BookRepository
}

func NewService(repo repository.RentalRepository, students repository.StudentRepository, books repository.BookRepository, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		students: students,
		books:    books,
	}
}

// CreateRental rents one copy of a book to a student. Both sides are
// checked up front so a missing id reads as not found rather than as an
// empty stock; the stock decrement itself is guarded inside the repository
// transaction and stays authoritative under concurrent rents.
func (s *Service) CreateRental(ctx context.Context, rental model.RentalDto) (model.RentalDto, error) {
	if _, err := s.students.GetStudent(ctx, rental.StudentID); err != nil {
		return model.RentalDto{}, err
	}
	book, err := s.books.GetBook(ctx, rental.BookID)
	if err != nil {
		return model.RentalDto{}, err
	}
	if book.AvailableCount == 0 {
		return model.RentalDto{}, errs.ErrOutOfStock
	}

	created, err := s.repo.CreateRental(ctx, rental.StudentID, rental.BookID)
	if err != nil {
		return model.RentalDto{}, err
	}
	return created.ToDto(), nil
}

func (s *Service) ReturnRental(ctx context.Context, id int64) (model.RentalDto, error) {
	returned, err := s.repo.ReturnRental(ctx, id)
	if err != nil {
		return model.RentalDto{}, err
	}
	return returned.ToDto(), nil
}
