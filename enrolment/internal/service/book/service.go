package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/enrolment-service/enrolment/internal/model"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.BookRepository
}

func NewService(repo repository.BookRepository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) CreateBook(ctx context.Context, book model.BookDto) (model.BookDto, error) {
	created, err := s.repo.CreateBook(ctx, book.ToEntity())
	if err != nil {
		return model.BookDto{}, err
	}
	return created.ToDto(), nil
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.BookDto, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.BookDto{}, err
	}
	return book.ToDto(), nil
}

func (s *Service) ListBooks(ctx context.Context, page, size int) ([]model.BookDto, error) {
	books, err := s.repo.ListBooks(ctx, page, size)
	if err != nil {
		return nil, err
	}
	dtos := make([]model.BookDto, 0, len(books))
	for _, b := range books {
		dtos = append(dtos, b.ToDto())
	}
	return dtos, nil
}

func (s *Service) UpdateBook(ctx context.Context, id int64, book model.BookDto) (model.BookDto, error) {
	updated, err := s.repo.UpdateBook(ctx, id, book.ToEntity())
	if err != nil {
		return model.BookDto{}, err
	}
	return updated.ToDto(), nil
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}
