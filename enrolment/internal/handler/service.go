package handler

import (
	"context"

	"github.com/Astemirdum/enrolment-service/enrolment/internal/model"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/service/book"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/service/rental"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/service/student"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ StudentService = (*student.Service)(nil)
	_ BookService    = (*book.Service)(nil)
	_ RentalService  = (*rental.Service)(nil)
)

type StudentService interface {
	CreateStudent(ctx context.Context, student model.StudentDto) (model.StudentDto, error)
	GetStudent(ctx context.Context, id int64) (model.StudentDetail, error)
	ListStudents(ctx context.Context, page, size int) ([]model.StudentDetail, error)
	UpdateStudent(ctx context.Context, id int64, student model.StudentDto) (model.StudentDetail, error)
	PatchStudent(ctx context.Context, id int64, patch model.StudentPatchRequest) (model.StudentDetail, error)
	DeleteStudent(ctx context.Context, id int64) error
	IssueIdCard(ctx context.Context, studentID int64) (model.StudentIdCardDto, error)
}

type BookService interface {
	CreateBook(ctx context.Context, book model.BookDto) (model.BookDto, error)
	GetBook(ctx context.Context, id int64) (model.BookDto, error)
	ListBooks(ctx context.Context, page, size int) ([]model.BookDto, error)
	UpdateBook(ctx context.Context, id int64, book model.BookDto) (model.BookDto, error)
	DeleteBook(ctx context.Context, id int64) error
}

type RentalService interface {
	CreateRental(ctx context.Context, rental model.RentalDto) (model.RentalDto, error)
	ReturnRental(ctx context.Context, id int64) (model.RentalDto, error)
}
