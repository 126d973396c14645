package rental_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/enrolment-service/enrolment/internal/errs"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/model"
	repo_mocks "github.com/Astemirdum/enrolment-service/enrolment/internal/repository/mocks"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/service/rental"
)

type mocks struct {
	rentals  *repo_mocks.MockRentalRepository
	students *repo_mocks.MockStudentRepository
	books    *repo_mocks.MockBookRepository
}

func newMocks(c *gomock.Controller) mocks {
	return mocks{
		rentals:  repo_mocks.NewMockRentalRepository(c),
		students: repo_mocks.NewMockStudentRepository(c),
		books:    repo_mocks.NewMockBookRepository(c),
	}
}

func TestService_CreateRental(t *testing.T) {
	t.Parallel()
	type mockBehavior func(m mocks, req model.RentalDto)

	rentedAt := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		req          model.RentalDto
		want         model.RentalDto
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(m mocks, req model.RentalDto) {
				m.students.EXPECT().
					GetStudent(gomock.Any(), req.StudentID).
					Return(model.StudentEntity{ID: req.StudentID}, nil)
				m.books.EXPECT().
					GetBook(gomock.Any(), req.BookID).
					Return(model.BookEntity{ID: req.BookID, TotalCount: 1, AvailableCount: 1}, nil)
				m.rentals.EXPECT().
					CreateRental(gomock.Any(), req.StudentID, req.BookID).
					Return(model.RentalEntity{ID: 1, StudentID: req.StudentID, BookID: req.BookID, RentedAt: rentedAt}, nil)
			},
			req:  model.RentalDto{StudentID: 7, BookID: 3},
			want: model.RentalDto{ID: 1, StudentID: 7, BookID: 3, RentedAt: rentedAt},
		},
		{
			name: "err. student not found",
			mockBehavior: func(m mocks, req model.RentalDto) {
				m.students.EXPECT().
					GetStudent(gomock.Any(), req.StudentID).
					Return(model.StudentEntity{}, errs.ErrNotFound)
			},
			req:     model.RentalDto{StudentID: 404, BookID: 3},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "err. book not found",
			mockBehavior: func(m mocks, req model.RentalDto) {
				m.students.EXPECT().
					GetStudent(gomock.Any(), req.StudentID).
					Return(model.StudentEntity{ID: req.StudentID}, nil)
				m.books.EXPECT().
					GetBook(gomock.Any(), req.BookID).
					Return(model.BookEntity{}, errs.ErrNotFound)
			},
			req:     model.RentalDto{StudentID: 7, BookID: 404},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "err. out of stock",
			mockBehavior: func(m mocks, req model.RentalDto) {
				m.students.EXPECT().
					GetStudent(gomock.Any(), req.StudentID).
					Return(model.StudentEntity{ID: req.StudentID}, nil)
				m.books.EXPECT().
					GetBook(gomock.Any(), req.BookID).
					Return(model.BookEntity{ID: req.BookID, TotalCount: 1, AvailableCount: 0}, nil)
			},
			req:     model.RentalDto{StudentID: 7, BookID: 3},
			wantErr: errs.ErrOutOfStock,
		},
		{
			name: "err. out of stock lost race",
			mockBehavior: func(m mocks, req model.RentalDto) {
				m.students.EXPECT().
					GetStudent(gomock.Any(), req.StudentID).
					Return(model.StudentEntity{ID: req.StudentID}, nil)
				m.books.EXPECT().
					GetBook(gomock.Any(), req.BookID).
					Return(model.BookEntity{ID: req.BookID, TotalCount: 1, AvailableCount: 1}, nil)
				m.rentals.EXPECT().
					CreateRental(gomock.Any(), req.StudentID, req.BookID).
					Return(model.RentalEntity{}, errs.ErrOutOfStock)
			},
			req:     model.RentalDto{StudentID: 7, BookID: 3},
			wantErr: errs.ErrOutOfStock,
		},
		{
			name: "err. internal",
			mockBehavior: func(m mocks, req model.RentalDto) {
				m.students.EXPECT().
					GetStudent(gomock.Any(), req.StudentID).
					Return(model.StudentEntity{}, errors.New("db internal"))
			},
			req:     model.RentalDto{StudentID: 7, BookID: 3},
			wantErr: errors.New("db internal"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			m := newMocks(c)
			tt.mockBehavior(m, tt.req)
			svc := rental.NewService(m.rentals, m.students, m.books, zap.NewExample().Named("test"))

			got, err := svc.CreateRental(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_ReturnRental(t *testing.T) {
	t.Parallel()
	type mockBehavior func(m mocks, id int64)

	rentedAt := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	returnedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		id           int64
		want         model.RentalDto
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(m mocks, id int64) {
				m.rentals.EXPECT().
					ReturnRental(gomock.Any(), id).
					Return(model.RentalEntity{ID: id, StudentID: 7, BookID: 3, RentedAt: rentedAt, ReturnedAt: &returnedAt}, nil)
			},
			id:   1,
			want: model.RentalDto{ID: 1, StudentID: 7, BookID: 3, RentedAt: rentedAt, ReturnedAt: &returnedAt},
		},
		{
			name: "err. already returned",
			mockBehavior: func(m mocks, id int64) {
				m.rentals.EXPECT().
					ReturnRental(gomock.Any(), id).
					Return(model.RentalEntity{}, errs.ErrNotFound)
			},
			id:      1,
			wantErr: errs.ErrNotFound,
		},
		{
			name: "err. not found",
			mockBehavior: func(m mocks, id int64) {
				m.rentals.EXPECT().
					ReturnRental(gomock.Any(), id).
					Return(model.RentalEntity{}, errs.ErrNotFound)
			},
			id:      404,
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			m := newMocks(c)
			tt.mockBehavior(m, tt.id)
			svc := rental.NewService(m.rentals, m.students, m.books, zap.NewExample().Named("test"))

			got, err := svc.ReturnRental(context.Background(), tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
