package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/enrolment-service/enrolment/internal/errs"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/handler"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/model"
	"github.com/Astemirdum/enrolment-service/pkg/validate"

	service_mocks "github.com/Astemirdum/enrolment-service/enrolment/internal/handler/mocks"
)

type serviceMocks struct {
	student *service_mocks.MockStudentService
	book    *service_mocks.MockBookService
	rental  *service_mocks.MockRentalService
}

func newHandler(c *gomock.Controller) (*handler.Handler, serviceMocks) {
	m := serviceMocks{
		student: service_mocks.NewMockStudentService(c),
		book:    service_mocks.NewMockBookService(c),
		rental:  service_mocks.NewMockRentalService(c),
	}
	log := zap.NewExample().Named("test")
	return handler.New(m.student, m.book, m.rental, log), m
}

func TestHandler_CreateStudent(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m serviceMocks)

	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(m serviceMocks) {
				m.student.EXPECT().
					CreateStudent(context.Background(), model.StudentDto{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Age: 21}).
					Return(model.StudentDto{ID: 1, FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Age: 21, CreatedAt: createdAt}, nil)
			},
			body: `{"firstName":"John","lastName":"Doe","email":"john.doe@example.com","age":21}`,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"firstName":"John","lastName":"Doe","email":"john.doe@example.com","age":21,"createdAt":"2024-03-01T10:00:00Z","studentIdCardResponse":null,"bookResponseList":null}`,
			},
		},
		{
			name:         "err. validation",
			mockBehavior: func(m serviceMocks) {},
			body:         `{"lastName":"Doe","email":"john.doe@example.com","age":21}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'StudentRequest.FirstName' Error:Field validation for 'FirstName' failed on the 'required' tag"}`,
			},
			wantErr: true,
		},
		{
			name: "err. duplicate email",
			mockBehavior: func(m serviceMocks) {
				m.student.EXPECT().
					CreateStudent(context.Background(), gomock.Any()).
					Return(model.StudentDto{}, errs.ErrConflict)
			},
			body: `{"firstName":"John","lastName":"Doe","email":"john.doe@example.com","age":21}`,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"already exists"}`,
			},
			wantErr: true,
		},
		{
			name: "err. internal",
			mockBehavior: func(m serviceMocks) {
				m.student.EXPECT().
					CreateStudent(context.Background(), gomock.Any()).
					Return(model.StudentDto{}, errors.New("db internal"))
			},
			body: `{"firstName":"John","lastName":"Doe","email":"john.doe@example.com","age":21}`,
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			h, m := newHandler(c)
			tt.mockBehavior(m)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/students", h.CreateStudent)

			r := httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetStudent(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m serviceMocks)

	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	issuedAt := time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		studentID    string
		response     response
		wantErr      bool
	}{
		{
			name: "ok. with card and books",
			mockBehavior: func(m serviceMocks) {
				m.student.EXPECT().
					GetStudent(context.Background(), int64(7)).
					Return(model.StudentDetail{
						Student: model.StudentDto{ID: 7, FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Age: 21, CreatedAt: createdAt},
						IdCard:  &model.StudentIdCardDto{ID: 11, StudentID: 7, CardNumber: "card-7", IssuedAt: issuedAt},
						Books:   []model.BookDto{{ID: 3, Title: "CLRS", Author: "Cormen", TotalCount: 4, AvailableCount: 3, CreatedAt: createdAt}},
					}, nil)
			},
			studentID: "7",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":7,"firstName":"John","lastName":"Doe","email":"john.doe@example.com","age":21,"createdAt":"2024-03-01T10:00:00Z","studentIdCardResponse":{"id":11,"studentId":7,"cardNumber":"card-7","issuedAt":"2024-03-05T08:30:00Z"},"bookResponseList":[{"id":3,"title":"CLRS","author":"Cormen","isbn":"","totalCount":4,"availableCount":3,"createdAt":"2024-03-01T10:00:00Z"}]}`,
			},
		},
		{
			name: "ok. fresh student",
			mockBehavior: func(m serviceMocks) {
				m.student.EXPECT().
					GetStudent(context.Background(), int64(7)).
					Return(model.StudentDetail{
						Student: model.StudentDto{ID: 7, FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Age: 21, CreatedAt: createdAt},
					}, nil)
			},
			studentID: "7",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":7,"firstName":"John","lastName":"Doe","email":"john.doe@example.com","age":21,"createdAt":"2024-03-01T10:00:00Z","studentIdCardResponse":null,"bookResponseList":null}`,
			},
		},
		{
			name: "err. not found",
			mockBehavior: func(m serviceMocks) {
				m.student.EXPECT().
					GetStudent(context.Background(), int64(404)).
					Return(model.StudentDetail{}, errs.ErrNotFound)
			},
			studentID: "404",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. invalid id",
			mockBehavior: func(m serviceMocks) {},
			studentID:    "abc",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"studentId is invalid"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			h, m := newHandler(c)
			tt.mockBehavior(m)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/students/:studentId", h.GetStudent)

			r := httptest.NewRequest(http.MethodGet, "/students/"+tt.studentID, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListStudents(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	c := gomock.NewController(t)
	defer c.Finish()
	h, m := newHandler(c)

	m.student.EXPECT().
		ListStudents(context.Background(), 1, 10).
		Return([]model.StudentDetail{
			{Student: model.StudentDto{ID: 1, FirstName: "John", LastName: "Doe", Email: "john@example.com", Age: 21, CreatedAt: createdAt}},
		}, nil)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/students", h.ListStudents)

	r := httptest.NewRequest(http.MethodGet, "/students?page=1&size=10", http.NoBody)
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()

	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"page":1,"pageSize":10,"totalElements":1,"items":[{"id":1,"firstName":"John","lastName":"Doe","email":"john@example.com","age":21,"createdAt":"2024-03-01T10:00:00Z","studentIdCardResponse":null,"bookResponseList":null}]}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_PatchStudent(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	firstName := "Johnny"

	c := gomock.NewController(t)
	defer c.Finish()
	h, m := newHandler(c)

	m.student.EXPECT().
		PatchStudent(context.Background(), int64(7), model.StudentPatchRequest{FirstName: &firstName}).
		Return(model.StudentDetail{
			Student: model.StudentDto{ID: 7, FirstName: "Johnny", LastName: "Doe", Email: "john.doe@example.com", Age: 21, CreatedAt: createdAt},
		}, nil)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.PATCH("/students/:studentId", h.PatchStudent)

	r := httptest.NewRequest(http.MethodPatch, "/students/7", strings.NewReader(`{"firstName":"Johnny"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()

	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"id":7,"firstName":"Johnny","lastName":"Doe","email":"john.doe@example.com","age":21,"createdAt":"2024-03-01T10:00:00Z","studentIdCardResponse":null,"bookResponseList":null}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_DeleteStudent(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m serviceMocks)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		studentID    string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(m serviceMocks) {
				m.student.EXPECT().
					DeleteStudent(context.Background(), int64(7)).
					Return(nil)
			},
			studentID: "7",
			response: response{
				expectedCode: http.StatusNoContent,
				expectedBody: ``,
			},
		},
		{
			name: "err. not found",
			mockBehavior: func(m serviceMocks) {
				m.student.EXPECT().
					DeleteStudent(context.Background(), int64(404)).
					Return(errs.ErrNotFound)
			},
			studentID: "404",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
		{
			name: "err. has rentals",
			mockBehavior: func(m serviceMocks) {
				m.student.EXPECT().
					DeleteStudent(context.Background(), int64(7)).
					Return(errs.ErrConflict)
			},
			studentID: "7",
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"already exists"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			h, m := newHandler(c)
			tt.mockBehavior(m)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.DELETE("/students/:studentId", h.DeleteStudent)

			r := httptest.NewRequest(http.MethodDelete, "/students/"+tt.studentID, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_IssueIdCard(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m serviceMocks)

	issuedAt := time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		studentID    string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(m serviceMocks) {
				m.student.EXPECT().
					IssueIdCard(context.Background(), int64(7)).
					Return(model.StudentIdCardDto{ID: 11, StudentID: 7, CardNumber: "c7a1ecb1-0f3a-4c51-9a4e-2c9d3f9f0b6f", IssuedAt: issuedAt}, nil)
			},
			studentID: "7",
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":11,"studentId":7,"cardNumber":"c7a1ecb1-0f3a-4c51-9a4e-2c9d3f9f0b6f","issuedAt":"2024-03-05T08:30:00Z"}`,
			},
		},
		{
			name: "err. already issued",
			mockBehavior: func(m serviceMocks) {
				m.student.EXPECT().
					IssueIdCard(context.Background(), int64(7)).
					Return(model.StudentIdCardDto{}, errs.ErrConflict)
			},
			studentID: "7",
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"already exists"}`,
			},
			wantErr: true,
		},
		{
			name: "err. student not found",
			mockBehavior: func(m serviceMocks) {
				m.student.EXPECT().
					IssueIdCard(context.Background(), int64(404)).
					Return(model.StudentIdCardDto{}, errs.ErrNotFound)
			},
			studentID: "404",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			h, m := newHandler(c)
			tt.mockBehavior(m)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/students/:studentId/id-card", h.IssueIdCard)

			r := httptest.NewRequest(http.MethodPost, "/students/"+tt.studentID+"/id-card", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
