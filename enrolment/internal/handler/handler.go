package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	md "github.com/Astemirdum/enrolment-service/pkg/middleware"
	"github.com/Astemirdum/enrolment-service/pkg/validate"
	_ "github.com/Astemirdum/enrolment-service/swagger"
)

type Handler struct {
	studentSvc StudentService
	bookSvc    BookService
	rentalSvc  RentalService
	log        *zap.Logger
}

func New(studentSrv StudentService, bookSrv BookService, rentalSrv RentalService, log *zap.Logger) *Handler {
	h := &Handler{
		studentSvc: studentSrv,
		bookSvc:    bookSrv,
		rentalSvc:  rentalSrv,
		log:        log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.JSONSerializer = jsonSerializer{}
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/students", h.ListStudents)
	api.POST("/students", h.CreateStudent)
	api.GET("/students/:studentId", h.GetStudent)
	api.PUT("/students/:studentId", h.UpdateStudent)
	api.PATCH("/students/:studentId", h.PatchStudent)
	api.DELETE("/students/:studentId", h.DeleteStudent)
	api.POST("/students/:studentId/id-card", h.IssueIdCard)

	api.GET("/books", h.ListBooks)
	api.POST("/books", h.CreateBook)
	api.GET("/books/:bookId", h.GetBook)
	api.PUT("/books/:bookId", h.UpdateBook)
	api.DELETE("/books/:bookId", h.DeleteBook)

	api.POST("/rentals", h.CreateRental)
	api.PUT("/rentals/:rentalId/return", h.ReturnRental)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("%s is invalid", name)
	}
	return id, nil
}

func paging(c echo.Context) (page, size int, err error) {
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil || page < 0 {
			return 0, 0, errors.New("page is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil || size < 0 {
			return 0, 0, errors.New("size is invalid")
		}
	}
	return page, size, nil
}
