package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/enrolment-service/enrolment/internal/errs"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/model"
)

// @Summary      List books
// @Tags         books
// @Produce      json
// @Param        page  query  int  false  "page number, 0 lists all"
// @Param        size  query  int  false  "page size"
// @Success      200  {object}  model.ListBooks
// @Failure      400,500  {object}  echo.HTTPError
// @Router       /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	ctx := c.Request().Context()

	page, size, err := paging(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	books, err := h.bookSvc.ListBooks(ctx, page, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := make([]model.BookResponse, 0, len(books))
	for _, b := range books {
		items = append(items, b.ToResponse())
	}
	return c.JSON(http.StatusOK, model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(items),
		},
		Items: items,
	})
}

// @Summary      Get book
// @Tags         books
// @Produce      json
// @Param        bookId  path  int  true  "book id"
// @Success      200  {object}  model.BookResponse
// @Failure      400,404,500  {object}  echo.HTTPError
// @Router       /books/{bookId} [get]
func (h *Handler) GetBook(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "bookId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.bookSvc.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book.ToResponse())
}

// @Summary      Add book to the catalogue
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        input  body  model.BookRequest  true  "book"
// @Success      201  {object}  model.BookResponse
// @Failure      400,500  {object}  echo.HTTPError
// @Router       /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.bookSvc.CreateBook(ctx, req.ToDto())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created.ToResponse())
}

// @Summary      Update book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        bookId  path  int  true  "book id"
// @Param        input  body  model.BookRequest  true  "book"
// @Success      200  {object}  model.BookResponse
// @Failure      400,404,500  {object}  echo.HTTPError
// @Router       /books/{bookId} [put]
func (h *Handler) UpdateBook(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "bookId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.bookSvc.UpdateBook(ctx, id, req.ToDto())
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, updated.ToResponse())
}

// @Summary      Remove book from the catalogue
// @Tags         books
// @Param        bookId  path  int  true  "book id"
// @Success      204
// @Failure      400,404,409,500  {object}  echo.HTTPError
// @Router       /books/{bookId} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "bookId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.bookSvc.DeleteBook(ctx, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrConflict):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
