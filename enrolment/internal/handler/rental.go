package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/enrolment-service/enrolment/internal/errs"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/model"
)

// @Summary      Rent a book
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        input  body  model.RentalRequest  true  "student and book"
// @Success      201  {object}  model.RentalResponse
// @Failure      400,404,409,500  {object}  echo.HTTPError
// @Router       /rentals [post]
func (h *Handler) CreateRental(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.RentalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.rentalSvc.CreateRental(ctx, req.ToDto())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrOutOfStock):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created.ToResponse())
}

// @Summary      Return a rented book
// @Tags         rentals
// @Produce      json
// @Param        rentalId  path  int  true  "rental id"
// @Success      200  {object}  model.RentalResponse
// @Failure      400,404,500  {object}  echo.HTTPError
// @Router       /rentals/{rentalId}/return [put]
func (h *Handler) ReturnRental(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "rentalId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	returned, err := h.rentalSvc.ReturnRental(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, returned.ToResponse())
}
