package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/enrolment-service/enrolment/internal/errs"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/model"
)

// @Summary      List students
// @Tags         students
// @Produce      json
// @Param        page  query  int  false  "page number, 0 lists all"
// @Param        size  query  int  false  "page size"
// @Success      200  {object}  model.ListStudents
// @Failure      400,500  {object}  echo.HTTPError
// @Router       /students [get]
func (h *Handler) ListStudents(c echo.Context) error {
	ctx := c.Request().Context()

	page, size, err := paging(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	students, err := h.studentSvc.ListStudents(ctx, page, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := make([]model.StudentResponse, 0, len(students))
	for _, st := range students {
		items = append(items, st.ToResponse())
	}
	return c.JSON(http.StatusOK, model.ListStudents{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(items),
		},
		Items: items,
	})
}

// @Summary      Get student with id card and rented books
// @Tags         students
// @Produce      json
// @Param        studentId  path  int  true  "student id"
// @Success      200  {object}  model.StudentResponse
// @Failure      400,404,500  {object}  echo.HTTPError
// @Router       /students/{studentId} [get]
func (h *Handler) GetStudent(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "studentId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.studentSvc.GetStudent(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, detail.ToResponse())
}

// @Summary      Enrol student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        input  body  model.StudentRequest  true  "student"
// @Success      201  {object}  model.StudentResponse
// @Failure      400,409,500  {object}  echo.HTTPError
// @Router       /students [post]
func (h *Handler) CreateStudent(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.StudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.studentSvc.CreateStudent(ctx, req.ToDto())
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created.ToResponse(nil, nil))
}

// @Summary      Update student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        studentId  path  int  true  "student id"
// @Param        input  body  model.StudentRequest  true  "student"
// @Success      200  {object}  model.StudentResponse
// @Failure      400,404,409,500  {object}  echo.HTTPError
// @Router       /students/{studentId} [put]
func (h *Handler) UpdateStudent(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "studentId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.StudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.studentSvc.UpdateStudent(ctx, id, req.ToDto())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrConflict):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, updated.ToResponse())
}

// @Summary      Patch student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        studentId  path  int  true  "student id"
// @Param        input  body  model.StudentPatchRequest  true  "fields to change"
// @Success      200  {object}  model.StudentResponse
// @Failure      400,404,409,500  {object}  echo.HTTPError
// @Router       /students/{studentId} [patch]
func (h *Handler) PatchStudent(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "studentId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.StudentPatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patched, err := h.studentSvc.PatchStudent(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrConflict):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, patched.ToResponse())
}

// @Summary      Expel student
// @Tags         students
// @Param        studentId  path  int  true  "student id"
// @Success      204
// @Failure      400,404,409,500  {object}  echo.HTTPError
// @Router       /students/{studentId} [delete]
func (h *Handler) DeleteStudent(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "studentId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.studentSvc.DeleteStudent(ctx, id); err != nil {
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

// @Summary      Issue student id card
// @Tags         students
// @Produce      json
// @Param        studentId  path  int  true  "student id"
// @Success      201  {object}  model.StudentIdCardResponse
// @Failure      400,404,409,500  {object}  echo.HTTPError
// @Router       /students/{studentId}/id-card [post]
func (h *Handler) IssueIdCard(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "studentId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	card, err := h.studentSvc.IssueIdCard(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrConflict):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, card.ToResponse())
}
