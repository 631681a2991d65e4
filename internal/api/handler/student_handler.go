package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/husen20ab/School/internal/api/metrics"
	"github.com/husen20ab/School/internal/core/domain"
	"github.com/husen20ab/School/internal/core/ports"
)

// StudentHandler handles HTTP requests for student records.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// List handles GET /api/students. Admins see every record annotated with
// its owner's username; users see only their own.
//
// @Summary      List student records
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   studentResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/students [get]
func (h *StudentHandler) List(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	records, err := h.service.List(c.Request().Context(), userID, role)
	if err != nil {
		return err
	}

	out := make([]studentResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toStudentResponse(r))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/students/:id.
//
// @Summary      Get a student record
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  studentResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/students/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	record, err := h.service.Get(c.Request().Context(), c.Param("id"), userID, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStudentResponse(record))
}

// Create handles POST /api/students. The new record is owned by the
// caller.
//
// @Summary      Create a student record
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      studentRequest  true  "Record fields"
// @Success      201   {object}  studentResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	record, err := h.service.Create(c.Request().Context(), toStudentInput(req), userID)
	if err != nil {
		return err
	}

	metrics.StudentsMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toStudentResponse(record))
}

// Update handles PUT /api/students/:id. Ownership is re-validated; the
// owner field is never part of the payload.
//
// @Summary      Update a student record
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Record id"
// @Param        body  body      studentRequest  true  "Record fields"
// @Success      200   {object}  studentResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/students/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	record, err := h.service.Update(c.Request().Context(), c.Param("id"), toStudentInput(req), userID, role)
	if err != nil {
		return err
	}

	metrics.StudentsMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toStudentResponse(record))
}

// Delete handles DELETE /api/students/:id.
//
// @Summary      Delete a student record
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/students/{id} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id, userID, role); err != nil {
		return err
	}

	metrics.StudentsMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "student " + id + " deleted"})
}

func toStudentInput(req studentRequest) ports.StudentInput {
	return ports.StudentInput{
		Name:    req.Name,
		Age:     req.Age,
		Courses: req.Courses,
	}
}

func toStudentResponse(s *domain.Student) studentResponse {
	courses := s.Courses
	if courses == nil {
		courses = []string{}
	}
	return studentResponse{
		ID:            s.ID,
		Name:          s.Name,
		Age:           s.Age,
		Courses:       courses,
		OwnerID:       s.OwnerID,
		OwnerUsername: s.OwnerUsername,
		CreatedAt:     s.CreatedAt.UTC(),
		UpdatedAt:     s.UpdatedAt.UTC(),
	}
}
