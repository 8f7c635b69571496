package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/http/validators"
	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	location    *time.Location
}

// NewHandler returns handlers that render deadlines in location.
func NewHandler(taskService *services.TaskService, location *time.Location) *Handler {
	return &Handler{
		taskService: taskService,
		location:    location,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	task, err := validators.ValidateCreateTaskRequest(&req)
	if err != nil {
		return err
	}

	id, err := h.taskService.CreateTask(c.Request().Context(), task)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewCreateTaskResponse(id))
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.ErrTaskNotFound
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(*task, h.location))
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTaskListResponse(tasks, h.location))
}

func (h *Handler) Health(c echo.Context) error {
	if err := h.taskService.Healthy(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
