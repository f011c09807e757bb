package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lendvault/lending-api/internal/api/metrics"
	"github.com/lendvault/lending-api/internal/core/domain"
	"github.com/lendvault/lending-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

type createTaskRequest struct {
	UserID      uint   `json:"user_id" validate:"required"`
	Description string `json:"tasks"   validate:"required"`
	Status      string `json:"status"  validate:"required,oneof=active completed"`
}

type createTaskResponse struct {
	domain.Task
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// ListByUser handles GET /api/tasks/user/:userId. Unlike the bulk list, a
// user without tasks is a 404.
func (h *TaskHandler) ListByUser(c echo.Context) error {
	userID, err := idParam(c, "userId")
	if err != nil {
		return err
	}

	tasks, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Get handles GET /api/tasks/:id.
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	task, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.Create(c.Request().Context(), ports.CreateTaskInput{
		UserID:      req.UserID,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createTaskResponse{
		Task:    *task,
		Message: "Task created successfully",
	})
}

// Delete handles DELETE /api/tasks/:id.
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Task deleted successfully"})
}

// Complete handles PATCH /api/tasks/:id/complete. Re-completing an already
// completed task succeeds; only an unknown id is a 404.
func (h *TaskHandler) Complete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Complete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.TasksCompletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Task marked as completed"})
}
