package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"curtisos.com/curtisos/internal/constants"
	dto "curtisos.com/curtisos/internal/data_models"
	apperrors "curtisos.com/curtisos/internal/errors"
	"curtisos.com/curtisos/internal/http/validators"
	repository "curtisos.com/curtisos/internal/repositories"
	"curtisos.com/curtisos/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	in := services.CreateTaskInput{
		Title:     req.Title,
		Priority:  constants.TaskPriority(req.Priority),
		DueDate:   req.DueDate,
		ProjectID: req.ProjectID,
	}
	if req.Context != nil {
		taskCtx := constants.TaskContext(*req.Context)
		in.Context = &taskCtx
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), in)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	var filter repository.TaskFilter
	if v := c.QueryParam("status"); v != "" {
		status := constants.TaskStatus(v)
		filter.Status = &status
	}
	if v := c.QueryParam("context"); v != "" {
		taskCtx := constants.TaskContext(v)
		filter.Context = &taskCtx
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) DueSoon(c echo.Context) error {
	tasks, err := h.taskService.DueSoon(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	var req dto.TaskUpdateData
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	update, err := validators.ValidateTaskUpdate(&req)
	if err != nil {
		return httpError(err)
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, update)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) BulkUpdate(c echo.Context) error {
	var req dto.BulkUpdateRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	update, err := validators.ValidateBulkUpdateRequest(&req)
	if err != nil {
		return httpError(err)
	}

	result, err := h.taskService.BulkUpdate(c.Request().Context(), req.TaskIDs, update)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.BulkUpdateResponse{
		Updated: result.Updated,
		Failed:  result.Failed,
		Errors:  result.Errors,
	})
}

func httpError(err error) error {
	return echo.NewHTTPError(apperrors.StatusCode(err), apperrors.Message(err)).SetInternal(err)
}
