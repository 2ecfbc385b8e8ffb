package handlers

import (
	request "antenna_ops/internal/adapter/http/dto/request"
	response "antenna_ops/internal/adapter/http/dto/response"
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase"
	"antenna_ops/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTaskPayload = pkg.NewDomainErrorSimple("INVALID_TASK_INPUT", "Invalid task payload", http.StatusBadRequest)
)

// TaskHandler handles the three-column task board.
type TaskHandler struct {
	usecase usecase.ITaskUseCase
	store   IStoreReader
}

func NewTaskHandler(uc usecase.ITaskUseCase, store IStoreReader) *TaskHandler {
	return &TaskHandler{usecase: uc, store: store}
}

// ListTasks returns the board grouped by column with due badges.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTasks(h.usecase.ListTasks(c.Request.Context()), h.store.Today()))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var payload entities.TaskDraft
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}
	task, err := h.usecase.AddTask(c.Request.Context(), payload)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromTask(task, h.store.Today()))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task, h.store.Today()))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var payload entities.Task
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}
	payload.ID = c.Param("id")
	task, err := h.usecase.UpdateTask(c.Request.Context(), payload)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task, h.store.Today()))
}

func (h *TaskHandler) SetStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}
	task, err := h.usecase.UpdateTaskStatus(c.Request.Context(), c.Param("id"), entities.TaskStatus(payload.Status))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task, h.store.Today()))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.usecase.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapTaskError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTaskID), errors.Is(err, usecase.ErrInvalidTaskStatus), errors.Is(err, usecase.ErrInvalidTask):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
