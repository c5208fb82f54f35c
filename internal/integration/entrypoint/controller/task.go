// Package controller contains HTTP request handlers.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/task-tracker/backend/internal/application/adapter"
	"github.com/task-tracker/backend/internal/application/usecase/task"
	"github.com/task-tracker/backend/internal/domain/entity"
	domainerror "github.com/task-tracker/backend/internal/domain/error"
	"github.com/task-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/task-tracker/backend/internal/integration/entrypoint/middleware"
)

// TaskController handles task-related HTTP requests.
type TaskController struct {
	listUseCase   *task.ListTasksUseCase
	createUseCase *task.CreateTaskUseCase
	updateUseCase *task.UpdateTaskUseCase
	deleteUseCase *task.DeleteTaskUseCase
}

// NewTaskController creates a new task controller instance.
func NewTaskController(
	listUseCase *task.ListTasksUseCase,
	createUseCase *task.CreateTaskUseCase,
	updateUseCase *task.UpdateTaskUseCase,
	deleteUseCase *task.DeleteTaskUseCase,
) *TaskController {
	return &TaskController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /api/v1/tasks requests.
func (ctrl *TaskController) List(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Message: "user not authenticated",
		})
		return
	}

	output, err := ctrl.listUseCase.Execute(c.Request.Context(), task.ListTasksInput{
		UserID: userID,
	})
	if err != nil {
		ctrl.handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(output.Tasks))
}

// Create handles POST /api/v1/tasks requests.
func (ctrl *TaskController) Create(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Message: "user not authenticated",
		})
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		issues := dto.IssuesFromBindingError(err)
		if issues == nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "invalid request body",
			})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Message: "validation failed",
			Code:    string(domainerror.ErrCodeMissingTaskFields),
			Issues:  issues,
		})
		return
	}

	output, err := ctrl.createUseCase.Execute(c.Request.Context(), task.CreateTaskInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.TaskStatus(req.Status),
	})
	if err != nil {
		ctrl.handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SingleTaskResponse{
		Task: dto.ToTaskResponse(output.Task),
	})
}

// Update handles PUT /api/v1/tasks/:id requests.
func (ctrl *TaskController) Update(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Message: "user not authenticated",
		})
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	var status *entity.TaskStatus
	if req.Status != nil {
		s := entity.TaskStatus(*req.Status)
		status = &s
	}

	output, err := ctrl.updateUseCase.Execute(c.Request.Context(), task.UpdateTaskInput{
		TaskID: taskID,
		UserID: userID,
		Patch: adapter.TaskPatch{
			Title:       req.Title,
			Description: req.Description,
			Status:      status,
		},
	})
	if err != nil {
		ctrl.handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SingleTaskResponse{
		Task: dto.ToTaskResponse(output.Task),
	})
}

// Delete handles DELETE /api/v1/tasks/:id requests.
func (ctrl *TaskController) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Message: "user not authenticated",
		})
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	_, err := ctrl.deleteUseCase.Execute(c.Request.Context(), task.DeleteTaskInput{
		TaskID: taskID,
		UserID: userID,
	})
	if err != nil {
		ctrl.handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "task deleted successfully",
	})
}

// parseTaskID extracts the :id path parameter. A non-numeric or non-positive
// id is rejected before any store access. Writes the error response itself.
func parseTaskID(c *gin.Context) (uint64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "task id must be a positive integer",
			Code:    string(domainerror.ErrCodeInvalidTaskID),
		})
		return 0, false
	}
	return id, true
}

// handleTaskError maps domain errors to HTTP responses.
func (ctrl *TaskController) handleTaskError(c *gin.Context, err error) {
	var taskErr *domainerror.TaskError
	if errors.As(err, &taskErr) {
		status := taskErrorStatus(taskErr.Code)
		c.JSON(status, dto.ErrorResponse{
			Message: taskErr.Message,
			Code:    string(taskErr.Code),
		})
		return
	}

	slog.Error("Unexpected error in task controller", "error", err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Message: "internal server error",
	})
}

// taskErrorStatus maps a task error code to its HTTP status.
func taskErrorStatus(code domainerror.TaskErrorCode) int {
	switch code {
	case domainerror.ErrCodeTaskNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTaskID:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidTaskTitle, domainerror.ErrCodeInvalidTaskStatus,
		domainerror.ErrCodeEmptyTaskPatch, domainerror.ErrCodeMissingTaskFields:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
