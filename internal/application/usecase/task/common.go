// Package task contains task-related use cases.
package task

import (
	"time"

	"github.com/google/uuid"

	"github.com/task-tracker/backend/internal/domain/entity"
	domainerror "github.com/task-tracker/backend/internal/domain/error"
)

// TaskOutput represents a task in use case outputs.
type TaskOutput struct {
	ID          uint64
	UserID      uuid.UUID
	Title       string
	Description *string
	Status      entity.TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// toTaskOutput converts a task entity to its output representation.
func toTaskOutput(t *entity.Task) *TaskOutput {
	return &TaskOutput{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// validateTitle checks the title length policy.
func validateTitle(title string) error {
	if len(title) < entity.TaskTitleMinLength || len(title) > entity.TaskTitleMaxLength {
		return domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskTitle,
			"title is required",
			domainerror.ErrInvalidTaskTitle,
		)
	}
	return nil
}

// validateStatus checks the status against the enumerated values.
func validateStatus(status entity.TaskStatus) error {
	if !entity.IsValidTaskStatus(status) {
		return domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskStatus,
			"status must be 'pending', 'in_progress' or 'completed'",
			domainerror.ErrInvalidTaskStatus,
		)
	}
	return nil
}

// notFoundError builds the uniform not-found error. It is returned whether
// the task does not exist or belongs to another user.
func notFoundError() error {
	return domainerror.NewTaskError(
		domainerror.ErrCodeTaskNotFound,
		"task not found",
		domainerror.ErrTaskNotFound,
	)
}
