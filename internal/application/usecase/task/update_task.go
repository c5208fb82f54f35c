// Package task contains task-related use cases.
package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/task-tracker/backend/internal/application/adapter"
	domainerror "github.com/task-tracker/backend/internal/domain/error"
)

// UpdateTaskInput represents the input for task update. Nil fields leave the
// stored value unchanged.
type UpdateTaskInput struct {
	TaskID uint64
	UserID uuid.UUID
	Patch  adapter.TaskPatch
}

// UpdateTaskOutput represents the output of task update.
type UpdateTaskOutput struct {
	Task *TaskOutput
}

// UpdateTaskUseCase handles task update logic.
type UpdateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase instance.
func NewUpdateTaskUseCase(taskRepo adapter.TaskRepository) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute performs the task update.
//
// The mutation is a single statement qualified by (id AND user_id); the
// affected-row count decides between success and not-found. A task that
// exists under another owner is reported exactly like a missing one.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, input UpdateTaskInput) (*UpdateTaskOutput, error) {
	if input.Patch.IsEmpty() {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeEmptyTaskPatch,
			"at least one field must be provided",
			domainerror.ErrEmptyTaskPatch,
		)
	}

	if input.Patch.Title != nil {
		if err := validateTitle(*input.Patch.Title); err != nil {
			return nil, err
		}
	}

	if input.Patch.Status != nil {
		if err := validateStatus(*input.Patch.Status); err != nil {
			return nil, err
		}
	}

	affected, err := uc.taskRepo.UpdateByOwner(ctx, input.TaskID, input.UserID, input.Patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if affected == 0 {
		return nil, notFoundError()
	}

	task, err := uc.taskRepo.FindByIDAndOwner(ctx, input.TaskID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTaskNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}

	return &UpdateTaskOutput{
		Task: toTaskOutput(task),
	}, nil
}
