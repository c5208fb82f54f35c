// Package task contains task-related use cases.
package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/task-tracker/backend/internal/application/adapter"
)

// DeleteTaskInput represents the input for task deletion.
type DeleteTaskInput struct {
	TaskID uint64
	UserID uuid.UUID
}

// DeleteTaskOutput represents the output of task deletion.
type DeleteTaskOutput struct {
	Success bool
}

// DeleteTaskUseCase handles task deletion logic.
type DeleteTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase instance.
func NewDeleteTaskUseCase(taskRepo adapter.TaskRepository) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute performs the task deletion. The delete statement carries the
// ownership predicate, so the existence check and the delete are atomic.
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, input DeleteTaskInput) (*DeleteTaskOutput, error) {
	affected, err := uc.taskRepo.DeleteByOwner(ctx, input.TaskID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return nil, notFoundError()
	}

	return &DeleteTaskOutput{
		Success: true,
	}, nil
}
