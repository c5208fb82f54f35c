// Package task contains task-related use cases.
package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/task-tracker/backend/internal/application/adapter"
)

// ListTasksInput represents the input for listing tasks.
type ListTasksInput struct {
	UserID uuid.UUID
}

// ListTasksOutput represents the output of listing tasks.
type ListTasksOutput struct {
	Tasks []*TaskOutput
}

// ListTasksUseCase handles task listing logic.
type ListTasksUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewListTasksUseCase creates a new ListTasksUseCase instance.
func NewListTasksUseCase(taskRepo adapter.TaskRepository) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo: taskRepo,
	}
}

// Execute lists the user's tasks, newest-created first.
func (uc *ListTasksUseCase) Execute(ctx context.Context, input ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.taskRepo.FindByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	outputs := make([]*TaskOutput, len(tasks))
	for i, t := range tasks {
		outputs[i] = toTaskOutput(t)
	}

	return &ListTasksOutput{
		Tasks: outputs,
	}, nil
}
