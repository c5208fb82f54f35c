// Package task contains task-related use cases.
package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/task-tracker/backend/internal/application/adapter"
	"github.com/task-tracker/backend/internal/domain/entity"
)

// CreateTaskInput represents the input for task creation.
type CreateTaskInput struct {
	UserID      uuid.UUID
	Title       string
	Description *string
	Status      entity.TaskStatus // empty defaults to pending
}

// CreateTaskOutput represents the output of task creation.
type CreateTaskOutput struct {
	Task *TaskOutput
}

// CreateTaskUseCase handles task creation logic.
type CreateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase instance.
func NewCreateTaskUseCase(taskRepo adapter.TaskRepository) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute performs the task creation.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (*CreateTaskOutput, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}

	if input.Status != "" {
		if err := validateStatus(input.Status); err != nil {
			return nil, err
		}
	}

	task := entity.NewTask(input.UserID, input.Title, input.Description, input.Status)

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &CreateTaskOutput{
		Task: toTaskOutput(task),
	}, nil
}
