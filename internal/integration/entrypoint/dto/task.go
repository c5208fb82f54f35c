// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/task-tracker/backend/internal/application/usecase/task"
)

// CreateTaskRequest represents the request body for task creation.
// Status and description are optional; status defaults to pending and is
// validated against the entity enum in the use case.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

// UpdateTaskRequest represents the request body for task update.
// Absent fields leave the stored values unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskListResponse represents the response for listing tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// SingleTaskResponse wraps a task for create/update responses.
type SingleTaskResponse struct {
	Task TaskResponse `json:"task"`
}

// ToTaskResponse converts a task use case output to its API representation.
func ToTaskResponse(t *task.TaskOutput) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTaskListResponse converts task outputs to the list response.
func ToTaskListResponse(tasks []*task.TaskOutput) TaskListResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		responses[i] = ToTaskResponse(t)
	}
	return TaskListResponse{
		Tasks: responses,
	}
}
