// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskTitleMinLength is the minimum number of characters required in a task title.
// Single source of truth for title validation across dto and use cases.
const TaskTitleMinLength = 1

// TaskTitleMaxLength is the maximum number of characters allowed in a task title.
const TaskTitleMaxLength = 255

// IsValidTaskStatus reports whether the given status is one of the enumerated values.
func IsValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task represents a task owned by exactly one user.
// Tasks are never addressable by ID alone: every read and mutation is
// qualified by the owning user's ID.
type Task struct {
	ID          uint64
	UserID      uuid.UUID
	Title       string
	Description *string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask creates a new Task with default values. The ID is assigned by the store.
func NewTask(userID uuid.UUID, title string, description *string, status TaskStatus) *Task {
	if status == "" {
		status = TaskStatusPending
	}
	now := time.Now().UTC()
	return &Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
