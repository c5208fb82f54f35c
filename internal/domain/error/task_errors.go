// Package error defines domain-specific errors for the Task Tracker application.
package error

import "errors"

// Task domain errors.
var (
	// ErrTaskNotFound is returned when a task does not exist for the acting user.
	// It covers both "no such task" and "task belongs to another user": the two
	// cases are deliberately indistinguishable.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTaskTitle is returned when the task title fails validation.
	ErrInvalidTaskTitle = errors.New("invalid task title")

	// ErrInvalidTaskStatus is returned when the task status is not an enumerated value.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrInvalidTaskID is returned when a task ID does not parse as a positive integer.
	ErrInvalidTaskID = errors.New("invalid task id")

	// ErrEmptyTaskPatch is returned when an update provides no fields to change.
	ErrEmptyTaskPatch = errors.New("at least one field must be provided")
)

// TaskErrorCode defines error codes for task errors.
// Format: TASK-XXYYYY where XX is category and YYYY is specific error.
type TaskErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTaskTitle  TaskErrorCode = "TASK-010001"
	ErrCodeInvalidTaskStatus TaskErrorCode = "TASK-010002"
	ErrCodeInvalidTaskID     TaskErrorCode = "TASK-010003"
	ErrCodeEmptyTaskPatch    TaskErrorCode = "TASK-010004"
	ErrCodeMissingTaskFields TaskErrorCode = "TASK-010005"

	// Lookup errors (02XXXX)
	ErrCodeTaskNotFound TaskErrorCode = "TASK-020001"
)

// TaskError represents a task error with code and message.
type TaskError struct {
	Code    TaskErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TaskError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TaskError) Unwrap() error {
	return e.Err
}

// NewTaskError creates a new TaskError with the given code and message.
func NewTaskError(code TaskErrorCode, message string, err error) *TaskError {
	return &TaskError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
