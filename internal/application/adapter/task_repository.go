// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/task-tracker/backend/internal/domain/entity"
)

// TaskPatch describes a partial task update. Nil fields leave the stored
// value unchanged (coalesce-style merge).
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *entity.TaskStatus
}

// IsEmpty reports whether the patch contains no fields.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// TaskRepository defines the interface for task persistence operations.
//
// Every lookup and mutation is qualified by the owning user's ID. The
// mutating statements carry the ownership predicate themselves and report
// the affected-row count, so callers branch on that count instead of doing
// a racy fetch-then-check-then-mutate sequence.
type TaskRepository interface {
	// Create creates a new task and assigns its ID.
	Create(ctx context.Context, task *entity.Task) error

	// FindByOwner retrieves all tasks for a user, newest-created first.
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)

	// FindByIDAndOwner retrieves a task constrained by (id AND user_id).
	// Returns domain ErrTaskNotFound when no such row exists for the owner.
	FindByIDAndOwner(ctx context.Context, id uint64, userID uuid.UUID) (*entity.Task, error)

	// UpdateByOwner applies the patch with a single statement qualified by
	// (id AND user_id), refreshing updated_at. Returns the affected-row count.
	UpdateByOwner(ctx context.Context, id uint64, userID uuid.UUID, patch TaskPatch) (int64, error)

	// DeleteByOwner deletes with a single statement qualified by
	// (id AND user_id). Returns the affected-row count.
	DeleteByOwner(ctx context.Context, id uint64, userID uuid.UUID) (int64, error)
}
