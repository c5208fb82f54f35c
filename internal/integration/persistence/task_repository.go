// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/task-tracker/backend/internal/application/adapter"
	"github.com/task-tracker/backend/internal/domain/entity"
	domainerror "github.com/task-tracker/backend/internal/domain/error"
	"github.com/task-tracker/backend/internal/integration/persistence/model"
)

// taskRepository implements the adapter.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance.
func NewTaskRepository(db *gorm.DB) adapter.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// Create creates a new task in the database and assigns its ID.
func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskModel := model.TaskFromEntity(task)
	result := r.db.WithContext(ctx).Create(taskModel)
	if result.Error != nil {
		return result.Error
	}
	task.ID = taskModel.ID
	return nil
}

// FindByOwner retrieves all tasks for a user, newest-created first.
func (r *taskRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&taskModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tasks := make([]*entity.Task, len(taskModels))
	for i, tm := range taskModels {
		tasks[i] = tm.ToEntity()
	}
	return tasks, nil
}

// FindByIDAndOwner retrieves a task constrained by (id AND user_id). A task
// owned by someone else is indistinguishable from a missing one.
func (r *taskRepository) FindByIDAndOwner(ctx context.Context, id uint64, userID uuid.UUID) (*entity.Task, error) {
	var taskModel model.TaskModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&taskModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTaskNotFound
		}
		return nil, result.Error
	}
	return taskModel.ToEntity(), nil
}

// UpdateByOwner applies the patch with a single UPDATE qualified by
// (id AND user_id). updated_at is always part of the change set, so the
// affected-row count reflects whether the row matched the predicate.
func (r *taskRepository) UpdateByOwner(ctx context.Context, id uint64, userID uuid.UUID, patch adapter.TaskPatch) (int64, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}

	result := r.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteByOwner deletes with a single statement qualified by (id AND user_id).
func (r *taskRepository) DeleteByOwner(ctx context.Context, id uint64, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
