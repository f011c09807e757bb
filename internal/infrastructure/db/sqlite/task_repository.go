package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lendvault/lending-api/internal/core/domain"
)

// TaskRepository persists tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	var rows []taskModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, *toDomainTask(&rows[i]))
	}
	return tasks, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Task, error) {
	var rows []taskModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list tasks by user: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, *toDomainTask(&rows[i]))
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*domain.Task, error) {
	var m taskModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return toDomainTask(&m), nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	m := fromDomainTask(task)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		// the service checks existence first; the constraint only fires on
		// the race with a concurrent user delete
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return toDomainTask(m), nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&taskModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Complete(ctx context.Context, id uint) error {
	// status is absent from the WHERE clause: completing an already
	// completed task matches the row and succeeds again
	res := r.db.WithContext(ctx).Model(&taskModel{}).Where("id = ?", id).
		Update("status", string(domain.TaskStatusCompleted))
	if res.Error != nil {
		return fmt.Errorf("complete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
