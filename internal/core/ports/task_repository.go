package ports

import (
	"context"

	"github.com/lendvault/lending-api/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Task, error)
	FindByID(ctx context.Context, id uint) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// Delete removes the task, returning domain.ErrTaskNotFound when no row
	// matched the id.
	Delete(ctx context.Context, id uint) error
	// Complete sets the status to completed regardless of the current status.
	// Only a nonexistent id yields domain.ErrTaskNotFound.
	Complete(ctx context.Context, id uint) error
}
