package ports

import (
	"context"

	"github.com/lendvault/lending-api/internal/core/domain"
)

type CreateTaskInput struct {
	UserID      uint
	Description string
	Status      string
}

type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	// ListByUser returns the user's tasks; zero rows is reported as
	// domain.ErrTaskNotFound, unlike the bulk List which returns an empty
	// slice.
	ListByUser(ctx context.Context, userID uint) ([]domain.Task, error)
	Get(ctx context.Context, id uint) (*domain.Task, error)
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id uint) error
	Complete(ctx context.Context, id uint) error
}
