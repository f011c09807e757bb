package ports

import (
	"context"

	"github.com/lendvault/lending-api/internal/core/domain"
)

// CreateUserInput carries the fields for registering a new user account.
type CreateUserInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id uint) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
}
