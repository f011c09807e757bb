package ports

import (
	"context"

	"github.com/lendvault/lending-api/internal/core/domain"
)

type CreateLoanInput struct {
	UserID       uint
	GoldItems    string
	Amount       float64
	InterestRate float64
	Status       string
}

type LoanService interface {
	List(ctx context.Context) ([]domain.Loan, error)
	Get(ctx context.Context, id uint) (*domain.Loan, error)
	Create(ctx context.Context, input CreateLoanInput) (*domain.Loan, error)
}
