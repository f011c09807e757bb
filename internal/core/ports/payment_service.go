package ports

import (
	"context"
	"time"

	"github.com/lendvault/lending-api/internal/core/domain"
)

type CreatePaymentInput struct {
	LoanID      uint
	Amount      float64
	PaymentDate time.Time // zero value means "now"
	PaymentType string
}

type PaymentService interface {
	ListByLoan(ctx context.Context, loanID uint) ([]domain.Payment, error)
	Create(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error)
}
