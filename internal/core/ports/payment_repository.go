package ports

import (
	"context"

	"github.com/lendvault/lending-api/internal/core/domain"
)

// PaymentRepository defines persistence operations for loan payments.
type PaymentRepository interface {
	// ListByLoan returns every payment recorded against the loan, oldest
	// first. An unknown loan id simply yields an empty slice.
	ListByLoan(ctx context.Context, loanID uint) ([]domain.Payment, error)
	// Create inserts the payment. A foreign-key violation on loan_id is
	// reported as domain.ErrInvalidReference.
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
}
