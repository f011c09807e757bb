package ports

import (
	"context"

	"github.com/lendvault/lending-api/internal/core/domain"
)

// LoanRepository defines persistence operations for loans.
type LoanRepository interface {
	List(ctx context.Context) ([]domain.Loan, error)
	FindByID(ctx context.Context, id uint) (*domain.Loan, error)
	// Create inserts the loan. A foreign-key violation on user_id is
	// reported as domain.ErrInvalidReference.
	Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error)
}
