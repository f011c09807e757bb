package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lendvault/lending-api/internal/core/domain"
)

// LoanRepository persists loans.
type LoanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

func (r *LoanRepository) List(ctx context.Context) ([]domain.Loan, error) {
	var rows []loanModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	loans := make([]domain.Loan, 0, len(rows))
	for i := range rows {
		loans = append(loans, *toDomainLoan(&rows[i]))
	}
	return loans, nil
}

func (r *LoanRepository) FindByID(ctx context.Context, id uint) (*domain.Loan, error) {
	var m loanModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, fmt.Errorf("find loan: %w", err)
	}
	return toDomainLoan(&m), nil
}

func (r *LoanRepository) Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	m := fromDomainLoan(loan)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, domain.ErrInvalidReference
		}
		return nil, fmt.Errorf("insert loan: %w", err)
	}
	return toDomainLoan(m), nil
}
