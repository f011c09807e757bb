package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lendvault/lending-api/internal/core/domain"
)

// PaymentRepository persists loan payments.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) ListByLoan(ctx context.Context, loanID uint) ([]domain.Payment, error) {
	var rows []paymentModel
	if err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list payments by loan: %w", err)
	}

	payments := make([]domain.Payment, 0, len(rows))
	for i := range rows {
		payments = append(payments, *toDomainPayment(&rows[i]))
	}
	return payments, nil
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	m := fromDomainPayment(payment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, domain.ErrInvalidReference
		}
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return toDomainPayment(m), nil
}
