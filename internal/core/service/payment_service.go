package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lendvault/lending-api/internal/core/domain"
	"github.com/lendvault/lending-api/internal/core/ports"
)

// PaymentService records repayments against loans.
type PaymentService struct {
	repo   ports.PaymentRepository
	logger zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, logger zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, logger: logger}
}

// ListByLoan returns every payment for the loan, an empty slice when there
// are none. There is no not-found signal here.
func (s *PaymentService) ListByLoan(ctx context.Context, loanID uint) ([]domain.Payment, error) {
	return s.repo.ListByLoan(ctx, loanID)
}

func (s *PaymentService) Create(ctx context.Context, input ports.CreatePaymentInput) (*domain.Payment, error) {
	if input.LoanID == 0 || input.Amount == 0 || input.PaymentType == "" {
		return nil, domain.ValidationError("All fields (loan_id, amount, payment_type) are required")
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC()
	}

	payment := &domain.Payment{
		LoanID:      input.LoanID,
		Amount:      input.Amount,
		PaymentDate: paymentDate,
		PaymentType: input.PaymentType,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("payment_id", created.ID).Uint("loan_id", created.LoanID).Msg("payment recorded")
	return created, nil
}
