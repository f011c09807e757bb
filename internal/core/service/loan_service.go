package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lendvault/lending-api/internal/core/domain"
	"github.com/lendvault/lending-api/internal/core/ports"
)

// LoanService implements loan listing, lookup and creation.
type LoanService struct {
	repo   ports.LoanRepository
	logger zerolog.Logger
}

func NewLoanService(repo ports.LoanRepository, logger zerolog.Logger) *LoanService {
	return &LoanService{repo: repo, logger: logger}
}

func (s *LoanService) List(ctx context.Context) ([]domain.Loan, error) {
	return s.repo.List(ctx)
}

func (s *LoanService) Get(ctx context.Context, id uint) (*domain.Loan, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts the loan directly; unlike tasks there is no user existence
// pre-check, the foreign key on user_id is the gate.
func (s *LoanService) Create(ctx context.Context, input ports.CreateLoanInput) (*domain.Loan, error) {
	if input.UserID == 0 || input.GoldItems == "" || input.Amount == 0 || input.InterestRate == 0 {
		return nil, domain.ValidationError("All fields (user_id, gold_items, amount, interest_rate) are required")
	}
	if input.Amount < 0 {
		return nil, domain.ValidationError("Amount must be positive")
	}

	status := input.Status
	if status == "" {
		status = domain.LoanStatusActive
	}

	loan := &domain.Loan{
		UserID:       input.UserID,
		GoldItems:    input.GoldItems,
		Amount:       input.Amount,
		InterestRate: input.InterestRate,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, loan)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("loan_id", created.ID).Uint("user_id", created.UserID).Float64("amount", created.Amount).Msg("loan created")
	return created, nil
}
