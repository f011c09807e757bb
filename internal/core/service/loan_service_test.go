package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lendvault/lending-api/internal/core/domain"
	"github.com/lendvault/lending-api/internal/core/ports"
)

// stubLoanRepo mimics the storage-level foreign key: creates against an
// unknown user id fail with ErrInvalidReference.
type stubLoanRepo struct {
	loans    map[uint]*domain.Loan
	knownIDs map[uint]bool
	nextID   uint
}

func newStubLoanRepo(userIDs ...uint) *stubLoanRepo {
	known := make(map[uint]bool, len(userIDs))
	for _, id := range userIDs {
		known[id] = true
	}
	return &stubLoanRepo{loans: make(map[uint]*domain.Loan), knownIDs: known, nextID: 1}
}

func (r *stubLoanRepo) List(_ context.Context) ([]domain.Loan, error) {
	loans := make([]domain.Loan, 0, len(r.loans))
	for id := uint(1); id < r.nextID; id++ {
		if l, ok := r.loans[id]; ok {
			loans = append(loans, *l)
		}
	}
	return loans, nil
}

func (r *stubLoanRepo) FindByID(_ context.Context, id uint) (*domain.Loan, error) {
	if l, ok := r.loans[id]; ok {
		clone := *l
		return &clone, nil
	}
	return nil, domain.ErrLoanNotFound
}

func (r *stubLoanRepo) Create(_ context.Context, loan *domain.Loan) (*domain.Loan, error) {
	if !r.knownIDs[loan.UserID] {
		return nil, domain.ErrInvalidReference
	}
	clone := *loan
	clone.ID = r.nextID
	r.nextID++
	stored := clone
	r.loans[clone.ID] = &stored
	return &clone, nil
}

func TestLoanService_Create_Success(t *testing.T) {
	svc := NewLoanService(newStubLoanRepo(1), zerolog.Nop())

	loan, err := svc.Create(context.Background(), ports.CreateLoanInput{
		UserID: 1, GoldItems: "22k bangle, 8g", Amount: 25000, InterestRate: 12.5,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if loan.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if loan.Status != domain.LoanStatusActive {
		t.Fatalf("expected default active status, got %q", loan.Status)
	}

	got, err := svc.Get(context.Background(), loan.ID)
	if err != nil {
		t.Fatalf("Get after Create failed: %v", err)
	}
	if got.Amount != 25000 || got.InterestRate != 12.5 {
		t.Fatalf("unexpected loan: %+v", got)
	}
}

func TestLoanService_Create_UnknownUserIsConstraintViolation(t *testing.T) {
	svc := NewLoanService(newStubLoanRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateLoanInput{
		UserID: 42, GoldItems: "chain", Amount: 1000, InterestRate: 10,
	})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestLoanService_Create_MissingFields(t *testing.T) {
	svc := NewLoanService(newStubLoanRepo(1), zerolog.Nop())

	var ve domain.ValidationError
	cases := []ports.CreateLoanInput{
		{GoldItems: "chain", Amount: 1000, InterestRate: 10},
		{UserID: 1, Amount: 1000, InterestRate: 10},
		{UserID: 1, GoldItems: "chain", InterestRate: 10},
		{UserID: 1, GoldItems: "chain", Amount: 1000},
	}
	for i, input := range cases {
		if _, err := svc.Create(context.Background(), input); !errors.As(err, &ve) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestLoanService_Create_NegativeAmount(t *testing.T) {
	svc := NewLoanService(newStubLoanRepo(1), zerolog.Nop())

	var ve domain.ValidationError
	_, err := svc.Create(context.Background(), ports.CreateLoanInput{
		UserID: 1, GoldItems: "chain", Amount: -5, InterestRate: 10,
	})
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLoanService_Get_NotFound(t *testing.T) {
	svc := NewLoanService(newStubLoanRepo(1), zerolog.Nop())

	if _, err := svc.Get(context.Background(), 7); !errors.Is(err, domain.ErrLoanNotFound) {
		t.Fatalf("expected ErrLoanNotFound, got %v", err)
	}
}
