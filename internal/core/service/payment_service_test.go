package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lendvault/lending-api/internal/core/domain"
	"github.com/lendvault/lending-api/internal/core/ports"
)

type stubPaymentRepo struct {
	payments     map[uint]*domain.Payment
	knownLoanIDs map[uint]bool
	nextID       uint
}

func newStubPaymentRepo(loanIDs ...uint) *stubPaymentRepo {
	known := make(map[uint]bool, len(loanIDs))
	for _, id := range loanIDs {
		known[id] = true
	}
	return &stubPaymentRepo{payments: make(map[uint]*domain.Payment), knownLoanIDs: known, nextID: 1}
}

func (r *stubPaymentRepo) ListByLoan(_ context.Context, loanID uint) ([]domain.Payment, error) {
	payments := make([]domain.Payment, 0)
	for id := uint(1); id < r.nextID; id++ {
		if p, ok := r.payments[id]; ok && p.LoanID == loanID {
			payments = append(payments, *p)
		}
	}
	return payments, nil
}

func (r *stubPaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if !r.knownLoanIDs[payment.LoanID] {
		return nil, domain.ErrInvalidReference
	}
	clone := *payment
	clone.ID = r.nextID
	r.nextID++
	stored := clone
	r.payments[clone.ID] = &stored
	return &clone, nil
}

func TestPaymentService_Create_DefaultsPaymentDate(t *testing.T) {
	svc := NewPaymentService(newStubPaymentRepo(1), zerolog.Nop())

	before := time.Now().UTC()
	payment, err := svc.Create(context.Background(), ports.CreatePaymentInput{
		LoanID: 1, Amount: 500, PaymentType: "cash",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if payment.PaymentDate.Before(before) {
		t.Fatalf("payment date not defaulted to now: %v", payment.PaymentDate)
	}
}

func TestPaymentService_Create_KeepsExplicitDate(t *testing.T) {
	svc := NewPaymentService(newStubPaymentRepo(1), zerolog.Nop())

	when := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	payment, err := svc.Create(context.Background(), ports.CreatePaymentInput{
		LoanID: 1, Amount: 500, PaymentDate: when, PaymentType: "upi",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !payment.PaymentDate.Equal(when) {
		t.Fatalf("explicit payment date overwritten: %v", payment.PaymentDate)
	}
}

func TestPaymentService_Create_UnknownLoan(t *testing.T) {
	svc := NewPaymentService(newStubPaymentRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreatePaymentInput{
		LoanID: 9, Amount: 500, PaymentType: "cash",
	})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestPaymentService_Create_MissingFields(t *testing.T) {
	svc := NewPaymentService(newStubPaymentRepo(1), zerolog.Nop())

	var ve domain.ValidationError
	if _, err := svc.Create(context.Background(), ports.CreatePaymentInput{LoanID: 1, Amount: 500}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestPaymentService_ListByLoan_EmptyIsEmptySlice(t *testing.T) {
	svc := NewPaymentService(newStubPaymentRepo(1), zerolog.Nop())

	payments, err := svc.ListByLoan(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByLoan failed: %v", err)
	}
	if payments == nil || len(payments) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", payments)
	}
}
