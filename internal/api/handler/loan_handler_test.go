package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lendvault/lending-api/internal/core/domain"
	"github.com/lendvault/lending-api/internal/core/ports"
)

type stubLoanService struct {
	listFn   func(ctx context.Context) ([]domain.Loan, error)
	getFn    func(ctx context.Context, id uint) (*domain.Loan, error)
	createFn func(ctx context.Context, input ports.CreateLoanInput) (*domain.Loan, error)
}

func (s *stubLoanService) List(ctx context.Context) ([]domain.Loan, error) {
	return s.listFn(ctx)
}

func (s *stubLoanService) Get(ctx context.Context, id uint) (*domain.Loan, error) {
	return s.getFn(ctx, id)
}

func (s *stubLoanService) Create(ctx context.Context, input ports.CreateLoanInput) (*domain.Loan, error) {
	return s.createFn(ctx, input)
}

type stubPaymentService struct {
	listByLoanFn func(ctx context.Context, loanID uint) ([]domain.Payment, error)
	createFn     func(ctx context.Context, input ports.CreatePaymentInput) (*domain.Payment, error)
}

func (s *stubPaymentService) ListByLoan(ctx context.Context, loanID uint) ([]domain.Payment, error) {
	return s.listByLoanFn(ctx, loanID)
}

func (s *stubPaymentService) Create(ctx context.Context, input ports.CreatePaymentInput) (*domain.Payment, error) {
	return s.createFn(ctx, input)
}

func TestLoanHandler_Create_Success(t *testing.T) {
	stub := &stubLoanService{
		createFn: func(ctx context.Context, input ports.CreateLoanInput) (*domain.Loan, error) {
			if input.UserID != 1 || input.Amount != 1500 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Loan{
				ID: 2, UserID: input.UserID, GoldItems: input.GoldItems,
				Amount: input.Amount, InterestRate: input.InterestRate,
				Status: domain.LoanStatusActive,
			}, nil
		},
	}
	h := NewLoanHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/loans",
		`{"user_id":1,"gold_items":"two rings, one chain","amount":1500,"interest_rate":3.5}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Loan created successfully" {
		t.Fatalf("missing confirmation message: %+v", resp)
	}
	if resp["status"] != string(domain.LoanStatusActive) {
		t.Fatalf("expected active status: %+v", resp)
	}
}

func TestLoanHandler_Create_NonPositiveAmount(t *testing.T) {
	stub := &stubLoanService{
		createFn: func(ctx context.Context, input ports.CreateLoanInput) (*domain.Loan, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewLoanHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/loans",
		`{"user_id":1,"gold_items":"ring","amount":-5,"interest_rate":3.5}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestLoanHandler_Create_UnknownUserPropagates(t *testing.T) {
	stub := &stubLoanService{
		createFn: func(ctx context.Context, input ports.CreateLoanInput) (*domain.Loan, error) {
			return nil, domain.ErrInvalidReference
		},
	}
	h := NewLoanHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/loans",
		`{"user_id":99,"gold_items":"ring","amount":500,"interest_rate":3.5}`)

	if err := h.Create(c); !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference to propagate, got %v", err)
	}
}

func TestLoanHandler_Get_NotFoundPropagates(t *testing.T) {
	stub := &stubLoanService{
		getFn: func(ctx context.Context, id uint) (*domain.Loan, error) {
			return nil, domain.ErrLoanNotFound
		},
	}
	h := NewLoanHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/loans/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.Get(c); !errors.Is(err, domain.ErrLoanNotFound) {
		t.Fatalf("expected ErrLoanNotFound to propagate, got %v", err)
	}
}

func TestPaymentHandler_Create_Success(t *testing.T) {
	when := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	stub := &stubPaymentService{
		createFn: func(ctx context.Context, input ports.CreatePaymentInput) (*domain.Payment, error) {
			if input.LoanID != 2 || !input.PaymentDate.Equal(when) {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Payment{
				ID: 1, LoanID: input.LoanID, Amount: input.Amount,
				PaymentDate: input.PaymentDate, PaymentType: input.PaymentType,
			}, nil
		},
	}
	h := NewPaymentHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/payments",
		`{"loan_id":2,"amount":200,"payment_date":"2024-03-10T00:00:00Z","payment_type":"interest"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Payment recorded successfully" {
		t.Fatalf("missing confirmation message: %+v", resp)
	}
}

func TestPaymentHandler_Create_MissingType(t *testing.T) {
	stub := &stubPaymentService{
		createFn: func(ctx context.Context, input ports.CreatePaymentInput) (*domain.Payment, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewPaymentHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/payments",
		`{"loan_id":2,"amount":200}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPaymentHandler_ListByLoan_EmptyArray(t *testing.T) {
	stub := &stubPaymentService{
		listByLoanFn: func(ctx context.Context, loanID uint) ([]domain.Payment, error) {
			return []domain.Payment{}, nil
		},
	}
	h := NewPaymentHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/loans/2/payments", "")
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := h.ListByLoan(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}
