package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lendvault/lending-api/internal/api/metrics"
	"github.com/lendvault/lending-api/internal/core/domain"
	"github.com/lendvault/lending-api/internal/core/ports"
)

// PaymentHandler handles HTTP requests for loan payments.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type createPaymentRequest struct {
	LoanID      uint      `json:"loan_id"      validate:"required"`
	Amount      float64   `json:"amount"       validate:"required,gt=0"`
	PaymentDate time.Time `json:"payment_date"`
	PaymentType string    `json:"payment_type" validate:"required"`
}

type createPaymentResponse struct {
	domain.Payment
	Message string `json:"message"`
}

// ListByLoan handles GET /api/loans/:id/payments. A loan without payments
// yields an empty array, not a 404.
func (h *PaymentHandler) ListByLoan(c echo.Context) error {
	loanID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	payments, err := h.service.ListByLoan(c.Request().Context(), loanID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// Create handles POST /api/payments.
func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.service.Create(c.Request().Context(), ports.CreatePaymentInput{
		LoanID:      req.LoanID,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		PaymentType: req.PaymentType,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.Inc()
	return c.JSON(http.StatusCreated, createPaymentResponse{
		Payment: *payment,
		Message: "Payment recorded successfully",
	})
}
