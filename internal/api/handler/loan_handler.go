package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lendvault/lending-api/internal/api/metrics"
	"github.com/lendvault/lending-api/internal/core/domain"
	"github.com/lendvault/lending-api/internal/core/ports"
)

// LoanHandler handles HTTP requests for loans.
type LoanHandler struct {
	service ports.LoanService
}

func NewLoanHandler(service ports.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

type createLoanRequest struct {
	UserID       uint    `json:"user_id"       validate:"required"`
	GoldItems    string  `json:"gold_items"    validate:"required"`
	Amount       float64 `json:"amount"        validate:"required,gt=0"`
	InterestRate float64 `json:"interest_rate" validate:"required"`
	Status       string  `json:"status"`
}

type createLoanResponse struct {
	domain.Loan
	Message string `json:"message"`
}

// List handles GET /api/loans.
func (h *LoanHandler) List(c echo.Context) error {
	loans, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loans)
}

// Get handles GET /api/loans/:id.
func (h *LoanHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	loan, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loan)
}

// Create handles POST /api/loans. There is no user existence pre-check; an
// unknown user_id surfaces as a constraint violation from storage.
func (h *LoanHandler) Create(c echo.Context) error {
	var req createLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	loan, err := h.service.Create(c.Request().Context(), ports.CreateLoanInput{
		UserID:       req.UserID,
		GoldItems:    req.GoldItems,
		Amount:       req.Amount,
		InterestRate: req.InterestRate,
		Status:       req.Status,
	})
	if err != nil {
		return err
	}

	metrics.LoansCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createLoanResponse{
		Loan:    *loan,
		Message: "Loan created successfully",
	})
}
