package domain

import "time"

// Payment is a repayment made against a loan. PaymentDate defaults to the
// moment of creation when the caller does not supply one.
type Payment struct {
	ID          uint      `json:"id"`
	LoanID      uint      `json:"loan_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	PaymentType string    `json:"payment_type"`
	CreatedAt   time.Time `json:"created_at"`
}
