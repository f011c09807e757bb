package domain

import (
	"errors"
	"time"
)

const LoanStatusActive = "active"

var ErrLoanNotFound = errors.New("loan not found")

// ErrInvalidReference is returned when a write names a related record that
// does not exist (a foreign-key violation surfaced by the storage layer).
var ErrInvalidReference = errors.New("referenced record does not exist")

// Loan records gold items pledged by a user against a lent amount.
type Loan struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	GoldItems    string    `json:"gold_items"`
	Amount       float64   `json:"amount"`
	InterestRate float64   `json:"interest_rate"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
