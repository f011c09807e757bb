package domain

import (
	"errors"
	"regexp"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailExists = errors.New("email already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")

// emailPattern is the wire-contract email shape: local@domain with a dot in
// the domain, no whitespace, no second @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User models an account holder. PasswordHash is empty for accounts created
// through federated sign-in and is never serialized.
type User struct {
	ID           uint      `json:"id"`
	GoogleID     string    `json:"google_id,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidEmail reports whether the address matches the accepted shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
