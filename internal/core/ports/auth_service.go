package ports

import (
	"context"

	"github.com/lendvault/lending-api/internal/core/domain"
)

// GoogleUpsertInput carries the identity asserted by the federated provider.
type GoogleUpsertInput struct {
	GoogleID string
	Name     string
	Email    string
}

type AuthService interface {
	// Login verifies the password and returns a signed bearer token together
	// with the account it authenticates.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// GoogleUpsert finds or creates the account for a federated identity and
	// returns a token for it. Matching by GoogleID takes precedence over
	// matching by email.
	GoogleUpsert(ctx context.Context, input GoogleUpsertInput) (string, *domain.User, error)
}
