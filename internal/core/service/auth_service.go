package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lendvault/lending-api/internal/core/domain"
	"github.com/lendvault/lending-api/internal/core/ports"
)

// AuthService implements password login and the federated Google upsert.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login verifies the password against the stored hash. Unknown email, a
// federated account without a credential, and a wrong password are all
// reported as the same domain.ErrInvalidCredentials so that the response
// does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ValidationError("Email and password are required")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if user.PasswordHash == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("login succeeded")
	return token, user, nil
}

// GoogleUpsert resolves the federated identity to exactly one account:
//  1. an account already carrying this google id is updated in place;
//  2. otherwise an account with the same email has the google id attached;
//  3. otherwise a new password-less account is created.
//
// The google-id match must win over the email match, so an account is never
// split in two when the user later signs in with a changed email.
func (s *AuthService) GoogleUpsert(ctx context.Context, input ports.GoogleUpsertInput) (string, *domain.User, error) {
	if input.GoogleID == "" || input.Name == "" || input.Email == "" {
		return "", nil, domain.ValidationError("All fields (google_id, name, email) are required")
	}
	if !domain.ValidEmail(input.Email) {
		return "", nil, domain.ValidationError("Invalid email format")
	}

	user, err := s.repo.FindByGoogleID(ctx, input.GoogleID)
	switch {
	case err == nil:
		user.Name = input.Name
		user.Email = input.Email
		user, err = s.repo.Update(ctx, user)
	case errors.Is(err, domain.ErrUserNotFound):
		user, err = s.attachOrCreate(ctx, input)
	default:
		return "", nil, err
	}
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("federated sign-in")
	return token, user, nil
}

func (s *AuthService) attachOrCreate(ctx context.Context, input ports.GoogleUpsertInput) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		user.GoogleID = input.GoogleID
		user.Name = input.Name
		return s.repo.Update(ctx, user)
	case errors.Is(err, domain.ErrUserNotFound):
		return s.repo.Create(ctx, &domain.User{
			GoogleID:  input.GoogleID,
			Name:      input.Name,
			Email:     input.Email,
			CreatedAt: time.Now().UTC(),
		})
	default:
		return nil, err
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
