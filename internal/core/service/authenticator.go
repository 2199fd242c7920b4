package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/broccoflower/catering-api/internal/core/domain"
	"github.com/broccoflower/catering-api/internal/core/ports"
)

// Authenticator checks submitted credentials against the account store.
type Authenticator struct {
	accounts ports.AccountRepository
}

func NewAuthenticator(accounts ports.AccountRepository) *Authenticator {
	return &Authenticator{accounts: accounts}
}

// Authenticate resolves the user behind (login, password). An unknown login,
// a wrong password, and a disabled or locked account all return the same
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (a *Authenticator) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	account, err := a.accounts.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !account.Usable() {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if account.User == nil {
		// credential without a profile; treat as unusable
		return nil, domain.ErrInvalidCredentials
	}
	return account.User, nil
}
