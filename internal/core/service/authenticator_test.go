package service

import (
	"context"
	"errors"
	"testing"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

func TestAuthenticator_AccountWithoutProfile(t *testing.T) {
	repo := &stubAccountRepo{
		findByLoginFn: func(ctx context.Context, login string) (*domain.Account, error) {
			account := usableAccount("alice", "secret")
			account.User = nil
			return account, nil
		},
	}
	auth := NewAuthenticator(repo)

	_, err := auth.Authenticate(context.Background(), "alice", "secret")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticator_RepositoryErrorPassesThrough(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &stubAccountRepo{
		findByLoginFn: func(ctx context.Context, login string) (*domain.Account, error) {
			return nil, boom
		},
	}
	auth := NewAuthenticator(repo)

	_, err := auth.Authenticate(context.Background(), "alice", "secret")
	if !errors.Is(err, boom) {
		t.Fatalf("expected the infrastructure error to pass through, got %v", err)
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatal("infrastructure failures must not masquerade as bad credentials")
	}
}
