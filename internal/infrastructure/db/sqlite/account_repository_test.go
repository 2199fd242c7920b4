package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

func testDB(t *testing.T) *AccountRepository {
	t.Helper()
	db, err := Connect(filepath.Join(t.TempDir(), "catering.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	return NewAccountRepository(db)
}

func registration(login, email string) (*domain.Account, *domain.User) {
	account := &domain.Account{
		Login:                 login,
		Password:              "hashed",
		Enabled:               true,
		AccountNonExpired:     true,
		AccountNonLocked:      true,
		CredentialsNonExpired: true,
	}
	user := &domain.User{
		Username:  login,
		Email:     email,
		FirstName: "First",
		LastName:  "Last",
		Phone:     "",
		Role:      domain.RoleClient,
	}
	return account, user
}

func TestAccountRepository_CreateWithUser(t *testing.T) {
	repo := testDB(t)
	ctx := context.Background()

	account, user := registration("alice", "alice@example.com")
	if err := repo.CreateWithUser(ctx, account, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	loaded, err := repo.FindByLogin(ctx, "alice")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if loaded.User == nil || loaded.User.Email != "alice@example.com" {
		t.Fatalf("expected preloaded profile, got %+v", loaded.User)
	}
	if loaded.User.AccountID != loaded.ID {
		t.Fatalf("profile must reference the account, got %d vs %d", loaded.User.AccountID, loaded.ID)
	}
}

// The unique constraint is the backstop when two registrations with the same
// login race past the service-level pre-check: the loser must see the same
// conflict error the pre-check produces, never a raw driver error.
func TestAccountRepository_CreateWithUser_DuplicateLogin(t *testing.T) {
	repo := testDB(t)
	ctx := context.Background()

	account, user := registration("alice", "alice@example.com")
	if err := repo.CreateWithUser(ctx, account, user); err != nil {
		t.Fatalf("first create: %v", err)
	}

	dup, dupUser := registration("alice", "other@example.com")
	err := repo.CreateWithUser(ctx, dup, dupUser)
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAccountRepository_CreateWithUser_DuplicateEmailRollsBackAccount(t *testing.T) {
	repo := testDB(t)
	ctx := context.Background()

	account, user := registration("alice", "shared@example.com")
	if err := repo.CreateWithUser(ctx, account, user); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// distinct login, so the account insert succeeds and the failure comes
	// from the user row
	second, secondUser := registration("bob", "shared@example.com")
	err := repo.CreateWithUser(ctx, second, secondUser)
	if !errors.Is(err, domain.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}

	exists, err := repo.ExistsByLogin(ctx, "bob")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatal("account row must be rolled back when the profile insert fails")
	}
}

func TestAccountRepository_FindByLogin_Missing(t *testing.T) {
	repo := testDB(t)

	_, err := repo.FindByLogin(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTranslateConstraint_UnrecognizedErrorPassesThrough(t *testing.T) {
	boom := errors.New("database is locked")
	err := translateConstraint(boom)
	if !errors.Is(err, boom) {
		t.Fatalf("expected the original error to be wrapped, got %v", err)
	}
	if errors.Is(err, domain.ErrUsernameTaken) || errors.Is(err, domain.ErrEmailInUse) {
		t.Fatal("non-constraint errors must not become conflicts")
	}
}
