package ports

import (
	"context"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

// AccountRepository defines persistence for credentials and user profiles.
type AccountRepository interface {
	// FindByLogin retrieves an account with its user profile preloaded.
	FindByLogin(ctx context.Context, login string) (*domain.Account, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByLogin(ctx context.Context, login string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// CreateWithUser inserts the account and then the user referencing it
	// inside a single transaction. Unique constraint violations surface as
	// domain.ErrUsernameTaken or domain.ErrEmailInUse.
	CreateWithUser(ctx context.Context, account *domain.Account, user *domain.User) error
}
