package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

// AccountRepository persists credentials and user profiles.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByLogin(ctx context.Context, login string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("login = ?", login).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &account, nil
}

func (r *AccountRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *AccountRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("login = ?", login).
		Count(&count).Error
	return count > 0, err
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

// CreateWithUser inserts the account first and then the user referencing it,
// in one transaction, so a failed profile write rolls back the credential.
// Unique constraint hits from concurrent registrations come back as the same
// conflict errors the pre-checks produce.
func (r *AccountRepository) CreateWithUser(ctx context.Context, account *domain.Account, user *domain.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("User").Create(account).Error; err != nil {
			return err
		}
		user.AccountID = account.ID
		return tx.Create(user).Error
	})
	if err != nil {
		return translateConstraint(err)
	}
	return nil
}

// translateConstraint maps SQLite unique-constraint failures onto the domain
// conflict errors. Message inspection is the only signal the driver gives.
func translateConstraint(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return fmt.Errorf("create account: %w", err)
	}
	switch {
	case strings.Contains(msg, "accounts.login"):
		return domain.ErrUsernameTaken
	case strings.Contains(msg, "users.email"):
		return domain.ErrEmailInUse
	default:
		return fmt.Errorf("create account: %w", err)
	}
}
