package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/broccoflower/catering-api/internal/core/domain"
	"github.com/broccoflower/catering-api/internal/core/ports"
)

// LoginThrottle counts failed login attempts per login (backed by Redis).
// A nil throttle disables throttling.
type LoginThrottle interface {
	TooManyAttempts(ctx context.Context, login string) (bool, error)
	RecordFailure(ctx context.Context, login string) error
	Reset(ctx context.Context, login string) error
}

// AuthService implements login and registration on top of the Authenticator
// and TokenService. The session cookie itself is handled by the transport.
type AuthService struct {
	accounts      ports.AccountRepository
	authenticator *Authenticator
	tokens        ports.TokenService
	throttle      LoginThrottle
	log           zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	authenticator *Authenticator,
	tokens ports.TokenService,
	throttle LoginThrottle,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		accounts:      accounts,
		authenticator: authenticator,
		tokens:        tokens,
		throttle:      throttle,
		log:           log,
	}
}

// Login verifies the credentials and returns a freshly issued token. Failed
// attempts feed the throttle; a throttle outage never blocks login.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if s.throttle != nil {
		blocked, err := s.throttle.TooManyAttempts(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle check failed, continuing")
		} else if blocked {
			s.log.Warn().Str("login", username).Msg("login throttled")
			return "", domain.ErrTooManyLoginAttempts
		}
	}

	user, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.log.Warn().Str("login", username).Msg("authentication failed")
			if s.throttle != nil {
				if rerr := s.throttle.RecordFailure(ctx, username); rerr != nil {
					s.log.Warn().Err(rerr).Msg("failed to record login failure")
				}
			}
		}
		return "", err
	}

	if s.throttle != nil {
		if rerr := s.throttle.Reset(ctx, username); rerr != nil {
			s.log.Warn().Err(rerr).Msg("failed to reset login throttle")
		}
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("login", username).Msg("user logged in")
	return token, nil
}

// Register validates the submitted fields, checks uniqueness, and creates the
// account and profile in a single transaction. The store's unique constraints
// are the backstop for concurrent registrations with the same login or email.
func (s *AuthService) Register(ctx context.Context, input ports.RegistrationInput) error {
	if err := validateRegistration(input); err != nil {
		return err
	}

	username := strings.TrimSpace(input.Username)

	taken, err := s.accounts.ExistsByLogin(ctx, username)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrUsernameTaken
	}

	inUse, err := s.accounts.ExistsByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account := &domain.Account{
		Login:                 username,
		Password:              string(hash),
		Enabled:               true,
		AccountNonExpired:     true,
		AccountNonLocked:      true,
		CredentialsNonExpired: true,
	}
	user := &domain.User{
		Username:  username,
		Email:     strings.TrimSpace(input.Email),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Phone:     strings.TrimSpace(input.Phone),
		Role:      domain.RoleClient,
	}

	if err := s.accounts.CreateWithUser(ctx, account, user); err != nil {
		return err
	}

	s.log.Info().Str("login", username).Msg("user registered")
	return nil
}

// validateRegistration rejects the first missing required field. Phone is
// optional and defaults to empty.
func validateRegistration(input ports.RegistrationInput) error {
	if strings.TrimSpace(input.Username) == "" {
		return &domain.ValidationError{Field: "username", Message: "Username is required!"}
	}
	if strings.TrimSpace(input.Password) == "" {
		return &domain.ValidationError{Field: "password", Message: "A password is required!"}
	}
	if strings.TrimSpace(input.Email) == "" {
		return &domain.ValidationError{Field: "email", Message: "Email is required!"}
	}
	if strings.TrimSpace(input.FirstName) == "" {
		return &domain.ValidationError{Field: "firstName", Message: "First name is required!"}
	}
	if strings.TrimSpace(input.LastName) == "" {
		return &domain.ValidationError{Field: "lastName", Message: "Last name is required!"}
	}
	return nil
}
