package ports

import "context"

// RegistrationInput carries the fields submitted on sign-up. Phone is the
// only optional field and defaults to empty.
type RegistrationInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

// AuthService implements login and registration. Session cookie handling
// stays in the transport layer.
type AuthService interface {
	// Login verifies the credentials and returns a freshly issued token.
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, input RegistrationInput) error
}
