package ports

// TokenService issues and checks the signed, self-contained identity tokens
// carried by the session cookie or the Authorization header.
type TokenService interface {
	// Issue mints a token whose subject is the given login.
	Issue(login string) (string, error)
	// Validate fails closed: any parse error, bad signature, past expiry, or
	// subject mismatch returns a non-nil error.
	Validate(token, login string) error
	// ExtractSubject decodes the token's subject without needing a loaded
	// principal. The signature is still verified.
	ExtractSubject(token string) (string, error)
}
