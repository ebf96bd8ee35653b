package ports

// TokenVerifier checks a bearer token and returns the user id it asserts.
// Failures are one of domain.ErrTokenMalformed, domain.ErrTokenSignatureInvalid
// or domain.ErrTokenExpired; verification never touches the credential store.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// TokenService issues and verifies signed, time-bound identity tokens.
type TokenService interface {
	Issue(userID string) (string, error)
	TokenVerifier
}
