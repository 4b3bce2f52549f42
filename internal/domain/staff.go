package domain

import (
	"errors"
	"time"
)

// ErrUnauthorized is returned when a staff token is missing, malformed or expired.
var ErrUnauthorized = errors.New("unauthorized")

// StaffRole is the role a token must carry to reach staff endpoints.
const StaffRole = "staff"

// TokenIssuer signs staff bearer tokens.
type TokenIssuer interface {
	Issue(staffID string, expiry time.Duration) (string, error)
}

// TokenVerifier checks a bearer token and returns the staff id it was issued to.
type TokenVerifier interface {
	Verify(token string) (staffID string, err error)
}
