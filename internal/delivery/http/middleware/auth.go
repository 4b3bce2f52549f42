package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "activitybooking/internal/delivery/http/helpers"
	"activitybooking/internal/domain"
)

type staffKey struct{}

var (
	errNoAuthHeader = errors.New("missing authorization header")
	errNotBearer    = errors.New("invalid authorization format")
	errEmptyToken   = errors.New("missing token")
)

// WithStaff returns ctx carrying the authenticated staff member.
func WithStaff(ctx context.Context, staffID string) context.Context {
	return context.WithValue(ctx, staffKey{}, staffID)
}

// StaffFromContext returns the staff member set by RequireStaff. Routes left
// open when staff auth is disabled see ok == false.
func StaffFromContext(ctx context.Context) (staffID string, ok bool) {
	staffID, ok = ctx.Value(staffKey{}).(string)
	return staffID, ok
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errNoAuthHeader
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return "", errNotBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errEmptyToken
	}
	return token, nil
}

// RequireStaff guards a handler with a staff bearer token. Failures answer 401
// without calling next.
func RequireStaff(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, err.Error())
				return
			}
			staffID, err := verifier.Verify(token)
			if err != nil {
				logger.WarnContext(r.Context(), "staff token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(WithStaff(r.Context(), staffID)))
		}
	}
}
