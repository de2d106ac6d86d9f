package middleware

import (
	"context"
	"net/http"
	"strings"

	"communityguestbook/internal/delivery/http/helpers"
	"communityguestbook/internal/domain"
)

type contextKey string

const moderatorIDKey contextKey = "moderatorID"

// SetModeratorID returns a context with the moderator ID set. Used by auth middleware.
func SetModeratorID(ctx context.Context, moderatorID string) context.Context {
	return context.WithValue(ctx, moderatorIDKey, moderatorID)
}

// ModeratorIDFromContext returns the authenticated moderator ID from the context, if present.
func ModeratorIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(moderatorIDKey).(string)
	return id, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// moderator ID in the request context. If the token is missing or invalid,
// it responds with 401 and does not call next. Only the administrative delete
// route uses this; the capability-token routes are their own authorization.
func RequireAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "missing token")
				return
			}
			moderatorID, err := verifier.Verify(token)
			if err != nil {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetModeratorID(r.Context(), moderatorID))
			next(w, r)
		}
	}
}
