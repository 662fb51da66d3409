package middleware

import (
	"crypto/subtle"
	"net/http"
)

// ModeratorMiddleware guards the moderation surface with a shared secret
// passed in the X-Moderator-Token header. An empty configured token
// disables the surface entirely.
func ModeratorMiddleware(moderatorToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if moderatorToken == "" {
				http.Error(w, "moderation disabled", http.StatusForbidden)
				return
			}

			got := r.Header.Get("X-Moderator-Token")
			if subtle.ConstantTimeCompare([]byte(got), []byte(moderatorToken)) != 1 {
				http.Error(w, "invalid moderator token", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
