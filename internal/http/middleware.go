package http

import (
	"net/http"
	"strings"

	"github.com/jwoodham/bucksbot/internal/auth"
)

// RequireModerator guards a route with a bearer token carrying the
// moderator role.
func RequireModerator(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, prefix) {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Parse(strings.TrimSpace(header[len(prefix):]))
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if claims.Role != auth.RoleModerator {
				http.Error(w, "moderator token required", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
