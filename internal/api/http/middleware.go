package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"menu-svc/internal/service"

	"github.com/gorilla/mux"
)

// RequireAdmin rejects requests that do not carry a valid admin bearer token.
func RequireAdmin(auth service.AuthServiceInterface) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				respondError(w, http.StatusUnauthorized, "no_auth_token")
				return
			}

			if _, err := auth.Verify(token); err != nil {
				if errors.Is(err, service.ErrForbidden) {
					respondError(w, http.StatusForbidden, "forbidden")
					return
				}
				respondError(w, http.StatusUnauthorized, "invalid_token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
