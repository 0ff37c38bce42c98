package middleware

import (
	"net/http"
	"strings"

	"tiketti-payments/internal/organizer"
	"tiketti-payments/internal/utils"
)

// RequireAuth guards the merchant API: it validates the Bearer token and
// puts the organizer id from its claims into the request context.
func RequireAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := organizer.ParseJWT(tokenStr, jwtSecret)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := utils.WithOrganizerID(r.Context(), claims.OrganizerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
