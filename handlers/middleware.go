package handlers

import (
	"context"
	"net/http"
	"strings"

	"dsatutor/services"

	"github.com/gorilla/mux"
)

type contextKey string

const identityKey contextKey = "identity"

// AuthMiddleware enforces the bearer token on protected routes. A
// missing Authorization header is 401; a present but unverifiable token
// is 403. The verified identity is stashed in the request context.
func AuthMiddleware(auth *services.AuthService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, "Token missing")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			token := parts[len(parts)-1]

			claims, err := auth.VerifyToken(token)
			if err != nil {
				writeError(w, http.StatusForbidden, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func identityFrom(r *http.Request) *services.TokenClaims {
	claims, _ := r.Context().Value(identityKey).(*services.TokenClaims)
	return claims
}
