package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/onamfest/scorekeeper/services"
)

type contextKey string

const adminContextKey contextKey = "admin"

// Authenticate guards mutating endpoints. It extracts the bearer token,
// verifies it, and rejects the request before any handler logic runs. On
// success the verified admin username is stored in the request context.
func Authenticate(tokens services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractBearerToken(r)
			if err != nil {
				writeUnauthorized(w, err.Error())
				return
			}

			username, err := tokens.Verify(token)
			if err != nil {
				if errors.Is(err, services.ErrTokenExpired) {
					writeUnauthorized(w, "token has expired")
					return
				}
				writeUnauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), adminContextKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext returns the verified admin username stored by
// Authenticate.
func AdminFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(adminContextKey).(string)
	return username, ok
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("authorization header is missing")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("authorization header must be of the form 'Bearer <token>'")
	}
	return parts[1], nil
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error": "` + message + `"}` + "\n"))
}
