package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/onamfest/scorekeeper/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedHandler(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		username, ok := AdminFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "admin", username)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthenticateAllowsValidToken(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour)
	token, err := tokens.Issue("admin")
	require.NoError(t, err)

	called := false
	handler := Authenticate(tokens)(protectedHandler(t, &called))

	req := httptest.NewRequest(http.MethodPost, "/teams", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthenticateRejectsBeforeHandlerRuns(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour)
	foreign := services.NewTokenService("other-secret", time.Hour)
	foreignToken, err := foreign.Issue("admin")
	require.NoError(t, err)

	expired := services.NewTokenService("test-secret", -time.Minute)
	expiredToken, err := expired.Issue("admin")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer scheme", header: "Basic YWRtaW46YWRtaW4="},
		{name: "empty token", header: "Bearer "},
		{name: "malformed token", header: "Bearer not-a-jwt"},
		{name: "foreign signature", header: "Bearer " + foreignToken},
		{name: "expired token", header: "Bearer " + expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := Authenticate(tokens)(protectedHandler(t, &called))

			req := httptest.NewRequest(http.MethodPost, "/teams", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			// The gate must reject before the handler (and therefore any
			// storage access) runs.
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}
