package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecretKey = "test-secret"

func issueToken(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestJWTMiddleware(t *testing.T) {
	var gotUserID int64
	var gotOK bool
	handler := JWTMiddleware(testSecretKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	validClaims := jwt.MapClaims{
		"user_id": int64(42),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantUserID int64
	}{
		{
			name:       "valid token",
			authHeader: "Bearer " + issueToken(t, validClaims, testSecretKey),
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic abc123",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong signing key",
			authHeader: "Bearer " + issueToken(t, validClaims, "other-secret"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			authHeader: "Bearer " + issueToken(t, jwt.MapClaims{
				"user_id": int64(42),
				"exp":     time.Now().Add(-time.Hour).Unix(),
			}, testSecretKey),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "missing user_id claim",
			authHeader: "Bearer " + issueToken(t, jwt.MapClaims{
				"exp": time.Now().Add(time.Hour).Unix(),
			}, testSecretKey),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "string user_id claim",
			authHeader: "Bearer " + issueToken(t, jwt.MapClaims{
				"user_id": "42",
				"exp":     time.Now().Add(time.Hour).Unix(),
			}, testSecretKey),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID, gotOK = 0, false

			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("got status %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if !gotOK {
					t.Error("user id missing from request context")
				}
				if gotUserID != tt.wantUserID {
					t.Errorf("got user id %d, want %d", gotUserID, tt.wantUserID)
				}
			}
		})
	}
}
