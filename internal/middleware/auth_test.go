package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	j := NewJWTAuth("0123456789abcdef0123456789abcdef", nil)
	accountID := uuid.New()

	tokenStr, err := j.GenerateAccessToken(accountID, "seeker@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return j.Secret, nil
	})
	if err != nil {
		t.Fatalf("Failed to parse token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		t.Fatal("Expected valid claims")
	}

	if claims["sub"] != accountID.String() {
		t.Errorf("Expected sub %q, got %v", accountID, claims["sub"])
	}
	if claims["email"] != "seeker@example.com" {
		t.Errorf("Expected email claim, got %v", claims["email"])
	}

	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)
	if got := time.Duration(exp-iat) * time.Second; got != 24*time.Hour {
		t.Errorf("Expected 24h expiry, got %v", got)
	}
}

func TestMiddleware_RejectsBadTokens(t *testing.T) {
	j := NewJWTAuth("0123456789abcdef0123456789abcdef", nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not run for rejected tokens")
	})
	protected := j.Middleware(next)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong signing key", "Bearer " + signedWith("another-secret-another-secret-00")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/practices/daily", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rr := httptest.NewRecorder()
			protected.ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401, got %d", rr.Code)
			}
		})
	}
}

func TestMiddleware_RejectsExpiredToken(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"
	j := NewJWTAuth(secret, nil)

	claims := jwt.MapClaims{
		"sub":   uuid.NewString(),
		"email": "seeker@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
		"iat":   time.Now().Add(-25 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/user/progress", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rr := httptest.NewRecorder()

	j.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not run for expired tokens")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rr.Code)
	}
}

func signedWith(secret string) string {
	claims := jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return token
}
