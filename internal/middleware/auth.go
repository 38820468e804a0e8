package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"benkhawiya-backend/internal/models"
	"benkhawiya-backend/internal/repository"
)

type contextKey string

const accountKey contextKey = "account"

// Session tokens are valid for a fixed 24 hours from issuance.
const tokenTTL = 24 * time.Hour

type JWTAuth struct {
	Secret      []byte
	accountRepo *repository.AccountRepo
}

func NewJWTAuth(secret string, accountRepo *repository.AccountRepo) *JWTAuth {
	return &JWTAuth{Secret: []byte(secret), accountRepo: accountRepo}
}

// GenerateAccessToken creates an HS256 JWT bound to the account.
func (j *JWTAuth) GenerateAccessToken(accountID uuid.UUID, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   accountID.String(),
		"email": email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Middleware validates the bearer token, resolves the bound account, and
// rejects tokens whose account is gone or deactivated.
func (j *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing authorization header", r)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid authorization format", r)
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return j.Secret, nil
		})

		if err != nil {
			if strings.Contains(err.Error(), "expired") {
				writeError(w, http.StatusUnauthorized, "TOKEN_EXPIRED", "Token has expired", r)
			} else {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token", r)
			}
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token claims", r)
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid subject in token", r)
			return
		}

		accountID, err := uuid.Parse(sub)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid subject format", r)
			return
		}

		account, err := j.accountRepo.GetByID(r.Context(), accountID)
		if err != nil || !account.IsActive {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Account not found or inactive", r)
			return
		}

		ctx := context.WithValue(r.Context(), accountKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAccount extracts the authenticated account from the request context.
func GetAccount(ctx context.Context) *models.Account {
	account, _ := ctx.Value(accountKey).(*models.Account)
	return account
}

func writeError(w http.ResponseWriter, status int, code, message string, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: requestID,
		},
	})
}
