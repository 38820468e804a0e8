package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"benkhawiya-backend/internal/middleware"
	"benkhawiya-backend/internal/models"
	"benkhawiya-backend/internal/repository"
)

const minPasswordLength = 8

type AuthService struct {
	accountRepo *repository.AccountRepo
	jwt         *middleware.JWTAuth
}

func NewAuthService(accountRepo *repository.AccountRepo, jwt *middleware.JWTAuth) *AuthService {
	return &AuthService{accountRepo: accountRepo, jwt: jwt}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.Account, string, error) {
	// Validate all fields at once
	fieldErrors := make(map[string]string)

	if req.Email == "" {
		fieldErrors["email"] = "Email is required"
	} else if !emailRegex.MatchString(req.Email) {
		fieldErrors["email"] = "Invalid email format"
	}
	if req.Password == "" {
		fieldErrors["password"] = "Password is required"
	} else if len(req.Password) < minPasswordLength {
		fieldErrors["password"] = fmt.Sprintf("Password must be at least %d characters", minPasswordLength)
	}
	if req.UserLevel != "" && !models.ValidLevel(req.UserLevel) {
		fieldErrors["user_level"] = "Level must be beginner, intermediate, or advanced"
	}

	if len(fieldErrors) > 0 {
		return nil, "", &ValidationError{Fields: fieldErrors}
	}

	// Check uniqueness
	_, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, "", &ConflictError{Message: "An account with this email already exists"}
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", storeError(err)
	}

	// Hash password (bcrypt cost 12)
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Email:        req.Email,
		PasswordHash: string(hash),
		UserLevel:    req.UserLevel,
	}
	if req.DisplayName != "" {
		account.DisplayName = &req.DisplayName
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, "", storeError(err)
	}

	token, err := s.jwt.GenerateAccessToken(account.ID, account.Email)
	if err != nil {
		return nil, "", err
	}

	log.Printf("New account registered: %s", account.Email)
	return account, token, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.Account, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", &ValidationError{Fields: map[string]string{
			"credentials": "Email and password are required",
		}}
	}

	// Unknown email, deactivated account, and wrong password all surface
	// the same error so callers cannot probe which one failed.
	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", &UnauthorizedError{Message: "Invalid email or password"}
		}
		return nil, "", storeError(err)
	}

	if !account.IsActive {
		return nil, "", &UnauthorizedError{Message: "Invalid email or password"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", &UnauthorizedError{Message: "Invalid email or password"}
	}

	s.accountRepo.TouchLastSeen(ctx, account.ID)

	token, err := s.jwt.GenerateAccessToken(account.ID, account.Email)
	if err != nil {
		return nil, "", err
	}

	log.Printf("Account logged in: %s", account.Email)
	return account, token, nil
}

func (s *AuthService) UpdateLevel(ctx context.Context, account *models.Account, level string) error {
	if !models.ValidLevel(level) {
		return &ValidationError{Fields: map[string]string{
			"user_level": "Level must be beginner, intermediate, or advanced",
		}}
	}

	if err := s.accountRepo.UpdateLevel(ctx, account.ID, level); err != nil {
		return storeError(err)
	}

	account.UserLevel = level
	return nil
}

// storeError hides driver-level failures behind a 503. Row-level
// conditions (pgx.ErrNoRows) must be handled before calling this.
func storeError(err error) error {
	log.Printf("Store error: %v", err)
	return &ServiceUnavailableError{Message: "Service temporarily unavailable"}
}
