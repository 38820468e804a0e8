package services

import (
	"context"
	"testing"

	"benkhawiya-backend/internal/models"
)

// Validation failures are detected before any repository call, so these
// paths run against a service with no backing store.

func TestRegister_ValidationFailures(t *testing.T) {
	s := NewAuthService(nil, nil)

	tests := []struct {
		name  string
		req   models.RegisterRequest
		field string
	}{
		{"missing email", models.RegisterRequest{Password: "longenough"}, "email"},
		{"malformed email", models.RegisterRequest{Email: "not-an-email", Password: "longenough"}, "email"},
		{"missing password", models.RegisterRequest{Email: "a@b.com"}, "password"},
		{"short password", models.RegisterRequest{Email: "a@b.com", Password: "seven77"}, "password"},
		{"bad level", models.RegisterRequest{Email: "a@b.com", Password: "longenough", UserLevel: "guru"}, "user_level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := s.Register(context.Background(), tc.req)

			vErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Expected ValidationError, got %T (%v)", err, err)
			}
			if _, present := vErr.Fields[tc.field]; !present {
				t.Errorf("Expected field error for %q, got %v", tc.field, vErr.Fields)
			}
		})
	}
}

func TestLogin_MissingCredentials(t *testing.T) {
	s := NewAuthService(nil, nil)

	for _, req := range []models.LoginRequest{
		{},
		{Email: "a@b.com"},
		{Password: "secretpass"},
	} {
		if _, _, err := s.Login(context.Background(), req); err == nil {
			t.Errorf("Expected error for incomplete credentials %+v", req)
		} else if _, ok := err.(*ValidationError); !ok {
			t.Errorf("Expected ValidationError, got %T", err)
		}
	}
}

func TestUpdateLevel_RejectsUnknownLevel(t *testing.T) {
	s := NewAuthService(nil, nil)
	account := &models.Account{UserLevel: models.LevelBeginner}

	err := s.UpdateLevel(context.Background(), account, "expert")
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("Expected ValidationError, got %T (%v)", err, err)
	}
	if account.UserLevel != models.LevelBeginner {
		t.Error("Account level must not change on rejected update")
	}
}

func TestValidLevel(t *testing.T) {
	for _, level := range []string{"beginner", "intermediate", "advanced"} {
		if !models.ValidLevel(level) {
			t.Errorf("Expected %q to be valid", level)
		}
	}
	for _, level := range []string{"", "Beginner", "expert", "advanced "} {
		if models.ValidLevel(level) {
			t.Errorf("Expected %q to be invalid", level)
		}
	}
}
