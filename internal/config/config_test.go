package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for missing required env var")
		}
	}()

	os.Unsetenv("NONEXISTENT_REQUIRED_VAR")
	mustGetEnv("NONEXISTENT_REQUIRED_VAR")
}

func TestMustGetEnv_ReturnsValue(t *testing.T) {
	os.Setenv("TEST_REQUIRED", "value123")
	defer os.Unsetenv("TEST_REQUIRED")

	result := mustGetEnv("TEST_REQUIRED")
	if result != "value123" {
		t.Errorf("Expected 'value123', got %q", result)
	}
}

func TestSplitOrigins(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"wildcard", "*", []string{"*"}},
		{"single origin", "https://app.example.com", []string{"https://app.example.com"}},
		{"multiple with spaces", "https://a.com, https://b.com", []string{"https://a.com", "https://b.com"}},
		{"empty falls back to wildcard", "", []string{"*"}},
		{"trailing comma dropped", "https://a.com,", []string{"https://a.com"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := splitOrigins(tc.raw)
			if len(result) != len(tc.expected) {
				t.Fatalf("Expected %d origins, got %d", len(tc.expected), len(result))
			}
			for i := range result {
				if result[i] != tc.expected[i] {
					t.Errorf("Origin %d: expected %q, got %q", i, tc.expected[i], result[i])
				}
			}
		})
	}
}

func TestLoad_RejectsShortSecret(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/benkhawiya_test")
	os.Setenv("REDIS_URL", "redis://localhost:6379")
	os.Setenv("SECRET_KEY", "too-short")
	defer func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("SECRET_KEY")
	}()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for secret shorter than 32 characters")
		}
	}()

	Load()
}

func TestLoad_PortFallback(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/benkhawiya_test")
	os.Setenv("REDIS_URL", "redis://localhost:6379")
	os.Setenv("SECRET_KEY", "0123456789abcdef0123456789abcdef")
	os.Setenv("PORT", "not-a-port")
	defer func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("SECRET_KEY")
		os.Unsetenv("PORT")
	}()

	cfg := Load()
	if cfg.Port != "8000" {
		t.Errorf("Expected port fallback to 8000, got %q", cfg.Port)
	}
}
