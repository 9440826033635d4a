package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		wantPanic bool
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			shouldSet: true,
			wantPanic: false,
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			shouldSet: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestRequireEnvInt(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		expected  int
		wantPanic bool
	}{
		{
			name:      "valid integer",
			key:       "TEST_INT",
			value:     "42",
			expected:  42,
			wantPanic: false,
		},
		{
			name:      "invalid integer",
			key:       "TEST_INT_INVALID",
			value:     "not_a_number",
			wantPanic: true,
		},
		{
			name:      "missing variable",
			key:       "TEST_INT_MISSING",
			value:     "",
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnvInt() should have panicked")
					}
				}()
			}

			result := requireEnvInt(tt.key)
			if !tt.wantPanic && result != tt.expected {
				t.Errorf("requireEnvInt() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DURATION",
			value:    "5s",
			def:      1 * time.Second,
			expected: 5 * time.Second,
		},
		{
			name:     "invalid duration uses default",
			key:      "TEST_DURATION_INVALID",
			value:    "invalid",
			def:      10 * time.Second,
			expected: 10 * time.Second,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_DURATION_MISSING",
			value:    "",
			def:      15 * time.Second,
			expected: 15 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := mustDuration(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{
			name:     "true value",
			key:      "TEST_BOOL",
			value:    "true",
			def:      false,
			expected: true,
		},
		{
			name:     "false value",
			key:      "TEST_BOOL_FALSE",
			value:    "false",
			def:      true,
			expected: false,
		},
		{
			name:     "invalid value uses default",
			key:      "TEST_BOOL_INVALID",
			value:    "invalid",
			def:      true,
			expected: true,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_BOOL_MISSING",
			value:    "",
			def:      false,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := mustBool(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single value", input: "value1", expected: []string{"value1"}},
		{name: "multiple values", input: "value1, value2 ,value3", expected: []string{"value1", "value2", "value3"}},
		{name: "quoted values", input: `"a.example.com", 'b.example.com'`, expected: []string{"a.example.com", "b.example.com"}},
		{name: "empty parts dropped", input: "a,, ,b", expected: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndTrim(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("splitAndTrim() length = %v, want %v", len(result), len(tt.expected))
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndTrim()[%d] = %v, want %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key := strings.SplitN(kv, "=", 2)[0]
		if strings.HasPrefix(key, "PORTFOLIO_") {
			t.Setenv(key, "")
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want :8080", cfg.ListenPort)
	}
	if cfg.ContentFile != "" {
		t.Errorf("ContentFile = %q, want embedded content", cfg.ContentFile)
	}
	if cfg.RedisEnabled() {
		t.Error("Redis should be disabled without an address")
	}
	if cfg.ReloadInterval != time.Hour {
		t.Errorf("ReloadInterval = %v, want 1h", cfg.ReloadInterval)
	}
	if cfg.GCThreshold != 30*24*time.Hour {
		t.Errorf("GCThreshold = %v, want 720h", cfg.GCThreshold)
	}
	if cfg.AllowedHosts != nil || cfg.AllowedCIDRS != nil {
		t.Errorf("access lists should be empty, got %v / %v", cfg.AllowedHosts, cfg.AllowedCIDRS)
	}
}

func TestLoadRedis(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_REDIS_ADDR", "localhost:6379")
	t.Setenv("PORTFOLIO_REDIS_DB", "2")
	t.Setenv("PORTFOLIO_REDIS_POOL_SIZE", "4")
	t.Setenv("PORTFOLIO_REDIS_DIAL_TIMEOUT", "750ms")
	t.Setenv("PORTFOLIO_REDIS_CONNECT_TIMEOUT", "9s")
	t.Setenv("REDIS_POOL_SIZE", "99")
	t.Setenv("PORTFOLIO_ALLOWED_CIDRS", "10.0.0.0/8, 127.0.0.1")

	cfg := Load()

	if !cfg.RedisEnabled() {
		t.Fatal("Redis should be enabled")
	}
	if cfg.RedisDB != 2 {
		t.Errorf("RedisDB = %d, want 2", cfg.RedisDB)
	}
	if cfg.RedisPoolSize != 4 {
		t.Errorf("RedisPoolSize = %d, want 4 (unprefixed REDIS_POOL_SIZE must be ignored)", cfg.RedisPoolSize)
	}
	if cfg.RedisDT != 750*time.Millisecond {
		t.Errorf("RedisDT = %v, want 750ms", cfg.RedisDT)
	}
	if cfg.RedisConnectTimeout != 9*time.Second {
		t.Errorf("RedisConnectTimeout = %v, want 9s", cfg.RedisConnectTimeout)
	}
	if len(cfg.AllowedCIDRS) != 2 {
		t.Errorf("AllowedCIDRS = %v, want 2 entries", cfg.AllowedCIDRS)
	}
}

func TestLoadRedisRequiresDB(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_REDIS_ADDR", "localhost:6379")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should panic without PORTFOLIO_REDIS_DB")
		}
	}()
	Load()
}

func TestLoadRedisRequiresPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_REDIS_ADDR", "localhost:6379")
	t.Setenv("PORTFOLIO_REDIS_DB", "0")
	t.Setenv("PORTFOLIO_REDIS_PASSWORD_REQUIRED", "true")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should panic without PORTFOLIO_REDIS_PASSWORD")
		}
	}()
	Load()
}

func TestRedacted(t *testing.T) {
	cfg := Config{RedisUser: "default", RedisPassword: "secret", RedisAddr: "localhost:6379"}

	redacted := cfg.Redacted()
	if redacted.RedisPassword == "secret" || redacted.RedisUser == "default" {
		t.Errorf("Redacted() leaked credentials: %+v", redacted)
	}
	if redacted.RedisAddr != cfg.RedisAddr {
		t.Errorf("Redacted() changed RedisAddr to %q", redacted.RedisAddr)
	}
	if cfg.RedisPassword != "secret" {
		t.Error("Redacted() modified the original")
	}
}
