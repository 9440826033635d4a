package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout (ex: 2s)

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ContentFile    string        // path to site.yaml (empty = embedded content)
	StylesheetURL  string        // optional stylesheet linked from every page
	ReloadInterval time.Duration // interval to reload site.yaml (default: 1h)
	GCInterval     time.Duration // interval to run garbage collection (default: 24h)
	GCThreshold    time.Duration // how long a removed page is kept (default: 30 days)

	// Redis (optional, empty RedisAddr disables persistence)
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	// Page rate limiting (RateLimitBurst 0 disables it)
	RateLimitBurst     int // requests allowed in a burst per client IP
	RateLimitPerMinute int // refill rate per client IP

	AllowedHosts []string // optional, restrict /reload to specific Host headers
	AllowedCIDRS []string // optional, restrict operational endpoints to specific IPs (e.g. "1.2.3.4, 10.0.0.0/8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("PORTFOLIO_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("PORTFOLIO_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("PORTFOLIO_REQUEST_TIMEOUT", 2*time.Second),

		// Logging
		LogLevel:  getenv("PORTFOLIO_LOG_LEVEL", "info"),
		PrettyLog: mustBool("PORTFOLIO_PRETTY_LOG", true),

		// Content
		ContentFile:    getenv("PORTFOLIO_CONTENT_FILE", ""),
		StylesheetURL:  getenv("PORTFOLIO_STYLESHEET_URL", ""),
		ReloadInterval: mustDuration("PORTFOLIO_RELOAD_INTERVAL", time.Hour),
		GCInterval:     mustDuration("PORTFOLIO_GC_INTERVAL", 24*time.Hour),
		GCThreshold:    mustDuration("PORTFOLIO_GC_THRESHOLD", 30*24*time.Hour),

		// Redis settings
		RedisAddr:             getenv("PORTFOLIO_REDIS_ADDR", ""),
		RedisUser:             getenv("PORTFOLIO_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("PORTFOLIO_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("PORTFOLIO_REDIS_PASSWORD", ""),
		RedisDT:               mustDuration("PORTFOLIO_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("PORTFOLIO_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("PORTFOLIO_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("PORTFOLIO_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("PORTFOLIO_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("PORTFOLIO_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("PORTFOLIO_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("PORTFOLIO_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("PORTFOLIO_REDIS_WARN_THRESHOLD", 3),

		// Rate limiting
		RateLimitBurst:     getenvInt("PORTFOLIO_RATE_LIMIT_BURST", 60),
		RateLimitPerMinute: getenvInt("PORTFOLIO_RATE_LIMIT_PER_MINUTE", 120),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("PORTFOLIO_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("PORTFOLIO_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("PORTFOLIO_TRUST_PROXY", false),
	}

	if cfg.RedisAddr != "" {
		cfg.RedisDB = requireEnvInt("PORTFOLIO_REDIS_DB")

		// Validate Redis password configuration
		if cfg.RedisPasswordRequired {
			cfg.RedisPassword = requireEnv("PORTFOLIO_REDIS_PASSWORD")
		}
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// Redacted returns a copy of the config safe to print.
func (c Config) Redacted() Config {
	if c.RedisPassword != "" {
		c.RedisPassword = "***REDACTED***"
	}
	if c.RedisUser != "" {
		c.RedisUser = "***REDACTED***"
	}
	return c
}

// RedisEnabled reports whether a Redis address is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func requireEnvInt(key string) int {
	v := requireEnv(key)
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid integer value for %s: %s", key, v))
	}
	return i
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
