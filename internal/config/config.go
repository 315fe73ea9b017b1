package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Database
	DatabaseURL string

	// IdP
	IdPAPIKey  string
	IdPBaseURL string
	IdPTimeout time.Duration

	// 生成AI
	AIAPIKey     string
	AIBaseURL    string
	AIChatModel  string
	AIImageModel string
	AITimeout    time.Duration

	// Session
	SessionMaxAge int

	// Rate Limit
	RateLimitGeneral int
	RateLimitAuth    int

	// Billing
	PaymentDelay       time.Duration
	PaymentDeclineRate float64

	// Server
	ServerPort string
	BaseURL    string

	// Cookie
	CookieSecure bool
	CookieDomain string

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
// 必須環境変数が未設定の場合はエラーを返す。
func Load() (*Config, error) {
	cfg := &Config{}

	// Required fields
	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.IdPAPIKey = os.Getenv("IDP_API_KEY")
	if cfg.IdPAPIKey == "" {
		missing = append(missing, "IDP_API_KEY")
	}

	cfg.AIAPIKey = os.Getenv("AI_API_KEY")
	if cfg.AIAPIKey == "" {
		missing = append(missing, "AI_API_KEY")
	}

	cfg.BaseURL = os.Getenv("BASE_URL")
	if cfg.BaseURL == "" {
		missing = append(missing, "BASE_URL")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	// Optional fields with defaults
	cfg.IdPBaseURL = getEnvString("IDP_BASE_URL", "")
	cfg.IdPTimeout = getEnvDuration("IDP_TIMEOUT", 10*time.Second)
	cfg.AIBaseURL = getEnvString("AI_BASE_URL", "")
	cfg.AIChatModel = getEnvString("AI_CHAT_MODEL", "gemini-2.5-flash")
	cfg.AIImageModel = getEnvString("AI_IMAGE_MODEL", "gemini-2.5-flash-image")
	cfg.AITimeout = getEnvDuration("AI_TIMEOUT", 60*time.Second)
	cfg.SessionMaxAge = getEnvInt("SESSION_MAX_AGE", 86400*30)
	cfg.RateLimitGeneral = getEnvInt("RATE_LIMIT_GENERAL", 120)
	cfg.RateLimitAuth = getEnvInt("RATE_LIMIT_AUTH", 10)
	cfg.PaymentDelay = getEnvDuration("PAYMENT_DELAY", 2500*time.Millisecond)
	cfg.PaymentDeclineRate = getEnvFloat("PAYMENT_DECLINE_RATE", 0)
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.CookieSecure = strings.HasPrefix(cfg.BaseURL, "https://")
	cfg.CookieDomain = getEnvString("COOKIE_DOMAIN", "")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
