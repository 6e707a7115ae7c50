package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is the fallback signing key used when JWT_SECRET is not
// set. It must never be relied on outside local development.
const DefaultJWTSecret = "dev-secret-change-me"

type Config struct {
	DatabaseURL    string
	JWTSecret      string
	TokenTTL       time.Duration
	Port           string
	AllowedOrigins []string
	DBMaxConns     int
	Env            string
	RedisAddr      string
	LoginMaxFails  int
	LoginLockout   time.Duration
}

// Load reads configuration from the environment, applying defaults for
// everything except the database URL.
func Load() Config {
	v := viper.New()
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("TOKEN_TTL", "4h")
	v.SetDefault("PORT", "8080")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOGIN_MAX_FAILURES", 5)
	v.SetDefault("LOGIN_LOCKOUT", "15m")
	v.AutomaticEnv()

	cfg := Config{
		DatabaseURL:    v.GetString("DATABASE_URL"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		Port:           v.GetString("PORT"),
		AllowedOrigins: splitOrigins(v.GetString("ALLOWED_ORIGINS")),
		DBMaxConns:     v.GetInt("DB_MAX_CONNS"),
		Env:            v.GetString("APP_ENV"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		LoginMaxFails:  v.GetInt("LOGIN_MAX_FAILURES"),
		LoginLockout:   v.GetDuration("LOGIN_LOCKOUT"),
	}

	if cfg.JWTSecret == DefaultJWTSecret {
		log.Println("⚠️ JWT_SECRET not set; using built-in development secret (unsafe for production)")
	}

	return cfg
}

// IsProduction reports whether error details must be suppressed in responses.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
