package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseDSN string
	Env         string

	// Identifiants admin injectés par l'environnement (pas de constantes en dur).
	AdminUsername string
	AdminPassword string

	Mail MailConfig
}

// MailConfig — paramètres SMTP sortants. NotifyTo vide => notifications coupées.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	UseSSL   bool
	NotifyTo string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by main) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "linge_maison.sqlite3")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "")
	cfg.Mail = MailConfig{
		Host:     getEnv("MAIL_HOST", ""),
		Port:     getEnvInt("MAIL_PORT", 465),
		Username: getEnv("MAIL_USERNAME", ""),
		Password: getEnv("MAIL_PASSWORD", ""),
		UseSSL:   ParseBool("MAIL_USE_SSL", true),
		NotifyTo: getEnv("MAIL_NOTIFY_TO", ""),
	}
	return cfg
}

// MailEnabled reports whether outbound mail is fully configured.
func (c Config) MailEnabled() bool {
	return c.Mail.Host != "" && c.Mail.NotifyTo != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
