package config

import (
	"os"

	"go.uber.org/zap"
)

// Config holds all process configuration, read once at startup.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	MPAccessToken   string
	WhatsAppToken   string
	WhatsAppPhoneID string

	JWTSecret    string
	AllowOrigins string
}

// Load reads configuration from environment variables. Missing provider
// credentials are logged as warnings but do not halt startup; the affected
// routes fail per-request instead.
func Load(log *zap.Logger) *Config {
	cfg := &Config{
		Port: getEnv("PORT", "3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		MPAccessToken:   os.Getenv("MP_ACCESS_TOKEN"),
		WhatsAppToken:   os.Getenv("WHATSAPP_TOKEN"),
		WhatsAppPhoneID: os.Getenv("WHATSAPP_PHONE_ID"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
	}

	required := []struct {
		name  string
		value string
	}{
		{"DB_USER", cfg.DBUser},
		{"DB_PASSWORD", cfg.DBPassword},
		{"DB_NAME", cfg.DBName},
		{"MP_ACCESS_TOKEN", cfg.MPAccessToken},
		{"WHATSAPP_TOKEN", cfg.WhatsAppToken},
		{"WHATSAPP_PHONE_ID", cfg.WhatsAppPhoneID},
		{"JWT_SECRET", cfg.JWTSecret},
	}
	for _, v := range required {
		if v.value == "" {
			log.Warn("environment variable not set", zap.String("name", v.name))
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
