package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// RabbitURL is optional; when empty the registration.created
	// publisher is disabled.
	RabbitURL string

	ResendAPIKey string
	MailFrom     string

	JWTSecret string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "golfday"),
		RabbitURL:    os.Getenv("RABBITMQ_URL"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		MailFrom:     getEnv("MAIL_FROM", "St John's Golf Day <onboarding@resend.dev>"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
