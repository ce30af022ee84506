package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every process-wide setting. It is built once in main and
// passed down; nothing mutates it after Load returns.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string

	ChapaSecretKey  string
	ChapaBaseURL    string
	PaymentCurrency string
	DefaultPhone    string

	BrevoAPIKey   string
	SenderEmail   string
	SenderName    string
	CloudinaryURL string

	WorkerCount int
	QueueSize   int
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),

		ChapaSecretKey:  os.Getenv("CHAPA_SECRET_KEY"),
		ChapaBaseURL:    getEnv("CHAPA_BASE_URL", "https://api.chapa.co/v1"),
		PaymentCurrency: getEnv("PAYMENT_CURRENCY", "ETB"),
		DefaultPhone:    getEnv("PAYMENT_DEFAULT_PHONE", "1234567890"),

		BrevoAPIKey:   os.Getenv("BREVO_API_KEY"),
		SenderEmail:   os.Getenv("EMAIL_SENDER"),
		SenderName:    getEnv("EMAIL_SENDER_NAME", "TravelNest Team"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),

		WorkerCount: getEnvInt("NOTIFICATION_WORKERS", 4),
		QueueSize:   getEnvInt("NOTIFICATION_QUEUE_SIZE", 64),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %d", key, v, fallback)
		return fallback
	}
	return n
}
