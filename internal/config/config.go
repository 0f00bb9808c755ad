package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	LogFile       string
	AdminSecret   string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	PaymentDelay  time.Duration
}

func Load() Config {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	cfg := Config{
		Port:          getenv("PORT", "8080"),
		DBDSN:         getenv("DB_DSN", "pixlumia.db"), // sqlite file in project root
		LogFile:       getenv("LOG_FILE", "./pixlumia.log"),
		AdminSecret:   getenv("ADMIN_SECRET", "PIXLUMIA2025"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getenv("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiBaseURL: getenv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
	}

	delayMs := 2000
	if v := os.Getenv("PAYMENT_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			delayMs = n
		}
	}
	cfg.PaymentDelay = time.Duration(delayMs) * time.Millisecond

	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s GEMINI_MODEL=%s PAYMENT_DELAY=%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.GeminiModel, cfg.PaymentDelay)
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
