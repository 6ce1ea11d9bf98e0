package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL string
	Timeout time.Duration

	CSRFCookieName string
	CSRFHeaderName string
	CSRFFormField  string
	CSRFPageURL    string

	SessionID string
	CSRFToken string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	StatePrefix   string

	DownloadDir string
}

var AppConfig *Config

// Load reads .env when present, then the process environment.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	AppConfig = FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		BaseURL: getEnv("OJ_BASE_URL", "http://localhost:8000/api"),
		Timeout: time.Duration(getEnvAsInt("OJ_TIMEOUT_SECONDS", 30)) * time.Second,

		CSRFCookieName: getEnv("OJ_CSRF_COOKIE_NAME", "csrftoken"),
		CSRFHeaderName: getEnv("OJ_CSRF_HEADER_NAME", "X-CSRFToken"),
		CSRFFormField:  getEnv("OJ_CSRF_FORM_FIELD", "csrfmiddlewaretoken"),
		CSRFPageURL:    getEnv("OJ_CSRF_PAGE_URL", ""),

		SessionID: getEnv("OJ_SESSION_ID", ""),
		CSRFToken: getEnv("OJ_CSRF_TOKEN", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		StatePrefix:   getEnv("OJ_STATE_PREFIX", "oj"),

		DownloadDir: getEnv("OJ_DOWNLOAD_DIR", "."),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil && value > 0 {
		return value
	}
	return fallback
}
