// Package config centralises all environment configuration for the server
// and the luisctl CLI. Business‑logic layers receive already‑built values
// via dependency‑injection and never import this package.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime option the server needs.
// Keep it flat and simple—prefer primitive types over embedding structs.
type Config struct {
	// Network
	Port           string
	ProxyHeader    string
	TrustedProxies []string
	AllowedOrigins []string

	// Timetable
	TimetablePath string
	Timezone      string

	// Completion provider
	CompletionBackend string
	GeminiAPIKey      string
	Model             string
	ProjectID         string
	Location          string
	CredentialsFile   string

	// Rate guard
	RateLimitMax    int
	RateLimitWindow time.Duration

	// Optional data stores
	RedisURL string
	MongoURI string
	DBName   string

	// Server tuning
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load parses the environment (and an optional .env file) into Config.
// Nothing is mandatory: a missing API key only makes completions fail.
func Load() Config {
	// godotenv.Load() is a no‑op if .env doesn't exist—safe in production.
	_ = godotenv.Load()

	return Config{
		Port:              getEnv("PORT", "3000"),
		ProxyHeader:       os.Getenv("PROXY_HEADER"),
		TrustedProxies:    getList("TRUSTED_PROXIES"),
		AllowedOrigins:    getList("ALLOWED_ORIGINS"),
		TimetablePath:     getEnv("TIMETABLE_PATH", "schedule.json"),
		Timezone:          os.Getenv("TIMEZONE"),
		CompletionBackend: strings.ToLower(getEnv("COMPLETION_BACKEND", "gemini")),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		Model:             getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		ProjectID:         os.Getenv("GCP_PROJECT_ID"),
		Location:          getEnv("GCP_LOCATION", "us-central1"),
		CredentialsFile:   os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		RateLimitMax:      getLimit("RATE_LIMIT_MAX", 100),
		RateLimitWindow:   getMinutes("RATE_LIMIT_WINDOW_MIN", 15),
		RedisURL:          os.Getenv("REDIS_URL"),
		MongoURI:          os.Getenv("MONGODB_URI"),
		DBName:            getEnv("MONGODB_DB", "luis"),
		ReadTimeout:       getDuration("READ_TIMEOUT_SEC", 5),
		WriteTimeout:      getDuration("WRITE_TIMEOUT_SEC", 30),
	}
}

// TimeLocation resolves Timezone, falling back to the host's local zone.
func (c Config) TimeLocation() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("invalid TIMEZONE=%q; using local time", c.Timezone)
		return time.Local
	}
	return loc
}

// Clock returns a time source in the configured zone.
func (c Config) Clock() func() time.Time {
	loc := c.TimeLocation()
	return func() time.Time { return time.Now().In(loc) }
}

// getEnv returns env[key] if set, otherwise defaultVal.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getInt reads a positive integer from env, falling back to defaultVal.
func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("invalid %s=%q; using default %d", key, v, defaultVal)
	}
	return defaultVal
}

// getLimit is getInt that also accepts 0, which switches the limit off.
func getLimit(key string, defaultVal int) int {
	if v := os.Getenv(key); v == "0" {
		return 0
	}
	return getInt(key, defaultVal)
}

// getDuration reads an integer (seconds) from env, falling back to defaultSec.
func getDuration(key string, defaultSec int) time.Duration {
	return time.Duration(getInt(key, defaultSec)) * time.Second
}

func getMinutes(key string, defaultMin int) time.Duration {
	return time.Duration(getInt(key, defaultMin)) * time.Minute
}

// getList splits a comma separated env var, dropping empty items.
func getList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
