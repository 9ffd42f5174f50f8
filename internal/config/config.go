package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort     int
	JWTSecret      []byte
	TokenTTL       time.Duration
	DataDir        string
	AllowedOrigins []string
}

// UsersFile is the path of the users seed file under DataDir.
func (c *Config) UsersFile() string {
	return filepath.Join(c.DataDir, "users.json")
}

// SKUsFile is the path of the SKUs seed file under DataDir.
func (c *Config) SKUsFile() string {
	return filepath.Join(c.DataDir, "skus.json")
}

// NotesFile is reserved for a future notes seed; nothing reads or writes it.
func (c *Config) NotesFile() string {
	return filepath.Join(c.DataDir, "notes.json")
}

// Load loads configuration from a .env file (if present) and environment
// variables, falling back to development defaults.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:     port,
		JWTSecret:      []byte(getEnv("JWT_SECRET", "dev-secret-change-in-production")),
		TokenTTL:       time.Duration(getEnvAsInt("TOKEN_TTL_MINUTES", 30)) * time.Minute,
		DataDir:        getEnv("DATA_DIR", "./data"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
	}, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
