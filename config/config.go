package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type (
	APP struct {
		Name string
		Host string
		Port string
		Env  string
	}
	Storage struct {
		BaseURL        string
		RequestTimeout time.Duration
		MaxUploadBytes int64
	}
	Session struct {
		FilePath string
	}
	CORS struct {
		AllowOrigins []string
	}

	Config struct {
		App     APP
		Storage Storage
		Session Session
		CORS    CORS
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func Load() Config {
	app := APP{
		Name: getEnv("SERVICE_NAME", "storage-dashboard"),
		Host: getEnv("SERVICE_HOST", ""),
		Port: getEnv("SERVICE_PORT", "8090"),
		Env:  getEnv("SERVICE_ENV", ""),
	}
	storage := Storage{
		BaseURL:        getEnv("STORAGE_API_BASE_URL", ""),
		RequestTimeout: getEnvDuration("STORAGE_API_TIMEOUT", 30*time.Second),
		MaxUploadBytes: int64(10 << 20),
	}
	session := Session{
		FilePath: getEnv("SESSION_FILE_PATH", ""),
	}
	cors := CORS{
		AllowOrigins: splitOrigins(getEnv("CORS_ALLOW_ORIGINS", "")),
	}

	return Config{
		App:     app,
		Storage: storage,
		Session: session,
		CORS:    cors,
	}
}

func splitOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// StorageAPIURL validates the remote storage backend address.
func (c Config) StorageAPIURL() (string, error) {
	if c.Storage.BaseURL == "" {
		return "", fmt.Errorf("incomplete storage config: STORAGE_API_BASE_URL is required")
	}
	return strings.TrimRight(c.Storage.BaseURL, "/"), nil
}

// SessionPath falls back to a dotfile in the user home directory when
// SESSION_FILE_PATH is not set.
func (c Config) SessionPath() (string, error) {
	if c.Session.FilePath != "" {
		return c.Session.FilePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve session file path: %w", err)
	}
	return filepath.Join(home, ".storage-dashboard-session.json"), nil
}
