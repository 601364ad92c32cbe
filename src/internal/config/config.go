// Package config loads the portal settings from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

// Config carries everything the portal needs at startup.
type Config struct {
	// StoreBackend selects the persistence adapter: BackendSQLite or
	// BackendMongo.
	StoreBackend string

	// SQLitePath is the database file, or ":memory:".
	SQLitePath string

	MongoURI      string
	MongoDatabase string

	// AppID namespaces the mongo collections.
	AppID string

	// AutoNotify enables the absence notification trigger.
	AutoNotify bool

	// SenderContact is the admin WhatsApp number absence messages are sent
	// from. Empty disables notifications regardless of AutoNotify.
	SenderContact string

	// TxMaxRetries bounds transaction retries on write conflicts.
	TxMaxRetries int
}

// Load reads the configuration. A missing .env file is not an error; real
// deployments set the environment directly.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return &Config{
		StoreBackend:  getEnv("PORTAL_STORE_BACKEND", BackendSQLite),
		SQLitePath:    getEnv("PORTAL_SQLITE_PATH", "portal.db"),
		MongoURI:      getEnv("PORTAL_MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("PORTAL_MONGO_DATABASE", "portal"),
		AppID:         getEnv("PORTAL_APP_ID", ""),
		AutoNotify:    getEnvBool("PORTAL_AUTO_NOTIFY", false),
		SenderContact: getEnv("PORTAL_SENDER_CONTACT", ""),
		TxMaxRetries:  getEnvInt("PORTAL_TX_MAX_RETRIES", 3),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("invalid boolean in environment", "key", key, "value", value)
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment", "key", key, "value", value)
		return fallback
	}
	return parsed
}
