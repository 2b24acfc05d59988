package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Port returns the HTTP listen port.
func Port() string {
	return GetEnv("PORT", "8080")
}

// DatabasePath returns the SQLite database file location.
func DatabasePath() string {
	return GetEnv("DATABASE_PATH", "data/catalog.db")
}
