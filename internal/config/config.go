package config

import "os"

type Config struct {
	// Server
	Port        string
	Environment string

	// Storage
	UploadDir string
	StaticDir string

	// Database (optional; orders stay in memory when unset)
	DatabaseURL string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "5000"),
		Environment: getEnv("ENVIRONMENT", "development"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		StaticDir: getEnv("STATIC_DIR", "client/build"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
