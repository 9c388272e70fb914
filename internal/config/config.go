package config

import (
	"fmt"
	"os"
	"strconv"

	"nutrition-clinic-service/internal/logger"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port    string
	LogMode string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresName     string

	// DedupeCertifications switches AddCertification from append-only to a
	// membership-checked insert.
	DedupeCertifications bool
}

// Load reads the configuration from the environment, falling back to
// development defaults.
func Load(log *logger.Logger) Config {
	return Config{
		Port:                 getEnv("PORT", "8080", log),
		LogMode:              getEnv("LOG_MODE", "dev", log),
		PostgresHost:         getEnv("POSTGRES_HOST", "localhost", log),
		PostgresPort:         getEnv("POSTGRES_PORT", "5432", log),
		PostgresUser:         getEnv("POSTGRES_USER", "postgres", log),
		PostgresPassword:     getEnv("POSTGRES_PASSWORD", "", log),
		PostgresName:         getEnv("POSTGRES_NAME", "nutrition_clinic", log),
		DedupeCertifications: getEnvAsBool("DEDUPE_CERTIFICATIONS", false, log),
	}
}

// PostgresDSN assembles the connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresName)
}

func getEnv(key, fallback string, log *logger.Logger) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	log.Debug("environment variable not set, using default", "key", key, "default", fallback)
	return fallback
}

func getEnvAsBool(key string, fallback bool, log *logger.Logger) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Warn("environment variable is not a valid bool, using default",
			"key", key, "value", raw, "default", fallback)
		return fallback
	}
	return value
}
