package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"nutrition-clinic-service/internal/config"
	"nutrition-clinic-service/internal/logger"
)

// Connect opens the gorm handle used by every repository. Schema management
// happens outside the process; no migration runs here.
func Connect(cfg config.Config, log *logger.Logger) (*gorm.DB, error) {
	log.Info("connecting to postgres", "host", cfg.PostgresHost, "database", cfg.PostgresName)

	handle, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	log.Info("postgres connection established")
	return handle, nil
}
