package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"telestore/internal/config"
)

// Connect opens the Postgres connection described by the loaded config.
func Connect(cfg config.Config) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.PostgresHost, cfg.PostgresPort,
			cfg.PostgresUser, cfg.PostgresPassword,
			cfg.PostgresDB, cfg.PostgresSSLMode,
		)
	}

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
