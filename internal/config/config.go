package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries every runtime setting of the store service.
type Config struct {
	Port string // HTTP port

	// DATABASE_URL wins over the individual POSTGRES_* settings when set.
	DatabaseURL string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string

	JWTSecret string // admin token signing secret

	// tg_ids allowed to call admin endpoints
	Admins []int64

	// page sizes for the listing endpoints
	ItemsPerPage      int
	OrdersPerPage     int
	CategoriesPerPage int
	ProductsPerPage   int

	GoEnv string // dev/prod
}

// Load reads the environment and fails fast on anything missing.
func Load() (Config, error) {
	pgPort, err := mustAtoi("POSTGRES_PORT")
	if err != nil {
		return Config{}, err
	}

	itemsPerPage, err := mustAtoi("ITEMS_PER_PAGE")
	if err != nil {
		return Config{}, err
	}
	ordersPerPage, err := mustAtoi("ORDERS_PER_PAGE")
	if err != nil {
		return Config{}, err
	}
	categoriesPerPage, err := mustAtoi("CATEGORIES_PER_PAGE")
	if err != nil {
		return Config{}, err
	}
	productsPerPage, err := mustAtoi("PRODUCTS_PER_PAGE")
	if err != nil {
		return Config{}, err
	}

	admins, err := parseAdmins(os.Getenv("ADMINS"))
	if err != nil {
		return Config{}, err
	}

	sslMode := os.Getenv("POSTGRES_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  sslMode,

		JWTSecret: os.Getenv("JWT_SECRET"),
		Admins:    admins,

		ItemsPerPage:      itemsPerPage,
		OrdersPerPage:     ordersPerPage,
		CategoriesPerPage: categoriesPerPage,
		ProductsPerPage:   productsPerPage,

		GoEnv: os.Getenv("GO_ENV"),
	}

	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.PostgresUser == "" {
		return Config{}, fmt.Errorf("POSTGRES_USER is required")
	}
	if cfg.PostgresPassword == "" {
		return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
	}
	if cfg.PostgresDB == "" {
		return Config{}, fmt.Errorf("POSTGRES_DB is required")
	}
	if cfg.PostgresHost == "" {
		return Config{}, fmt.Errorf("POSTGRES_HOST is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if len(cfg.Admins) == 0 {
		return Config{}, fmt.Errorf("ADMINS is required")
	}

	return cfg, nil
}

// IsAdmin reports whether the tg_id belongs to a configured administrator.
func (c Config) IsAdmin(tgID int64) bool {
	for _, id := range c.Admins {
		if id == tgID {
			return true
		}
	}
	return false
}

func mustAtoi(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

// ADMINS is a comma separated list of tg_ids.
func parseAdmins(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	admins := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMINS must be comma separated tg_ids: %w", err)
		}
		admins = append(admins, id)
	}
	return admins, nil
}
