package db

import (
	"gorm.io/gorm"

	"telestore/internal/domain/model"
)

// Migrate applies the store schema: tables, indexes, CHECK constraints and
// the cascade/restrict/set-null foreign keys. Parents migrate before
// children so the FK constraints can be created in one pass.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	)
}
