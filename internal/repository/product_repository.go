package repository

import (
	"context"
	"errors"

	"telestore/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update trips a unique
// constraint (category name, cart per user, (cart, product) pair, ...).
var ErrDuplicate = errors.New("duplicate")

// ErrForeignKeyViolation is returned when a write breaks referential
// integrity: inserting a row whose parent does not exist, or deleting a
// row that dependents still point at under RESTRICT (product in a
// cart/order, category with products).
var ErrForeignKeyViolation = errors.New("foreign key constraint violated")

// ErrCheckViolation is returned when a CHECK constraint rejects a write
// (negative price or total, non-positive quantity).
var ErrCheckViolation = errors.New("check constraint violated")

// Catalog listing filters.
type ProductListQuery struct {
	CategoryID *int64
	OnlyActive bool
	Page       int
	Limit      int
}

type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	// Delete fails with ErrForeignKeyViolation while any cart or order
	// line still references the product.
	Delete(ctx context.Context, id int64) error
}
