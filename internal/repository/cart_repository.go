package repository

import (
	"context"

	"telestore/internal/domain/model"
)

type CartRepository interface {
	// GetOrCreateByTgID returns the user's cart, creating it on first use.
	GetOrCreateByTgID(ctx context.Context, tgID int64) (model.Cart, error)
	// FindByTgID loads the cart with items and their products.
	FindByTgID(ctx context.Context, tgID int64) (model.Cart, error)
	FindByID(ctx context.Context, cartID int64) (model.Cart, error)
	// Clear deletes every item but keeps the cart row.
	Clear(ctx context.Context, cartID int64) error
	Delete(ctx context.Context, cartID int64) error
}
