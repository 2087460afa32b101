package repository

import (
	"context"

	"telestore/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	// AddQuantity upserts on the (cart, product) pair: an existing line has
	// its quantity increased, otherwise a new line is inserted.
	AddQuantity(ctx context.Context, cartID int64, productID int64, addQty int64) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	// DeleteInactiveProducts drops lines whose product is no longer active
	// and reports how many were removed.
	DeleteInactiveProducts(ctx context.Context, cartID int64) (int64, error)
}
