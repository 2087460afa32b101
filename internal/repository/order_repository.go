package repository

import (
	"context"

	"telestore/internal/domain/model"
)

type OrderListFilter struct {
	Page   int
	Limit  int
	Status string
	TgID   *int64
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (model.Order, error)
	ListByTgID(ctx context.Context, tgID int64, page int, limit int) ([]model.Order, int64, error)
	// List is the admin view with status/user filtering.
	List(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
	// Delete removes the order together with its items.
	Delete(ctx context.Context, orderID int64) error
}
