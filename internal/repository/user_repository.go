package repository

import (
	"context"
	"errors"

	"telestore/internal/domain/model"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	// GetOrCreateByTgID registers the user on first contact.
	GetOrCreateByTgID(ctx context.Context, tgID int64) (model.User, error)
	FindByTgID(ctx context.Context, tgID int64) (model.User, error)
	List(ctx context.Context, limit int, offset int) ([]model.User, error)
	// Delete removes the user; the cart goes with it, orders stay behind
	// with tg_id set to NULL.
	Delete(ctx context.Context, tgID int64) error
}
