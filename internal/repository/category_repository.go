package repository

import (
	"context"

	"telestore/internal/domain/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, c model.Category) (model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	// List pages through the categories ordered by name. limit <= 0
	// returns everything.
	List(ctx context.Context, page int, limit int) ([]model.Category, int64, error)
	Update(ctx context.Context, c model.Category) error
	// Delete fails with ErrForeignKeyViolation while products belong to
	// the category.
	Delete(ctx context.Context, id int64) error
}
