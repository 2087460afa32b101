package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	repo "telestore/internal/repository"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound), repo.ErrNotFound)

	dup := translateError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_categories_name"})
	assert.ErrorIs(t, dup, repo.ErrDuplicate)
	assert.Contains(t, dup.Error(), "uq_categories_name")

	fk := translateError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_categories_products"})
	assert.ErrorIs(t, fk, repo.ErrForeignKeyViolation)

	chk := translateError(&pgconn.PgError{Code: "23514", ConstraintName: "price_non_negative"})
	assert.ErrorIs(t, chk, repo.ErrCheckViolation)

	other := errors.New("connection refused")
	assert.Equal(t, other, translateError(other))
}

func TestTranslateError_Wrapped(t *testing.T) {
	// gorm wraps driver errors before they reach the repositories.
	wrapped := errorWrap{inner: &pgconn.PgError{Code: "23505", ConstraintName: "ix_orders_order_number"}}

	err := translateError(wrapped)
	assert.ErrorIs(t, err, repo.ErrDuplicate)
}

type errorWrap struct{ inner error }

func (w errorWrap) Error() string { return "wrapped: " + w.inner.Error() }
func (w errorWrap) Unwrap() error { return w.inner }
