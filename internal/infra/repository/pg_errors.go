package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	repo "telestore/internal/repository"
)

// SQLSTATE classes this schema can raise on writes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translateError maps driver failures onto the repository sentinels so no
// caller above this package ever inspects a *pgconn.PgError itself. The
// violated constraint name is kept in the message for logs.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w (%s)", repo.ErrDuplicate, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w (%s)", repo.ErrForeignKeyViolation, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%w (%s)", repo.ErrCheckViolation, pgErr.ConstraintName)
		}
	}

	return err
}
