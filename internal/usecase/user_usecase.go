package usecase

import (
	"context"
	"errors"
	"net/http"

	"telestore/internal/domain/model"
	repo "telestore/internal/repository"
)

// UserUsecase registers users on first contact and handles removal with
// the schema's deletion semantics.
type UserUsecase struct {
	userRepo     repo.UserRepository
	usersPerPage int
}

// DI
func NewUserUsecase(userRepo repo.UserRepository, usersPerPage int) *UserUsecase {
	if usersPerPage <= 0 {
		usersPerPage = 10
	}
	return &UserUsecase{userRepo: userRepo, usersPerPage: usersPerPage}
}

// Register is idempotent: a known tg_id returns the existing user.
func (u *UserUsecase) Register(ctx context.Context, tgID int64) (model.User, error) {
	if tgID <= 0 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "invalid tg_id")
	}

	user, err := u.userRepo.GetOrCreateByTgID(ctx, tgID)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}

func (u *UserUsecase) Get(ctx context.Context, tgID int64) (model.User, error) {
	if tgID <= 0 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "invalid tg_id")
	}

	user, err := u.userRepo.FindByTgID(ctx, tgID)
	if errors.Is(err, repo.ErrUserNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}

func (u *UserUsecase) List(ctx context.Context, page int) ([]model.User, error) {
	if page <= 0 {
		page = 1
	}

	users, err := u.userRepo.List(ctx, u.usersPerPage, (page-1)*u.usersPerPage)
	if err != nil {
		return []model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, nil
}

// Delete removes the user. The database cascades the cart away and nulls
// tg_id on historical orders, which stay queryable by order_number.
func (u *UserUsecase) Delete(ctx context.Context, tgID int64) error {
	if tgID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid tg_id")
	}

	err := u.userRepo.Delete(ctx, tgID)
	if errors.Is(err, repo.ErrUserNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
