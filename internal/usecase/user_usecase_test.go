package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"telestore/internal/domain/model"
	repo "telestore/internal/repository"
	"telestore/internal/usecase"
)

func TestRegister_IsIdempotent(t *testing.T) {
	users := &UserRepoMock{}
	uc := usecase.NewUserUsecase(users, 10)

	users.
		On("GetOrCreateByTgID", mock.Anything, int64(42)).
		Return(model.User{ID: 1, TgID: 42}, nil).
		Twice()

	first, err := uc.Register(context.Background(), 42)
	assert.NoError(t, err)

	second, err := uc.Register(context.Background(), 42)
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	users.AssertExpectations(t)
}

func TestRegister_RejectsBadTgID(t *testing.T) {
	users := &UserRepoMock{}
	uc := usecase.NewUserUsecase(users, 10)

	_, err := uc.Register(context.Background(), 0)

	assertHTTPStatus(t, err, http.StatusBadRequest)
	users.AssertNotCalled(t, "GetOrCreateByTgID", mock.Anything, mock.Anything)
}

func TestGetUser_NotFound(t *testing.T) {
	users := &UserRepoMock{}
	uc := usecase.NewUserUsecase(users, 10)

	users.
		On("FindByTgID", mock.Anything, int64(42)).
		Return(model.User{}, repo.ErrUserNotFound).
		Once()

	_, err := uc.Get(context.Background(), 42)

	assertHTTPStatus(t, err, http.StatusNotFound)
	users.AssertExpectations(t)
}

func TestListUsers_PagesWithConfiguredSize(t *testing.T) {
	users := &UserRepoMock{}
	uc := usecase.NewUserUsecase(users, 25)

	users.
		On("List", mock.Anything, 25, 50).
		Return([]model.User{{ID: 1, TgID: 42}}, nil).
		Once()

	got, err := uc.List(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	users.AssertExpectations(t)
}

func TestDeleteUser_NotFound(t *testing.T) {
	users := &UserRepoMock{}
	uc := usecase.NewUserUsecase(users, 10)

	users.
		On("Delete", mock.Anything, int64(42)).
		Return(repo.ErrUserNotFound).
		Once()

	err := uc.Delete(context.Background(), 42)

	assertHTTPStatus(t, err, http.StatusNotFound)
	users.AssertExpectations(t)
}

func TestDeleteUser_OK(t *testing.T) {
	users := &UserRepoMock{}
	uc := usecase.NewUserUsecase(users, 10)

	users.
		On("Delete", mock.Anything, int64(42)).
		Return(nil).
		Once()

	err := uc.Delete(context.Background(), 42)

	assert.NoError(t, err)
	users.AssertExpectations(t)
}
