package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"telestore/internal/domain/model"
	repo "telestore/internal/repository"
	"telestore/internal/usecase"
)

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "expected HTTPError, got %v", err) {
		assert.Equal(t, want, he.Status)
	}
}

func TestCreateCategory_OK(t *testing.T) {
	categories := &CategoryRepoMock{}
	products := &ProductRepoMock{}
	uc := usecase.NewCatalogUsecase(categories, products, 10, 10)

	categories.
		On("Create", mock.Anything, model.Category{Name: "Tea", Description: "loose leaf"}).
		Return(model.Category{ID: 1, Name: "Tea", Description: "loose leaf"}, nil).
		Once()

	got, err := uc.CreateCategory(context.Background(), usecase.CategoryInput{
		Name:        "  Tea  ",
		Description: "loose leaf",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Tea", got.Name)
	categories.AssertExpectations(t)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	categories := &CategoryRepoMock{}
	uc := usecase.NewCatalogUsecase(categories, &ProductRepoMock{}, 10, 10)

	categories.
		On("Create", mock.Anything, mock.Anything).
		Return(model.Category{}, repo.ErrDuplicate).
		Once()

	_, err := uc.CreateCategory(context.Background(), usecase.CategoryInput{Name: "Tea"})

	assertHTTPStatus(t, err, http.StatusConflict)
	categories.AssertExpectations(t)
}

func TestCreateCategory_RejectsBadName(t *testing.T) {
	categories := &CategoryRepoMock{}
	uc := usecase.NewCatalogUsecase(categories, &ProductRepoMock{}, 10, 10)

	_, err := uc.CreateCategory(context.Background(), usecase.CategoryInput{Name: "   "})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	_, err = uc.CreateCategory(context.Background(), usecase.CategoryInput{Name: strings.Repeat("x", 129)})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCategory_CountsCharactersNotBytes(t *testing.T) {
	categories := &CategoryRepoMock{}
	uc := usecase.NewCatalogUsecase(categories, &ProductRepoMock{}, 10, 10)

	// 100 two-byte runes: over 128 bytes but well under 128 characters.
	name := strings.Repeat("ч", 100)
	categories.
		On("Create", mock.Anything, model.Category{Name: name}).
		Return(model.Category{ID: 2, Name: name}, nil).
		Once()

	got, err := uc.CreateCategory(context.Background(), usecase.CategoryInput{Name: name})

	assert.NoError(t, err)
	assert.Equal(t, name, got.Name)

	_, err = uc.CreateCategory(context.Background(), usecase.CategoryInput{Name: strings.Repeat("ч", 129)})
	assertHTTPStatus(t, err, http.StatusBadRequest)
	categories.AssertExpectations(t)
}

func TestListCategories_Paged(t *testing.T) {
	categories := &CategoryRepoMock{}
	uc := usecase.NewCatalogUsecase(categories, &ProductRepoMock{}, 8, 10)

	categories.
		On("List", mock.Anything, 2, 8).
		Return([]model.Category{{ID: 9, Name: "Tea"}}, int64(9), nil).
		Once()

	out, err := uc.ListCategories(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 8, out.Limit)
	assert.Equal(t, int64(9), out.Total)
	assert.Len(t, out.Items, 1)
	categories.AssertExpectations(t)
}

func TestDeleteCategory_RefusedWhileProductsRemain(t *testing.T) {
	categories := &CategoryRepoMock{}
	uc := usecase.NewCatalogUsecase(categories, &ProductRepoMock{}, 10, 10)

	categories.
		On("Delete", mock.Anything, int64(3)).
		Return(repo.ErrForeignKeyViolation).
		Once()

	err := uc.DeleteCategory(context.Background(), 3)

	assertHTTPStatus(t, err, http.StatusConflict)
	categories.AssertExpectations(t)
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	products := &ProductRepoMock{}
	uc := usecase.NewCatalogUsecase(&CategoryRepoMock{}, products, 10, 10)

	products.
		On("Create", mock.Anything, mock.Anything).
		Return(model.Product{}, repo.ErrForeignKeyViolation).
		Once()

	_, err := uc.CreateProduct(context.Background(), usecase.ProductInput{
		CategoryID: 99,
		Name:       "Sencha",
		Price:      decimal.NewFromInt(10),
		IsActive:   true,
	})

	assertHTTPStatus(t, err, http.StatusBadRequest)
	products.AssertExpectations(t)
}

func TestCreateProduct_RejectsNegativePrice(t *testing.T) {
	products := &ProductRepoMock{}
	uc := usecase.NewCatalogUsecase(&CategoryRepoMock{}, products, 10, 10)

	_, err := uc.CreateProduct(context.Background(), usecase.ProductInput{
		CategoryID: 1,
		Name:       "Sencha",
		Price:      decimal.NewFromInt(-1),
	})

	assertHTTPStatus(t, err, http.StatusBadRequest)
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProduct_CountsNameCharactersNotBytes(t *testing.T) {
	products := &ProductRepoMock{}
	uc := usecase.NewCatalogUsecase(&CategoryRepoMock{}, products, 10, 10)

	// 150 three-byte runes: 450 bytes, 150 characters, within varchar(200).
	name := strings.Repeat("茶", 150)
	products.
		On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
			return p.Name == name
		})).
		Return(model.Product{ID: 3, Name: name}, nil).
		Once()

	got, err := uc.CreateProduct(context.Background(), usecase.ProductInput{
		CategoryID: 1,
		Name:       name,
		Price:      decimal.NewFromInt(10),
		IsActive:   true,
	})

	assert.NoError(t, err)
	assert.Equal(t, name, got.Name)
	products.AssertExpectations(t)
}

func TestListProducts_DefaultsToActiveFirstPage(t *testing.T) {
	products := &ProductRepoMock{}
	uc := usecase.NewCatalogUsecase(&CategoryRepoMock{}, products, 10, 5)

	products.
		On("List", mock.Anything, repo.ProductListQuery{OnlyActive: true, Page: 1, Limit: 5}).
		Return([]model.Product{{ID: 1, Name: "Sencha"}}, int64(1), nil).
		Once()

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{})

	assert.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 5, out.Limit)
	assert.Equal(t, int64(1), out.Total)
	assert.Len(t, out.Items, 1)
	products.AssertExpectations(t)
}

func TestGetProduct_NotFound(t *testing.T) {
	products := &ProductRepoMock{}
	uc := usecase.NewCatalogUsecase(&CategoryRepoMock{}, products, 10, 10)

	products.
		On("FindByID", mock.Anything, int64(7)).
		Return(model.Product{}, repo.ErrNotFound).
		Once()

	_, err := uc.GetProduct(context.Background(), 7)

	assertHTTPStatus(t, err, http.StatusNotFound)
	products.AssertExpectations(t)
}

func TestDeleteProduct_RefusedWhileReferenced(t *testing.T) {
	products := &ProductRepoMock{}
	uc := usecase.NewCatalogUsecase(&CategoryRepoMock{}, products, 10, 10)

	products.
		On("Delete", mock.Anything, int64(4)).
		Return(repo.ErrForeignKeyViolation).
		Once()

	err := uc.DeleteProduct(context.Background(), 4)

	assertHTTPStatus(t, err, http.StatusConflict)
	products.AssertExpectations(t)
}
