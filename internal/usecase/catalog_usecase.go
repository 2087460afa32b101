package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"telestore/internal/domain/model"
	repo "telestore/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// CatalogUsecase covers category and product management plus the public
// catalog listing.
type CatalogUsecase struct {
	categoryRepo      repo.CategoryRepository
	productRepo       repo.ProductRepository
	categoriesPerPage int
	productsPerPage   int
}

// DI
func NewCatalogUsecase(
	categoryRepo repo.CategoryRepository,
	productRepo repo.ProductRepository,
	categoriesPerPage int,
	productsPerPage int,
) *CatalogUsecase {
	if categoriesPerPage <= 0 {
		categoriesPerPage = 10
	}
	if productsPerPage <= 0 {
		productsPerPage = 10
	}
	return &CatalogUsecase{
		categoryRepo:      categoryRepo,
		productRepo:       productRepo,
		categoriesPerPage: categoriesPerPage,
		productsPerPage:   productsPerPage,
	}
}

type CategoryInput struct {
	Name        string
	Description string
}

type ProductInput struct {
	CategoryID  int64
	Name        string
	Description string
	Price       decimal.Decimal
	PhotoFileID string
	IsActive    bool
}

type ListProductsInput struct {
	CategoryID      *int64
	IncludeInactive bool
	Page            int
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *CatalogUsecase) CreateCategory(ctx context.Context, in CategoryInput) (model.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || utf8.RuneCountInString(name) > 128 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}

	c, err := u.categoryRepo.Create(ctx, model.Category{
		Name:        name,
		Description: in.Description,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return model.Category{}, NewHTTPError(http.StatusConflict, "category name already exists")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

type CategoryListOutput struct {
	Items []model.Category `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

func (u *CatalogUsecase) ListCategories(ctx context.Context, page int) (CategoryListOutput, error) {
	if page <= 0 {
		page = 1
	}

	categories, total, err := u.categoryRepo.List(ctx, page, u.categoriesPerPage)
	if err != nil {
		return CategoryListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CategoryListOutput{
		Items: categories,
		Total: total,
		Page:  page,
		Limit: u.categoriesPerPage,
	}, nil
}

func (u *CatalogUsecase) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	c, err := u.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CatalogUsecase) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || utf8.RuneCountInString(name) > 128 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}

	err := u.categoryRepo.Update(ctx, model.Category{
		ID:          id,
		Name:        name,
		Description: in.Description,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if errors.Is(err, repo.ErrDuplicate) {
		return model.Category{}, NewHTTPError(http.StatusConflict, "category name already exists")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetCategory(ctx, id)
}

// DeleteCategory is refused while products still belong to the category.
func (u *CatalogUsecase) DeleteCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.categoryRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if errors.Is(err, repo.ErrForeignKeyViolation) {
		return NewHTTPError(http.StatusConflict, "category still has products")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CatalogUsecase) CreateProduct(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		CategoryID:  in.CategoryID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		PhotoFileID: in.PhotoFileID,
		IsActive:    in.IsActive,
	})
	if errors.Is(err, repo.ErrForeignKeyViolation) {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid category_id")
	}
	if errors.Is(err, repo.ErrCheckViolation) {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	page := in.Page
	if page <= 0 {
		page = 1
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		CategoryID: in.CategoryID,
		OnlyActive: !in.IncludeInactive,
		Page:       page,
		Limit:      u.productsPerPage,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  page,
		Limit: u.productsPerPage,
	}, nil
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *CatalogUsecase) UpdateProduct(ctx context.Context, id int64, in ProductInput) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:          id,
		CategoryID:  in.CategoryID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		PhotoFileID: in.PhotoFileID,
		IsActive:    in.IsActive,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if errors.Is(err, repo.ErrForeignKeyViolation) {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid category_id")
	}
	if errors.Is(err, repo.ErrCheckViolation) {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetProduct(ctx, id)
}

// DeleteProduct is refused while the product appears in any cart or order,
// so history never loses its reference.
func (u *CatalogUsecase) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.productRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if errors.Is(err, repo.ErrForeignKeyViolation) {
		return NewHTTPError(http.StatusConflict, "product is referenced by carts or orders")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// varchar limits count characters, not bytes.
func validateProductInput(in ProductInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" || utf8.RuneCountInString(name) > 200 {
		return NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if in.CategoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category_id")
	}
	if in.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if utf8.RuneCountInString(in.PhotoFileID) > 255 {
		return NewHTTPError(http.StatusBadRequest, "invalid photo_file_id")
	}
	return nil
}
