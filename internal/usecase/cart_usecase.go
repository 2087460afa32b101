package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"telestore/internal/domain/model"
	repo "telestore/internal/repository"
)

// CartUsecase is the cart business logic: one cart per user, quantity
// adding on repeated products, pruning of deactivated products.
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

// DI
func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

type CartItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type CartResponse struct {
	CartID int64              `json:"cart_id"`
	Items  []CartItemResponse `json:"items"`
	Total  decimal.Decimal    `json:"total"`
}

type AddCartItemInput struct {
	ProductID int64
	Quantity  int64
}

// GetCart returns the user's cart, creating an empty one on first use.
// Deactivated products are pruned before the cart is shown.
func (u *CartUsecase) GetCart(ctx context.Context, tgID int64) (CartResponse, error) {
	if tgID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid tg_id")
	}

	cart, err := u.cartRepo.GetOrCreateByTgID(ctx, tgID)
	if errors.Is(err, repo.ErrForeignKeyViolation) {
		// No users row yet: the user never interacted with the store.
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "unknown user")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if _, err := u.cartItemRepo.DeleteInactiveProducts(ctx, cart.ID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// AddItem puts a product into the cart; the same product again adds up
// quantities on the unique (cart, product) line.
func (u *CartUsecase) AddItem(ctx context.Context, tgID int64, in AddCartItemInput) (CartResponse, error) {
	if tgID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid tg_id")
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "product is not available")
	}

	cart, err := u.cartRepo.GetOrCreateByTgID(ctx, tgID)
	if errors.Is(err, repo.ErrForeignKeyViolation) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "unknown user")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if _, err := u.cartItemRepo.AddQuantity(ctx, cart.ID, in.ProductID, in.Quantity); err != nil {
		if errors.Is(err, repo.ErrCheckViolation) {
			return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// UpdateItem replaces the quantity of one cart line.
func (u *CartUsecase) UpdateItem(ctx context.Context, tgID int64, cartItemID int64, qty int64) (CartResponse, error) {
	if qty < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	item, err := u.ownedItem(ctx, tgID, cartItemID)
	if err != nil {
		return CartResponse{}, err
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, qty); err != nil {
		if errors.Is(err, repo.ErrCheckViolation) {
			return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, item.CartID)
}

// RemoveItem deletes one cart line.
func (u *CartUsecase) RemoveItem(ctx context.Context, tgID int64, cartItemID int64) (CartResponse, error) {
	item, err := u.ownedItem(ctx, tgID, cartItemID)
	if err != nil {
		return CartResponse{}, err
	}

	if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, item.CartID)
}

// ClearCart empties the cart but keeps the cart row.
func (u *CartUsecase) ClearCart(ctx context.Context, tgID int64) (CartResponse, error) {
	if tgID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid tg_id")
	}

	cart, err := u.cartRepo.FindByTgID(ctx, tgID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.Clear(ctx, cart.ID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// ownedItem loads a cart line and rejects access unless the line belongs
// to the caller's cart. Foreign lines read as not found.
func (u *CartUsecase) ownedItem(ctx context.Context, tgID int64, cartItemID int64) (model.CartItem, error) {
	if tgID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid tg_id")
	}
	if cartItemID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.CartItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := u.cartRepo.FindByID(ctx, item.CartID)
	if err != nil {
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if cart.TgID != tgID {
		return model.CartItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	return item, nil
}

func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID int64) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := CartResponse{
		CartID: cartID,
		Items:  make([]CartItemResponse, 0, len(items)),
		Total:  decimal.Zero,
	}

	for _, it := range items {
		if it.Product == nil {
			continue
		}
		lineTotal := it.Product.Price.Mul(decimal.NewFromInt(it.Quantity))
		out.Items = append(out.Items, CartItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      it.Product.Name,
			Price:     it.Product.Price,
			Quantity:  it.Quantity,
			LineTotal: lineTotal,
		})
		out.Total = out.Total.Add(lineTotal)
	}

	return out, nil
}
