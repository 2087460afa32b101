package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"telestore/internal/domain/model"
	repo "telestore/internal/repository"
)

// OrderNumberGenerator produces the short human-facing order identifier.
type OrderNumberGenerator interface {
	Generate() (string, error)
}

// OrderUsecase turns carts into orders and manages the order lifecycle.
type OrderUsecase struct {
	tx            repo.TransactionManager
	numbers       OrderNumberGenerator
	ordersPerPage int
}

// DI
func NewOrderUsecase(tx repo.TransactionManager, numbers OrderNumberGenerator, ordersPerPage int) *OrderUsecase {
	if ordersPerPage <= 0 {
		ordersPerPage = 10
	}
	return &OrderUsecase{tx: tx, numbers: numbers, ordersPerPage: ordersPerPage}
}

type CheckoutInput struct {
	TgID           int64
	Name           string
	Phone          string
	Address        string
	DeliveryMethod string
}

type OrderItemOutput struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

type OrderOutput struct {
	ID             int64             `json:"id"`
	OrderNumber    string            `json:"order_number"`
	TgID           *int64            `json:"tg_id"`
	Name           string            `json:"name"`
	Phone          string            `json:"phone"`
	Address        string            `json:"address"`
	TotalPrice     decimal.Decimal   `json:"total_price"`
	DeliveryMethod string            `json:"delivery_method"`
	Status         string            `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	Items          []OrderItemOutput `json:"items"`
}

type OrderListOutput struct {
	Items []OrderOutput `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type ListOrdersInput struct {
	Page   int
	Status string
	TgID   *int64
}

// checkout retries when two carts draw the same random order number.
const maxOrderNumberAttempts = 3

// Checkout places an order from the user's cart: deactivated products are
// pruned, unit prices are snapshotted into the order items, the total is
// computed, and the cart is emptied. Everything runs in one transaction.
func (u *OrderUsecase) Checkout(ctx context.Context, in CheckoutInput) (OrderOutput, error) {
	if in.TgID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid tg_id")
	}
	// varchar limits count characters, not bytes.
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	address := strings.TrimSpace(in.Address)
	if name == "" || utf8.RuneCountInString(name) > 128 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if phone == "" || utf8.RuneCountInString(phone) > 32 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid phone")
	}
	if address == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid address")
	}
	if utf8.RuneCountInString(in.DeliveryMethod) > 64 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid delivery_method")
	}

	var out OrderOutput
	var lastErr error

	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		orderNumber, err := u.numbers.Generate()
		if err != nil {
			return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "order number generation failed")
		}

		lastErr = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
			cart, err := r.Carts().FindByTgID(ctx, in.TgID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusBadRequest, "cart is empty")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			// Drop products deactivated since they were added.
			if _, err := r.CartItems().DeleteInactiveProducts(ctx, cart.ID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if len(cartItems) == 0 {
				return NewHTTPError(http.StatusBadRequest, "cart is empty")
			}

			orderItems := make([]model.OrderItem, 0, len(cartItems))
			total := decimal.Zero

			for _, ci := range cartItems {
				p := ci.Product
				if p == nil {
					loaded, err := r.Products().FindByID(ctx, ci.ProductID)
					if err != nil {
						return NewHTTPError(http.StatusInternalServerError, "db error")
					}
					p = &loaded
				}

				// Unit price snapshot: later price changes must not
				// rewrite this order.
				orderItems = append(orderItems, model.OrderItem{
					ProductID: ci.ProductID,
					Quantity:  ci.Quantity,
					Price:     p.Price,
				})
				total = total.Add(p.Price.Mul(decimal.NewFromInt(ci.Quantity)))
			}

			tgID := in.TgID
			order, err := r.Orders().Create(ctx, model.Order{
				OrderNumber:    orderNumber,
				TgID:           &tgID,
				Name:           name,
				Phone:          phone,
				Address:        address,
				TotalPrice:     total,
				DeliveryMethod: in.DeliveryMethod,
				Status:         model.OrderStatusNew,
			})
			if err != nil {
				// Order number collision: abort and retry with a new one.
				if errors.Is(err, repo.ErrDuplicate) {
					return err
				}
				if errors.Is(err, repo.ErrForeignKeyViolation) {
					return NewHTTPError(http.StatusNotFound, "unknown user")
				}
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			if err := r.OrderItems().CreateBulk(ctx, order.ID, orderItems); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			if err := r.Carts().Clear(ctx, cart.ID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			order.Items = orderItems
			out = toOrderOutput(order)
			return nil
		})

		if lastErr == nil {
			return out, nil
		}
		if !errors.Is(lastErr, repo.ErrDuplicate) {
			return OrderOutput{}, lastErr
		}
	}

	return OrderOutput{}, NewHTTPError(http.StatusConflict, "could not allocate order number")
}

// GetOrder returns one order by id.
func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = toOrderOutput(o)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// GetOrderByNumber resolves the human-facing identifier.
func (u *OrderUsecase) GetOrderByNumber(ctx context.Context, orderNumber string) (OrderOutput, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" || utf8.RuneCountInString(orderNumber) > 32 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order_number")
	}

	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByOrderNumber(ctx, orderNumber)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = toOrderOutput(o)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// ListUserOrders pages through one user's order history, newest first.
func (u *OrderUsecase) ListUserOrders(ctx context.Context, tgID int64, page int) (OrderListOutput, error) {
	if tgID <= 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid tg_id")
	}
	if page <= 0 {
		page = 1
	}

	var out OrderListOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().ListByTgID(ctx, tgID, page, u.ordersPerPage)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderListOutput{
			Items: make([]OrderOutput, 0, len(orders)),
			Total: total,
			Page:  page,
			Limit: u.ordersPerPage,
		}
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			o.Items = items
			out.Items = append(out.Items, toOrderOutput(o))
		}
		return nil
	})
	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

// ListOrders is the admin listing with optional status and user filters.
func (u *OrderUsecase) ListOrders(ctx context.Context, in ListOrdersInput) (OrderListOutput, error) {
	if in.Status != "" && !model.OrderStatus(in.Status).Valid() {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	page := in.Page
	if page <= 0 {
		page = 1
	}

	var out OrderListOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().List(ctx, repo.OrderListFilter{
			Page:   page,
			Limit:  u.ordersPerPage,
			Status: in.Status,
			TgID:   in.TgID,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderListOutput{
			Items: make([]OrderOutput, 0, len(orders)),
			Total: total,
			Page:  page,
			Limit: u.ordersPerPage,
		}
		for _, o := range orders {
			out.Items = append(out.Items, toOrderOutput(o))
		}
		return nil
	})
	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

// UpdateStatus moves an order to another lifecycle state.
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	next := model.OrderStatus(status)
	if !next.Valid() {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().UpdateStatus(ctx, orderID, next); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = toOrderOutput(o)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// CountsByStatus reports how many orders sit in each lifecycle state.
func (u *OrderUsecase) CountsByStatus(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(model.AllOrderStatuses))

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		for _, status := range model.AllOrderStatuses {
			n, err := r.Orders().CountByStatus(ctx, status)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			counts[string(status)] = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// DeleteOrder removes an order and its items.
func (u *OrderUsecase) DeleteOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		err := r.Orders().Delete(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

func toOrderOutput(o model.Order) OrderOutput {
	items := make([]OrderItemOutput, 0, len(o.Items))
	for _, it := range o.Items {
		name := ""
		if it.Product != nil {
			name = it.Product.Name
		}
		items = append(items, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		TgID:           o.TgID,
		Name:           o.Name,
		Phone:          o.Phone,
		Address:        o.Address,
		TotalPrice:     o.TotalPrice,
		DeliveryMethod: o.DeliveryMethod,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt,
		Items:          items,
	}
}
