package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order lifecycle states, stored as short text.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"
)

// AllOrderStatuses lists every state an order may be in.
var AllOrderStatuses = []OrderStatus{
	OrderStatusNew,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

func (s OrderStatus) Valid() bool {
	for _, known := range AllOrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Delivery methods offered at checkout.
const (
	DeliveryMethodCourier = "courier"
	DeliveryMethodPickup  = "pickup"
)

type Order struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// Human-facing order identifier, distinct from the surrogate key.
	OrderNumber string `gorm:"column:order_number;type:varchar(32);uniqueIndex:ix_orders_order_number;not null" json:"order_number"`

	// Nullable on purpose: deleting the user keeps the order, tg_id goes NULL.
	TgID *int64 `gorm:"column:tg_id;index" json:"tg_id"`

	// Delivery contact, captured at checkout.
	Name    string `gorm:"type:varchar(128);not null" json:"name"`
	Phone   string `gorm:"type:varchar(32);not null" json:"phone"`
	Address string `gorm:"type:text;not null" json:"address"`

	TotalPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0;check:total_price_non_negative,total_price >= 0" json:"total_price"`
	DeliveryMethod string          `gorm:"type:varchar(64)" json:"delivery_method"`
	Status         OrderStatus     `gorm:"type:varchar(10);not null;default:'new'" json:"status"`
	CreatedAt      time.Time       `gorm:"type:timestamptz;not null;default:now();autoCreateTime" json:"created_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
