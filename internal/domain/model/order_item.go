package model

import "github.com/shopspring/decimal"

// OrderItem is one product line of an order. Price is the unit price at the
// moment the order was placed, so later product price changes never rewrite
// order history.
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"not null;index;uniqueIndex:uq_order_items_order_product" json:"order_id"`
	ProductID int64           `gorm:"not null;index;uniqueIndex:uq_order_items_order_product" json:"product_id"`
	Quantity  int64           `gorm:"not null;default:1;check:order_items_quantity_positive,quantity > 0" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null;check:order_items_price_non_negative,price >= 0" json:"price"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
