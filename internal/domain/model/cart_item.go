package model

// CartItem is one product line in a cart. The (cart_id, product_id) pair is
// unique: adding the same product again bumps quantity instead of inserting.
type CartItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64 `gorm:"not null;index;uniqueIndex:uq_cart_items_cart_product" json:"cart_id"`
	ProductID int64 `gorm:"not null;index;uniqueIndex:uq_cart_items_cart_product" json:"product_id"`
	Quantity  int64 `gorm:"not null;default:1;check:cart_items_quantity_positive,quantity > 0" json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
