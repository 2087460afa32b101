package model

import "github.com/shopspring/decimal"

type Product struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID int64 `gorm:"not null;index" json:"category_id"`

	Name        string `gorm:"type:varchar(200);not null;index:ix_products_name" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Price decimal.Decimal `gorm:"type:numeric(10,2);not null;check:price_non_negative,price >= 0" json:"price"`

	// Telegram file_id of the product photo, if one was uploaded.
	PhotoFileID string `gorm:"column:photo_file_id;type:varchar(255)" json:"photo_file_id"`

	// Inactive products are hidden from the catalog and cannot be purchased.
	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	// RESTRICT on both: a product referenced by any cart or order line
	// cannot be deleted, so history never points at a missing row.
	CartItems  []CartItem  `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
	OrderItems []OrderItem `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
}
