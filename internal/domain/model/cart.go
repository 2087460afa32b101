package model

import "time"

// Cart is the single open cart of a user, keyed by tg_id (one per user).
type Cart struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TgID      int64     `gorm:"column:tg_id;uniqueIndex:uq_carts_tg_id;not null" json:"tg_id"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime" json:"created_at"`

	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
