package model

// User is an external messaging-platform identity, created on first
// interaction. tg_id is the external identifier; id stays internal.
type User struct {
	ID   int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	TgID int64 `gorm:"column:tg_id;uniqueIndex:ix_users_tg_id;not null" json:"tg_id"`

	// The cart dies with the user, historical orders survive with tg_id nulled.
	Cart   *Cart   `gorm:"foreignKey:TgID;references:TgID;constraint:OnDelete:CASCADE" json:"-"`
	Orders []Order `gorm:"foreignKey:TgID;references:TgID;constraint:OnDelete:SET NULL" json:"-"`
}
