package model

type Category struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(128);uniqueIndex:uq_categories_name;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// RESTRICT: a category cannot be removed while products reference it.
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"-"`
}
