package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `gorm:"not null" json:"quantity"` // always > 0; rows are deleted at zero

	// price at time of add; menu price edits never touch this
	PriceSnapshot float64 `gorm:"type:decimal(10,2);not null" json:"priceSnapshot"`

	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when item names are needed
}
