package entity

import (
	"gorm.io/gorm"
)

// Payment is an immutable audit record of one settlement action on an order.
type Payment struct {
	gorm.Model
	Method       string  `gorm:"size:10;not null" json:"method"`
	CashAmount   float64 `gorm:"type:decimal(10,2);not null;default:0" json:"cashAmount"`
	OnlineAmount float64 `gorm:"type:decimal(10,2);not null;default:0" json:"onlineAmount"`

	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`
}
