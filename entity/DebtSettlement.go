package entity

import (
	"gorm.io/gorm"
)

// DebtSettlement records how much of one debt payment was applied to one
// credit-financed order, so the UI can show "this payment covered order #X".
type DebtSettlement struct {
	gorm.Model
	Method      string  `gorm:"size:10;not null" json:"method"`
	Amount      float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description string  `gorm:"size:255" json:"description"`

	CustomerID uint     `gorm:"not null;index" json:"customerId"`
	Customer   Customer `json:"-"`

	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `json:"-"`
}
