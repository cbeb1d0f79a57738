package entity

import (
	"gorm.io/gorm"
)

const (
	TxnCharge  = "CHARGE"  // increases TotalDue
	TxnPayment = "PAYMENT" // decreases TotalDue
)

// CreditTransaction is an immutable ledger entry. It does not store a balance
// snapshot; history balances are reconstructed at read time.
type CreditTransaction struct {
	gorm.Model
	Type        string  `gorm:"size:10;not null" json:"type"`
	Amount      float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description string  `gorm:"size:255" json:"description"`

	CustomerID uint     `gorm:"not null;index" json:"customerId"`
	Customer   Customer `json:"-"`

	OrderID *uint `json:"orderId"`
}
