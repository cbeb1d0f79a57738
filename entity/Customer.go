package entity

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	FullName    string  `gorm:"size:150;not null" json:"fullName"`
	PhoneNumber string  `gorm:"size:20;uniqueIndex;not null" json:"phoneNumber"`
	TotalDue    float64 `gorm:"type:decimal(10,2);not null;default:0" json:"totalDue"`

	CreditTransactions []CreditTransaction `json:"-"`
	DebtSettlements    []DebtSettlement    `json:"-"`
	Orders             []Order             `json:"-"`
}
