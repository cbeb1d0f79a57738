package entity

import (
	"gorm.io/gorm"
)

const (
	DepartmentKitchen = "KITCHEN"
	DepartmentBar     = "BAR"
)

type MenuItem struct {
	gorm.Model
	Name       string  `gorm:"size:150;not null" json:"name"`
	Price      float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Department string  `gorm:"size:20;not null;default:KITCHEN" json:"department"`

	IsAvailable bool `gorm:"not null;default:true" json:"isAvailable"`
	IsSpecial   bool `gorm:"not null;default:false" json:"isSpecial"`
	IsVeg       bool `gorm:"not null;default:false" json:"isVeg"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only for menu display

	// orders snapshot the price; later edits never touch history
	OrderItems []OrderItem `json:"-"`
}
