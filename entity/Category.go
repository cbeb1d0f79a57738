package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	CategoryName string `gorm:"size:100;uniqueIndex;not null" json:"categoryName"`

	MenuItems []MenuItem `json:"-"`
}
