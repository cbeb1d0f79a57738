package entity

import (
	"gorm.io/gorm"
)

const (
	TablePhysical = "PHYSICAL"
	TableWalkIn   = "WALK_IN"
	TableOnline   = "ONLINE"
)

// OnlineTableCode is the canonical virtual table shared by all online orders.
// Walk-ins get a fresh synthesized code per session instead.
const OnlineTableCode = "ONLINE"

type Table struct {
	gorm.Model
	TableCode string `gorm:"size:64;uniqueIndex;not null" json:"tableCode"`
	TableType string `gorm:"size:20;not null;default:PHYSICAL" json:"tableType"`
	IsActive  bool   `gorm:"not null;default:true" json:"isActive"`
	QRToken   string `gorm:"size:128" json:"-"`

	// tables outlive orders; never deleted while orders reference them
	Orders []Order `json:"-"`
}
