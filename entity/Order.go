package entity

import (
	"gorm.io/gorm"
)

// Order statuses. pending/preparing/served are "active"; paid/cancelled are
// terminal and immutable to item mutation.
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderServed    = "served"
	OrderPaid      = "paid"
	OrderCancelled = "cancelled"
)

const (
	PayCash   = "CASH"
	PayOnline = "ONLINE"
	PayMixed  = "MIXED"
	PayCredit = "CREDIT"
)

// ActiveOrderStatuses are the statuses a table may hold at most one order in.
var ActiveOrderStatuses = []string{OrderPending, OrderPreparing, OrderServed}

type Order struct {
	gorm.Model
	Status string `gorm:"size:20;not null;default:pending" json:"status"`

	// TotalAmount is always recomputed from order items, never drifted
	TotalAmount    float64 `gorm:"type:decimal(10,2);not null;default:0" json:"totalAmount"`
	DiscountAmount float64 `gorm:"type:decimal(10,2);not null;default:0" json:"discountAmount"`
	DueAmount      float64 `gorm:"type:decimal(10,2);not null;default:0" json:"dueAmount"`
	CashAmount     float64 `gorm:"type:decimal(10,2);not null;default:0" json:"cashAmount"`
	OnlineAmount   float64 `gorm:"type:decimal(10,2);not null;default:0" json:"onlineAmount"`
	CreditAmount   float64 `gorm:"type:decimal(10,2);not null;default:0" json:"creditAmount"`
	SettledAmount  float64 `gorm:"type:decimal(10,2);not null;default:0" json:"settledAmount"`
	PaymentMethod  string  `gorm:"size:10" json:"paymentMethod"`

	TableID uint  `gorm:"not null" json:"tableId"`
	Table   Table `json:"-"` // preload only when table code is needed

	// nullable so account deletion can keep order history
	CustomerID *uint     `json:"customerId"`
	Customer   *Customer `json:"-"`

	// walk-in/online guests without an account
	CustomerName string `gorm:"size:150" json:"customerName"`
	MobileNumber string `gorm:"size:20" json:"mobileNumber"`

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Payments   []Payment   `json:"-"`
}
