package services

import (
	"github.com/nishan023/rms-test-sub000/entity"
)

// Allocation says how much of one debt payment one order absorbs.
type Allocation struct {
	OrderID uint
	Amount  float64
}

// AllocatePayment spreads a debt payment across credit-financed orders,
// oldest first, until the payment or the orders run out. Pure: persistence of
// the plan is the caller's job. orders must already be sorted oldest-first.
func AllocatePayment(amount float64, orders []entity.Order) []Allocation {
	var out []Allocation
	remaining := amount
	for _, o := range orders {
		if remaining <= 0 {
			break
		}
		apply := o.CreditAmount
		if apply > remaining {
			apply = remaining
		}
		if apply <= 0 {
			continue
		}
		out = append(out, Allocation{OrderID: o.ID, Amount: apply})
		remaining -= apply
	}
	return out
}
