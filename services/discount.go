package services

const (
	DiscountFixed   = "FIXED"
	DiscountPercent = "PERCENT"
)

// Discount is an optional reduction applied at settlement time.
type Discount struct {
	Type  string  `json:"type" binding:"omitempty,oneof=FIXED PERCENT"`
	Value float64 `json:"value" binding:"omitempty,min=0"`
}

// CalculateFinalPayable applies an optional discount to an order total. Pure;
// every payment path goes through it. The result is floored at zero.
func CalculateFinalPayable(total float64, d *Discount) (final, discountAmount float64) {
	if d != nil {
		switch d.Type {
		case DiscountFixed:
			discountAmount = d.Value
		case DiscountPercent:
			discountAmount = total * d.Value / 100
		}
	}
	final = total - discountAmount
	if final < 0 {
		final = 0
	}
	return final, discountAmount
}
