package services

// Event names pushed to connected dashboard clients.
const (
	EventOrderNew     = "order:new"
	EventOrderUpdated = "order:updated"
	EventOrderPaid    = "order:paid"
)

// Notifier is the fire-and-forget publish channel for order events. Emit must
// never block and its failures never roll back the calling operation.
type Notifier interface {
	Emit(event string, payload any)
}

// OrderEvent is the payload for order:new / order:updated.
type OrderEvent struct {
	OrderID     uint      `json:"orderId"`
	TableCode   string    `json:"tableCode"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"totalAmount"`
	Items       []ItemOut `json:"items"`
}

// PaidEvent is the payload for order:paid. For ledger payments only
// CustomerID is meaningful.
type PaidEvent struct {
	OrderID    uint    `json:"orderId,omitempty"`
	Method     string  `json:"method"`
	Amount     float64 `json:"amount"`
	CustomerID uint    `json:"customerId,omitempty"`
}

// NopNotifier drops all events. Used in tests and as a default.
type NopNotifier struct{}

func (NopNotifier) Emit(string, any) {}
