package services

import "log"

type StockItem struct {
	MenuItemID uint
	Quantity   int
}

// StockAdjuster is the inventory collaborator. Calls are best-effort: the
// order services log and swallow its errors, order-taking never fails on
// inventory bookkeeping.
type StockAdjuster interface {
	DeductStock(orderID uint, items []StockItem) error
	RestoreStock(orderID uint, items []StockItem) error
}

// LogStockAdjuster stands in when no inventory backend is wired.
type LogStockAdjuster struct{}

func (LogStockAdjuster) DeductStock(orderID uint, items []StockItem) error {
	log.Printf("stock: deduct order=%d items=%d", orderID, len(items))
	return nil
}

func (LogStockAdjuster) RestoreStock(orderID uint, items []StockItem) error {
	log.Printf("stock: restore order=%d items=%d", orderID, len(items))
	return nil
}
