package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/nishan023/rms-test-sub000/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderWithTable(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.Preload("Table").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetActiveOrderForTable returns the single order in an active status for the
// table, or gorm.ErrRecordNotFound.
func (r *OrderRepository) GetActiveOrderForTable(tx *gorm.DB, tableID uint) (*entity.Order, error) {
	var o entity.Order
	err := tx.Where("table_id = ? AND status IN ?", tableID, entity.ActiveOrderStatuses).
		Order("id").First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard flips status only when the current status is one of from,
// returning rows affected so callers can detect lost races.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from []string, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status IN ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdateOrder(tx *gorm.DB, orderID uint, updates map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItem(tx *gorm.DB, orderID, menuItemID uint) (*entity.OrderItem, error) {
	var oi entity.OrderItem
	err := tx.Where("order_id = ? AND menu_item_id = ?", orderID, menuItemID).First(&oi).Error
	if err != nil {
		return nil, err
	}
	return &oi, nil
}

func (r *OrderRepository) GetOrderItems(tx *gorm.DB, orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := tx.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *OrderRepository) UpdateItemQuantity(tx *gorm.DB, itemID uint, qty int) error {
	return tx.Model(&entity.OrderItem{}).Where("id = ?", itemID).Update("quantity", qty).Error
}

func (r *OrderRepository) DeleteOrderItem(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&entity.OrderItem{}, itemID).Error
}

// RecalcTotal recomputes total_amount from all current items. Always a full
// sum, never an increment, so it self-heals from any drift.
func (r *OrderRepository) RecalcTotal(tx *gorm.DB, orderID uint) (float64, error) {
	var total float64
	err := tx.Model(&entity.OrderItem{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(price_snapshot * quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	err = tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("total_amount", total).Error
	return total, err
}

// ---------------- Listings ----------------

type OrderSummary struct {
	ID          uint      `json:"id"`
	TableCode   string    `json:"tableCode"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListActiveOrders() ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.DB.Table("orders AS o").
		Select("o.id, t.table_code, o.status, o.total_amount, o.created_at").
		Joins("JOIN tables t ON t.id = o.table_id").
		Where("o.status IN ? AND o.deleted_at IS NULL", entity.ActiveOrderStatuses).
		Order("o.id").
		Scan(&out).Error
	return out, err
}

// ItemLine is an order line joined with its menu item name for display.
type ItemLine struct {
	MenuItemID    uint    `json:"menuItemId"`
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	PriceSnapshot float64 `json:"priceSnapshot"`
}

func (r *OrderRepository) GetItemLines(tx *gorm.DB, orderID uint) ([]ItemLine, error) {
	var rows []ItemLine
	err := tx.Table("order_items AS oi").
		Select("oi.menu_item_id, m.name, oi.quantity, oi.price_snapshot").
		Joins("JOIN menu_items m ON m.id = oi.menu_item_id").
		Where("oi.order_id = ? AND oi.deleted_at IS NULL", orderID).
		Order("oi.id").
		Scan(&rows).Error
	return rows, err
}

// CreditOrdersForCustomer lists the customer's credit-financed orders that
// still carry unsettled credit, oldest first, for FIFO paydown.
func (r *OrderRepository) CreditOrdersForCustomer(tx *gorm.DB, customerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := tx.Where("customer_id = ? AND payment_method = ? AND credit_amount > 0", customerID, entity.PayCredit).
		Order("created_at ASC, id ASC").
		Find(&orders).Error
	return orders, err
}
