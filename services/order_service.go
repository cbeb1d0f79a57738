package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/nishan023/rms-test-sub000/entity"
	"github.com/nishan023/rms-test-sub000/pkg/apperr"
	"github.com/nishan023/rms-test-sub000/repository"
)

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	TableRepo    *repository.TableRepository
	MenuRepo     *repository.MenuRepository
	CustomerRepo *repository.CustomerRepository

	Stock  StockAdjuster
	Notify Notifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	tableRepo *repository.TableRepository,
	menuRepo *repository.MenuRepository,
	customerRepo *repository.CustomerRepository,
	stock StockAdjuster,
	notify Notifier,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, TableRepo: tableRepo, MenuRepo: menuRepo,
		CustomerRepo: customerRepo, Stock: stock, Notify: notify,
	}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	TableCode    string        `json:"tableCode"`
	CustomerType string        `json:"customerType" binding:"omitempty,oneof=PHYSICAL WALK_IN ONLINE"`
	Items        []OrderItemIn `json:"items" binding:"required,min=1"`
	CustomerName string        `json:"customerName"`
	MobileNumber string        `json:"mobileNumber"`
}

type ItemOut struct {
	MenuItemID    uint    `json:"menuItemId"`
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	PriceSnapshot float64 `json:"priceSnapshot"`
}

type OrderDetail struct {
	ID          uint      `json:"id"`
	TableCode   string    `json:"tableCode"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"totalAmount"`
	Items       []ItemOut `json:"items"`

	// menu item IDs that could not be resolved and were not added
	SkippedItems []uint `json:"skippedItems,omitempty"`
}

// ----- Create / Append -----

// CreateOrAppendOrder places items for a table. If the table already has an
// active order the items are appended to it; a second active order for the
// same table is never created.
func (s *OrderService) CreateOrAppendOrder(req *CreateOrderReq) (*OrderDetail, error) {
	table, err := s.resolveTable(req)
	if err != nil {
		return nil, err
	}

	// a known mobile number attaches the order to that credit account
	var customerID *uint
	if req.MobileNumber != "" {
		if cust, err := s.CustomerRepo.FindByPhone(s.DB, req.MobileNumber); err == nil {
			customerID = &cust.ID
		}
	}

	var (
		orderID uint
		isNew   bool
		skipped []uint
		added   []StockItem
	)
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Repo.GetActiveOrderForTable(tx, table.ID)
		switch {
		case err == nil:
			// appending to a served order sends it back to pending so
			// staff re-notice it
			if order.Status == entity.OrderServed {
				if err := s.Repo.UpdateOrder(tx, order.ID, map[string]any{"status": entity.OrderPending}); err != nil {
					return err
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			order = &entity.Order{
				Status:       entity.OrderPending,
				TableID:      table.ID,
				CustomerID:   customerID,
				CustomerName: req.CustomerName,
				MobileNumber: req.MobileNumber,
			}
			if err := s.Repo.CreateOrder(tx, order); err != nil {
				return err
			}
			isNew = true
		default:
			return err
		}
		orderID = order.ID

		for _, in := range req.Items {
			m, err := s.MenuRepo.GetBasics(tx, in.MenuItemID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				skipped = append(skipped, in.MenuItemID)
				continue
			}
			if err != nil {
				return err
			}

			existing, err := s.Repo.GetOrderItem(tx, order.ID, m.ID)
			switch {
			case err == nil:
				if err := s.Repo.UpdateItemQuantity(tx, existing.ID, existing.Quantity+in.Quantity); err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				oi := entity.OrderItem{
					OrderID:       order.ID,
					MenuItemID:    m.ID,
					Quantity:      in.Quantity,
					PriceSnapshot: m.Price,
				}
				if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
					return err
				}
			default:
				return err
			}
			added = append(added, StockItem{MenuItemID: m.ID, Quantity: in.Quantity})
		}

		_, err = s.Repo.RecalcTotal(tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	// best-effort: inventory problems must not fail order placement
	if len(added) > 0 {
		if err := s.Stock.DeductStock(orderID, added); err != nil {
			log.Printf("stock deduct failed for order %d: %v", orderID, err)
		}
	}

	detail, err := s.Detail(orderID)
	if err != nil {
		return nil, err
	}
	detail.SkippedItems = skipped

	event := EventOrderUpdated
	if isNew {
		event = EventOrderNew
	}
	s.emitOrder(event, detail)
	return detail, nil
}

func (s *OrderService) resolveTable(req *CreateOrderReq) (*entity.Table, error) {
	code := strings.TrimSpace(req.TableCode)
	switch req.CustomerType {
	case entity.TableWalkIn:
		if code == "" {
			// unique per call so unrelated walk-ins never merge
			code = newWalkInCode()
		}
		return s.TableRepo.FirstOrCreateByCode(s.DB, code, entity.TableWalkIn)
	case entity.TableOnline:
		if code == "" {
			code = entity.OnlineTableCode
		}
		return s.TableRepo.FirstOrCreateByCode(s.DB, code, entity.TableOnline)
	default:
		if code == "" {
			return nil, apperr.Validation("table code is required")
		}
		t, err := s.TableRepo.GetByCode(s.DB, code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("table not found")
		}
		return t, err
	}
}

func newWalkInCode() string {
	return fmt.Sprintf("WALKIN-%d-%04d", time.Now().UnixNano(), rand.Intn(10000))
}

// ----- Item mutation -----

const (
	ActionIncrement = "increment"
	ActionDecrement = "decrement"
)

// UpdateItemQuantity adjusts one line by ±1. Decrementing a quantity-1 line
// removes it.
func (s *OrderService) UpdateItemQuantity(orderID, menuItemID uint, action string) (*OrderDetail, error) {
	if action != ActionIncrement && action != ActionDecrement {
		return nil, apperr.Validation("action must be increment or decrement")
	}

	var deduct, restore []StockItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.getOrder(tx, orderID)
		if err != nil {
			return err
		}
		if err := guardItemMutation(order); err != nil {
			return err
		}

		item, err := s.getItem(tx, orderID, menuItemID)
		if err != nil {
			return err
		}

		if action == ActionIncrement {
			if err := s.Repo.UpdateItemQuantity(tx, item.ID, item.Quantity+1); err != nil {
				return err
			}
			deduct = append(deduct, StockItem{MenuItemID: menuItemID, Quantity: 1})
		} else {
			if item.Quantity <= 1 {
				if err := s.Repo.DeleteOrderItem(tx, item.ID); err != nil {
					return err
				}
			} else {
				if err := s.Repo.UpdateItemQuantity(tx, item.ID, item.Quantity-1); err != nil {
					return err
				}
			}
			restore = append(restore, StockItem{MenuItemID: menuItemID, Quantity: 1})
		}

		_, err = s.Repo.RecalcTotal(tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.adjustStock(orderID, deduct, restore)
	return s.finishMutation(orderID)
}

// ReduceItem decrements a line by an arbitrary quantity, deleting it when the
// decrement meets or exceeds what is there.
func (s *OrderService) ReduceItem(orderID, menuItemID uint, quantity int) (*OrderDetail, error) {
	if quantity <= 0 {
		return nil, apperr.Validation("quantity must be greater than zero")
	}

	var restore []StockItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.getOrder(tx, orderID)
		if err != nil {
			return err
		}
		if err := guardItemMutation(order); err != nil {
			return err
		}

		item, err := s.getItem(tx, orderID, menuItemID)
		if err != nil {
			return err
		}

		removed := quantity
		if removed >= item.Quantity {
			removed = item.Quantity
			if err := s.Repo.DeleteOrderItem(tx, item.ID); err != nil {
				return err
			}
		} else {
			if err := s.Repo.UpdateItemQuantity(tx, item.ID, item.Quantity-quantity); err != nil {
				return err
			}
		}
		restore = append(restore, StockItem{MenuItemID: menuItemID, Quantity: removed})

		_, err = s.Repo.RecalcTotal(tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.adjustStock(orderID, nil, restore)
	return s.finishMutation(orderID)
}

// CancelItem deletes a line outright.
func (s *OrderService) CancelItem(orderID, menuItemID uint) (*OrderDetail, error) {
	var restore []StockItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.getOrder(tx, orderID)
		if err != nil {
			return err
		}
		if err := guardItemMutation(order); err != nil {
			return err
		}

		item, err := s.getItem(tx, orderID, menuItemID)
		if err != nil {
			return err
		}

		if err := s.Repo.DeleteOrderItem(tx, item.ID); err != nil {
			return err
		}
		restore = append(restore, StockItem{MenuItemID: menuItemID, Quantity: item.Quantity})

		_, err = s.Repo.RecalcTotal(tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.adjustStock(orderID, nil, restore)
	return s.finishMutation(orderID)
}

// ----- Order-level transitions -----

// CancelOrder moves an order to the terminal cancelled state and restores
// stock for everything on it.
func (s *OrderService) CancelOrder(orderID uint) (*OrderDetail, error) {
	var restore []StockItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.getOrder(tx, orderID)
		if err != nil {
			return err
		}
		if order.Status == entity.OrderCancelled {
			return apperr.InvalidState("order is already cancelled")
		}
		if order.Status == entity.OrderPaid {
			return apperr.InvalidState("cannot cancel a paid order")
		}

		items, err := s.Repo.GetOrderItems(tx, orderID)
		if err != nil {
			return err
		}
		for _, it := range items {
			restore = append(restore, StockItem{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
		}

		return s.Repo.UpdateOrder(tx, orderID, map[string]any{"status": entity.OrderCancelled})
	})
	if err != nil {
		return nil, err
	}

	s.adjustStock(orderID, nil, restore)
	return s.finishMutation(orderID)
}

// UpdateStatus drives the staff transitions pending→preparing→served.
func (s *OrderService) UpdateStatus(orderID uint, to string) (*OrderDetail, error) {
	var from []string
	switch to {
	case entity.OrderPreparing:
		from = []string{entity.OrderPending}
	case entity.OrderServed:
		from = []string{entity.OrderPreparing}
	default:
		return nil, apperr.Validation("status must be preparing or served")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.getOrder(tx, orderID); err != nil {
			return err
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.InvalidState("invalid status transition")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.finishMutation(orderID)
}

// ----- Reads -----

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderWithTable(s.DB, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	lines, err := s.Repo.GetItemLines(s.DB, orderID)
	if err != nil {
		return nil, err
	}
	items := make([]ItemOut, 0, len(lines))
	for _, l := range lines {
		items = append(items, ItemOut{
			MenuItemID:    l.MenuItemID,
			Name:          l.Name,
			Quantity:      l.Quantity,
			PriceSnapshot: l.PriceSnapshot,
		})
	}

	return &OrderDetail{
		ID:          o.ID,
		TableCode:   o.Table.TableCode,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		Items:       items,
	}, nil
}

func (s *OrderService) ListActive() ([]repository.OrderSummary, error) {
	return s.Repo.ListActiveOrders()
}

// ----- helpers -----

func (s *OrderService) getOrder(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(tx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order not found")
	}
	return o, err
}

func (s *OrderService) getItem(tx *gorm.DB, orderID, menuItemID uint) (*entity.OrderItem, error) {
	item, err := s.Repo.GetOrderItem(tx, orderID, menuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("item not found in order")
	}
	return item, err
}

// items may only be touched while the order is pending or preparing
func guardItemMutation(o *entity.Order) error {
	switch o.Status {
	case entity.OrderPending, entity.OrderPreparing:
		return nil
	default:
		return apperr.InvalidState("cannot modify items for this order status")
	}
}

func (s *OrderService) adjustStock(orderID uint, deduct, restore []StockItem) {
	if len(deduct) > 0 {
		if err := s.Stock.DeductStock(orderID, deduct); err != nil {
			log.Printf("stock deduct failed for order %d: %v", orderID, err)
		}
	}
	if len(restore) > 0 {
		if err := s.Stock.RestoreStock(orderID, restore); err != nil {
			log.Printf("stock restore failed for order %d: %v", orderID, err)
		}
	}
}

func (s *OrderService) finishMutation(orderID uint) (*OrderDetail, error) {
	detail, err := s.Detail(orderID)
	if err != nil {
		return nil, err
	}
	s.emitOrder(EventOrderUpdated, detail)
	return detail, nil
}

func (s *OrderService) emitOrder(event string, d *OrderDetail) {
	s.Notify.Emit(event, OrderEvent{
		OrderID:     d.ID,
		TableCode:   d.TableCode,
		Status:      d.Status,
		TotalAmount: d.TotalAmount,
		Items:       d.Items,
	})
}
