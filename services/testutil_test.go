package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nishan023/rms-test-sub000/entity"
	"github.com/nishan023/rms-test-sub000/repository"
)

var testDBSeq int64

// newTestDB opens a fresh in-memory database per test. A named shared-cache
// DSN keeps the schema alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Table{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Payment{},
		&entity.Customer{}, &entity.CreditTransaction{}, &entity.DebtSettlement{},
	))
	return db
}

type fakeStock struct {
	deducted []StockItem
	restored []StockItem
}

func (f *fakeStock) DeductStock(orderID uint, items []StockItem) error {
	f.deducted = append(f.deducted, items...)
	return nil
}

func (f *fakeStock) RestoreStock(orderID uint, items []StockItem) error {
	f.restored = append(f.restored, items...)
	return nil
}

type recordNotifier struct {
	events []string
}

func (n *recordNotifier) Emit(event string, payload any) {
	n.events = append(n.events, event)
}

func newOrderServiceForTest(db *gorm.DB, stock StockAdjuster, notify Notifier) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewTableRepository(db),
		repository.NewMenuRepository(db),
		repository.NewCustomerRepository(db),
		stock,
		notify,
	)
}

func newPaymentServiceForTest(db *gorm.DB, notify Notifier) *PaymentService {
	return NewPaymentService(
		db,
		repository.NewOrderRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewCustomerRepository(db),
		notify,
	)
}

func newCreditServiceForTest(db *gorm.DB, notify Notifier) *CreditService {
	return NewCreditService(
		db,
		repository.NewCustomerRepository(db),
		repository.NewOrderRepository(db),
		notify,
	)
}

func seedTable(t *testing.T, db *gorm.DB, code string) entity.Table {
	t.Helper()
	table := entity.Table{TableCode: code, TableType: entity.TablePhysical, IsActive: true}
	require.NoError(t, db.Create(&table).Error)
	return table
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64) entity.MenuItem {
	t.Helper()
	var cat entity.Category
	require.NoError(t, db.Where(entity.Category{CategoryName: "Test"}).FirstOrCreate(&cat).Error)
	item := entity.MenuItem{Name: name, Price: price, CategoryID: cat.ID, IsAvailable: true}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func reloadOrder(t *testing.T, db *gorm.DB, id uint) entity.Order {
	t.Helper()
	var o entity.Order
	require.NoError(t, db.First(&o, id).Error)
	return o
}

func reloadCustomer(t *testing.T, db *gorm.DB, id uint) entity.Customer {
	t.Helper()
	var c entity.Customer
	require.NoError(t, db.First(&c, id).Error)
	return c
}
