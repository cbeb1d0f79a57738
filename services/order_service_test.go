package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nishan023/rms-test-sub000/entity"
	"github.com/nishan023/rms-test-sub000/pkg/apperr"
	"github.com/nishan023/rms-test-sub000/repository"
)

func TestCreateOrderForTable(t *testing.T) {
	db := newTestDB(t)
	stock := &fakeStock{}
	notify := &recordNotifier{}
	svc := newOrderServiceForTest(db, stock, notify)

	seedTable(t, db, "T1")
	tea := seedMenuItem(t, db, "Milk Tea", 60)
	rice := seedMenuItem(t, db, "Fried Rice", 180)

	detail, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode: "T1",
		Items: []OrderItemIn{
			{MenuItemID: tea.ID, Quantity: 2},
			{MenuItemID: rice.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "T1", detail.TableCode)
	assert.Equal(t, entity.OrderPending, detail.Status)
	assert.InDelta(t, 300, detail.TotalAmount, 1e-9)
	assert.Len(t, detail.Items, 2)
	assert.Empty(t, detail.SkippedItems)

	assert.Equal(t, []string{EventOrderNew}, notify.events)
	assert.Len(t, stock.deducted, 2)
}

func TestCreateOrderUnknownTable(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(db, &fakeStock{}, NopNotifier{})
	item := seedMenuItem(t, db, "Milk Tea", 60)

	_, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode: "NOPE",
		Items:     []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestAppendToActiveOrderMergesLines(t *testing.T) {
	db := newTestDB(t)
	notify := &recordNotifier{}
	svc := newOrderServiceForTest(db, &fakeStock{}, notify)

	seedTable(t, db, "T1")
	tea := seedMenuItem(t, db, "Milk Tea", 60)

	first, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode: "T1",
		Items:     []OrderItemIn{{MenuItemID: tea.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	second, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode: "T1",
		Items:     []OrderItemIn{{MenuItemID: tea.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// same order, merged line, no duplicate active order for the table
	assert.Equal(t, first.ID, second.ID)
	require.Len(t, second.Items, 1)
	assert.Equal(t, 3, second.Items[0].Quantity)
	assert.InDelta(t, 180, second.TotalAmount, 1e-9)

	var count int64
	db.Model(&entity.Order{}).Where("status IN ?", entity.ActiveOrderStatuses).Count(&count)
	assert.EqualValues(t, 1, count)

	assert.Equal(t, []string{EventOrderNew, EventOrderUpdated}, notify.events)
}

func TestAppendToServedOrderResetsPending(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(db, &fakeStock{}, NopNotifier{})

	seedTable(t, db, "T2")
	tea := seedMenuItem(t, db, "Milk Tea", 60)

	first, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode: "T2",
		Items:     []OrderItemIn{{MenuItemID: tea.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", first.ID).
		Update("status", entity.OrderServed).Error)

	second, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode: "T2",
		Items:     []OrderItemIn{{MenuItemID: tea.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, entity.OrderPending, second.Status)
}

func TestCreateOrderReportsSkippedItems(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(db, &fakeStock{}, NopNotifier{})

	seedTable(t, db, "T1")
	tea := seedMenuItem(t, db, "Milk Tea", 60)

	detail, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode: "T1",
		Items: []OrderItemIn{
			{MenuItemID: tea.ID, Quantity: 1},
			{MenuItemID: 9999, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []uint{9999}, detail.SkippedItems)
	assert.Len(t, detail.Items, 1)
	assert.InDelta(t, 60, detail.TotalAmount, 1e-9)
}

func TestWalkInOrdersNeverMerge(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(db, &fakeStock{}, NopNotifier{})
	tea := seedMenuItem(t, db, "Milk Tea", 60)

	a, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		CustomerType: entity.TableWalkIn,
		Items:        []OrderItemIn{{MenuItemID: tea.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	b, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		CustomerType: entity.TableWalkIn,
		Items:        []OrderItemIn{{MenuItemID: tea.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.TableCode, b.TableCode)
}

func TestOnlineOrdersShareCanonicalTable(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(db, &fakeStock{}, NopNotifier{})
	tea := seedMenuItem(t, db, "Milk Tea", 60)

	detail, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		CustomerType: entity.TableOnline,
		Items:        []OrderItemIn{{MenuItemID: tea.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OnlineTableCode, detail.TableCode)
}

func TestOrderAttachesKnownCustomerByPhone(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(db, &fakeStock{}, NopNotifier{})

	seedTable(t, db, "T1")
	tea := seedMenuItem(t, db, "Milk Tea", 60)
	cust := entity.Customer{FullName: "Ram", PhoneNumber: "9800000001"}
	require.NoError(t, db.Create(&cust).Error)

	detail, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode:    "T1",
		MobileNumber: "9800000001",
		Items:        []OrderItemIn{{MenuItemID: tea.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	o := reloadOrder(t, db, detail.ID)
	require.NotNil(t, o.CustomerID)
	assert.Equal(t, cust.ID, *o.CustomerID)
}

func TestUpdateItemQuantity(t *testing.T) {
	db := newTestDB(t)
	stock := &fakeStock{}
	svc := newOrderServiceForTest(db, stock, NopNotifier{})

	seedTable(t, db, "T1")
	tea := seedMenuItem(t, db, "Milk Tea", 60)

	detail, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode: "T1",
		Items:     []OrderItemIn{{MenuItemID: tea.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	detail, err = svc.UpdateItemQuantity(detail.ID, tea.ID, ActionIncrement)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.Items[0].Quantity)
	assert.InDelta(t, 120, detail.TotalAmount, 1e-9)

	detail, err = svc.UpdateItemQuantity(detail.ID, tea.ID, ActionDecrement)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Items[0].Quantity)

	// decrement at quantity 1 deletes the line, never keeps it at zero
	detail, err = svc.UpdateItemQuantity(detail.ID, tea.ID, ActionDecrement)
	require.NoError(t, err)
	assert.Empty(t, detail.Items)
	assert.InDelta(t, 0, detail.TotalAmount, 1e-9)

	assert.Len(t, stock.restored, 2)
}

func TestUpdateItemQuantityBadAction(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(db, &fakeStock{}, NopNotifier{})

	_, err := svc.UpdateItemQuantity(1, 1, "double")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestItemMutationRejectedForTerminalStatuses(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(db, &fakeStock{}, NopNotifier{})

	seedTable(t, db, "T1")
	tea := seedMenuItem(t, db, "Milk Tea", 60)

	detail, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode: "T1",
		Items:     []OrderItemIn{{MenuItemID: tea.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	for _, status := range []string{entity.OrderServed, entity.OrderPaid, entity.OrderCancelled} {
		require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", detail.ID).
			Update("status", status).Error)

		_, err := svc.UpdateItemQuantity(detail.ID, tea.ID, ActionIncrement)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidState), "status %s", status)

		_, err = svc.CancelItem(detail.ID, tea.ID)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidState), "status %s", status)

		// order untouched
		o := reloadOrder(t, db, detail.ID)
		assert.InDelta(t, 120, o.TotalAmount, 1e-9)
	}
}

func TestReduceItem(t *testing.T) {
	db := newTestDB(t)
	stock := &fakeStock{}
	svc := newOrderServiceForTest(db, stock, NopNotifier{})

	seedTable(t, db, "T1")
	tea := seedMenuItem(t, db, "Milk Tea", 60)

	detail, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode: "T1",
		Items:     []OrderItemIn{{MenuItemID: tea.ID, Quantity: 5}},
	})
	require.NoError(t, err)

	detail, err = svc.ReduceItem(detail.ID, tea.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, detail.Items[0].Quantity)
	assert.InDelta(t, 180, detail.TotalAmount, 1e-9)

	// reducing by more than remains deletes the line
	detail, err = svc.ReduceItem(detail.ID, tea.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, detail.Items)

	// only what was actually on the order is restored
	total := 0
	for _, it := range stock.restored {
		total += it.Quantity
	}
	assert.Equal(t, 5, total)
}

func TestCancelItemUnknownLine(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(db, &fakeStock{}, NopNotifier{})

	seedTable(t, db, "T1")
	tea := seedMenuItem(t, db, "Milk Tea", 60)

	detail, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode: "T1",
		Items:     []OrderItemIn{{MenuItemID: tea.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.CancelItem(detail.ID, 4242)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCancelOrderRestoresStock(t *testing.T) {
	db := newTestDB(t)
	stock := &fakeStock{}
	svc := newOrderServiceForTest(db, stock, NopNotifier{})

	seedTable(t, db, "T1")
	tea := seedMenuItem(t, db, "Milk Tea", 60)
	rice := seedMenuItem(t, db, "Fried Rice", 180)

	detail, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode: "T1",
		Items: []OrderItemIn{
			{MenuItemID: tea.ID, Quantity: 2},
			{MenuItemID: rice.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	detail, err = svc.CancelOrder(detail.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, detail.Status)
	assert.Len(t, stock.restored, 2)

	_, err = svc.CancelOrder(detail.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
}

func TestUpdateStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(db, &fakeStock{}, NopNotifier{})

	seedTable(t, db, "T1")
	tea := seedMenuItem(t, db, "Milk Tea", 60)

	detail, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode: "T1",
		Items:     []OrderItemIn{{MenuItemID: tea.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// served straight from pending is not a legal hop
	_, err = svc.UpdateStatus(detail.ID, entity.OrderServed)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))

	detail, err = svc.UpdateStatus(detail.ID, entity.OrderPreparing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPreparing, detail.Status)

	detail, err = svc.UpdateStatus(detail.ID, entity.OrderServed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderServed, detail.Status)
}

func TestRecalcTotalIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(db, &fakeStock{}, NopNotifier{})
	repo := repository.NewOrderRepository(db)

	seedTable(t, db, "T1")
	tea := seedMenuItem(t, db, "Milk Tea", 60)

	detail, err := svc.CreateOrAppendOrder(&CreateOrderReq{
		TableCode: "T1",
		Items:     []OrderItemIn{{MenuItemID: tea.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	first, err := repo.RecalcTotal(db, detail.ID)
	require.NoError(t, err)
	second, err := repo.RecalcTotal(db, detail.ID)
	require.NoError(t, err)

	assert.InDelta(t, first, second, 1e-9)
	assert.InDelta(t, 180, second, 1e-9)
}
