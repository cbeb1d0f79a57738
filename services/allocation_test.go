package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nishan023/rms-test-sub000/entity"
)

func creditOrder(id uint, amount float64) entity.Order {
	o := entity.Order{CreditAmount: amount}
	o.ID = id
	return o
}

func TestAllocatePaymentFIFO(t *testing.T) {
	orders := []entity.Order{creditOrder(1, 50), creditOrder(2, 30)}

	got := AllocatePayment(60, orders)

	assert.Equal(t, []Allocation{
		{OrderID: 1, Amount: 50},
		{OrderID: 2, Amount: 10},
	}, got)
}

func TestAllocatePaymentExhaustsOrders(t *testing.T) {
	orders := []entity.Order{creditOrder(1, 20), creditOrder(2, 10)}

	got := AllocatePayment(100, orders)

	assert.Equal(t, []Allocation{
		{OrderID: 1, Amount: 20},
		{OrderID: 2, Amount: 10},
	}, got)
}

func TestAllocatePaymentSmallerThanOldest(t *testing.T) {
	orders := []entity.Order{creditOrder(1, 50), creditOrder(2, 30)}

	got := AllocatePayment(15, orders)

	assert.Equal(t, []Allocation{{OrderID: 1, Amount: 15}}, got)
}

func TestAllocatePaymentNoOrders(t *testing.T) {
	assert.Empty(t, AllocatePayment(40, nil))
}

func TestAllocatePaymentSkipsZeroCredit(t *testing.T) {
	orders := []entity.Order{creditOrder(1, 0), creditOrder(2, 30)}

	got := AllocatePayment(10, orders)

	assert.Equal(t, []Allocation{{OrderID: 2, Amount: 10}}, got)
}
