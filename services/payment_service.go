package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/nishan023/rms-test-sub000/entity"
	"github.com/nishan023/rms-test-sub000/pkg/apperr"
	"github.com/nishan023/rms-test-sub000/repository"
)

// mixed payments may be off by at most one cent in either direction
const amountTolerance = 0.01

type PaymentService struct {
	DB        *gorm.DB
	Orders    *repository.OrderRepository
	Payments  *repository.PaymentRepository
	Customers *repository.CustomerRepository

	Notify Notifier
}

func NewPaymentService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	payments *repository.PaymentRepository,
	customers *repository.CustomerRepository,
	notify Notifier,
) *PaymentService {
	return &PaymentService{DB: db, Orders: orders, Payments: payments, Customers: customers, Notify: notify}
}

// Bill is what settlement hands back for printing/display.
type Bill struct {
	OrderID        uint    `json:"orderId"`
	Method         string  `json:"method"`
	TotalAmount    float64 `json:"totalAmount"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalAmount    float64 `json:"finalAmount"`
	CashAmount     float64 `json:"cashAmount"`
	OnlineAmount   float64 `json:"onlineAmount"`
	Change         float64 `json:"change,omitempty"`
}

// validateOrderForPayment is the shared precondition check for all four
// payment methods.
func (s *PaymentService) validateOrderForPayment(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	o, err := s.Orders.GetOrder(tx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, err
	}
	switch {
	case o.Status == entity.OrderPaid:
		return nil, apperr.InvalidState("order is already paid")
	case o.Status == entity.OrderCancelled:
		return nil, apperr.InvalidState("order is cancelled")
	case o.TotalAmount <= 0:
		return nil, apperr.InvalidState("order has no payable amount")
	}
	return o, nil
}

// ProcessCashPayment settles an order in cash and returns the change owed.
func (s *PaymentService) ProcessCashPayment(orderID uint, discount *Discount, cashAmount float64) (float64, *Bill, error) {
	var bill *Bill
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.validateOrderForPayment(tx, orderID)
		if err != nil {
			return err
		}

		final, discountAmt := CalculateFinalPayable(o.TotalAmount, discount)
		if cashAmount < final {
			return apperr.Validation("insufficient cash amount")
		}

		p := entity.Payment{Method: entity.PayCash, CashAmount: final, OrderID: o.ID}
		if err := s.Payments.Create(tx, &p); err != nil {
			return err
		}

		if err := s.Orders.UpdateOrder(tx, o.ID, map[string]any{
			"status":          entity.OrderPaid,
			"payment_method":  entity.PayCash,
			"discount_amount": discountAmt,
			"due_amount":      0,
			"cash_amount":     final,
		}); err != nil {
			return err
		}

		bill = &Bill{
			OrderID: o.ID, Method: entity.PayCash,
			TotalAmount: o.TotalAmount, DiscountAmount: discountAmt,
			FinalAmount: final, CashAmount: final,
			Change: cashAmount - final,
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	s.Notify.Emit(EventOrderPaid, PaidEvent{OrderID: bill.OrderID, Method: bill.Method, Amount: bill.FinalAmount})
	return bill.Change, bill, nil
}

// ProcessOnlinePayment settles an order paid through an online channel. The
// tendered amount is the final amount by definition, so there is no change.
func (s *PaymentService) ProcessOnlinePayment(orderID uint, discount *Discount) (*Bill, error) {
	var bill *Bill
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.validateOrderForPayment(tx, orderID)
		if err != nil {
			return err
		}

		final, discountAmt := CalculateFinalPayable(o.TotalAmount, discount)

		p := entity.Payment{Method: entity.PayOnline, OnlineAmount: final, OrderID: o.ID}
		if err := s.Payments.Create(tx, &p); err != nil {
			return err
		}

		if err := s.Orders.UpdateOrder(tx, o.ID, map[string]any{
			"status":          entity.OrderPaid,
			"payment_method":  entity.PayOnline,
			"discount_amount": discountAmt,
			"due_amount":      0,
			"online_amount":   final,
		}); err != nil {
			return err
		}

		bill = &Bill{
			OrderID: o.ID, Method: entity.PayOnline,
			TotalAmount: o.TotalAmount, DiscountAmount: discountAmt,
			FinalAmount: final, OnlineAmount: final,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notify.Emit(EventOrderPaid, PaidEvent{OrderID: bill.OrderID, Method: bill.Method, Amount: bill.FinalAmount})
	return bill, nil
}

// ProcessMixedPayment splits a settlement between cash and online. The two
// parts must add up to the final payable within tolerance.
func (s *PaymentService) ProcessMixedPayment(orderID uint, discount *Discount, cashAmount, onlineAmount float64) (*Bill, error) {
	var bill *Bill
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.validateOrderForPayment(tx, orderID)
		if err != nil {
			return err
		}

		final, discountAmt := CalculateFinalPayable(o.TotalAmount, discount)
		if math.Abs(cashAmount+onlineAmount-final) > amountTolerance {
			return apperr.Validation(fmt.Sprintf(
				"cash %.2f + online %.2f does not match payable %.2f",
				cashAmount, onlineAmount, final))
		}

		p := entity.Payment{Method: entity.PayMixed, CashAmount: cashAmount, OnlineAmount: onlineAmount, OrderID: o.ID}
		if err := s.Payments.Create(tx, &p); err != nil {
			return err
		}

		if err := s.Orders.UpdateOrder(tx, o.ID, map[string]any{
			"status":          entity.OrderPaid,
			"payment_method":  entity.PayMixed,
			"discount_amount": discountAmt,
			"due_amount":      0,
			"cash_amount":     cashAmount,
			"online_amount":   onlineAmount,
		}); err != nil {
			return err
		}

		bill = &Bill{
			OrderID: o.ID, Method: entity.PayMixed,
			TotalAmount: o.TotalAmount, DiscountAmount: discountAmt,
			FinalAmount: final, CashAmount: cashAmount, OnlineAmount: onlineAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notify.Emit(EventOrderPaid, PaidEvent{OrderID: bill.OrderID, Method: bill.Method, Amount: bill.FinalAmount})
	return bill, nil
}

// ProcessCreditPayment books the full order total onto an existing customer's
// ledger. Discounts do not combine with credit; the debt moves to the
// customer, the order itself carries nothing due.
func (s *PaymentService) ProcessCreditPayment(orderID uint, customerPhone string) (*Bill, error) {
	if customerPhone == "" {
		return nil, apperr.Validation("customer phone number is required")
	}

	var (
		bill       *Bill
		customerID uint
	)
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.validateOrderForPayment(tx, orderID)
		if err != nil {
			return err
		}

		cust, err := s.Customers.FindByPhone(tx, customerPhone)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("no credit account for this number; create an account first")
		}
		if err != nil {
			return err
		}
		customerID = cust.ID

		final := o.TotalAmount

		txn := entity.CreditTransaction{
			Type:        entity.TxnCharge,
			Amount:      final,
			Description: fmt.Sprintf("Credit payment for order #%d", o.ID),
			CustomerID:  cust.ID,
			OrderID:     &o.ID,
		}
		if err := s.Customers.CreateTransaction(tx, &txn); err != nil {
			return err
		}
		if err := s.Customers.AddToTotalDue(tx, cust.ID, final); err != nil {
			return err
		}

		if err := s.Orders.UpdateOrder(tx, o.ID, map[string]any{
			"status":         entity.OrderPaid,
			"payment_method": entity.PayCredit,
			"customer_id":    cust.ID,
			"credit_amount":  final,
			"due_amount":     0,
			"cash_amount":    0,
			"online_amount":  0,
		}); err != nil {
			return err
		}

		bill = &Bill{
			OrderID: o.ID, Method: entity.PayCredit,
			TotalAmount: o.TotalAmount, FinalAmount: final,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notify.Emit(EventOrderPaid, PaidEvent{
		OrderID: bill.OrderID, Method: bill.Method, Amount: bill.FinalAmount, CustomerID: customerID,
	})
	return bill, nil
}
