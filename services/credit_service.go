package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/nishan023/rms-test-sub000/entity"
	"github.com/nishan023/rms-test-sub000/pkg/apperr"
	"github.com/nishan023/rms-test-sub000/repository"
)

type CreditService struct {
	DB     *gorm.DB
	Repo   *repository.CustomerRepository
	Orders *repository.OrderRepository

	Notify Notifier
}

func NewCreditService(db *gorm.DB, repo *repository.CustomerRepository, orders *repository.OrderRepository, notify Notifier) *CreditService {
	return &CreditService{DB: db, Repo: repo, Orders: orders, Notify: notify}
}

// ----- Accounts -----

func (s *CreditService) CreateAccount(fullName, phoneNumber string) (*entity.Customer, error) {
	fullName = strings.TrimSpace(fullName)
	phoneNumber = strings.TrimSpace(phoneNumber)
	if fullName == "" || phoneNumber == "" {
		return nil, apperr.Validation("full name and phone number are required")
	}

	count, err := s.Repo.CountByPhone(phoneNumber)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("phone number already registered")
	}

	cust := &entity.Customer{FullName: fullName, PhoneNumber: phoneNumber}
	if err := s.Repo.Create(cust); err != nil {
		return nil, err
	}
	return cust, nil
}

func (s *CreditService) ListAccounts() ([]entity.Customer, error) {
	return s.Repo.List()
}

// ----- Ledger writes -----

type LedgerResult struct {
	Transaction entity.CreditTransaction `json:"transaction"`
	Customer    entity.Customer          `json:"customer"`
}

// RecordCharge adds a manual debt entry to a customer's ledger.
func (s *CreditService) RecordCharge(customerID uint, amount float64, description string) (*LedgerResult, error) {
	if amount <= 0 {
		return nil, apperr.Validation("amount must be greater than zero")
	}

	var out LedgerResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cust, err := s.getCustomer(tx, customerID)
		if err != nil {
			return err
		}

		txn := entity.CreditTransaction{
			Type:        entity.TxnCharge,
			Amount:      amount,
			Description: description,
			CustomerID:  cust.ID,
		}
		if err := s.Repo.CreateTransaction(tx, &txn); err != nil {
			return err
		}
		if err := s.Repo.AddToTotalDue(tx, cust.ID, amount); err != nil {
			return err
		}

		updated, err := s.Repo.GetByID(tx, cust.ID)
		if err != nil {
			return err
		}
		out = LedgerResult{Transaction: txn, Customer: *updated}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordPayment books a debt payment, then pays down the customer's
// credit-financed orders oldest-first, writing one DebtSettlement per order
// touched so each payment leaves a per-order trail.
func (s *CreditService) RecordPayment(customerID uint, amount float64, method, description string) (*LedgerResult, error) {
	if amount <= 0 {
		return nil, apperr.Validation("amount must be greater than zero")
	}
	if method == "" {
		method = entity.PayCash
	}

	var out LedgerResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cust, err := s.getCustomer(tx, customerID)
		if err != nil {
			return err
		}

		txn := entity.CreditTransaction{
			Type:        entity.TxnPayment,
			Amount:      amount,
			Description: description,
			CustomerID:  cust.ID,
		}
		if err := s.Repo.CreateTransaction(tx, &txn); err != nil {
			return err
		}
		if err := s.Repo.AddToTotalDue(tx, cust.ID, -amount); err != nil {
			return err
		}

		orders, err := s.Orders.CreditOrdersForCustomer(tx, cust.ID)
		if err != nil {
			return err
		}
		byID := make(map[uint]*entity.Order, len(orders))
		for i := range orders {
			byID[orders[i].ID] = &orders[i]
		}

		for _, a := range AllocatePayment(amount, orders) {
			o := byID[a.OrderID]
			if err := s.Orders.UpdateOrder(tx, a.OrderID, map[string]any{
				"credit_amount":  o.CreditAmount - a.Amount,
				"settled_amount": o.SettledAmount + a.Amount,
			}); err != nil {
				return err
			}

			settlement := entity.DebtSettlement{
				Method:      method,
				Amount:      a.Amount,
				Description: fmt.Sprintf("Settled %.2f against order #%d", a.Amount, a.OrderID),
				CustomerID:  cust.ID,
				OrderID:     a.OrderID,
			}
			if err := s.Repo.CreateSettlement(tx, &settlement); err != nil {
				return err
			}
		}

		updated, err := s.Repo.GetByID(tx, cust.ID)
		if err != nil {
			return err
		}
		out = LedgerResult{Transaction: txn, Customer: *updated}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notify.Emit(EventOrderPaid, PaidEvent{Method: method, Amount: amount, CustomerID: customerID})
	return &out, nil
}

// ----- Account deletion -----

// DeleteAccount removes a settled customer and their ledger in one
// transaction. Historical orders survive with customer_id nulled.
func (s *CreditService) DeleteAccount(customerID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cust, err := s.getCustomer(tx, customerID)
		if err != nil {
			return err
		}
		if math.Abs(cust.TotalDue) > amountTolerance {
			return apperr.Conflict("settle outstanding debt before deleting the account")
		}

		if err := s.Repo.DeleteTransactions(tx, cust.ID); err != nil {
			return err
		}
		if err := s.Repo.DeleteSettlements(tx, cust.ID); err != nil {
			return err
		}
		if err := s.Repo.DetachOrders(tx, cust.ID); err != nil {
			return err
		}
		return s.Repo.Delete(tx, cust.ID)
	})
}

// ----- Reads -----

type AccountDetails struct {
	Customer entity.Customer `json:"customer"`
	Ledger   []LedgerEntry   `json:"ledger"`
}

// GetAccountDetails returns the account with its ledger newest-first, each
// entry carrying its reconstructed running balance.
func (s *CreditService) GetAccountDetails(customerID uint) (*AccountDetails, error) {
	cust, err := s.getCustomer(s.DB, customerID)
	if err != nil {
		return nil, err
	}

	txns, err := s.Repo.ListTransactions(cust.ID)
	if err != nil {
		return nil, err
	}

	return &AccountDetails{
		Customer: *cust,
		Ledger:   BuildLedgerHistory(cust.TotalDue, txns),
	}, nil
}

func (s *CreditService) getCustomer(tx *gorm.DB, id uint) (*entity.Customer, error) {
	cust, err := s.Repo.GetByID(tx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("customer not found")
	}
	return cust, err
}
