package repository

import (
	"gorm.io/gorm"

	"github.com/nishan023/rms-test-sub000/entity"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// ---------------- Customers ----------------

func (r *CustomerRepository) Create(c *entity.Customer) error {
	return r.DB.Create(c).Error
}

func (r *CustomerRepository) GetByID(tx *gorm.DB, id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := tx.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) FindByPhone(tx *gorm.DB, phone string) (*entity.Customer, error) {
	var c entity.Customer
	if err := tx.Where("phone_number = ?", phone).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) CountByPhone(phone string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Customer{}).Where("phone_number = ?", phone).Count(&count).Error
	return count, err
}

func (r *CustomerRepository) List() ([]entity.Customer, error) {
	var out []entity.Customer
	err := r.DB.Order("full_name").Find(&out).Error
	return out, err
}

// AddToTotalDue applies a signed delta to the running balance.
func (r *CustomerRepository) AddToTotalDue(tx *gorm.DB, customerID uint, delta float64) error {
	return tx.Model(&entity.Customer{}).Where("id = ?", customerID).
		Update("total_due", gorm.Expr("total_due + ?", delta)).Error
}

func (r *CustomerRepository) Delete(tx *gorm.DB, customerID uint) error {
	return tx.Unscoped().Delete(&entity.Customer{}, customerID).Error
}

// ---------------- Ledger rows ----------------

func (r *CustomerRepository) CreateTransaction(tx *gorm.DB, t *entity.CreditTransaction) error {
	return tx.Create(t).Error
}

// ListTransactions returns the ledger newest-first for history display.
func (r *CustomerRepository) ListTransactions(customerID uint) ([]entity.CreditTransaction, error) {
	var out []entity.CreditTransaction
	err := r.DB.Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *CustomerRepository) CreateSettlement(tx *gorm.DB, s *entity.DebtSettlement) error {
	return tx.Create(s).Error
}

func (r *CustomerRepository) ListSettlements(customerID uint) ([]entity.DebtSettlement, error) {
	var out []entity.DebtSettlement
	err := r.DB.Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// ---------------- Account deletion ----------------

func (r *CustomerRepository) DeleteTransactions(tx *gorm.DB, customerID uint) error {
	return tx.Unscoped().Where("customer_id = ?", customerID).Delete(&entity.CreditTransaction{}).Error
}

func (r *CustomerRepository) DeleteSettlements(tx *gorm.DB, customerID uint) error {
	return tx.Unscoped().Where("customer_id = ?", customerID).Delete(&entity.DebtSettlement{}).Error
}

// DetachOrders nulls customer_id on historical orders so order history
// survives account deletion.
func (r *CustomerRepository) DetachOrders(tx *gorm.DB, customerID uint) error {
	return tx.Model(&entity.Order{}).Where("customer_id = ?", customerID).
		Update("customer_id", nil).Error
}
