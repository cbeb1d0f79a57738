package repository

import (
	"gorm.io/gorm"

	"github.com/nishan023/rms-test-sub000/entity"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) GetByOrderID(orderID uint) (*entity.Payment, error) {
	var p entity.Payment
	err := r.DB.Where("order_id = ?", orderID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
