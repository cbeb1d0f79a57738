package repository

import (
	"gorm.io/gorm"

	"github.com/nishan023/rms-test-sub000/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// GetBasics loads just what order placement needs (id, name, price).
func (r *MenuRepository) GetBasics(tx *gorm.DB, id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := tx.Select("id, name, price").First(&m, id).Error
	return m, err
}

func (r *MenuRepository) ListAvailable() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("is_available = ?", true).Order("category_id, name").Find(&items).Error
	return items, err
}
