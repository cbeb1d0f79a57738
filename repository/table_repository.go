package repository

import (
	"gorm.io/gorm"

	"github.com/nishan023/rms-test-sub000/entity"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) GetByCode(tx *gorm.DB, code string) (*entity.Table, error) {
	var t entity.Table
	if err := tx.Where("table_code = ?", code).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) Create(tx *gorm.DB, t *entity.Table) error {
	return tx.Create(t).Error
}

// FirstOrCreateByCode resolves a table by code, creating it with the given
// type when missing. Used for the canonical ONLINE table.
func (r *TableRepository) FirstOrCreateByCode(tx *gorm.DB, code, tableType string) (*entity.Table, error) {
	var t entity.Table
	err := tx.Where(entity.Table{TableCode: code}).
		Attrs(entity.Table{TableType: tableType, IsActive: true}).
		FirstOrCreate(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}
