package repository

import (
	"go-supplier-orders/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll() ([]model.Supplier, error)
	FindByID(id uint) (*model.Supplier, error)
	UpdateName(id uint, name string) error
	Delete(tx *gorm.DB, id uint) error
	DeleteAll(tx *gorm.DB) error
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) FindAll() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.Order("id ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(id uint) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.First(&supplier, id).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) UpdateName(id uint, name string) error {
	res := r.db.Model(&model.Supplier{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete runs on the given tx so the cascade in the service layer stays one
// logical unit. Deleting an absent id is a no-op, keeping cascades idempotent.
func (r *supplierRepo) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Supplier{}, id).Error
}

func (r *supplierRepo) DeleteAll(tx *gorm.DB) error {
	return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Supplier{}).Error
}
