package repository

import (
	"go-supplier-orders/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindBySupplierID(supplierID uint) ([]model.Product, error)
	Updates(tx *gorm.DB, id uint, fields map[string]interface{}) error
	Delete(id uint) error
	DeleteBySupplierID(tx *gorm.DB, supplierID uint) error
	DeleteAll(tx *gorm.DB) error
	ClearOrderQuantities(supplierID *uint) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySupplierID(supplierID uint) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("supplier_id = ?", supplierID).Order("id ASC").Find(&products).Error
	return products, err
}

// Updates merges the given fields into an existing row on the given tx, so
// partial updates can share a transaction with their reference checks.
// Addressing an id that no longer exists is a caller error, not a silent
// no-op.
func (r *productRepo) Updates(tx *gorm.DB, id uint, fields map[string]interface{}) error {
	res := tx.Model(&model.Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete is a no-op for an absent id, keeping cascading deletes idempotent.
func (r *productRepo) Delete(id uint) error {
	return r.db.Delete(&model.Product{}, id).Error
}

// DeleteBySupplierID runs on the given tx: it is the product half of the
// supplier cascade and must commit together with the supplier row deletion.
func (r *productRepo) DeleteBySupplierID(tx *gorm.DB, supplierID uint) error {
	return tx.Where("supplier_id = ?", supplierID).Delete(&model.Product{}).Error
}

func (r *productRepo) DeleteAll(tx *gorm.DB) error {
	return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Product{}).Error
}

// ClearOrderQuantities zeroes order_quantity for one supplier's products, or
// for every product when supplierID is nil. No other column is touched.
func (r *productRepo) ClearOrderQuantities(supplierID *uint) error {
	q := r.db.Model(&model.Product{}).Where("order_quantity <> 0")
	if supplierID != nil {
		q = q.Where("supplier_id = ?", *supplierID)
	}
	return q.Update("order_quantity", float64(0)).Error
}
