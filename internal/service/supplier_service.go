package service

import (
	"errors"
	"fmt"

	"go-supplier-orders/internal/model"
	"go-supplier-orders/internal/repository"
	"go-supplier-orders/internal/state"
	"go-supplier-orders/internal/ws"
	"go-supplier-orders/pkg/validator"

	"gorm.io/gorm"
)

type SupplierService interface {
	AddSupplier(name string) (*model.Supplier, error)
	RenameSupplier(id uint, name string) error
	DeleteSupplier(id uint) error
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	db           *gorm.DB
	cache        *state.Container
	hub          *ws.Hub
}

func NewSupplierService(sRepo repository.SupplierRepository, pRepo repository.ProductRepository, db *gorm.DB, cache *state.Container, hub *ws.Hub) SupplierService {
	return &supplierService{
		supplierRepo: sRepo,
		productRepo:  pRepo,
		db:           db,
		cache:        cache,
		hub:          hub,
	}
}

func (s *supplierService) AddSupplier(name string) (*model.Supplier, error) {
	supplier := model.Supplier{Name: name}
	if errs := validator.ValidateStruct(&supplier); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	if err := s.supplierRepo.Create(&supplier); err != nil {
		return nil, err
	}
	if err := s.cache.Reload(); err != nil {
		return nil, err
	}

	notifyStoreChanged(s.hub, "supplier_created", map[string]interface{}{
		"supplier": map[string]interface{}{"id": supplier.ID, "name": supplier.Name},
	})
	return &supplier, nil
}

func (s *supplierService) RenameSupplier(id uint, name string) error {
	if name == "" {
		return fmt.Errorf("validation failed: field 'Supplier.Name' failed on tag 'required'")
	}

	if err := s.supplierRepo.UpdateName(id, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ErrNotFound
		}
		return err
	}
	if err := s.cache.Reload(); err != nil {
		return err
	}

	notifyStoreChanged(s.hub, "supplier_renamed", map[string]interface{}{
		"supplier": map[string]interface{}{"id": id, "name": name},
	})
	return nil
}

// DeleteSupplier cascades: the supplier's products and the supplier row go in
// one transaction, so no reader can observe orphans. Deleting an id that is
// already gone is a no-op.
func (s *supplierService) DeleteSupplier(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.DeleteBySupplierID(tx, id); err != nil {
			return err
		}
		return s.supplierRepo.Delete(tx, id)
	})
	if err != nil {
		return err
	}
	if err := s.cache.Reload(); err != nil {
		return err
	}

	notifyStoreChanged(s.hub, "supplier_deleted", map[string]interface{}{
		"supplier": map[string]interface{}{"id": id},
	})
	return nil
}
