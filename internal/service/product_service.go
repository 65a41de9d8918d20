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

type ProductService interface {
	AddProduct(req *model.Product) error
	UpdateProduct(id uint, upd *model.ProductUpdate) (*model.Product, error)
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
	db          *gorm.DB
	cache       *state.Container
	hub         *ws.Hub
}

func NewProductService(pRepo repository.ProductRepository, db *gorm.DB, cache *state.Container, hub *ws.Hub) ProductService {
	return &productService{
		productRepo: pRepo,
		db:          db,
		cache:       cache,
		hub:         hub,
	}
}

// supplierExists resolves a supplier reference on the given tx, translating
// a missing row into the store's reference error.
func supplierExists(tx *gorm.DB, id uint) error {
	var supplier model.Supplier
	if err := tx.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ErrInvalidReference
		}
		return err
	}
	return nil
}

func (s *productService) AddProduct(req *model.Product) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	req.OrderQuantity = model.ClampQuantity(req.OrderQuantity)
	req.ExchangeQuantity = model.ClampQuantity(req.ExchangeQuantity)
	req.UnitPrice = model.ClampPrice(req.UnitPrice)
	req.Unit = model.NormalizeUnit(string(req.Unit))

	// Reference check and insert in one transaction, so a concurrent
	// supplier cascade cannot slip between them and leave an orphan.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := supplierExists(tx, req.SupplierID); err != nil {
			return err
		}
		return tx.Create(req).Error
	})
	if err != nil {
		return err
	}
	if err := s.cache.Reload(); err != nil {
		return err
	}

	notifyStoreChanged(s.hub, "product_created", map[string]interface{}{
		"product": map[string]interface{}{
			"id":          req.ID,
			"supplier_id": req.SupplierID,
			"name":        req.Name,
		},
	})
	return nil
}

func (s *productService) UpdateProduct(id uint, upd *model.ProductUpdate) (*model.Product, error) {
	fields := map[string]interface{}{}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, fmt.Errorf("validation failed: field 'Product.Name' failed on tag 'required'")
		}
		fields["name"] = *upd.Name
	}
	if upd.OrderQuantity != nil {
		fields["order_quantity"] = model.ClampQuantity(*upd.OrderQuantity)
	}
	if upd.UnitPrice != nil {
		fields["unit_price"] = model.ClampPrice(*upd.UnitPrice)
	}
	if upd.Unit != nil {
		fields["unit"] = model.NormalizeUnit(*upd.Unit)
	}
	if upd.ExchangeQuantity != nil {
		fields["exchange_quantity"] = model.ClampQuantity(*upd.ExchangeQuantity)
	}

	var product model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if upd.SupplierID != nil {
			if err := supplierExists(tx, *upd.SupplierID); err != nil {
				return err
			}
			fields["supplier_id"] = *upd.SupplierID
		}

		if len(fields) > 0 {
			if err := s.productRepo.Updates(tx, id, fields); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return model.ErrNotFound
				}
				return err
			}
		}

		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ErrNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.cache.Reload(); err != nil {
		return nil, err
	}

	notifyStoreChanged(s.hub, "product_updated", map[string]interface{}{
		"product": map[string]interface{}{
			"id":          product.ID,
			"supplier_id": product.SupplierID,
			"name":        product.Name,
		},
	})
	return &product, nil
}

func (s *productService) DeleteProduct(id uint) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	if err := s.cache.Reload(); err != nil {
		return err
	}

	notifyStoreChanged(s.hub, "product_deleted", map[string]interface{}{
		"product": map[string]interface{}{"id": id},
	})
	return nil
}
