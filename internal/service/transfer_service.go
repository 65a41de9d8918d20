package service

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go-supplier-orders/internal/model"
	"go-supplier-orders/internal/repository"
	"go-supplier-orders/internal/state"
	"go-supplier-orders/internal/ws"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transfer document import types. They are deliberately looser than the live
// models: ids may arrive as JSON numbers or strings (another store's export
// run through other tooling loses numeric typing), the price may sit under
// the legacy "price" name, and quantities and the unit tag are optional.

// flexID accepts a JSON number or string and canonicalizes to the string
// form, so 7 and "7" land on the same remap key.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type importSupplier struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

type importProduct struct {
	SupplierID       flexID   `json:"supplier_id"`
	Name             string   `json:"name"`
	OrderQuantity    *float64 `json:"order_quantity"`
	Price            *float64 `json:"price"`
	UnitPrice        *float64 `json:"unit_price"`
	Unit             string   `json:"unit"`
	ExchangeQuantity *float64 `json:"exchange_quantity"`
}

type importDocument struct {
	Suppliers []importSupplier `json:"suppliers"`
	Products  []importProduct  `json:"products"`
}

type TransferService interface {
	Export() ([]byte, error)
	Import(data []byte) error
}

type transferService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	db           *gorm.DB
	cache        *state.Container
	hub          *ws.Hub
}

func NewTransferService(sRepo repository.SupplierRepository, pRepo repository.ProductRepository, db *gorm.DB, cache *state.Container, hub *ws.Hub) TransferService {
	return &transferService{
		supplierRepo: sRepo,
		productRepo:  pRepo,
		db:           db,
		cache:        cache,
		hub:          hub,
	}
}

// Export serializes the whole store, ids included, as indented JSON. Always a
// full snapshot: no filtering, no pagination.
func (s *transferService) Export() ([]byte, error) {
	suppliers, err := s.supplierRepo.FindAll()
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	doc := model.Document{Suppliers: suppliers, Products: products}
	return json.MarshalIndent(doc, "", "  ")
}

// Import replaces the whole store with the document's contents. The document
// is untrusted: its ids were assigned by another store instance, so suppliers
// are re-inserted under fresh ids and product references are resolved through
// an old-id to new-id remap. The replace runs in one transaction; a failure
// mid-import rolls the store back to its pre-import state.
func (s *transferService) Import(data []byte) error {
	doc, err := parseDocument(data)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.DeleteAll(tx); err != nil {
			return err
		}
		if err := s.supplierRepo.DeleteAll(tx); err != nil {
			return err
		}

		remap := make(map[flexID]uint, len(doc.Suppliers))
		for _, ds := range doc.Suppliers {
			supplier := model.Supplier{Name: ds.Name}
			if err := tx.Create(&supplier).Error; err != nil {
				return err
			}
			if ds.ID != "" {
				remap[ds.ID] = supplier.ID
			}
		}

		for _, dp := range doc.Products {
			product := normalizeProduct(dp, remap)
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.cache.Reload(); err != nil {
		return err
	}
	notifyStoreChanged(s.hub, "store_imported", map[string]interface{}{
		"suppliers": len(doc.Suppliers),
		"products":  len(doc.Products),
	})
	return nil
}

// parseDocument validates the top-level shape before anything destructive
// happens. Both collections must be present lists; anything else rejects the
// document outright.
func parseDocument(data []byte) (*importDocument, error) {
	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedInput, err)
	}
	if doc.Suppliers == nil || doc.Products == nil {
		return nil, fmt.Errorf("%w: document must contain suppliers and products lists", model.ErrMalformedInput)
	}
	return &doc, nil
}

// normalizeProduct owns every lenient-import path in one place: supplier
// remapping with raw-value coercion as the dangling fallback, the legacy
// price field name, quantity defaults, clamping and unit coercion.
func normalizeProduct(dp importProduct, remap map[flexID]uint) model.Product {
	supplierID, ok := remap[dp.SupplierID]
	if !ok {
		// Dangling reference in the input: keep the coerced raw value
		// rather than rejecting the row.
		supplierID = coerceID(string(dp.SupplierID))
	}

	price := 0.0
	if dp.Price != nil {
		price = *dp.Price
	} else if dp.UnitPrice != nil {
		price = *dp.UnitPrice
	}

	orderQty := 0.0
	if dp.OrderQuantity != nil {
		orderQty = *dp.OrderQuantity
	}
	exchangeQty := 0.0
	if dp.ExchangeQuantity != nil {
		exchangeQty = *dp.ExchangeQuantity
	}

	return model.Product{
		SupplierID:       supplierID,
		Name:             dp.Name,
		OrderQuantity:    model.ClampQuantity(orderQty),
		UnitPrice:        model.ClampPrice(decimal.NewFromFloat(price)),
		Unit:             model.NormalizeUnit(dp.Unit),
		ExchangeQuantity: model.ClampQuantity(exchangeQty),
	}
}

func coerceID(raw string) uint {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || n < 0 {
		return 0
	}
	return uint(n)
}
