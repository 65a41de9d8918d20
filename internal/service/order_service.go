package service

import (
	"go-supplier-orders/internal/model"
	"go-supplier-orders/internal/repository"
	"go-supplier-orders/internal/state"
	"go-supplier-orders/internal/ws"

	"github.com/shopspring/decimal"
)

// The derived views below are pure functions over the product collection.
// They are recomputed on every call and never stored, so they cannot go
// stale against the quantities they are derived from.

// FilterActiveOrderItems returns the products in supplierID's active order:
// those with a positive order quantity.
func FilterActiveOrderItems(products []model.Product, supplierID uint) []model.Product {
	var items []model.Product
	for _, p := range products {
		if p.SupplierID == supplierID && p.OrderQuantity > 0 {
			items = append(items, p)
		}
	}
	return items
}

// OrderTotal sums quantity x unit price over the given items using decimal
// arithmetic, so displayed currency amounts do not accumulate float drift.
func OrderTotal(items []model.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range items {
		total = total.Add(p.UnitPrice.Mul(decimal.NewFromFloat(p.OrderQuantity)))
	}
	return total
}

// CountActiveBySupplier counts, per supplier, how many products carry a
// positive order quantity. Suppliers with no active items are absent.
func CountActiveBySupplier(products []model.Product) map[uint]int {
	counts := make(map[uint]int)
	for _, p := range products {
		if p.OrderQuantity > 0 {
			counts[p.SupplierID]++
		}
	}
	return counts
}

// PartitionByExchange splits the products into those with a positive
// exchange quantity and the rest.
func PartitionByExchange(products []model.Product) (exchange, rest []model.Product) {
	for _, p := range products {
		if p.ExchangeQuantity > 0 {
			exchange = append(exchange, p)
		} else {
			rest = append(rest, p)
		}
	}
	return exchange, rest
}

type OrderService interface {
	ActiveOrderItems(supplierID uint) ([]model.Product, decimal.Decimal)
	SupplierItemCounts() map[uint]int
	ExchangeItems() []model.Product
	NonExchangeItems() []model.Product
	ClearOrder(supplierID *uint) error
}

type orderService struct {
	productRepo repository.ProductRepository
	cache       *state.Container
	hub         *ws.Hub
}

func NewOrderService(pRepo repository.ProductRepository, cache *state.Container, hub *ws.Hub) OrderService {
	return &orderService{productRepo: pRepo, cache: cache, hub: hub}
}

func (s *orderService) ActiveOrderItems(supplierID uint) ([]model.Product, decimal.Decimal) {
	items := FilterActiveOrderItems(s.cache.Products(), supplierID)
	return items, OrderTotal(items)
}

func (s *orderService) SupplierItemCounts() map[uint]int {
	return CountActiveBySupplier(s.cache.Products())
}

func (s *orderService) ExchangeItems() []model.Product {
	exchange, _ := PartitionByExchange(s.cache.Products())
	return exchange
}

func (s *orderService) NonExchangeItems() []model.Product {
	_, rest := PartitionByExchange(s.cache.Products())
	return rest
}

// ClearOrder zeroes the order quantity for one supplier's products, or every
// product when supplierID is nil. A bulk update, not a delete: prices, units
// and exchange quantities stay as they are.
func (s *orderService) ClearOrder(supplierID *uint) error {
	if err := s.productRepo.ClearOrderQuantities(supplierID); err != nil {
		return err
	}
	if err := s.cache.Reload(); err != nil {
		return err
	}

	detail := map[string]interface{}{}
	if supplierID != nil {
		detail["supplier_id"] = *supplierID
	}
	notifyStoreChanged(s.hub, "order_cleared", detail)
	return nil
}
