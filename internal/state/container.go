package state

import (
	"sync"

	"go-supplier-orders/internal/model"
	"go-supplier-orders/internal/repository"
)

// Source is the store-access interface the cache reloads from. It is injected
// so the container can be exercised without a real storage backend.
type Source interface {
	Suppliers() ([]model.Supplier, error)
	Products() ([]model.Product, error)
}

// Container is the application state cache: an in-memory mirror of both
// collections, refreshed in full after every committed mutation. It never
// patches itself incrementally, so it cannot silently drift from the store.
type Container struct {
	mu        sync.RWMutex
	src       Source
	suppliers []model.Supplier
	products  []model.Product
	loading   bool
}

func NewContainer(src Source) *Container {
	return &Container{src: src, loading: true}
}

// Reload re-reads both collections. The loading flag stays true from the
// first call until a reload completes. On failure the previous mirror is
// kept, so readers only ever see a state that once was true.
func (c *Container) Reload() error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	suppliers, err := c.src.Suppliers()
	if err != nil {
		c.finishLoad()
		return err
	}
	products, err := c.src.Products()
	if err != nil {
		c.finishLoad()
		return err
	}

	c.mu.Lock()
	c.suppliers = suppliers
	c.products = products
	c.loading = false
	c.mu.Unlock()
	return nil
}

func (c *Container) finishLoad() {
	c.mu.Lock()
	c.loading = false
	c.mu.Unlock()
}

func (c *Container) Suppliers() []model.Supplier {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.suppliers
}

func (c *Container) Products() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.products
}

func (c *Container) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// repoSource adapts the repositories to the Source interface.
type repoSource struct {
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
}

func NewRepoSource(suppliers repository.SupplierRepository, products repository.ProductRepository) Source {
	return &repoSource{suppliers: suppliers, products: products}
}

func (s *repoSource) Suppliers() ([]model.Supplier, error) {
	return s.suppliers.FindAll()
}

func (s *repoSource) Products() ([]model.Product, error) {
	return s.products.FindAll()
}
