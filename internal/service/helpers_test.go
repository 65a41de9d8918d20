package service_test

import (
	"testing"

	"go-supplier-orders/internal/model"
	"go-supplier-orders/internal/repository"
	"go-supplier-orders/internal/service"
	"go-supplier-orders/internal/state"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type env struct {
	db          *gorm.DB
	suppliers   repository.SupplierRepository
	products    repository.ProductRepository
	cache       *state.Container
	supplierSvc service.SupplierService
	productSvc  service.ProductService
	orderSvc    service.OrderService
	transferSvc service.TransferService
}

// newEnv wires the full store over an in-memory database. The hub is nil:
// services skip broadcasting when no view clients can exist.
func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection, or every pooled conn gets its own in-memory database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Supplier{}, &model.Product{}))

	suppliers := repository.NewSupplierRepo(db)
	products := repository.NewProductRepo(db)
	cache := state.NewContainer(state.NewRepoSource(suppliers, products))
	require.NoError(t, cache.Reload())

	return &env{
		db:          db,
		suppliers:   suppliers,
		products:    products,
		cache:       cache,
		supplierSvc: service.NewSupplierService(suppliers, products, db, cache, nil),
		productSvc:  service.NewProductService(products, db, cache, nil),
		orderSvc:    service.NewOrderService(products, cache, nil),
		transferSvc: service.NewTransferService(suppliers, products, db, cache, nil),
	}
}

func (e *env) addSupplier(t *testing.T, name string) *model.Supplier {
	t.Helper()
	supplier, err := e.supplierSvc.AddSupplier(name)
	require.NoError(t, err)
	return supplier
}

func (e *env) addProduct(t *testing.T, supplierID uint, name string, orderQty, price float64) *model.Product {
	t.Helper()
	product := &model.Product{
		SupplierID:    supplierID,
		Name:          name,
		OrderQuantity: orderQty,
		UnitPrice:     decimal.NewFromFloat(price),
		Unit:          model.UnitBox,
	}
	require.NoError(t, e.productSvc.AddProduct(product))
	return product
}

func floatPtr(v float64) *float64 { return &v }

func uintPtr(v uint) *uint { return &v }

func strPtr(v string) *string { return &v }
