package repository_test

import (
	"testing"

	"go-supplier-orders/internal/model"
	"go-supplier-orders/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Supplier{}, &model.Product{}))
	return db
}

func seedProduct(t *testing.T, repo repository.ProductRepository, supplierID uint, name string, orderQty float64) *model.Product {
	t.Helper()
	p := &model.Product{
		SupplierID:    supplierID,
		Name:          name,
		OrderQuantity: orderQty,
		UnitPrice:     decimal.NewFromInt(1),
		Unit:          model.UnitBox,
	}
	require.NoError(t, repo.Create(p))
	return p
}

func TestFindBySupplierID(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProductRepo(db)

	seedProduct(t, repo, 1, "A", 0)
	seedProduct(t, repo, 1, "B", 2)
	seedProduct(t, repo, 2, "C", 1)

	got, err := repo.FindBySupplierID(1)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.FindBySupplierID(42)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdatesMissingRow(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProductRepo(db)

	err := repo.Updates(db, 9999, map[string]interface{}{"name": "Ghost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProductRepo(db)
	p := seedProduct(t, repo, 1, "A", 0)

	require.NoError(t, repo.Delete(p.ID))
	require.NoError(t, repo.Delete(p.ID))
}

func TestDeleteBySupplierID(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProductRepo(db)
	seedProduct(t, repo, 1, "A", 0)
	seedProduct(t, repo, 1, "B", 0)
	kept := seedProduct(t, repo, 2, "C", 0)

	require.NoError(t, repo.DeleteBySupplierID(db, 1))

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, kept.ID, all[0].ID)
}

func TestClearOrderQuantities(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProductRepo(db)
	a := seedProduct(t, repo, 1, "A", 4)
	b := seedProduct(t, repo, 2, "B", 2)

	one := uint(1)
	require.NoError(t, repo.ClearOrderQuantities(&one))

	got, err := repo.FindByID(a.ID)
	require.NoError(t, err)
	assert.Zero(t, got.OrderQuantity)
	assert.True(t, got.UnitPrice.Equal(decimal.NewFromInt(1)))

	got, err = repo.FindByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.OrderQuantity)

	require.NoError(t, repo.ClearOrderQuantities(nil))
	got, err = repo.FindByID(b.ID)
	require.NoError(t, err)
	assert.Zero(t, got.OrderQuantity)
}
