package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"go-supplier-orders/internal/handler"
	"go-supplier-orders/internal/model"
	"go-supplier-orders/internal/repository"
	"go-supplier-orders/internal/service"
	"go-supplier-orders/internal/state"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires the store-to-view surface the way cmd/api does, minus the
// websocket route.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Supplier{}, &model.Product{}))

	supplierRepo := repository.NewSupplierRepo(db)
	productRepo := repository.NewProductRepo(db)
	cache := state.NewContainer(state.NewRepoSource(supplierRepo, productRepo))
	require.NoError(t, cache.Reload())

	supplierHandler := handler.NewSupplierHandler(service.NewSupplierService(supplierRepo, productRepo, db, cache, nil), cache)
	productHandler := handler.NewProductHandler(service.NewProductService(productRepo, db, cache, nil), cache)
	orderHandler := handler.NewOrderHandler(service.NewOrderService(productRepo, cache, nil))
	transferHandler := handler.NewTransferHandler(service.NewTransferService(supplierRepo, productRepo, db, cache, nil))
	stateHandler := handler.NewStateHandler(cache)

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Get("/state", stateHandler.GetState)
	api.Get("/suppliers", supplierHandler.GetSuppliers)
	api.Post("/suppliers", supplierHandler.CreateSupplier)
	api.Put("/suppliers/:id", supplierHandler.RenameSupplier)
	api.Delete("/suppliers/:id", supplierHandler.DeleteSupplier)
	api.Get("/products", productHandler.GetProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)
	api.Get("/orders", orderHandler.GetOrderSummary)
	api.Get("/orders/:supplierId", orderHandler.GetOrder)
	api.Post("/orders/clear", orderHandler.ClearOrder)
	api.Get("/exchanges", orderHandler.GetExchanges)
	api.Get("/exchanges/candidates", orderHandler.GetExchangeCandidates)
	api.Get("/transfer/export", transferHandler.Export)
	api.Post("/transfer/import", transferHandler.Import)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

func TestSupplierEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/api/v1/suppliers", `{"name": "Acme"}`)
	require.Equal(t, 201, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	id := int(data["id"].(float64))
	assert.Equal(t, "Acme", data["name"])

	resp, body = doJSON(t, app, "GET", "/api/v1/suppliers", "")
	require.Equal(t, 200, resp.StatusCode)
	assert.Len(t, body["data"], 1)
	assert.Equal(t, false, body["loading"])

	resp, _ = doJSON(t, app, "POST", "/api/v1/suppliers", `{"name": ""}`)
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/api/v1/suppliers/9999", `{"name": "Ghost"}`)
	assert.Equal(t, 404, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/api/v1/suppliers/abc", "")
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/api/v1/suppliers/"+itoa(id), "")
	assert.Equal(t, 200, resp.StatusCode)
}

func TestProductEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/v1/products", `{"supplier_id": 42, "name": "Orphan"}`)
	assert.Equal(t, 422, resp.StatusCode)

	_, body := doJSON(t, app, "POST", "/api/v1/suppliers", `{"name": "Acme"}`)
	supplierID := int(body["data"].(map[string]interface{})["id"].(float64))

	resp, body = doJSON(t, app, "POST", "/api/v1/products",
		`{"supplier_id": `+itoa(supplierID)+`, "name": "Widget", "order_quantity": 5, "unit_price": 10, "unit": "box"}`)
	require.Equal(t, 201, resp.StatusCode)
	productID := int(body["data"].(map[string]interface{})["id"].(float64))

	resp, body = doJSON(t, app, "GET", "/api/v1/orders/"+itoa(supplierID), "")
	require.Equal(t, 200, resp.StatusCode)
	assert.Len(t, body["data"], 1)
	assert.Equal(t, float64(50), body["total"])

	resp, body = doJSON(t, app, "PUT", "/api/v1/products/"+itoa(productID), `{"order_quantity": -3}`)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(0), body["data"].(map[string]interface{})["order_quantity"])

	resp, _ = doJSON(t, app, "PUT", "/api/v1/products/9999", `{"name": "Ghost"}`)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestTransferEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/v1/transfer/import", `this is not a document`)
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/v1/transfer/import",
		`{"suppliers": [{"id": 1, "name": "Vendor"}], "products": [{"supplier_id": 1, "name": "Thing"}]}`)
	require.Equal(t, 200, resp.StatusCode)

	req := httptest.NewRequest("GET", "/api/v1/transfer/export", nil)
	exportResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, exportResp.StatusCode)
	assert.Contains(t, exportResp.Header.Get("Content-Disposition"), "attachment")

	raw, err := io.ReadAll(exportResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Vendor"`)
}

func TestStateEndpoint(t *testing.T) {
	app := newTestApp(t)
	doJSON(t, app, "POST", "/api/v1/suppliers", `{"name": "Acme"}`)

	resp, body := doJSON(t, app, "GET", "/api/v1/state", "")
	require.Equal(t, 200, resp.StatusCode)
	assert.Len(t, body["suppliers"], 1)
	assert.Equal(t, false, body["loading"])
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
