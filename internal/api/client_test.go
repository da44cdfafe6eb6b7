package api_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpilot/app/models"
	"stockpilot/internal/api"
	"stockpilot/pkg/http"
	"stockpilot/pkg/testkit"
)

const base = "http://backend.test/api/v1"

func mock(t *testing.T) *testkit.MockTransport {
	t.Helper()
	mt := testkit.NewMockTransport()
	http.DefaultClient.Transport = mt
	t.Cleanup(http.ResetTransport)
	return mt
}

func TestListProductsDecodesNumericIDs(t *testing.T) {
	mt := mock(t)
	mt.Stub("GET", "/api/v1/products", 200, `[
		{"id": 1, "name": "Premium T-Shirt", "sku": "TS-001", "category": "Apparel",
		 "supplier": "Global Textiles", "currentStock": 3, "reorderPoint": 10}
	]`)

	products, err := api.NewWithBase(base).ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, models.ID("1"), products[0].ID)
	assert.Equal(t, "TS-001", products[0].SKU)
	assert.Equal(t, models.StockLow, products[0].Status())
}

func TestCreateProductReturnsServerRecord(t *testing.T) {
	mt := mock(t)
	mt.Stub("POST", "/api/v1/products", 201, models.Product{
		ID: "42", Name: "Canvas Belt", SKU: "BL-042", Category: "Accessories",
	})

	created, err := api.NewWithBase(base).CreateProduct(context.Background(), models.ProductInput{
		Name: "Canvas Belt", SKU: "BL-042", Category: "Accessories",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ID("42"), created.ID)
	assert.Equal(t, 1, mt.Calls("POST", "/api/v1/products"))
}

func TestCreateProductSurfacesBackendDetail(t *testing.T) {
	mt := mock(t)
	mt.Stub("POST", "/api/v1/products", 400, map[string]string{"detail": "sku exists"})

	_, err := api.NewWithBase(base).CreateProduct(context.Background(), models.ProductInput{SKU: "TS-001"})
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "sku exists", apiErr.Detail)
	assert.Contains(t, apiErr.Error(), "sku exists")
}

func TestDeleteProductNotFound(t *testing.T) {
	mt := mock(t)
	mt.Stub("DELETE", "/api/v1/products/99", 404, map[string]string{"detail": "not found"})

	err := api.NewWithBase(base).DeleteProduct(context.Background(), "99")
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
}

func TestUpdateOrderStatusPatchesOrderResource(t *testing.T) {
	mt := mock(t)
	// The backend takes the status change as a PATCH on the order itself,
	// not on a /status subresource. The subresource stub is registered first
	// so a wrongly-suffixed request would hit it and fail the test.
	mt.Stub("PATCH", "/api/v1/orders/7/status", 404, map[string]string{"detail": "not found"})
	mt.Stub("PATCH", "/api/v1/orders/7", 200, models.Order{
		ID: 7, CustomerName: "Jane", Total: 59.97, Status: models.OrderShipped,
	})

	updated, err := api.NewWithBase(base).UpdateOrderStatus(context.Background(), 7, models.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipped, updated.Status)
	assert.Equal(t, 59.97, updated.Total)
	assert.Equal(t, 0, mt.Calls("PATCH", "/api/v1/orders/7/status"))
}

func TestGetOrderDetailsTranslatesItems(t *testing.T) {
	mt := mock(t)
	mt.Stub("GET", "/api/v1/orders/7", 200, `{
		"id": 7, "customer_name": "Jane", "order_date": "2025-11-08T10:00:00",
		"total": 59.97, "status": "Pending",
		"customer_email": "jane@example.com", "customer_phone": "555", "customer_address": "12 Main St",
		"items": [{"quantity": 3, "price_at_sale": 19.99, "product": {"name": "Premium T-Shirt"}}]
	}`)

	details, err := api.NewWithBase(base).GetOrderDetails(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "#ORD-7", details.Reference())
	require.Len(t, details.DisplayProducts(), 1)
	assert.Equal(t, 19.99, details.DisplayProducts()[0].UnitPrice)
}

func TestTransportFailureIsNotAnAPIError(t *testing.T) {
	mt := mock(t)
	mt.StubError("GET", "/api/v1/suppliers", errors.New("connection refused"))

	_, err := api.NewWithBase(base).ListSuppliers(context.Background())
	require.Error(t, err)

	var apiErr *api.Error
	assert.False(t, errors.As(err, &apiErr), "transport failures must not masquerade as backend responses")
}

func TestCreateReorder(t *testing.T) {
	mt := mock(t)
	mt.Stub("POST", "/api/v1/reorders/reorder", 200, models.ReorderResponse{
		Status: "success", PurchaseOrderID: 301, SupplierID: 12,
	})

	resp, err := api.NewWithBase(base).CreateReorder(context.Background(), models.ReorderRequest{
		ProductID: 1, Quantity: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(301), resp.PurchaseOrderID)
}
