package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpilot/app/forms"
	"stockpilot/app/models"
	"stockpilot/app/services"
	"stockpilot/internal/api"
	"stockpilot/pkg/http"
	"stockpilot/pkg/storage"
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

func client() *api.Client { return api.NewWithBase(base) }

func seedProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Premium T-Shirt", SKU: "TS-001", Category: "Apparel", Supplier: "Global Textiles", CurrentStock: 3, ReorderPoint: 10},
		{ID: "2", Name: "Running Shoes", SKU: "SH-002", Category: "Footwear", Supplier: "FastFeet", CurrentStock: 40, ReorderPoint: 15},
		{ID: "3", Name: "Leather Wallet", SKU: "WL-003", Category: "Accessories", Supplier: "CraftWorks", CurrentStock: 0, ReorderPoint: 5},
	}
}

func validProductForm() *forms.ProductForm {
	f := forms.NewProductForm()
	f.Name = "Canvas Belt"
	f.SKU = "BL-042"
	f.Category = "Accessories"
	return f
}

func TestInventoryCreateAppendsConfirmedRecord(t *testing.T) {
	mt := mock(t)
	mt.Stub("POST", "/api/v1/products", 201, models.Product{
		ID: "42", Name: "Canvas Belt", SKU: "BL-042", Category: "Accessories", ReorderPoint: 10,
	})

	svc := services.NewInventoryService(client())
	svc.Store().Reset(seedProducts())

	created, err := svc.Create(context.Background(), validProductForm())
	require.NoError(t, err)
	assert.Equal(t, models.ID("42"), created.ID)
	assert.Equal(t, 4, svc.Store().Len())

	stored, ok := svc.Store().Get("42")
	require.True(t, ok)
	assert.Equal(t, "Canvas Belt", stored.Name)
}

func TestInventoryCreateFailureLeavesStoreUnchanged(t *testing.T) {
	mt := mock(t)
	mt.Stub("POST", "/api/v1/products", 400, map[string]string{"detail": "sku exists"})

	svc := services.NewInventoryService(client())
	svc.Store().Reset(seedProducts())

	_, err := svc.Create(context.Background(), validProductForm())
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "sku exists", apiErr.Detail)
	assert.Equal(t, 3, svc.Store().Len(), "failed create must not touch the store")
}

func TestInventoryValidationBlocksNetwork(t *testing.T) {
	mt := mock(t)
	mt.FailUnmatched = true

	svc := services.NewInventoryService(client())

	_, err := svc.Create(context.Background(), forms.NewProductForm())
	require.Error(t, err)

	var verr services.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr, "name")
	assert.Contains(t, verr, "sku")
}

func TestInventoryDeleteFailureKeepsRecord(t *testing.T) {
	mt := mock(t)
	mt.Stub("DELETE", "/api/v1/products/2", 500, map[string]string{"detail": "database unavailable"})

	svc := services.NewInventoryService(client())
	svc.Store().Reset(seedProducts())
	svc.Selection().Select("2")

	err := svc.Delete(context.Background(), "2")
	require.Error(t, err)

	_, ok := svc.Store().Get("2")
	assert.True(t, ok, "failed delete must keep the record")
	assert.True(t, svc.Selection().IsSelected("2"), "failed delete must keep the selection mark")
}

func TestInventoryDeleteSuccessRemovesRecordAndMark(t *testing.T) {
	mt := mock(t)
	mt.Stub("DELETE", "/api/v1/products/2", 204, nil)

	svc := services.NewInventoryService(client())
	svc.Store().Reset(seedProducts())
	svc.Selection().Select("2")

	require.NoError(t, svc.Delete(context.Background(), "2"))
	_, ok := svc.Store().Get("2")
	assert.False(t, ok)
	assert.False(t, svc.Selection().IsSelected("2"))
}

func TestInventoryLoadAfterCloseIsDiscarded(t *testing.T) {
	mt := mock(t)
	mt.Stub("GET", "/api/v1/products", 200, seedProducts())

	svc := services.NewInventoryService(client())
	svc.Close()

	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, 0, svc.Store().Len(), "loads settling after close must not repopulate the store")
}

func TestInventoryViewFiltersDerivedStatus(t *testing.T) {
	svc := services.NewInventoryService(client())
	svc.Store().Reset(seedProducts())

	svc.View().SetFilter("stock", models.FilterLowStock)
	page := svc.View().Page()
	require.Equal(t, 1, page.TotalRecords)
	assert.Equal(t, models.ID("1"), page.Records[0].ID, "out-of-stock is not low")
}

func TestExportSelectedWritesCSVAndClearsSelection(t *testing.T) {
	svc := services.NewInventoryService(client())
	svc.Store().Reset(seedProducts())
	svc.Selection().Select("1")
	svc.Selection().Select("3")

	disk := storage.NewLocal(t.TempDir())
	path, err := svc.ExportSelected(disk)
	require.NoError(t, err)
	require.True(t, disk.Exists(path))

	raw, err := disk.Get(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3, "header plus two selected records")
	assert.Contains(t, lines[0], "current_stock")
	assert.Contains(t, string(raw), "Premium T-Shirt")
	assert.Contains(t, string(raw), "out")

	assert.Equal(t, 0, svc.Selection().Count(), "bulk action clears the selection")

	_, err = svc.ExportSelected(disk)
	assert.ErrorIs(t, err, services.ErrNothingSelected)
}

func TestChangeStatusPreservesOtherFields(t *testing.T) {
	mt := mock(t)
	mt.Stub("PATCH", "/api/v1/orders/7", 200, `{
		"id": 7, "customer_name": "Jane", "order_date": "2025-11-08T10:00:00",
		"total": 59.97, "status": "Shipped"
	}`)

	svc := services.NewOrderService(client())
	svc.Store().Reset([]models.Order{
		{ID: 7, CustomerName: "Jane", Total: 59.97, Status: models.OrderPending},
	})

	updated, err := svc.ChangeStatus(context.Background(), 7, models.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipped, updated.Status)

	stored, ok := svc.Store().Get("7")
	require.True(t, ok)
	assert.Equal(t, models.OrderShipped, stored.Status)
	assert.Equal(t, 59.97, stored.Total)
	assert.Equal(t, "Jane", stored.CustomerName)
}

func TestChangeStatusFailureLeavesRowUntouched(t *testing.T) {
	mt := mock(t)
	mt.Stub("PATCH", "/api/v1/orders/7", 500, map[string]string{"detail": "database unavailable"})

	svc := services.NewOrderService(client())
	svc.Store().Reset([]models.Order{
		{ID: 7, CustomerName: "Jane", Status: models.OrderPending},
	})

	_, err := svc.ChangeStatus(context.Background(), 7, models.OrderCanceled)
	require.Error(t, err)

	stored, _ := svc.Store().Get("7")
	assert.Equal(t, models.OrderPending, stored.Status, "failed relabel must not move the row")
}

func TestOrderSearchMatchesIDAsPlainString(t *testing.T) {
	svc := services.NewOrderService(client())
	svc.Store().Reset([]models.Order{
		{ID: 7, CustomerName: "Jane"},
		{ID: 42, CustomerName: "Bob"},
	})

	view := svc.View()

	// The "#ORD-" display prefix is not searchable; every order would match.
	view.SetSearch("ord")
	assert.Equal(t, 0, view.Page().TotalRecords)

	view.SetSearch("7")
	page := view.Page()
	require.Equal(t, 1, page.TotalRecords)
	assert.Equal(t, int64(7), page.Records[0].ID)

	view.SetSearch("4")
	page = view.Page()
	require.Equal(t, 1, page.TotalRecords)
	assert.Equal(t, int64(42), page.Records[0].ID)
}

func TestOrderSortByID(t *testing.T) {
	svc := services.NewOrderService(client())
	svc.Store().Reset([]models.Order{
		{ID: 42, CustomerName: "Bob"},
		{ID: 7, CustomerName: "Jane"},
		{ID: 19, CustomerName: "Ada"},
	})

	view := svc.View()
	view.SetSort("id", false)

	page := view.Page()
	ids := make([]int64, len(page.Records))
	for i, o := range page.Records {
		ids[i] = o.ID
	}
	assert.Equal(t, []int64{7, 19, 42}, ids, "id sort is numeric, not textual")
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	mt := mock(t)
	mt.FailUnmatched = true

	svc := services.NewOrderService(client())
	_, err := svc.ChangeStatus(context.Background(), 7, "Archived")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Archived")
}

func TestSupplierCreateAndUpdate(t *testing.T) {
	mt := mock(t)
	mt.Stub("POST", "/api/v1/suppliers", 201, models.Supplier{
		ID: "12", Name: "Global Textiles", Email: "sales@globaltextiles.example", Category: "Apparel",
	})
	mt.Stub("PATCH", "/api/v1/suppliers/12", 200, models.Supplier{
		ID: "12", Name: "Global Textiles Ltd", Email: "sales@globaltextiles.example", Category: "Apparel",
	})

	svc := services.NewSupplierService(client())

	form := forms.NewSupplierForm()
	form.Name = "Global Textiles"
	form.Email = "sales@globaltextiles.example"

	created, err := svc.Create(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, models.ID("12"), created.ID)

	form.Name = "Global Textiles Ltd"
	updated, err := svc.Update(context.Background(), "12", form)
	require.NoError(t, err)
	assert.Equal(t, "Global Textiles Ltd", updated.Name)

	stored, _ := svc.Store().Get("12")
	assert.Equal(t, "Global Textiles Ltd", stored.Name)
	testkit.AssertAllStubsCalled(t, mt)
}

func TestDashboardCardsFailIndependently(t *testing.T) {
	mt := mock(t)
	mt.Stub("GET", "/api/v1/dashboard/kpis", 200, models.KPIs{RevenueToday: 1234.5, OrdersToday: 6})
	mt.Stub("GET", "/api/v1/dashboard/low-stock-alerts", 500, map[string]string{"detail": "database unavailable"})
	mt.Stub("GET", "/api/v1/dashboard/priority-tasks", 200, []models.PriorityTask{
		{Type: "restock", Description: "Restock Premium T-Shirt", LinkTo: "/inventory"},
	})

	svc := services.NewDashboardService(client())
	d, err := svc.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1234.5, d.KPIs.RevenueToday)
	require.Len(t, d.Tasks, 1)
	assert.True(t, d.Failed("alerts"))
	assert.False(t, d.Failed("kpis"))
	assert.Empty(t, d.Alerts)
}

func TestDashboardReorderSendsDeficit(t *testing.T) {
	mt := mock(t)
	mt.Stub("POST", "/api/v1/reorders/reorder", 200, models.ReorderResponse{
		Status: "success", PurchaseOrderID: 301, SupplierID: 12,
	})

	svc := services.NewDashboardService(client())
	resp, err := svc.Reorder(context.Background(), models.LowStockAlert{
		ID: 1, Name: "Premium T-Shirt", CurrentStock: 3, ReorderPoint: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(301), resp.PurchaseOrderID)
	assert.Equal(t, 1, mt.Calls("POST", "/api/v1/reorders/reorder"))
}
