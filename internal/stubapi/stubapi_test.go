package stubapi_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpilot/app/forms"
	"stockpilot/app/models"
	"stockpilot/app/services"
	"stockpilot/internal/api"
	"stockpilot/internal/stubapi"
)

func newClient(t *testing.T) *api.Client {
	t.Helper()
	srv := httptest.NewServer(stubapi.New().Handler())
	t.Cleanup(srv.Close)
	return api.NewWithBase(srv.URL + "/api/v1")
}

func TestProductLifecycleAgainstStub(t *testing.T) {
	ctx := context.Background()
	svc := services.NewInventoryService(newClient(t))

	require.NoError(t, svc.Load(ctx))
	assert.Equal(t, 12, svc.Store().Len())

	form := forms.NewProductForm()
	form.Name = "Canvas Tote"
	form.SKU = "CT-100"
	form.Category = "Accessories"
	form.CurrentStock = "14"

	created, err := svc.Create(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, models.ID("13"), created.ID)
	assert.Equal(t, 13, svc.Store().Len())

	// Duplicate SKU is refused with the backend's own message.
	dup := forms.NewProductForm()
	dup.Name = "Another Tote"
	dup.SKU = "ct-100"
	dup.Category = "Accessories"
	_, err = svc.Create(ctx, dup)
	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "sku exists", apiErr.Detail)
	assert.Equal(t, 13, svc.Store().Len())

	form.Name = "Canvas Tote XL"
	updated, err := svc.Update(ctx, created.ID, form)
	require.NoError(t, err)
	assert.Equal(t, "Canvas Tote XL", updated.Name)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, 12, svc.Store().Len())

	err = svc.Delete(ctx, created.ID)
	assert.True(t, api.IsNotFound(err))
}

func TestOrderStatusLifecycleAgainstStub(t *testing.T) {
	ctx := context.Background()
	svc := services.NewOrderService(newClient(t))

	require.NoError(t, svc.Load(ctx))
	assert.Equal(t, 10, svc.Store().Len())

	updated, err := svc.ChangeStatus(ctx, 1, models.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipped, updated.Status)
	assert.Equal(t, "Jane Cooper", updated.CustomerName)

	// Permissive relabeling: delivered straight back to pending is allowed.
	updated, err = svc.ChangeStatus(ctx, 5, models.OrderPending)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, updated.Status)

	details, err := svc.Details(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "#ORD-3", details.Reference())
	assert.Len(t, details.DisplayProducts(), 2)
}

func TestDashboardAgainstStub(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)
	svc := services.NewDashboardService(client)

	d, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, d.Errors)

	// Seeded: orders 1 and 2 are today's, neither canceled.
	assert.Equal(t, 2, d.KPIs.OrdersToday)
	assert.InDelta(t, 189.96, d.KPIs.RevenueToday, 0.001)
	assert.Equal(t, 3, d.KPIs.PendingOrders)

	// Every non-good product appears as an alert.
	assert.Equal(t, d.KPIs.LowStockItems, len(d.Alerts))
	require.NotEmpty(t, d.Alerts)

	var tshirt models.LowStockAlert
	for _, a := range d.Alerts {
		if a.Name == "Premium T-Shirt" {
			tshirt = a
		}
	}
	require.NotZero(t, tshirt.ID)
	assert.Equal(t, 7, tshirt.ReorderQuantity())

	resp, err := svc.Reorder(ctx, tshirt)
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.NotZero(t, resp.PurchaseOrderID)
	assert.NotZero(t, resp.SupplierID, "reorder resolves the product's supplier")
}

func TestSupplierLifecycleAgainstStub(t *testing.T) {
	ctx := context.Background()
	svc := services.NewSupplierService(newClient(t))

	require.NoError(t, svc.Load(ctx))
	assert.Equal(t, 4, svc.Store().Len())

	form := forms.NewSupplierForm()
	form.Name = "Northwind Leathers"
	form.Email = "sales@northwind.example"
	form.Category = "Accessories"

	created, err := svc.Create(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, models.ID("5"), created.ID)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, 4, svc.Store().Len())
}
