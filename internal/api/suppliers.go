package api

import (
	"context"
	"fmt"
	"time"

	"stockpilot/app/models"
	"stockpilot/pkg/http"
)

// ListSuppliers fetches all suppliers.
func (c *Client) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	req := http.Get(c.url("/suppliers")).WithContext(ctx).Retry(3, 500*time.Millisecond)
	if err := c.send("suppliers.list", req, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// CreateSupplier posts a new supplier and returns the stored record.
func (c *Client) CreateSupplier(ctx context.Context, in models.SupplierInput) (models.Supplier, error) {
	var created models.Supplier
	req := http.Post(c.url("/suppliers")).WithContext(ctx).Body(in)
	if err := c.send("suppliers.create", req, &created); err != nil {
		return models.Supplier{}, err
	}
	return created, nil
}

// UpdateSupplier patches an existing supplier and returns the updated state.
func (c *Client) UpdateSupplier(ctx context.Context, id models.ID, in models.SupplierInput) (models.Supplier, error) {
	var updated models.Supplier
	req := http.Patch(c.url(fmt.Sprintf("/suppliers/%s", id))).WithContext(ctx).Body(in)
	if err := c.send("suppliers.update", req, &updated); err != nil {
		return models.Supplier{}, err
	}
	return updated, nil
}

// DeleteSupplier removes a supplier.
func (c *Client) DeleteSupplier(ctx context.Context, id models.ID) error {
	req := http.Delete(c.url(fmt.Sprintf("/suppliers/%s", id))).WithContext(ctx)
	return c.send("suppliers.delete", req, nil)
}
