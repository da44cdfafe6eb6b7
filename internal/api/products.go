package api

import (
	"context"
	"fmt"
	"time"

	"stockpilot/app/models"
	"stockpilot/pkg/http"
)

// ListProducts fetches the full catalog. The backend returns everything in
// one page; filtering and pagination happen client-side.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	req := http.Get(c.url("/products")).WithContext(ctx).Retry(3, 500*time.Millisecond)
	if err := c.send("products.list", req, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct posts a new catalog entry and returns the stored record with
// its server-assigned identifier.
func (c *Client) CreateProduct(ctx context.Context, in models.ProductInput) (models.Product, error) {
	var created models.Product
	req := http.Post(c.url("/products")).WithContext(ctx).Body(in)
	if err := c.send("products.create", req, &created); err != nil {
		return models.Product{}, err
	}
	return created, nil
}

// UpdateProduct patches an existing record and returns the updated state.
func (c *Client) UpdateProduct(ctx context.Context, id models.ID, in models.ProductInput) (models.Product, error) {
	var updated models.Product
	req := http.Patch(c.url(fmt.Sprintf("/products/%s", id))).WithContext(ctx).Body(in)
	if err := c.send("products.update", req, &updated); err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

// DeleteProduct removes a record.
func (c *Client) DeleteProduct(ctx context.Context, id models.ID) error {
	req := http.Delete(c.url(fmt.Sprintf("/products/%s", id))).WithContext(ctx)
	return c.send("products.delete", req, nil)
}
