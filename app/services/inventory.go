package services

import (
	"cmp"
	"context"
	"strings"
	"sync/atomic"

	"stockpilot/app/forms"
	"stockpilot/app/models"
	"stockpilot/internal/api"
	"stockpilot/pkg/logger"
	"stockpilot/pkg/tableview"
)

// ValidationError carries field → message for a draft that failed
// client-side validation; the network is never reached.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// InventoryService drives the products screen.
type InventoryService struct {
	client    *api.Client
	store     *tableview.Store[models.Product]
	view      *tableview.View[models.Product]
	selection *tableview.Selection
	guard     *guard
	closed    atomic.Bool
}

func productID(p models.Product) string { return string(p.ID) }

// NewInventoryService wires the products store, view and selection.
func NewInventoryService(client *api.Client) *InventoryService {
	store := tableview.NewStore(productID)
	view := tableview.NewView(store, tableview.Config[models.Product]{
		ID: productID,
		SearchFields: []func(models.Product) string{
			func(p models.Product) string { return p.Name },
			func(p models.Product) string { return p.SKU },
		},
		Sorters: map[string]tableview.Comparator[models.Product]{
			"name":     func(a, b models.Product) int { return tableview.CompareText(a.Name, b.Name) },
			"sku":      func(a, b models.Product) int { return tableview.CompareText(a.SKU, b.SKU) },
			"category": func(a, b models.Product) int { return tableview.CompareText(a.Category, b.Category) },
			"supplier": func(a, b models.Product) int { return tableview.CompareText(a.Supplier, b.Supplier) },
			"currentStock": func(a, b models.Product) int {
				return cmp.Compare(a.CurrentStock, b.CurrentStock)
			},
			"reorderPoint": func(a, b models.Product) int {
				return cmp.Compare(a.ReorderPoint, b.ReorderPoint)
			},
		},
		Filters: map[string]tableview.FilterFunc[models.Product]{
			"category": func(p models.Product, value string) bool {
				return strings.EqualFold(p.Category, value)
			},
			"stock": func(p models.Product, value string) bool {
				return p.MatchesStockFilter(value)
			},
		},
		DefaultSort: "name",
		PageSize:    10,
	})
	return &InventoryService{
		client:    client,
		store:     store,
		view:      view,
		selection: tableview.NewSelection(),
		guard:     newGuard("product"),
	}
}

// View exposes the projection for search/filter/sort/page interaction.
func (s *InventoryService) View() *tableview.View[models.Product] { return s.view }

// Selection exposes the bulk-selection tracker.
func (s *InventoryService) Selection() *tableview.Selection { return s.selection }

// Store exposes the session store, read-only by convention.
func (s *InventoryService) Store() *tableview.Store[models.Product] { return s.store }

// Close marks the service as navigated-away-from. In-flight loads that
// settle afterwards discard their results.
func (s *InventoryService) Close() { s.closed.Store(true) }

// Load fetches the catalog and resets the store. A reload also clears the
// selection, since row identity is only meaningful within one loaded set.
func (s *InventoryService) Load(ctx context.Context) error {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return err
	}
	if s.closed.Load() {
		logger.Debug("inventory: discarding load result after close")
		return nil
	}
	s.store.Reset(products)
	s.selection.Clear()
	return nil
}

// Create validates the draft, posts it, and appends the server-confirmed
// record. On any failure the store is untouched.
func (s *InventoryService) Create(ctx context.Context, form *forms.ProductForm) (models.Product, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return models.Product{}, ValidationError(errs)
	}
	created, err := s.client.CreateProduct(ctx, form.Payload())
	if err != nil {
		return models.Product{}, err
	}
	s.store.Append(created)
	return created, nil
}

// Update validates the draft, patches the record, and replaces the stored
// entry with the server-confirmed state.
func (s *InventoryService) Update(ctx context.Context, id models.ID, form *forms.ProductForm) (models.Product, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return models.Product{}, ValidationError(errs)
	}
	release, err := s.guard.begin(string(id))
	if err != nil {
		return models.Product{}, err
	}
	defer release()

	updated, err := s.client.UpdateProduct(ctx, id, form.Payload())
	if err != nil {
		return models.Product{}, err
	}
	s.store.Replace(updated)
	return updated, nil
}

// Delete removes the record server-side first; the store entry and any
// selection mark go only after the backend confirms.
func (s *InventoryService) Delete(ctx context.Context, id models.ID) error {
	release, err := s.guard.begin(string(id))
	if err != nil {
		return err
	}
	defer release()

	if err := s.client.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.store.Remove(string(id))
	s.selection.Deselect(string(id))
	return nil
}
