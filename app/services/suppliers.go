package services

import (
	"context"
	"strings"
	"sync/atomic"

	"stockpilot/app/forms"
	"stockpilot/app/models"
	"stockpilot/internal/api"
	"stockpilot/pkg/logger"
	"stockpilot/pkg/tableview"
)

// SupplierService drives the suppliers screen.
type SupplierService struct {
	client    *api.Client
	store     *tableview.Store[models.Supplier]
	view      *tableview.View[models.Supplier]
	selection *tableview.Selection
	guard     *guard
	closed    atomic.Bool
}

func supplierID(s models.Supplier) string { return string(s.ID) }

// NewSupplierService wires the suppliers store, view and selection.
func NewSupplierService(client *api.Client) *SupplierService {
	store := tableview.NewStore(supplierID)
	view := tableview.NewView(store, tableview.Config[models.Supplier]{
		ID: supplierID,
		SearchFields: []func(models.Supplier) string{
			func(s models.Supplier) string { return s.Name },
			func(s models.Supplier) string { return s.ContactPerson },
			func(s models.Supplier) string { return s.Email },
		},
		Sorters: map[string]tableview.Comparator[models.Supplier]{
			"name":     func(a, b models.Supplier) int { return tableview.CompareText(a.Name, b.Name) },
			"contact":  func(a, b models.Supplier) int { return tableview.CompareText(a.ContactPerson, b.ContactPerson) },
			"email":    func(a, b models.Supplier) int { return tableview.CompareText(a.Email, b.Email) },
			"category": func(a, b models.Supplier) int { return tableview.CompareText(a.Category, b.Category) },
		},
		Filters: map[string]tableview.FilterFunc[models.Supplier]{
			"category": func(s models.Supplier, value string) bool {
				return strings.EqualFold(s.Category, value)
			},
		},
		DefaultSort: "name",
		PageSize:    10,
	})
	return &SupplierService{
		client:    client,
		store:     store,
		view:      view,
		selection: tableview.NewSelection(),
		guard:     newGuard("supplier"),
	}
}

func (s *SupplierService) View() *tableview.View[models.Supplier]   { return s.view }
func (s *SupplierService) Selection() *tableview.Selection          { return s.selection }
func (s *SupplierService) Store() *tableview.Store[models.Supplier] { return s.store }
func (s *SupplierService) Close()                                   { s.closed.Store(true) }

// Load fetches all suppliers and resets the store.
func (s *SupplierService) Load(ctx context.Context) error {
	suppliers, err := s.client.ListSuppliers(ctx)
	if err != nil {
		return err
	}
	if s.closed.Load() {
		logger.Debug("suppliers: discarding load result after close")
		return nil
	}
	s.store.Reset(suppliers)
	s.selection.Clear()
	return nil
}

// Create validates the draft, posts it, and appends the confirmed record.
func (s *SupplierService) Create(ctx context.Context, form *forms.SupplierForm) (models.Supplier, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return models.Supplier{}, ValidationError(errs)
	}
	created, err := s.client.CreateSupplier(ctx, form.Payload())
	if err != nil {
		return models.Supplier{}, err
	}
	s.store.Append(created)
	return created, nil
}

// Update validates the draft, patches the supplier, and replaces the stored
// entry with the confirmed state.
func (s *SupplierService) Update(ctx context.Context, id models.ID, form *forms.SupplierForm) (models.Supplier, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return models.Supplier{}, ValidationError(errs)
	}
	release, err := s.guard.begin(string(id))
	if err != nil {
		return models.Supplier{}, err
	}
	defer release()

	updated, err := s.client.UpdateSupplier(ctx, id, form.Payload())
	if err != nil {
		return models.Supplier{}, err
	}
	s.store.Replace(updated)
	return updated, nil
}

// Delete removes the supplier after backend confirmation.
func (s *SupplierService) Delete(ctx context.Context, id models.ID) error {
	release, err := s.guard.begin(string(id))
	if err != nil {
		return err
	}
	defer release()

	if err := s.client.DeleteSupplier(ctx, id); err != nil {
		return err
	}
	s.store.Remove(string(id))
	s.selection.Deselect(string(id))
	return nil
}
