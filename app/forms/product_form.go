// Package forms holds the staged drafts behind the create/edit dialogs.
//
// A form is client-side state only: populate it from an existing record or
// reset it to defaults, edit fields freely, then Validate before handing the
// payload to a service. Nothing here touches the network.
package forms

import (
	"strconv"
	"strings"

	"stockpilot/app/models"
	"stockpilot/pkg/validate"
)

// ProductForm is the staged draft for the product dialog. Numeric fields are
// kept as the user typed them and coerced on Payload, matching the loose
// text-input behavior the dialogs expose.
type ProductForm struct {
	Name         string `json:"name"         validate:"required,max=120"`
	SKU          string `json:"sku"          validate:"required,max=64"`
	Category     string `json:"category"     validate:"required,in=Apparel,Footwear,Accessories"`
	Supplier     string `json:"supplier"     validate:"nullable,max=120"`
	CurrentStock string `json:"currentStock" validate:"nullable,regex=^[0-9]+$"`
	ReorderPoint string `json:"reorderPoint" validate:"nullable,regex=^[0-9]+$"`
}

// NewProductForm returns a form in create mode: empty text fields, the
// default category, zero stock and a reorder point of 10.
func NewProductForm() *ProductForm {
	return &ProductForm{
		Category:     models.DefaultCategory,
		CurrentStock: "0",
		ReorderPoint: "10",
	}
}

// PopulateFrom stages every editable field of an existing record verbatim,
// switching the form into edit mode.
func (f *ProductForm) PopulateFrom(p models.Product) {
	f.Name = p.Name
	f.SKU = p.SKU
	f.Category = p.Category
	f.Supplier = p.Supplier
	f.CurrentStock = strconv.Itoa(p.CurrentStock)
	f.ReorderPoint = strconv.Itoa(p.ReorderPoint)
}

// Reset discards the draft and returns the form to create-mode defaults.
func (f *ProductForm) Reset() {
	*f = *NewProductForm()
}

// Validate checks the draft and returns field → message for everything wrong
// with it. An empty map means the draft may be submitted.
func (f *ProductForm) Validate() map[string]string {
	return validate.Struct(f)
}

// Payload converts the draft into the wire input. Unparseable numeric text
// coerces to zero rather than failing; Validate catches it first when the
// field carries a digits-only rule.
func (f *ProductForm) Payload() models.ProductInput {
	return models.ProductInput{
		Name:         strings.TrimSpace(f.Name),
		SKU:          strings.TrimSpace(f.SKU),
		Category:     f.Category,
		Supplier:     strings.TrimSpace(f.Supplier),
		CurrentStock: Int(f.CurrentStock),
		ReorderPoint: Int(f.ReorderPoint),
	}
}

// Int coerces user-typed numeric text to an int, yielding 0 for anything
// that does not parse. Mirrors how the dialogs treat blank number inputs.
func Int(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
