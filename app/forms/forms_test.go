package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpilot/app/forms"
	"stockpilot/app/models"
)

func TestNewProductFormDefaults(t *testing.T) {
	f := forms.NewProductForm()
	assert.Equal(t, "", f.Name)
	assert.Equal(t, "Apparel", f.Category)
	assert.Equal(t, "0", f.CurrentStock)
	assert.Equal(t, "10", f.ReorderPoint)
}

func TestProductFormPopulateAndReset(t *testing.T) {
	f := forms.NewProductForm()
	f.PopulateFrom(models.Product{
		ID: "1", Name: "Premium T-Shirt", SKU: "TS-001", Category: "Apparel",
		Supplier: "Global Textiles", CurrentStock: 3, ReorderPoint: 10,
	})
	assert.Equal(t, "Premium T-Shirt", f.Name)
	assert.Equal(t, "3", f.CurrentStock)

	f.Reset()
	assert.Equal(t, "", f.Name)
	assert.Equal(t, "0", f.CurrentStock)
	assert.Equal(t, "10", f.ReorderPoint)
}

func TestProductFormValidate(t *testing.T) {
	f := forms.NewProductForm()
	errs := f.Validate()
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "sku")

	f.Name = "Premium T-Shirt"
	f.SKU = "TS-001"
	f.Category = "Electronics"
	errs = f.Validate()
	assert.Contains(t, errs, "category")
	assert.NotContains(t, errs, "name")

	f.Category = "Footwear"
	f.CurrentStock = "lots"
	errs = f.Validate()
	assert.Contains(t, errs, "currentStock")

	f.CurrentStock = "25"
	require.Empty(t, f.Validate())
}

func TestProductFormPayloadCoercesNumbers(t *testing.T) {
	f := forms.NewProductForm()
	f.Name = " Canvas Belt "
	f.SKU = "BL-042"
	f.CurrentStock = "7"
	f.ReorderPoint = ""

	in := f.Payload()
	assert.Equal(t, "Canvas Belt", in.Name)
	assert.Equal(t, 7, in.CurrentStock)
	assert.Equal(t, 0, in.ReorderPoint, "blank numeric input coerces to zero")
}

func TestIntCoercion(t *testing.T) {
	assert.Equal(t, 42, forms.Int("42"))
	assert.Equal(t, 42, forms.Int(" 42 "))
	assert.Equal(t, 0, forms.Int(""))
	assert.Equal(t, 0, forms.Int("abc"))
	assert.Equal(t, 0, forms.Int("4.5"))
}

func TestSupplierFormValidate(t *testing.T) {
	f := forms.NewSupplierForm()
	f.Name = "Global Textiles"
	f.Email = "not-an-email"
	errs := f.Validate()
	assert.Contains(t, errs, "email")

	f.Email = "sales@globaltextiles.example"
	require.Empty(t, f.Validate())

	in := f.Payload()
	assert.Equal(t, "Global Textiles", in.Name)
	assert.Equal(t, "Apparel", in.Category)
}
