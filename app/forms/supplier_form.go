package forms

import (
	"strings"

	"stockpilot/app/models"
	"stockpilot/pkg/validate"
)

// SupplierForm is the staged draft for the supplier dialog.
type SupplierForm struct {
	Name          string `json:"name"           validate:"required,max=120"`
	ContactPerson string `json:"contact_person" validate:"nullable,max=120"`
	Email         string `json:"email"          validate:"required,email"`
	ContactNumber string `json:"contact_number" validate:"nullable,max=40"`
	Category      string `json:"category"       validate:"required,in=Apparel,Footwear,Accessories"`
}

// NewSupplierForm returns a form in create mode.
func NewSupplierForm() *SupplierForm {
	return &SupplierForm{Category: models.DefaultCategory}
}

// PopulateFrom stages every editable field of an existing supplier.
func (f *SupplierForm) PopulateFrom(s models.Supplier) {
	f.Name = s.Name
	f.ContactPerson = s.ContactPerson
	f.Email = s.Email
	f.ContactNumber = s.ContactNumber
	f.Category = s.Category
}

// Reset discards the draft and returns to create-mode defaults.
func (f *SupplierForm) Reset() {
	*f = *NewSupplierForm()
}

// Validate checks the draft; empty map means it may be submitted.
func (f *SupplierForm) Validate() map[string]string {
	return validate.Struct(f)
}

// Payload converts the draft into the wire input.
func (f *SupplierForm) Payload() models.SupplierInput {
	return models.SupplierInput{
		Name:          strings.TrimSpace(f.Name),
		ContactPerson: strings.TrimSpace(f.ContactPerson),
		Email:         strings.TrimSpace(f.Email),
		ContactNumber: strings.TrimSpace(f.ContactNumber),
		Category:      f.Category,
	}
}
