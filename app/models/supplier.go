package models

// Supplier is one supplier record. Category shares the product
// classification set.
type Supplier struct {
	ID            ID     `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	Category      string `json:"category"`
}

// SupplierInput carries the editable fields for create and update calls.
type SupplierInput struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	Category      string `json:"category"`
}
