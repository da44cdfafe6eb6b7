package validate_test

import (
	"testing"

	"stockpilot/pkg/validate"
)

type productDraft struct {
	Name         string `json:"name"         validate:"required,min=2,max=100"`
	SKU          string `json:"sku"          validate:"required,min=2"`
	Category     string `json:"category"     validate:"required,in=Apparel,Footwear,Accessories"`
	CurrentStock int    `json:"currentStock" validate:"gte=0"`
	Email        string `json:"email"        validate:"nullable,email"`
}

func TestValidDraft(t *testing.T) {
	errs := validate.Struct(productDraft{
		Name:         "Premium T-Shirt",
		SKU:          "PTS-BLK-M",
		Category:     "Apparel",
		CurrentStock: 25,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productDraft{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["sku"]; !ok {
		t.Error("expected sku to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); len(errs) == 0 {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "ops@example.com"}); validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Category string `json:"category" validate:"required,in=Apparel,Footwear,Accessories"`
	}
	if errs := validate.Struct(in{Category: "Electronics"}); !validate.HasErrors(errs) {
		t.Error("expected invalid category to fail")
	}
	if errs := validate.Struct(in{Category: "Footwear"}); validate.HasErrors(errs) {
		t.Errorf("expected Footwear to pass: %v", errs)
	}
}

func TestInFollowedByAnotherRule(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"in=Pending,Shipped,Delivered,Canceled,max=20"`
	}
	if errs := validate.Struct(in{Status: "Shipped"}); validate.HasErrors(errs) {
		t.Errorf("expected Shipped to pass: %v", errs)
	}
	if errs := validate.Struct(in{Status: "Lost"}); !validate.HasErrors(errs) {
		t.Error("expected unknown status to fail")
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"nullable,email"`
	}
	if errs := validate.Struct(in{Email: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	if errs := validate.Struct(in{Email: "nope"}); !validate.HasErrors(errs) {
		t.Error("expected invalid non-empty email to fail")
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Stock int `json:"currentStock" validate:"gte=0"`
	}
	if errs := validate.Struct(in{Stock: -1}); !validate.HasErrors(errs) {
		t.Error("expected negative stock to fail")
	}
	if errs := validate.Struct(in{Stock: 0}); validate.HasErrors(errs) {
		t.Errorf("expected zero stock to pass: %v", errs)
	}
}
