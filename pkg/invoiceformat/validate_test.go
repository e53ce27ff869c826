package invoiceformat

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func validInvoice() *Invoice {
	return &Invoice{
		StoreName: "City Pharmacy",
		StoreDetails: StoreDetails{
			Address: "12 MG Road",
			City:    "Bengaluru",
			Phone:   "080-1234567",
			Email:   "hello@citypharmacy.in",
		},
		InvoiceDetails: InvoiceDetails{
			InvoiceNumber: "INV-1001",
			OrderNumber:   "ORD-2002",
			Date:          "2024-03-15",
			Time:          "14:30",
		},
		Customer: Customer{
			Name:    "Asha Rao",
			Address: "4 Lake View",
			City:    "Bengaluru",
			Phone:   "99860-00000",
			Email:   "asha@example.com",
		},
		DeliveryPartner: DeliveryPartner{
			Name:              "QuickShip",
			TrackingID:        "QS-777",
			EstimatedDelivery: "2024-03-18",
		},
		PaymentMethod:      "UPI",
		TermsAndConditions: "Goods once sold cannot be returned.\nE&OE.",
		Products: []Product{
			{
				Name:     "Paracetamol",
				Brand:    "Calpol",
				Batch:    "B-42",
				Expiry:   "2025-01-01",
				Quantity: decimal.NewFromInt(2),
				MRP:      decimal.RequireFromString("50.00"),
				Price:    decimal.RequireFromString("45.00"),
			},
		},
	}
}

func hasMessage(errs FieldErrors, msg string) bool {
	for _, e := range errs {
		if e.Message == msg {
			return true
		}
	}
	return false
}

func TestValidate_ValidInvoice(t *testing.T) {
	if errs := Validate(validInvoice()); len(errs) != 0 {
		t.Errorf("Expected valid invoice, got errors: %v", errs.Messages())
	}
}

func TestValidate_MissingScalarFields(t *testing.T) {
	inv := validInvoice()
	inv.StoreName = ""
	inv.StoreDetails.Address = ""
	inv.Customer.Phone = ""
	inv.DeliveryPartner.TrackingID = ""
	inv.PaymentMethod = ""

	errs := Validate(inv)

	want := []string{
		"Missing Store name",
		"Missing Store address",
		"Missing Customer phone",
		"Missing Tracking ID",
		"Missing Payment method",
	}
	for _, msg := range want {
		if !hasMessage(errs, msg) {
			t.Errorf("Expected error %q, got %v", msg, errs.Messages())
		}
	}
	if len(errs) != len(want) {
		t.Errorf("Expected %d errors, got %d: %v", len(want), len(errs), errs.Messages())
	}
}

func TestValidate_WhitespaceOnlyIsMissing(t *testing.T) {
	inv := validInvoice()
	inv.Customer.Name = "   "

	errs := Validate(inv)
	if !hasMessage(errs, "Missing Customer name") {
		t.Errorf("Expected whitespace-only field to count as missing, got %v", errs.Messages())
	}
}

func TestValidate_CustomerEmailOptional(t *testing.T) {
	inv := validInvoice()
	inv.Customer.Email = ""

	if errs := Validate(inv); len(errs) != 0 {
		t.Errorf("Customer email is optional, got errors: %v", errs.Messages())
	}
}

func TestValidate_NoProducts(t *testing.T) {
	inv := validInvoice()
	inv.Products = nil

	errs := Validate(inv)
	if len(errs) != 1 {
		t.Fatalf("Expected exactly one error for empty products, got %d: %v", len(errs), errs.Messages())
	}
	if errs[0].Message != "At least one product is required" {
		t.Errorf("Unexpected message: %q", errs[0].Message)
	}
}

func TestValidate_EmptyProductsSkipsPerProductChecks(t *testing.T) {
	inv := validInvoice()
	inv.Products = []Product{}

	errs := Validate(inv)
	for _, e := range errs {
		if strings.HasPrefix(e.Message, "Product ") {
			t.Errorf("Per-product check ran on empty products: %q", e.Message)
		}
	}
}

func TestValidate_MissingProductFields(t *testing.T) {
	inv := validInvoice()
	inv.Products = append(inv.Products, Product{})

	errs := Validate(inv)

	want := []string{
		"Product 2: Missing name",
		"Product 2: Missing quantity",
		"Product 2: Missing MRP",
		"Product 2: Missing price",
	}
	for _, msg := range want {
		if !hasMessage(errs, msg) {
			t.Errorf("Expected error %q, got %v", msg, errs.Messages())
		}
	}
}

func TestValidate_PriceAboveMRP(t *testing.T) {
	inv := validInvoice()
	inv.Products[0].Price = decimal.RequireFromString("55.00")

	errs := Validate(inv)
	if !hasMessage(errs, "Product 1: Price cannot be greater than MRP") {
		t.Errorf("Expected price > MRP violation, got %v", errs.Messages())
	}
}

func TestValidate_PriceAboveMRPNamesIndex(t *testing.T) {
	inv := validInvoice()
	second := inv.Products[0]
	second.Price = decimal.RequireFromString("60.00")
	third := inv.Products[0]
	inv.Products = append(inv.Products, second, third)

	errs := Validate(inv)
	if !hasMessage(errs, "Product 2: Price cannot be greater than MRP") {
		t.Errorf("Expected violation naming product 2, got %v", errs.Messages())
	}
	if hasMessage(errs, "Product 3: Price cannot be greater than MRP") {
		t.Errorf("Product 3 should be clean, got %v", errs.Messages())
	}
}

func TestValidate_PriceEqualToMRPAllowed(t *testing.T) {
	inv := validInvoice()
	inv.Products[0].Price = inv.Products[0].MRP

	if errs := Validate(inv); len(errs) != 0 {
		t.Errorf("price == mrp should be allowed, got %v", errs.Messages())
	}
}

func TestValidate_Idempotent(t *testing.T) {
	inv := validInvoice()
	inv.StoreName = ""
	inv.Products[0].Name = ""

	first := Validate(inv).Messages()
	second := Validate(inv).Messages()

	if len(first) != len(second) {
		t.Fatalf("Validation not idempotent: %d vs %d errors", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Error %d differs between runs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestValidate_FieldPaths(t *testing.T) {
	inv := validInvoice()
	inv.StoreDetails.Email = ""
	inv.Products[0].MRP = decimal.Zero
	inv.Products[0].Price = decimal.Zero

	errs := Validate(inv)

	paths := make(map[string]bool)
	for _, e := range errs {
		paths[e.Field] = true
	}
	for _, p := range []string{"storeDetails.email", "products[0].mrp", "products[0].price"} {
		if !paths[p] {
			t.Errorf("Expected a violation at path %q, got %v", p, errs)
		}
	}
}
