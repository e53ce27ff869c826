package invoiceformat

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse_ValidSubmission(t *testing.T) {
	data := []byte(`{
		"storeName": "City Pharmacy",
		"storeDetails": {"address": "12 MG Road", "city": "Bengaluru", "phone": "080-1234567", "email": "hello@citypharmacy.in"},
		"invoiceDetails": {"invoiceNumber": "INV-1001", "orderNumber": "ORD-2002", "date": "2024-03-15", "time": "14:30"},
		"customer": {"name": "Asha Rao", "address": "4 Lake View", "city": "Bengaluru", "phone": "99860-00000"},
		"deliveryPartner": {"name": "QuickShip", "trackingId": "QS-777", "estimatedDelivery": "2024-03-18"},
		"paymentMethod": "UPI",
		"termsAndConditions": "No returns.",
		"products": [
			{"name": "Paracetamol", "brand": "Calpol", "batch": "B-42", "expiry": "2025-01-01", "quantity": 2, "mrp": 50.00, "price": 45.00}
		]
	}`)

	inv, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if inv.StoreName != "City Pharmacy" {
		t.Errorf("Unexpected store name: %q", inv.StoreName)
	}
	if len(inv.Products) != 1 {
		t.Fatalf("Expected 1 product, got %d", len(inv.Products))
	}
	if !inv.Products[0].MRP.Equal(decimal.RequireFromString("50")) {
		t.Errorf("Unexpected MRP: %s", inv.Products[0].MRP)
	}
	if errs := Validate(inv); len(errs) != 0 {
		t.Errorf("Parsed submission should validate, got %v", errs.Messages())
	}
}

func TestParse_StringMoneyValues(t *testing.T) {
	// Browser forms often submit money fields as strings
	data := []byte(`{"products": [{"name": "Item", "quantity": "3", "mrp": "10.50", "price": "9.99"}]}`)

	inv, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !inv.Products[0].Price.Equal(decimal.RequireFromString("9.99")) {
		t.Errorf("Unexpected price: %s", inv.Products[0].Price)
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"storeName": `)); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}
