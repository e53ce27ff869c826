package layout

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/billforge/invoice-engine/pkg/invoiceformat"
)

func product(name, qty, mrp, price string) invoiceformat.Product {
	return invoiceformat.Product{
		Name:     name,
		Quantity: decimal.RequireFromString(qty),
		MRP:      decimal.RequireFromString(mrp),
		Price:    decimal.RequireFromString(price),
	}
}

func TestItemTotal(t *testing.T) {
	p := product("Paracetamol", "2", "50.00", "45.00")
	if got := ItemTotal(&p); !got.Equal(decimal.RequireFromString("90.00")) {
		t.Errorf("ItemTotal = %s, want 90.00", got)
	}
}

func TestSummarize_SingleProduct(t *testing.T) {
	totals := Summarize([]invoiceformat.Product{
		product("Paracetamol", "2", "50.00", "45.00"),
	})

	if !totals.MRP.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("MRP = %s, want 100.00", totals.MRP)
	}
	if !totals.Amount.Equal(decimal.RequireFromString("90.00")) {
		t.Errorf("Amount = %s, want 90.00", totals.Amount)
	}
	if !totals.Discount.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("Discount = %s, want 10.00", totals.Discount)
	}
}

func TestSummarize_MultipleProducts(t *testing.T) {
	totals := Summarize([]invoiceformat.Product{
		product("A", "3", "10.00", "8.50"),
		product("B", "1", "99.99", "99.99"),
		product("C", "2", "5.25", "5.00"),
	})

	// MRP: 30 + 99.99 + 10.50 = 140.49
	// Amount: 25.50 + 99.99 + 10.00 = 135.49
	if !totals.MRP.Equal(decimal.RequireFromString("140.49")) {
		t.Errorf("MRP = %s, want 140.49", totals.MRP)
	}
	if !totals.Amount.Equal(decimal.RequireFromString("135.49")) {
		t.Errorf("Amount = %s, want 135.49", totals.Amount)
	}
	if !totals.Discount.Equal(decimal.RequireFromString("5.00")) {
		t.Errorf("Discount = %s, want 5.00", totals.Discount)
	}
}

func TestSummarize_ExactDecimalArithmetic(t *testing.T) {
	// 0.1 + 0.2 style inputs must not drift the way float64 would
	totals := Summarize([]invoiceformat.Product{
		product("A", "3", "0.10", "0.10"),
		product("B", "1", "0.20", "0.20"),
	})

	if !totals.Amount.Equal(decimal.RequireFromString("0.50")) {
		t.Errorf("Amount = %s, want 0.50", totals.Amount)
	}
	if !totals.Discount.IsZero() {
		t.Errorf("Discount = %s, want 0", totals.Discount)
	}
}

func TestSummarize_NoProducts(t *testing.T) {
	totals := Summarize(nil)
	if !totals.MRP.IsZero() || !totals.Amount.IsZero() || !totals.Discount.IsZero() {
		t.Errorf("Empty product list should sum to zero, got %+v", totals)
	}
}
