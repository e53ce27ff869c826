package layout

import (
	"github.com/shopspring/decimal"

	"github.com/billforge/invoice-engine/pkg/invoiceformat"
)

// Totals are the invoice-level sums shown in the summary band.
type Totals struct {
	MRP      decimal.Decimal // Σ mrp × quantity
	Amount   decimal.Decimal // Σ price × quantity
	Discount decimal.Decimal // MRP − Amount
}

// ItemTotal is the amount column for one line item: price × quantity.
func ItemTotal(p *invoiceformat.Product) decimal.Decimal {
	return p.Price.Mul(p.Quantity)
}

// Summarize accumulates the summary-band totals over all line items.
func Summarize(products []invoiceformat.Product) Totals {
	t := Totals{MRP: decimal.Zero, Amount: decimal.Zero}
	for i := range products {
		p := &products[i]
		t.MRP = t.MRP.Add(p.MRP.Mul(p.Quantity))
		t.Amount = t.Amount.Add(ItemTotal(p))
	}
	t.Discount = t.MRP.Sub(t.Amount)
	return t
}
