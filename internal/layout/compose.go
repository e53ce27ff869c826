package layout

import (
	"fmt"
	"strings"
	"time"

	"github.com/billforge/invoice-engine/pkg/invoiceformat"
)

// Fixed A4 page geometry, in points.
const (
	PageWidth  = 595.0
	PageHeight = 842.0
	Margin     = 30.0
	rightEdge  = PageWidth - Margin // 565
)

// DefaultAccent is the heading color used when the submission doesn't
// override it.
const DefaultAccent = "#2c3e50"

const (
	colorBody    = "#34495e"
	colorDivider = "#aaaaaa"
	colorFooter  = "#666666"
)

var (
	tableHeaders = []string{"Item Details", "Batch/Exp", "Qty", "MRP", "Price", "Amount"}
	columnWidths = []float64{200, 80, 40, 70, 70, 75} // sums to the 535pt usable width
)

// Compose lays out a validated invoice as a drawing plan. It is pure and
// deterministic: the generation timestamp is injected, so identical input
// yields an identical plan. Band order is strictly top to bottom; each
// band's start depends only on the bands before it.
func Compose(inv *invoiceformat.Invoice, logo ImageRef, generatedAt time.Time) *Plan {
	p := &Plan{
		PageWidth:  PageWidth,
		PageHeight: PageHeight,
		Margin:     Margin,
		Logo:       logo,
	}

	accent := inv.Color
	if accent == "" {
		accent = DefaultAccent
	}

	p.header(inv, accent)
	p.divider(130)
	p.parties(inv, accent)
	rowEnd := p.itemsTable(inv, accent)
	summaryTop := p.summary(inv, accent, rowEnd)
	p.terms(inv, accent, summaryTop)
	p.footer(inv, generatedAt)

	return p
}

// header draws the logo, the store contact block and the right-aligned
// invoice metadata column.
func (p *Plan) header(inv *invoiceformat.Invoice, accent string) {
	p.image(30, 30, 80)

	p.text(inv.StoreName, 120, 40, TextOptions{Size: 20, Color: accent})

	const storeInfoY = 65.0
	body := TextOptions{Size: 10, Color: colorBody}
	p.text(inv.StoreDetails.Address, 120, storeInfoY, body)
	p.text(inv.StoreDetails.City, 120, storeInfoY+15, body)
	p.text("Phone: "+inv.StoreDetails.Phone, 120, storeInfoY+30, body)
	p.text("Email: "+inv.StoreDetails.Email, 120, storeInfoY+45, body)

	p.text("TAX INVOICE", 400, 30, TextOptions{Size: 16, Color: accent})
	p.text("Invoice No: "+inv.InvoiceDetails.InvoiceNumber, 400, 55, body)
	p.text("Order No: "+inv.InvoiceDetails.OrderNumber, 400, 70, body)
	p.text("Date: "+formatDateString(inv.InvoiceDetails.Date), 400, 85, body)
	p.text("Time: "+inv.InvoiceDetails.Time, 400, 100, body)
}

// parties draws the "Bill To" and "Delivery Details" columns.
func (p *Plan) parties(inv *invoiceformat.Invoice, accent string) {
	heading := TextOptions{Size: 12, Color: accent}
	body := TextOptions{Size: 10, Color: colorBody}

	p.text("Bill To:", 30, 150, heading)
	p.text(inv.Customer.Name, 30, 170, body)
	p.text(inv.Customer.Address, 30, 185, body)
	p.text(inv.Customer.City, 30, 200, body)
	p.text("Phone: "+inv.Customer.Phone, 30, 215, body)
	p.text("Email: "+inv.Customer.Email, 30, 230, body)

	p.text("Delivery Details:", 300, 150, heading)
	p.text("Partner: "+inv.DeliveryPartner.Name, 300, 170, body)
	p.text("Tracking ID: "+inv.DeliveryPartner.TrackingID, 300, 185, body)
	p.text("Estimated Delivery: "+inv.DeliveryPartner.EstimatedDelivery, 300, 200, body)
}

// itemsTable draws the six-column product table. Rows advance a fixed
// 30pt regardless of wrapped content; overly long cells may overdraw the
// next row. Returns the y cursor after the last row.
func (p *Plan) itemsTable(inv *invoiceformat.Invoice, accent string) float64 {
	const tableTop = 280.0

	x := Margin
	for i, h := range tableHeaders {
		p.text(h, x, tableTop, TextOptions{Width: columnWidths[i], Align: AlignLeft, Size: 10, Color: accent})
		x += columnWidths[i]
	}

	p.divider(295)

	cell := func(content string, x, y, width float64) {
		p.text(content, x, y, TextOptions{Width: width, Size: 9, Color: colorBody})
	}

	y := tableTop + 30
	for i := range inv.Products {
		prod := &inv.Products[i]

		x = Margin
		cell(prod.Name+"\n"+prod.Brand, x, y, columnWidths[0])
		x += columnWidths[0]
		cell(prod.Batch+"\n"+formatDateString(prod.Expiry), x, y, columnWidths[1])
		x += columnWidths[1]
		cell(prod.Quantity.String(), x, y, columnWidths[2])
		x += columnWidths[2]
		cell(FormatCurrency(prod.MRP), x, y, columnWidths[3])
		x += columnWidths[3]
		cell(FormatCurrency(prod.Price), x, y, columnWidths[4])
		x += columnWidths[4]
		cell(FormatCurrency(ItemTotal(prod)), x, y, columnWidths[5])

		y += 30
	}

	return y
}

// summary draws the totals block under the table and returns its top y,
// which anchors the terms band.
func (p *Plan) summary(inv *invoiceformat.Invoice, accent string, rowEnd float64) float64 {
	p.divider(rowEnd + 10)

	totals := Summarize(inv.Products)
	top := rowEnd + 30

	rows := []struct {
		label string
		value string
	}{
		{"Total MRP:", FormatCurrency(totals.MRP)},
		{"Total Discount:", FormatCurrency(totals.Discount)},
		{"Net Amount:", FormatCurrency(totals.Amount)},
		{"Payment Method:", inv.PaymentMethod},
	}

	body := TextOptions{Size: 10, Color: colorBody}
	for i, row := range rows {
		y := top + float64(i)*20
		p.text(row.label, 400, y, body)
		p.text(row.value, 490, y, TextOptions{Width: rightEdge - 490, Align: AlignRight, Size: 10, Color: colorBody})
	}

	return top
}

// terms draws the heading and one op per line of terms text. Line count
// is unbounded and not re-flowed: long terms run past the fixed page and
// under the pinned footer.
func (p *Plan) terms(inv *invoiceformat.Invoice, accent string, summaryTop float64) {
	y := summaryTop + 100
	p.text("Terms and Conditions:", 30, y, TextOptions{Size: 12, Color: accent})

	y += 20
	for i, line := range strings.Split(inv.TermsAndConditions, "\n") {
		p.text(line, 30, y+float64(i)*15, TextOptions{Width: PageWidth - 2*Margin, Size: 9, Color: colorBody})
	}
}

// footer draws the two centered lines pinned to fixed y-coordinates.
func (p *Plan) footer(inv *invoiceformat.Invoice, generatedAt time.Time) {
	p.text(
		fmt.Sprintf("Thank you for choosing %s", inv.StoreName),
		0, 780,
		TextOptions{Width: PageWidth, Align: AlignCenter, Size: 10, Color: DefaultAccent},
	)
	p.text(
		"Generated on "+FormatDateTime(generatedAt),
		0, 795,
		TextOptions{Width: PageWidth, Align: AlignCenter, Size: 8, Color: colorFooter},
	)
}

func (p *Plan) divider(y float64) {
	p.line(Margin, y, rightEdge, y, LineOptions{Color: colorDivider, Width: 1})
}
