package invoiceformat

import (
	"fmt"
	"strings"
)

// FieldError describes a single validation violation. Field is the dotted
// JSON path of the offending field, Message the human-readable text shown
// to the caller.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Message }

// FieldErrors is the aggregated result of validating one submission.
type FieldErrors []FieldError

// Messages flattens the error set for the API response body.
func (errs FieldErrors) Messages() []string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return msgs
}

// fieldRule declares one required scalar field: its JSON path, the label
// used in the error message, and how to read it off a submission.
type fieldRule struct {
	path  string
	label string
	value func(*Invoice) string
}

// requiredFields is the declarative schema walked by Validate. Order here
// is the order violations are reported in.
var requiredFields = []fieldRule{
	{"storeName", "Store name", func(inv *Invoice) string { return inv.StoreName }},
	{"storeDetails.address", "Store address", func(inv *Invoice) string { return inv.StoreDetails.Address }},
	{"storeDetails.city", "Store city", func(inv *Invoice) string { return inv.StoreDetails.City }},
	{"storeDetails.phone", "Store phone", func(inv *Invoice) string { return inv.StoreDetails.Phone }},
	{"storeDetails.email", "Store email", func(inv *Invoice) string { return inv.StoreDetails.Email }},
	{"invoiceDetails.invoiceNumber", "Invoice number", func(inv *Invoice) string { return inv.InvoiceDetails.InvoiceNumber }},
	{"invoiceDetails.orderNumber", "Order number", func(inv *Invoice) string { return inv.InvoiceDetails.OrderNumber }},
	{"invoiceDetails.date", "Invoice date", func(inv *Invoice) string { return inv.InvoiceDetails.Date }},
	{"invoiceDetails.time", "Invoice time", func(inv *Invoice) string { return inv.InvoiceDetails.Time }},
	{"customer.name", "Customer name", func(inv *Invoice) string { return inv.Customer.Name }},
	{"customer.address", "Customer address", func(inv *Invoice) string { return inv.Customer.Address }},
	{"customer.city", "Customer city", func(inv *Invoice) string { return inv.Customer.City }},
	{"customer.phone", "Customer phone", func(inv *Invoice) string { return inv.Customer.Phone }},
	{"deliveryPartner.name", "Delivery partner name", func(inv *Invoice) string { return inv.DeliveryPartner.Name }},
	{"deliveryPartner.trackingId", "Tracking ID", func(inv *Invoice) string { return inv.DeliveryPartner.TrackingID }},
	{"deliveryPartner.estimatedDelivery", "Estimated delivery date", func(inv *Invoice) string { return inv.DeliveryPartner.EstimatedDelivery }},
	{"paymentMethod", "Payment method", func(inv *Invoice) string { return inv.PaymentMethod }},
	{"termsAndConditions", "Terms and conditions", func(inv *Invoice) string { return inv.TermsAndConditions }},
}

// Validate checks an invoice submission and returns every violation found.
// An empty result means the invoice is renderable. Validation never
// short-circuits: all top-level and per-product checks run so the caller
// sees the complete error set in one round trip.
func Validate(inv *Invoice) FieldErrors {
	var errs FieldErrors

	for _, rule := range requiredFields {
		if strings.TrimSpace(rule.value(inv)) == "" {
			errs = append(errs, FieldError{
				Field:   rule.path,
				Message: "Missing " + rule.label,
			})
		}
	}

	if len(inv.Products) == 0 {
		errs = append(errs, FieldError{
			Field:   "products",
			Message: "At least one product is required",
		})
		return errs
	}

	for i, p := range inv.Products {
		errs = append(errs, validateProduct(i, &p)...)
	}

	return errs
}

// validateProduct checks one line item. Index is zero-based; messages are
// 1-based to match what the submitting form shows.
func validateProduct(i int, p *Product) FieldErrors {
	var errs FieldErrors

	num := i + 1
	add := func(field, msg string) {
		errs = append(errs, FieldError{
			Field:   fmt.Sprintf("products[%d].%s", i, field),
			Message: fmt.Sprintf("Product %d: %s", num, msg),
		})
	}

	if strings.TrimSpace(p.Name) == "" {
		add("name", "Missing name")
	}
	if p.Quantity.IsZero() {
		add("quantity", "Missing quantity")
	}
	if p.MRP.IsZero() {
		add("mrp", "Missing MRP")
	}
	if p.Price.IsZero() {
		add("price", "Missing price")
	}
	if p.Price.Cmp(p.MRP) > 0 {
		add("price", "Price cannot be greater than MRP")
	}

	return errs
}
