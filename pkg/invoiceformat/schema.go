// Package invoiceformat defines the types for invoice submissions
package invoiceformat

import "github.com/shopspring/decimal"

// Invoice represents the root structure of an invoice submission
type Invoice struct {
	StoreName          string          `json:"storeName"`
	StoreDetails       StoreDetails    `json:"storeDetails"`
	InvoiceDetails     InvoiceDetails  `json:"invoiceDetails"`
	Customer           Customer        `json:"customer"`
	DeliveryPartner    DeliveryPartner `json:"deliveryPartner"`
	Color              string          `json:"color,omitempty"` // accent hex, defaults to #2c3e50
	PaymentMethod      string          `json:"paymentMethod"`
	TermsAndConditions string          `json:"termsAndConditions"` // newline-delimited free text
	Products           []Product       `json:"products"`
}

// StoreDetails holds the issuing store's contact block
type StoreDetails struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// InvoiceDetails holds the invoice metadata shown top-right
type InvoiceDetails struct {
	InvoiceNumber string `json:"invoiceNumber"`
	OrderNumber   string `json:"orderNumber"`
	Date          string `json:"date"` // RFC3339 or yyyy-MM-dd
	Time          string `json:"time"`
}

// Customer is the "Bill To" party
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
}

// DeliveryPartner holds shipment details
type DeliveryPartner struct {
	Name              string `json:"name"`
	TrackingID        string `json:"trackingId"`
	EstimatedDelivery string `json:"estimatedDelivery"`
}

// Product is a single invoice line item. Money fields are decimals so
// totals stay exact to 2 places.
type Product struct {
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	Batch    string          `json:"batch"`
	Expiry   string          `json:"expiry"` // RFC3339 or yyyy-MM-dd
	Quantity decimal.Decimal `json:"quantity"`
	MRP      decimal.Decimal `json:"mrp"`
	Price    decimal.Decimal `json:"price"`
}
