package invoiceformat

import (
	"encoding/json"
	"fmt"
	"os"
)

// Parse parses an invoice submission from a byte slice. It only reports
// malformed JSON; field-level checks are left to Validate so callers get
// the complete error set in one pass.
func Parse(data []byte) (*Invoice, error) {
	var inv Invoice
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("failed to parse invoice data: %w", err)
	}
	return &inv, nil
}

// ParseFile parses an invoice submission from disk
func ParseFile(path string) (*Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read invoice file: %w", err)
	}

	return Parse(data)
}

// ToJSON converts an Invoice to JSON bytes
func (inv *Invoice) ToJSON() ([]byte, error) {
	return json.MarshalIndent(inv, "", "  ")
}
