package layout

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateLayout     = "02/01/2006"       // dd/MM/yyyy
	dateTimeLayout = "02/01/2006 15:04" // generation timestamp
)

// FormatCurrency renders an amount to 2 decimal places with the rupee
// glyph prefix.
func FormatCurrency(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}

// FormatDate renders a calendar date as dd/MM/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatDateTime renders the generation timestamp as dd/MM/yyyy HH:mm.
func FormatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// formatDateString parses a submitted date string and reformats it as
// dd/MM/yyyy. Unparseable values pass through unchanged rather than
// failing a render over a cosmetic field.
func formatDateString(s string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02", dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return FormatDate(t)
		}
	}
	return s
}
