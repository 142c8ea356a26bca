// Package billparse reconstructs a structured bill record from the raw,
// line-oriented text an OCR step recovers from a photographed or scanned
// retail receipt. All extraction is heuristic and best-effort: OCR noise makes
// some inputs fundamentally ambiguous, so unparseable tokens are dropped
// rather than reported as errors and every extractor degrades to a sentinel,
// an absent value, or zero.
package billparse

import "strings"

// UnknownVendor is returned when no plausible merchant name is found.
const UnknownVendor = "Unknown Vendor"

// PaymentMode is the payment method recognized on a receipt.
type PaymentMode string

const (
	PaymentUPI          PaymentMode = "UPI"
	PaymentCreditCard   PaymentMode = "Credit Card"
	PaymentBankTransfer PaymentMode = "Bank Transfer"
	PaymentCash         PaymentMode = "Cash"
	PaymentUnknown      PaymentMode = "Unknown"
)

// LineItem is a single purchasable item recovered from a receipt line.
type LineItem struct {
	Name  string  `json:"name"`
	Qty   float64 `json:"qty"`
	Price float64 `json:"price"`
}

// BillRecord is the structured result of parsing one receipt. Date holds the
// raw matched token as printed on the receipt (OCR date tokens are too
// unreliable to canonicalize) and is empty when no date was found. Subtotal is
// nil when there were no line items and no subtotal keyword line.
type BillRecord struct {
	Vendor      string      `json:"vendor"`
	Date        string      `json:"date"`
	Items       []LineItem  `json:"items"`
	Subtotal    *float64    `json:"subtotal"`
	Tax         float64     `json:"tax"`
	Total       float64     `json:"total"`
	PaymentMode PaymentMode `json:"payment_mode"`
}

// Parse turns a raw OCR text blob into a BillRecord. It is a pure function
// over the input text: total, deterministic, and safe to call concurrently.
func Parse(rawText string) BillRecord {
	lines := normalizeLines(rawText)

	items := extractItems(lines)
	subtotal, subtotalSrc := extractSubtotal(lines, items)
	tax, _ := extractTax(lines, subtotal)
	total, _ := extractTotal(lines, subtotal, tax)

	record := BillRecord{
		Vendor:      extractVendor(lines),
		Date:        extractDate(lines),
		Items:       items,
		Tax:         tax,
		Total:       total,
		PaymentMode: detectPaymentMode(lines),
	}
	if subtotalSrc != amountMissing {
		v := subtotal
		record.Subtotal = &v
	}
	return record
}

// normalizeLines splits the raw OCR blob into trimmed, non-empty lines. This
// is the shared input to every extractor.
func normalizeLines(rawText string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
