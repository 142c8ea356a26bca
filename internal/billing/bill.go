package billing

import (
	"time"

	"github.com/Dhanashyamvk/Fintrax/internal/billparse"
)

// Bill is a stored receipt together with its parsed financial breakdown
type Bill struct {
	ID          string                `json:"id"`
	Vendor      string                `json:"vendor"`
	Date        string                `json:"date"` // raw date token as printed on the receipt
	Items       []billparse.LineItem  `json:"items"`
	Subtotal    *float64              `json:"subtotal"`
	Tax         float64               `json:"tax"`
	Total       float64               `json:"total"`
	PaymentMode billparse.PaymentMode `json:"payment_mode"`
	RawText     string                `json:"raw_text,omitempty"` // OCR transcript the record was parsed from
	Filename    string                `json:"filename"`
	ContentType string                `json:"content_type"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// Summary aggregates all stored bills for reporting
type Summary struct {
	BillCount     int                `json:"bill_count"`
	GrossSpend    float64            `json:"gross_spend"`
	TaxPaid       float64            `json:"tax_paid"`
	ByPaymentMode map[string]float64 `json:"by_payment_mode"` // total spend keyed by payment mode
}
