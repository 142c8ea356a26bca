package billparse

import "regexp"

// The keyword vocabularies live here as named patterns so they can be tuned
// and tested independently of the extractor control flow.
var (
	// headerNoiseRe matches contact-info boilerplate near the top of a
	// receipt: emails, domains, phone numbers and brand markers. Lines
	// matching it are never a vendor name or a line item.
	headerNoiseRe = regexp.MustCompile(`(?i)@|www\.|\.com|\.net|quantiv|phone|tel:|email`)

	// financialLineRe matches structural receipt lines (totals, taxes,
	// payment and boilerplate sections) that must never become line items.
	financialLineRe = regexp.MustCompile(`(?i)subtotal|total amount|total[:\s]|tax|gst|vat|payment|invoice|terms|contact|address|date`)

	// subtotalRe captures the amount on an explicit subtotal line, with an
	// optional currency symbol between keyword and value.
	subtotalRe = regexp.MustCompile(`(?i)subtotal[:\s]*[$₹€]?([\d,]+\.\d{1,2}|\d+)`)

	// taxKeywordRe matches any line carrying tax evidence.
	taxKeywordRe = regexp.MustCompile(`(?i)tax|gst|cgst|sgst|vat|service\s?tax`)

	// totalLineRe matches an explicit total line. The word boundary keeps it
	// from firing on "Subtotal:".
	totalLineRe = regexp.MustCompile(`(?i)\btotal\s*[:\s]`)

	// percentRe captures a percentage token such as "18%" or "7.5 %".
	percentRe = regexp.MustCompile(`(\d{1,2}(?:\.\d+)?)\s?%`)

	// dateRe matches either a numeric D/M/Y date (1-2 digit day and month,
	// 2-4 digit year, slash or dash separated) or a textual "Month D, Y".
	dateRe = regexp.MustCompile(`\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}|[A-Za-z]+\s\d{1,2},\s\d{4}`)

	// numberRe finds numeric substrings left to right, including decimals and
	// thousands separators. The ordering is load-bearing: item decomposition
	// assumes the last match is the rightmost (price) column.
	numberRe = regexp.MustCompile(`[0-9][0-9.,]*`)

	// alphaRunRe requires at least one run of two or more letters, which
	// separates vendor names from barcodes and reference numbers.
	alphaRunRe = regexp.MustCompile(`[A-Za-z]{2,}`)
)

// Payment vocabularies, tested in priority order against the lower-cased full
// receipt text. The first matching category wins.
var (
	upiRe          = regexp.MustCompile(`upi|gpay|phonepe|paytm`)
	cardRe         = regexp.MustCompile(`credit\s?card|debit\s?card|\bcard\b`)
	bankTransferRe = regexp.MustCompile(`bank\s?transfer`)
	cashRe         = regexp.MustCompile(`cash`)
)

// currencySymbols are stripped from item-name tokens and recognized as price
// prefixes. No conversion happens; symbols are treated purely as noise.
const currencySymbols = "$₹€"
