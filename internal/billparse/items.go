package billparse

import (
	"log/slog"
	"math"
	"strings"
)

// extractItems classifies each line as a purchasable item or not and
// decomposes item lines into name, quantity and price. Items appear in the
// order their lines appear in the source text. Lines that fail validation
// (empty name, non-positive price) are dropped entirely, never kept partial.
func extractItems(lines []string) []LineItem {
	items := make([]LineItem, 0)
	for _, line := range lines {
		if headerNoiseRe.MatchString(line) || financialLineRe.MatchString(line) {
			continue
		}

		toks := extractNumberTokens(line)
		if len(toks) == 0 {
			continue
		}

		// A bare large integer is more likely a page or reference number
		// than a price.
		if len(toks) == 1 && toks[0].value >= 10000 && !strings.ContainsAny(toks[0].raw, ".,") {
			continue
		}

		name := itemName(line)
		if name == "" {
			continue
		}

		if len(toks) >= 3 {
			slog.Debug("ambiguous item line, committing to leftmost-quantity heuristic",
				"line", line, "numbers", len(toks))
		}

		qty, price := decomposeQtyPrice(line, toks)
		price = round2(price)
		if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
			continue
		}

		items = append(items, LineItem{Name: name, Qty: qty, Price: price})
	}
	return items
}

// itemName keeps the textual tokens of a line: pure numbers and
// currency-wrapped numbers are dropped, stray currency symbols are trimmed
// from the survivors, and the result is joined with single spaces.
func itemName(line string) string {
	var kept []string
	for _, tok := range strings.Fields(line) {
		if _, ok := cleanNumberToken(tok); ok {
			continue
		}
		if hasCurrencyPrefix(tok) && strings.ContainsAny(tok, "0123456789") {
			continue
		}
		kept = append(kept, strings.Trim(tok, currencySymbols))
	}
	return strings.Join(strings.Fields(strings.Join(kept, " ")), " ")
}

func hasCurrencyPrefix(tok string) bool {
	for _, sym := range currencySymbols {
		if strings.HasPrefix(tok, string(sym)) {
			return true
		}
	}
	return false
}

// decomposeQtyPrice infers the line layout from how many numeric tokens
// appear and whether the leading one is a small integer. Receipts vary
// between "qty name total", "name price", "name qty unitprice" and
// "name qty unitprice total"; an explicit quantity column is rarely >= 100.
func decomposeQtyPrice(line string, toks []numberToken) (qty, price float64) {
	last := toks[len(toks)-1].value
	qty = 1
	price = last
	if len(toks) < 2 {
		return qty, price
	}

	first := toks[0]
	second := toks[1].value

	if isPlausibleQty(first.value) {
		qty = first.value
		switch {
		case len(toks) >= 3:
			// "name qty unitprice total": the second column is the unit price.
			price = second
		case leadsLine(line, first):
			// "qty name total": the trailing number is the line total.
			price = last / qty
		default:
			// "name qty unitprice": the trailing number is the unit price.
			price = last
		}
		return qty, price
	}

	if len(toks) == 2 {
		// "name price total": derive the quantity from the division.
		price = first.value
		q := last / price
		if math.IsNaN(q) || math.IsInf(q, 0) || math.Round(q) == 0 {
			qty = 1
		} else {
			qty = math.Round(q)
		}
		return qty, price
	}

	// Three or more numbers with an implausible leading one: treat the
	// second-to-last number as the unit price.
	price = toks[len(toks)-2].value
	return qty, price
}

// isPlausibleQty reports whether a number looks like an explicit quantity
// column: a positive integer below 100.
func isPlausibleQty(v float64) bool {
	return v == math.Trunc(v) && v > 0 && v < 100
}

// leadsLine reports whether only whitespace precedes the token, i.e. the line
// starts with its quantity column.
func leadsLine(line string, tok numberToken) bool {
	return strings.TrimSpace(line[:tok.start]) == ""
}
