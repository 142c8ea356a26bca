package billparse

import "strconv"

// amountSource tags how a monetary value was resolved. The public BillRecord
// exposes only the final value; the tag keeps the fallback chains explainable
// and testable.
type amountSource int

const (
	amountMissing amountSource = iota
	amountFromKeyword
	amountDerived
	amountDefaulted
)

// extractSubtotal returns the value of the first explicit subtotal line, or
// falls back to the sum of qty*price over the extracted items. The source is
// amountMissing when there is neither.
func extractSubtotal(lines []string, items []LineItem) (float64, amountSource) {
	for _, line := range lines {
		if m := subtotalRe.FindStringSubmatch(line); m != nil {
			if v, ok := cleanNumberToken(m[1]); ok {
				return v, amountFromKeyword
			}
		}
	}
	if len(items) > 0 {
		var sum float64
		for _, it := range items {
			sum += it.Qty * it.Price
		}
		return round2(sum), amountDerived
	}
	return 0, amountMissing
}

// extractTax scans for the first keyworded tax line and takes the maximum of
// its non-percentage numbers: on layouts like "Tax 18% 45.00" the percentage
// is excluded and the currency amount survives. Without a usable keyword line
// it falls back to the first percentage token anywhere, computing
// subtotal * percent/100, and finally defaults to zero.
func extractTax(lines []string, subtotal float64) (float64, amountSource) {
	for _, line := range lines {
		if !taxKeywordRe.MatchString(line) {
			continue
		}
		var max float64
		found := false
		for _, tok := range extractNumberTokens(line) {
			if isPercentToken(line, tok) {
				continue
			}
			if !found || tok.value > max {
				max = tok.value
				found = true
			}
		}
		if found {
			return round2(max), amountFromKeyword
		}
	}

	for _, line := range lines {
		if m := percentRe.FindStringSubmatch(line); m != nil {
			percent, err := strconv.ParseFloat(m[1], 64)
			if err == nil {
				return round2(subtotal * percent / 100), amountDerived
			}
		}
	}

	return 0, amountDefaulted
}

// extractTotal returns the maximum number on the first explicit total line,
// or derives subtotal + tax when no such line carries a number.
func extractTotal(lines []string, subtotal, tax float64) (float64, amountSource) {
	for _, line := range lines {
		if !totalLineRe.MatchString(line) {
			continue
		}
		toks := extractNumberTokens(line)
		if len(toks) == 0 {
			continue
		}
		max := toks[0].value
		for _, tok := range toks[1:] {
			if tok.value > max {
				max = tok.value
			}
		}
		return round2(max), amountFromKeyword
	}
	return round2(subtotal + tax), amountDerived
}
