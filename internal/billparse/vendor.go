package billparse

import "strings"

// vendorScanDepth bounds the vendor search: merchant names sit in the first
// few printed lines of almost every receipt.
const vendorScanDepth = 6

// extractVendor finds the merchant name near the top of the receipt. Contact
// boilerplate is skipped and the first multi-word line with a real run of
// letters wins. When nothing qualifies it falls back to the first non-empty
// candidate line, then to the UnknownVendor sentinel.
func extractVendor(lines []string) string {
	head := lines
	if len(head) > vendorScanDepth {
		head = head[:vendorScanDepth]
	}
	for _, line := range head {
		if headerNoiseRe.MatchString(line) {
			continue
		}
		if alphaRunRe.MatchString(line) && len(strings.Fields(line)) >= 2 {
			return line
		}
	}
	for _, line := range head {
		if line != "" {
			return line
		}
	}
	return UnknownVendor
}

// extractDate returns the first date-shaped token found anywhere in the text,
// verbatim, or "" when there is none. No attempt is made to disambiguate
// multiple date-like tokens (receipt date vs printed-on date).
func extractDate(lines []string) string {
	for _, line := range lines {
		if m := dateRe.FindString(line); m != "" {
			return m
		}
	}
	return ""
}
