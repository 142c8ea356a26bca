package billparse

import "strings"

// detectPaymentMode keyword-matches the lower-cased full text against the
// payment vocabularies in priority order. Categories are mutually exclusive
// by priority, not by exhaustive disambiguation: a receipt mentioning both
// "upi" and "cash" classifies as UPI.
func detectPaymentMode(lines []string) PaymentMode {
	text := strings.ToLower(strings.Join(lines, " "))
	switch {
	case upiRe.MatchString(text):
		return PaymentUPI
	case cardRe.MatchString(text):
		return PaymentCreditCard
	case bankTransferRe.MatchString(text):
		return PaymentBankTransfer
	case cashRe.MatchString(text):
		return PaymentCash
	}
	return PaymentUnknown
}
