package scanning

// Scanner runs optical character recognition over a receipt image or PDF and
// returns the recovered text, newline-delimited, exactly as read. Downstream
// parsing assumes nothing about the transcript beyond "a sequence of lines",
// so implementations must not reformat or summarize.
type Scanner interface {
	// ScanReceipt performs OCR on a receipt image/PDF and returns the raw transcript
	ScanReceipt(imageData []byte, contentType string) (string, error)
	// Close closes the scanner and releases resources
	Close() error
}
