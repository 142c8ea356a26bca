package billing

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Dhanashyamvk/Fintrax/internal/billparse"
	"github.com/Dhanashyamvk/Fintrax/internal/scanning"
)

// IDGenerator generates unique IDs for bills
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// defaultIDGenerator generates IDs using UnixNano timestamp
type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service handles bill operations
type Service struct {
	db          DB
	scanner     scanning.Scanner
	storage     Storage
	idGenerator IDGenerator
	timeSource  TimeSource
}

// NewService creates a new Service with default ID generator and time source
func NewService(db DB, scanner scanning.Scanner, storage Storage) *Service {
	return &Service{
		db:          db,
		scanner:     scanner,
		storage:     storage,
		idGenerator: &defaultIDGenerator{},
		timeSource:  &defaultTimeSource{},
	}
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(db DB, scanner scanning.Scanner, storage Storage, idGen IDGenerator, timeSrc TimeSource) *Service {
	return &Service{
		db:          db,
		scanner:     scanner,
		storage:     storage,
		idGenerator: idGen,
		timeSource:  timeSrc,
	}
}

// sanitizeFilename cleans up a filename by removing special characters and truncating length
func sanitizeFilename(filename string) string {
	// Get the extension
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	// Remove special characters, keep only alphanumeric, spaces, hyphens, and underscores
	reg := regexp.MustCompile(`[^a-zA-Z0-9\s\-_]`)
	base = reg.ReplaceAllString(base, "")

	// Replace multiple spaces with single space
	reg = regexp.MustCompile(`\s+`)
	base = reg.ReplaceAllString(base, " ")

	// Trim spaces
	base = strings.TrimSpace(base)

	// Truncate to reasonable length (50 chars for base, plus extension)
	maxLen := 50
	if len(base) > maxLen {
		base = base[:maxLen]
	}

	// If base is empty after sanitization, use a default
	if base == "" {
		base = "bill"
	}

	return base + ext
}

// ProcessBill stores an uploaded receipt file, runs OCR over it, parses the
// transcript into a structured bill and persists the result
func (s *Service) ProcessBill(filename string, data []byte, contentType string) (*Bill, error) {
	// Generate unique ID
	id := s.idGenerator.Generate()
	now := s.timeSource.Now()

	// Sanitize filename to clean up phone-generated long filenames
	cleanFilename := sanitizeFilename(filename)

	// Save file to storage
	savedPath, err := s.storage.Save(fmt.Sprintf("%s_%s", id, cleanFilename), data)
	if err != nil {
		return nil, fmt.Errorf("saving file: %w", err)
	}

	// Recover the raw text
	rawText, err := s.scanner.ScanReceipt(data, contentType)
	if err != nil {
		slog.Error("Failed to scan bill",
			"filename", filename,
			"content_type", contentType,
			"file_size", len(data),
			"error", err,
		)
		// Clean up the saved file since scanning failed
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("scanning bill: %w", err)
	}

	// Parsing never fails; it degrades to sentinel and zero values
	record := billparse.Parse(rawText)
	slog.Info("Parsed bill",
		"vendor", record.Vendor,
		"items", len(record.Items),
		"total", record.Total,
		"payment_mode", record.PaymentMode,
	)

	bill := &Bill{
		ID:          id,
		Vendor:      record.Vendor,
		Date:        record.Date,
		Items:       record.Items,
		Subtotal:    record.Subtotal,
		Tax:         record.Tax,
		Total:       record.Total,
		PaymentMode: record.PaymentMode,
		RawText:     rawText,
		Filename:    savedPath,
		ContentType: contentType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Save to database
	if err := s.db.SaveBill(bill); err != nil {
		// Clean up file if database save fails
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("saving bill to database: %w", err)
	}

	return bill, nil
}

// GetBill retrieves a bill by ID
func (s *Service) GetBill(id string) (*Bill, error) {
	bill, err := s.db.GetBill(id)
	if err != nil {
		return nil, fmt.Errorf("getting bill: %w", err)
	}
	return bill, nil
}

// ListBills returns all bills
func (s *Service) ListBills() ([]*Bill, error) {
	bills, err := s.db.ListBills()
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}
	return bills, nil
}

// DeleteBill removes a bill and its file
func (s *Service) DeleteBill(id string) error {
	bill, err := s.db.GetBill(id)
	if err != nil {
		return fmt.Errorf("getting bill for deletion: %w", err)
	}

	// Delete file
	if err := s.storage.Delete(bill.Filename); err != nil {
		// Log error but continue with database deletion
		slog.Warn("Failed to delete file", "filename", bill.Filename, "error", err)
	}

	// Delete from database
	if err := s.db.DeleteBill(id); err != nil {
		return fmt.Errorf("deleting bill from database: %w", err)
	}
	return nil
}

// GetBillFile retrieves the original uploaded file for a bill
func (s *Service) GetBillFile(id string) ([]byte, string, error) {
	bill, err := s.db.GetBill(id)
	if err != nil {
		return nil, "", fmt.Errorf("getting bill: %w", err)
	}

	data, err := s.storage.Get(bill.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("getting bill file: %w", err)
	}

	return data, bill.ContentType, nil
}

// Summarize aggregates all stored bills into spend totals per payment mode
func (s *Service) Summarize() (*Summary, error) {
	bills, err := s.db.ListBills()
	if err != nil {
		return nil, fmt.Errorf("listing bills for summary: %w", err)
	}

	summary := &Summary{
		BillCount:     len(bills),
		ByPaymentMode: make(map[string]float64),
	}
	for _, bill := range bills {
		summary.GrossSpend += bill.Total
		summary.TaxPaid += bill.Tax
		summary.ByPaymentMode[string(bill.PaymentMode)] += bill.Total
	}

	summary.GrossSpend = round2(summary.GrossSpend)
	summary.TaxPaid = round2(summary.TaxPaid)
	for mode, spend := range summary.ByPaymentMode {
		summary.ByPaymentMode[mode] = round2(spend)
	}

	return summary, nil
}

// round2 rounds to currency minor-unit precision
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
