package scanning

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Tesseract implements the Scanner interface using a local tesseract install
// via gosseract. Unlike the LLM scanners it needs no network or API key, but
// it is far more sensitive to image quality, so scans are pre-processed
// before recognition.
type Tesseract struct {
	languages []string
}

// NewTesseract creates a new Tesseract Scanner instance. languages is a
// comma-separated list of tesseract language codes (e.g. "eng" or "eng,hin").
func NewTesseract(languages string) (*Tesseract, error) {
	var langs []string
	for _, lang := range strings.Split(languages, ",") {
		lang = strings.TrimSpace(lang)
		if lang != "" {
			langs = append(langs, lang)
		}
	}
	if len(langs) == 0 {
		langs = []string{"eng"}
	}

	return &Tesseract{languages: langs}, nil
}

// ScanReceipt runs tesseract over the receipt and returns the raw transcript
func (t *Tesseract) ScanReceipt(imageData []byte, contentType string) (string, error) {
	// Prepare image data (convert to PNG if needed)
	finalImageData, _, _, err := prepareImageData(imageData, contentType)
	if err != nil {
		return "", err
	}

	enhanced, err := enhanceForOCR(finalImageData)
	if err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.languages...); err != nil {
		return "", fmt.Errorf("setting tesseract languages: %w", err)
	}
	if err := client.SetImageFromBytes(enhanced); err != nil {
		return "", fmt.Errorf("loading image into tesseract: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text recognized in receipt")
	}

	return text, nil
}

// Close closes the Tesseract scanner (clients are per-scan, so a no-op)
func (t *Tesseract) Close() error {
	return nil
}

// enhanceForOCR sharpens a receipt photo before recognition: grayscale for
// contrast, then contrast, sharpening, brightness and gamma adjustments.
// Tesseract copes much better with flat, high-contrast input than with raw
// phone photos.
func enhanceForOCR(pngData []byte) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("decoding image for enhancement: %w", err)
	}

	img := imaging.Grayscale(src)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.5)
	img = imaging.AdjustBrightness(img, 10)
	img = imaging.AdjustGamma(img, 1.2)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding enhanced image: %w", err)
	}

	return buf.Bytes(), nil
}
