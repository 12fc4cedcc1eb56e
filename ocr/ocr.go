//go:build ocr

// Package ocr is the external-collaborator hook for scanned documents.
//
// When the analyzer classifies a document as scanned (IsScanned on the
// Document), its text layer holds too little text for structure recovery and
// an image-based path must take over. This package wraps the Tesseract OCR
// engine via gosseract and converts recognized word boxes back into raw
// glyph runs, so OCR output can re-enter the analysis pipeline through the
// token normalizer.
//
// It requires Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"

	// Scanned page images are commonly TIFF or BMP; register their decoders
	// alongside the stdlib formats so page height can be read for the
	// coordinate flip.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "image/jpeg"
	_ "image/png"

	"github.com/tsawler/strata/token"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeImage performs OCR on image data (PNG, JPEG, TIFF, BMP).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// RunsFromImage performs OCR on a page image and returns the recognized
// words as raw glyph runs in the analysis pipeline's coordinate space
// (origin bottom-left, Y increasing upward). The result feeds
// token.Normalize directly, after which the page can be analyzed like any
// text-layer page.
func (c *Client) RunsFromImage(imageData []byte) ([]token.RawRun, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image dimensions: %w", err)
	}

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	runs := make([]token.RawRun, 0, len(boxes))
	for _, box := range boxes {
		word := strings.TrimSpace(box.Word)
		if word == "" {
			continue
		}
		height := float64(box.Box.Dy())
		// Image coordinates have Y increasing downward from the top edge;
		// the pipeline expects the glyph-run origin at the baseline with Y
		// increasing upward.
		y := float64(cfg.Height - box.Box.Max.Y)
		runs = append(runs, token.RawRun{
			Text:      word,
			Transform: []float64{height, 0, 0, height, float64(box.Box.Min.X), y},
			Width:     float64(box.Box.Dx()),
			Height:    height,
			FontName:  "OCR",
		})
	}

	return runs, nil
}
