//go:build !ocr

// Package ocr builds scenes from screenshots.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All functions return ErrOCRNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"errors"

	"github.com/tsawler/proxima/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// MinWordConfidence matches the OCR-enabled implementation.
const MinWordConfidence = 40.0

// Source is a stub that returns errors for all operations.
type Source struct{}

// NewSource returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func NewSource() (*Source, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub source.
// It is safe to call on a nil source.
func (s *Source) Close() error {
	return nil
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (s *Source) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SceneFromImage returns an error indicating OCR support is not enabled.
func (s *Source) SceneFromImage(imageData []byte) (*model.Scene, error) {
	return nil, ErrOCRNotEnabled
}
