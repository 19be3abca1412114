//go:build ocr

// Package ocr builds scenes from screenshots. For design artifacts that
// exist only as images, the Tesseract engine (via gosseract) provides word
// boxes that become positioned text elements, enough for proximity grouping
// and direction analysis to run on.
//
// This package requires Tesseract to be installed and the "ocr" build tag.
// On macOS, install via:
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
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/proxima/model"
)

// MinWordConfidence is the Tesseract word confidence (0-100) below which a
// recognized word is discarded.
const MinWordConfidence = 40.0

// Source recognizes text in screenshots and exposes it as scene elements.
type Source struct {
	client *gosseract.Client
}

// NewSource creates an OCR scene source.
// The source should be closed when no longer needed to release resources.
func NewSource() (*Source, error) {
	return &Source{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (s *Source) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (s *Source) SetLanguage(lang string) error {
	return s.client.SetLanguage(lang)
}

// SceneFromImage recognizes the words in image data (PNG or JPEG) and
// returns a scene whose root matches the image size, with one text element
// per confidently recognized word.
func (s *Source) SceneFromImage(imageData []byte) (*model.Scene, error) {
	config, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("reading image size: %w", err)
	}

	if err := s.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := s.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	scene := &model.Scene{
		Root: model.NewBBox(0, 0, float64(config.Width), float64(config.Height)),
	}
	for i, box := range boxes {
		word := strings.TrimSpace(box.Word)
		if word == "" || box.Confidence < MinWordConfidence {
			continue
		}

		bounds := model.NewBBox(
			float64(box.Box.Min.X),
			float64(box.Box.Min.Y),
			float64(box.Box.Dx()),
			float64(box.Box.Dy()),
		)
		scene.Elements = append(scene.Elements, model.Element{
			ID:       fmt.Sprintf("word-%d", i),
			Type:     model.ElementTypeText,
			Bounds:   bounds,
			Visible:  true,
			Text:     word,
			FontSize: bounds.Height,
		})
	}

	return scene, nil
}
