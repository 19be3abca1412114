//go:build ocr

package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// createTestPNG creates a simple PNG image with a dark block for testing.
// This is a very basic image that OCR might or might not recognize.
func createTestPNG(width, height int) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}

	for x := 10; x < 50; x++ {
		for y := 10; y < 30; y++ {
			img.Set(x, y, color.Black)
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func TestNewSource(t *testing.T) {
	source, err := NewSource()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer source.Close()

	if source == nil {
		t.Error("Expected non-nil source")
	}
}

func TestSceneFromImage(t *testing.T) {
	source, err := NewSource()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer source.Close()

	pngData := createTestPNG(100, 50)

	// The test image is just a rectangle, so no words are expected; the
	// scene root must still match the image size.
	scene, err := source.SceneFromImage(pngData)
	if err != nil {
		t.Fatalf("SceneFromImage failed: %v", err)
	}
	if scene.Root.Width != 100 || scene.Root.Height != 50 {
		t.Errorf("scene root = %gx%g, want 100x50", scene.Root.Width, scene.Root.Height)
	}
	for _, el := range scene.Elements {
		if el.Text == "" {
			t.Errorf("element %s has empty text", el.ID)
		}
		if !el.Bounds.IsValid() {
			t.Errorf("element %s has degenerate bounds %+v", el.ID, el.Bounds)
		}
	}
}

func TestSetLanguage(t *testing.T) {
	source, err := NewSource()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer source.Close()

	// English should always be available
	if err := source.SetLanguage("eng"); err != nil {
		t.Errorf("SetLanguage failed: %v", err)
	}
}

func TestClose(t *testing.T) {
	source, err := NewSource()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}

	if err := source.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	// Second close should also be safe (nil client)
	source.client = nil
	if err := source.Close(); err != nil {
		t.Errorf("Close on nil client failed: %v", err)
	}
}
