//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNewSourceReturnsError(t *testing.T) {
	source, err := NewSource()
	if err == nil {
		t.Error("Expected error from NewSource() when OCR is disabled")
	}
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if source != nil {
		t.Error("Expected nil source when OCR is disabled")
	}
}

func TestCloseOnNilSource(t *testing.T) {
	var source *Source
	if err := source.Close(); err != nil {
		t.Errorf("Close on nil source should not error: %v", err)
	}
}

func TestStubSceneFromImage(t *testing.T) {
	var source Source
	scene, err := source.SceneFromImage([]byte{})
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if scene != nil {
		t.Error("Expected nil scene from stub")
	}
}
