package engine

import (
	"fmt"

	"ocr-shim/internal/ocr"
)

// New builds the engine named by engineType.
func New(engineType string, opts ocr.Options) (ocr.OCREngine, error) {
	switch engineType {
	case "tesseract", "gosseract", "":
		return NewTesseractEngine(opts), nil
	case "ollama":
		return NewOllamaEngine(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ocr.ErrUnknownEngine, engineType)
	}
}
