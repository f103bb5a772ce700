package ocr

import (
	"errors"
	"image"
	"time"
)

var ErrUnknownEngine = errors.New("unknown engine type")

// Result is the engine's recognition output. Its shape is engine-defined and
// is only serialized, never interpreted, by the shim.
type Result any

// Box holds the four corners of a text region, clockwise from top-left.
type Box [4]image.Point

func BoxFromRect(r image.Rectangle) Box {
	return Box{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// Line is one detected text region.
type Line struct {
	Box        Box
	Text       string
	Confidence float64
}

// ToList lays the line out as [box, [text, confidence]].
func (l Line) ToList() any {
	return []any{l.Box, []any{l.Text, l.Confidence}}
}

// Page is the list of lines detected in one image.
type Page []Line

// MeanConfidence is zero for an empty page.
func (p Page) MeanConfidence() float64 {
	if len(p) == 0 {
		return 0
	}
	var sum float64
	for _, l := range p {
		sum += l.Confidence
	}
	return sum / float64(len(p))
}

type Options struct {
	Lang        string
	UseAngleCls bool
	// Tesseract
	PageSegMode int
	Whitelist   string
	// Ollama
	BaseURL string
	Model   string
	Timeout time.Duration // zero means no timeout
}

//go:generate mockgen -destination=mocks/mock_engine.go -package=mocks ocr-shim/internal/ocr OCREngine,ClassifyingEngine

type OCREngine interface {
	Recognize(imagePath string) (Result, error)
	Close() error
}

// OrientationClassifier is implemented by engines whose recognition pass can
// detect and correct text rotation.
type OrientationClassifier interface {
	RecognizeWithClassification(imagePath string, cls bool) (Result, error)
}

// ClassifyingEngine is an engine that supports orientation classification.
type ClassifyingEngine interface {
	OCREngine
	OrientationClassifier
}

// Outcome is either Success or Failure.
type Outcome interface {
	isOutcome()
}

type Success struct {
	Result Result
}

type Failure struct {
	Message string
}

func (Success) isOutcome() {}
func (Failure) isOutcome() {}
