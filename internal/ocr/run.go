package ocr

import (
	"fmt"

	"ocr-shim/internal/logger"
)

// Constructor builds an engine. It runs inside Run so construction failures
// become a Failure like any other engine error.
type Constructor func() (OCREngine, error)

// Run performs one recognition pass on imagePath. It never returns an error:
// every engine failure, panics included, is reported as a Failure.
func Run(newEngine Constructor, imagePath string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			logger.DebugLog("[Run]: engine panicked: %v", r)
			out = Failure{Message: fmt.Sprint(r)}
		}
	}()

	e, err := newEngine()
	if err != nil {
		logger.DebugLog("[Run]: failed to create OCR engine: %v", err)
		return Failure{Message: err.Error()}
	}
	defer func() {
		if err := e.Close(); err != nil {
			logger.WarnLog("[Run]: closing OCR engine: %v", err)
		}
	}()

	res, err := recognize(e, imagePath)
	if err != nil {
		logger.DebugLog("[Run]: recognition failed for %s: %v", imagePath, err)
		return Failure{Message: err.Error()}
	}
	return Success{Result: res}
}

// recognize asks for orientation classification only from engines that
// advertise it.
func recognize(e OCREngine, imagePath string) (Result, error) {
	if oc, ok := e.(OrientationClassifier); ok {
		logger.DebugLog("[recognize]: %s with orientation classification", imagePath)
		return oc.RecognizeWithClassification(imagePath, true)
	}
	logger.DebugLog("[recognize]: %s without orientation classification", imagePath)
	return e.Recognize(imagePath)
}
