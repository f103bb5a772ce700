package ocr_test

import (
	"errors"
	"image"
	"testing"

	"ocr-shim/internal/ocr"
	"ocr-shim/internal/ocr/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() ocr.Result {
	return []ocr.Page{{
		{Box: ocr.BoxFromRect(image.Rect(10, 20, 110, 40)), Text: "INVOICE", Confidence: 0.97},
	}}
}

func TestRun_UsesClassificationWhenSupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := mocks.NewMockClassifyingEngine(ctrl)
	eng.EXPECT().RecognizeWithClassification("scan.png", true).Return(sampleResult(), nil)
	eng.EXPECT().Close().Return(nil)

	out := ocr.Run(func() (ocr.OCREngine, error) { return eng, nil }, "scan.png")

	success, ok := out.(ocr.Success)
	require.True(t, ok, "expected Success, got %#v", out)
	assert.Equal(t, sampleResult(), success.Result)
}

func TestRun_FallsBackWithoutClassification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := mocks.NewMockOCREngine(ctrl)
	eng.EXPECT().Recognize("scan.png").Return(sampleResult(), nil).Times(1)
	eng.EXPECT().Close().Return(nil)

	out := ocr.Run(func() (ocr.OCREngine, error) { return eng, nil }, "scan.png")

	assert.Equal(t, ocr.Success{Result: sampleResult()}, out)
}

func TestRun_RecognitionErrorBecomesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := mocks.NewMockClassifyingEngine(ctrl)
	eng.EXPECT().RecognizeWithClassification("missing.png", true).
		Return(nil, errors.New("open missing.png: no such file or directory"))
	eng.EXPECT().Close().Return(nil)

	out := ocr.Run(func() (ocr.OCREngine, error) { return eng, nil }, "missing.png")

	assert.Equal(t, ocr.Failure{Message: "open missing.png: no such file or directory"}, out)
}

func TestRun_ConstructionErrorBecomesFailure(t *testing.T) {
	out := ocr.Run(func() (ocr.OCREngine, error) {
		return nil, errors.New("unknown engine type: paddle")
	}, "scan.png")

	assert.Equal(t, ocr.Failure{Message: "unknown engine type: paddle"}, out)
}

func TestRun_PanicBecomesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := mocks.NewMockOCREngine(ctrl)
	eng.EXPECT().Recognize("scan.png").DoAndReturn(func(string) (ocr.Result, error) {
		panic("tesseract: bad image")
	})
	eng.EXPECT().Close().Return(nil)

	out := ocr.Run(func() (ocr.OCREngine, error) { return eng, nil }, "scan.png")

	assert.Equal(t, ocr.Failure{Message: "tesseract: bad image"}, out)
}

func TestRun_CloseErrorKeepsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := mocks.NewMockOCREngine(ctrl)
	eng.EXPECT().Recognize("scan.png").Return(sampleResult(), nil)
	eng.EXPECT().Close().Return(errors.New("already closed"))

	out := ocr.Run(func() (ocr.OCREngine, error) { return eng, nil }, "scan.png")

	assert.IsType(t, ocr.Success{}, out)
}

func TestPageMeanConfidence(t *testing.T) {
	assert.Zero(t, ocr.Page{}.MeanConfidence())
	page := ocr.Page{{Confidence: 0.5}, {Confidence: 1}}
	assert.InDelta(t, 0.75, page.MeanConfidence(), 1e-9)
}

func TestLineToList(t *testing.T) {
	line := ocr.Line{Box: ocr.BoxFromRect(image.Rect(1, 2, 3, 4)), Text: "hi", Confidence: 0.5}
	list, ok := line.ToList().([]any)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, ocr.Box{image.Pt(1, 2), image.Pt(3, 2), image.Pt(3, 4), image.Pt(1, 4)}, list[0])
	assert.Equal(t, []any{"hi", 0.5}, list[1])
}
