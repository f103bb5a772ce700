package engine

import (
	"bytes"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
	"github.com/pkg/errors"

	"ocr-shim/internal/logger"
	"ocr-shim/internal/ocr"
)

// tesseractLanguages maps short language codes to tesseract traineddata names.
var tesseractLanguages = map[string]string{
	"en":          "eng",
	"ch":          "chi_sim",
	"chinese_cht": "chi_tra",
	"fr":          "fra",
	"french":      "fra",
	"de":          "deu",
	"german":      "deu",
	"es":          "spa",
	"it":          "ita",
	"pt":          "por",
	"ru":          "rus",
	"ja":          "jpn",
	"japan":       "jpn",
	"ko":          "kor",
	"korean":      "kor",
	"ar":          "ara",
}

type TesseractEngine struct {
	clientFactory func() *gosseract.Client
	languages     []string
	useAngleCls   bool
	pageSegMode   gosseract.PageSegMode
	whitelist     string
}

var _ ocr.ClassifyingEngine = (*TesseractEngine)(nil)

func NewTesseractEngine(opts ocr.Options) *TesseractEngine {
	psm := gosseract.PageSegMode(opts.PageSegMode)
	if opts.PageSegMode <= 0 {
		psm = gosseract.PSM_AUTO
	}
	return &TesseractEngine{
		clientFactory: gosseract.NewClient,
		languages:     tesseractLanguageCodes(opts.Lang),
		useAngleCls:   opts.UseAngleCls,
		pageSegMode:   psm,
		whitelist:     opts.Whitelist,
	}
}

func (t *TesseractEngine) Recognize(imagePath string) (ocr.Result, error) {
	return t.RecognizeWithClassification(imagePath, false)
}

// RecognizeWithClassification recognizes the image upright and, when cls is
// requested and the engine was built with angle classification, also rotated
// by 180 degrees. The reading with the higher mean confidence wins.
func (t *TesseractEngine) RecognizeWithClassification(imagePath string, cls bool) (ocr.Result, error) {
	img, err := imaging.Open(imagePath, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "opening image %s", imagePath)
	}

	page, err := t.recognizeImage(img)
	if err != nil {
		return nil, errors.Wrapf(err, "recognizing %s", imagePath)
	}

	if cls && t.useAngleCls {
		flipped, err := t.recognizeImage(imaging.Rotate180(img))
		if err != nil {
			return nil, errors.Wrapf(err, "recognizing %s rotated", imagePath)
		}
		logger.DebugLog("[TesseractEngine]: %s upright confidence=%.3f rotated confidence=%.3f",
			imagePath, page.MeanConfidence(), flipped.MeanConfidence())
		if flipped.MeanConfidence() > page.MeanConfidence() {
			page = unrotatePage(flipped, img.Bounds())
		}
	}

	return []ocr.Page{page}, nil
}

func (t *TesseractEngine) Close() error {
	return nil
}

func (t *TesseractEngine) recognizeImage(img image.Image) (ocr.Page, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(err, "encoding image")
	}

	client := t.clientFactory()
	defer client.Close()

	if err := client.SetLanguage(t.languages...); err != nil {
		return nil, errors.Wrap(err, "setting languages")
	}
	if err := client.SetPageSegMode(t.pageSegMode); err != nil {
		return nil, errors.Wrap(err, "setting page segmentation mode")
	}
	if t.whitelist != "" {
		if err := client.SetWhitelist(t.whitelist); err != nil {
			return nil, errors.Wrap(err, "setting whitelist")
		}
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, errors.Wrap(err, "setting image")
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, errors.Wrap(err, "reading text lines")
	}
	return linesFromBoxes(boxes), nil
}

func linesFromBoxes(boxes []gosseract.BoundingBox) ocr.Page {
	page := make(ocr.Page, 0, len(boxes))
	for _, b := range boxes {
		text := cleanText(b.Word)
		if text == "" {
			continue
		}
		page = append(page, ocr.Line{
			Box:        ocr.BoxFromRect(b.Box),
			Text:       text,
			Confidence: b.Confidence / 100.0,
		})
	}
	return page
}

func cleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// unrotatePage maps lines read from the 180 degree rotated image back into
// the coordinates of the original image of the given bounds.
func unrotatePage(page ocr.Page, bounds image.Rectangle) ocr.Page {
	w, h := bounds.Dx(), bounds.Dy()
	flip := func(p image.Point) image.Point {
		return image.Pt(w-p.X, h-p.Y)
	}
	out := make(ocr.Page, len(page))
	for i, l := range page {
		// top-left of the rotated box is the bottom-right of the original
		l.Box = ocr.Box{flip(l.Box[2]), flip(l.Box[3]), flip(l.Box[0]), flip(l.Box[1])}
		out[i] = l
	}
	return out
}

// tesseractLanguageCodes accepts "en" style codes, joined with "+" for
// several languages. Unknown codes are passed to tesseract unchanged.
func tesseractLanguageCodes(lang string) []string {
	if lang == "" {
		lang = "en"
	}
	var codes []string
	for _, l := range strings.Split(lang, "+") {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == "" {
			continue
		}
		if code, ok := tesseractLanguages[l]; ok {
			l = code
		}
		codes = append(codes, l)
	}
	if len(codes) == 0 {
		codes = []string{"eng"}
	}
	return codes
}
