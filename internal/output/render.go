package output

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"ocr-shim/internal/ocr"
)

// Render writes outcome to w as exactly one line of JSON.
func Render(w io.Writer, outcome ocr.Outcome) error {
	var payload any
	switch o := outcome.(type) {
	case ocr.Success:
		payload = Normalize(o.Result)
	case ocr.Failure:
		payload = map[string]string{"error": o.Message}
	default:
		return errors.Errorf("unexpected outcome %T", outcome)
	}

	line, err := encodeLine(payload)
	if err != nil {
		return err
	}
	if _, err := w.Write(line); err != nil {
		return errors.Wrap(err, "writing result")
	}
	return nil
}

// encodeLine marshals v without HTML escaping. json.Encoder already ends the
// document with a single newline and never emits one inside it.
func encodeLine(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "encoding result")
	}
	return buf.Bytes(), nil
}
