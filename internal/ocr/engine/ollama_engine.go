package engine

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"

	"ocr-shim/internal/logger"
	"ocr-shim/internal/ocr"
)

type OllamaEngine struct {
	baseURL string
	model   string
	lang    string
	client  *http.Client
}

type OllamaRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
	Stream bool     `json:"stream"`
	Format string   `json:"format,omitempty"`
}

type OllamaResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type ollamaLine struct {
	Text       string    `json:"text"`
	Box        []float64 `json:"box"`
	Confidence *float64  `json:"confidence"`
}

type ollamaReply struct {
	Lines []ollamaLine `json:"lines"`
}

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "llama3.2-vision"
)

const promptTemplate = `
You are an OCR engine.
Read every line of text in the image. The text is in language %q.

Return **only** a JSON object with this exact schema:

{
  "lines": [
    {"text": "<line text>", "box": [x_min, y_min, x_max, y_max], "confidence": <0..1>}
  ]
}

* Box coordinates are pixels from the top-left corner of the image.
* List lines from top to bottom. Use an empty list if there is no text.
* Do not add any other text, explanations, or formatting.
`

func NewOllamaEngine(opts ocr.Options) *OllamaEngine {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := opts.Model
	if model == "" {
		model = defaultModel
	}
	lang := opts.Lang
	if lang == "" {
		lang = "en"
	}

	return &OllamaEngine{
		baseURL: baseURL,
		model:   model,
		lang:    lang,
		client:  &http.Client{Timeout: opts.Timeout},
	}
}

func (o *OllamaEngine) Recognize(imagePath string) (ocr.Result, error) {
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image")
	}

	request := OllamaRequest{
		Model:  o.model,
		Prompt: fmt.Sprintf(promptTemplate, o.lang),
		Images: []string{base64.StdEncoding.EncodeToString(imageData)},
		Stream: false,
		Format: "json",
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request")
	}

	logger.DebugLog("[OllamaEngine]: sending %s to %s (model=%s)", imagePath, o.baseURL, o.model)
	resp, err := o.client.Post(o.baseURL+"/api/generate", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama request failed with status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	var ollamaResp OllamaResponse
	if err := json.Unmarshal(body, &ollamaResp); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal response")
	}

	jsonObj, err := extractJSON(ollamaResp.Response)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract JSON from response")
	}

	var reply ollamaReply
	if err := json.Unmarshal(jsonObj, &reply); err != nil {
		return nil, errors.Wrap(err, "failed to decode lines")
	}

	return []ocr.Page{toPage(reply)}, nil
}

func (o *OllamaEngine) Close() error {
	o.client.CloseIdleConnections()
	return nil
}

func toPage(reply ollamaReply) ocr.Page {
	page := make(ocr.Page, 0, len(reply.Lines))
	for _, l := range reply.Lines {
		text := strings.TrimSpace(l.Text)
		if text == "" {
			continue
		}
		line := ocr.Line{Text: text, Confidence: 1}
		if l.Confidence != nil {
			line.Confidence = *l.Confidence
		}
		if len(l.Box) == 4 {
			line.Box = ocr.BoxFromRect(image.Rect(int(l.Box[0]), int(l.Box[1]), int(l.Box[2]), int(l.Box[3])))
		}
		page = append(page, line)
	}
	return page
}

// extractJSON returns the first balanced JSON object in input. Braces inside
// string literals are ignored.
func extractJSON(input string) (json.RawMessage, error) {
	logger.DebugLog("Extracting JSON from input: %s", input)
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return nil, fmt.Errorf("no JSON found in text")
	}

	braceCount := 0
	end := -1
	inString, escaped := false, false

matchingBrace:
	for i := start; i < len(input); i++ {
		c := input[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			braceCount++
		case c == '}':
			braceCount--
			if braceCount == 0 {
				end = i + 1
				break matchingBrace
			}
		}
	}

	if end == -1 {
		return nil, fmt.Errorf("no matching closing brace found")
	}

	jsonStr := input[start:end]

	// Validate that it's actually valid JSON
	if !json.Valid([]byte(jsonStr)) {
		return nil, fmt.Errorf("extracted text is not valid JSON")
	}

	return json.RawMessage(jsonStr), nil
}
