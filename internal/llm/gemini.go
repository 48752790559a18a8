package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/tidwall/gjson"
	"google.golang.org/api/option"
)

const (
	// defaultModel keeps judgments on the cheap, fast tier; axis prompts
	// are short and the output shape is fixed.
	defaultModel = "gemini-2.5-flash-lite"
	// defaultTimeout bounds a single delegated call.
	defaultTimeout = 30 * time.Second
	// judgeTemperature keeps repeated judgments as stable as the provider allows.
	judgeTemperature = 0.1
)

// GeminiJudge is the production Judge adapter backed by the Gemini API.
type GeminiJudge struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// GeminiOption customizes a GeminiJudge.
type GeminiOption func(*GeminiJudge)

// WithModel overrides the model used for judgments.
func WithModel(model string) GeminiOption {
	return func(j *GeminiJudge) { j.model = model }
}

// WithTimeout overrides the per-call deadline.
func WithTimeout(timeout time.Duration) GeminiOption {
	return func(j *GeminiJudge) { j.timeout = timeout }
}

// NewGeminiJudge creates the production judge. The API key is required.
func NewGeminiJudge(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiJudge, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	judge := &GeminiJudge{
		client:  client,
		model:   defaultModel,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(judge)
	}
	return judge, nil
}

// Evaluate issues one bounded judgment call. Transport failures and
// timeouts surface as *UnavailableError, unparseable payloads as
// *MalformedError.
func (j *GeminiJudge) Evaluate(ctx context.Context, req Request) (Judgment, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	model := j.client.GenerativeModel(j.model)
	model.SetTemperature(judgeTemperature)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return Judgment{}, &UnavailableError{Axis: req.Axis, Cause: err}
	}

	text, err := extractText(resp)
	if err != nil {
		return Judgment{}, &MalformedError{Axis: req.Axis, Cause: err}
	}
	return parseJudgment(req.Axis, text)
}

// Close releases the underlying client.
func (j *GeminiJudge) Close() error {
	if j.client != nil {
		return j.client.Close()
	}
	return nil
}

// extractText pulls the text parts out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// parseJudgment decodes a judgment payload. Strict JSON decoding is tried
// first; if the provider wrapped or mangled the document, gjson salvages
// the two expected fields before the payload is declared malformed.
func parseJudgment(axis, payload string) (Judgment, error) {
	cleaned := CleanJSONBlock(payload)

	var judgment Judgment
	if err := json.Unmarshal([]byte(cleaned), &judgment); err == nil {
		return judgment, nil
	}

	score := gjson.Get(cleaned, "score")
	if !score.Exists() {
		return Judgment{}, &MalformedError{
			Axis:    axis,
			Payload: payload,
			Cause:   fmt.Errorf("no score field in payload"),
		}
	}
	return Judgment{
		Score:         score.Float(),
		Justification: gjson.Get(cleaned, "justification").String(),
	}, nil
}
