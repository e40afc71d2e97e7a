package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Deterministic fallbacks. Generation is best-effort: any failure
// degrades to these, and nothing retries or blocks the editor.
const (
	// DefaultTerms is the canned payment terms sentence returned when
	// generation is unavailable or fails.
	DefaultTerms = "Payment is due within 30 days."
)

// GenAIError represents an error from the generation API.
type GenAIError struct {
	Op  string // Operation that caused the error
	Err error  // Original error
}

func (e *GenAIError) Error() string {
	if e.Err == nil {
		return "genai error: " + e.Op
	}
	return "genai error: " + e.Op + ": " + e.Err.Error()
}

func (e *GenAIError) Unwrap() error {
	return e.Err
}

// Client calls the Gemini generateContent endpoint for the two narrow
// text suggestions the editor offers.
type Client struct {
	apiKey     string
	apiURL     string
	modelID    string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

// Config holds configuration for the generation client.
type Config struct {
	APIKey  string
	ModelID string
	Timeout time.Duration
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		ModelID: "gemini-2.5-flash",
		Timeout: 20 * time.Second,
	}
}

// NewClient creates a new generation client.
func NewClient(config *Config, log *zap.SugaredLogger) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	return &Client{
		apiKey:  config.APIKey,
		apiURL:  "https://generativelanguage.googleapis.com/v1beta",
		modelID: config.ModelID,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		log: log,
	}
}

// GenerateTerms produces a short payment terms paragraph in the given
// tone. Any failure returns DefaultTerms.
func (c *Client) GenerateTerms(ctx context.Context, tone string) string {
	prompt := fmt.Sprintf(
		"Write a short, professional invoice payment terms paragraph. Tone: %s. Max 2 sentences.",
		tone)
	text, err := c.generate(ctx, prompt)
	if err != nil || text == "" {
		if err != nil {
			c.log.Warnw("terms generation failed, using fallback", "error", err)
		}
		return DefaultTerms
	}
	return text
}

// GenerateItemDescription expands keywords into a line item
// description. Any failure returns the keywords unchanged.
func (c *Client) GenerateItemDescription(ctx context.Context, keywords string) string {
	prompt := fmt.Sprintf(
		"Expand these keywords into a professional invoice line item description (max 10 words): %q",
		keywords)
	text, err := c.generate(ctx, prompt)
	if err != nil || text == "" {
		if err != nil {
			c.log.Warnw("description generation failed, using fallback", "error", err)
		}
		return keywords
	}
	// The model likes to quote its answer.
	return strings.Trim(text, `"'`)
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", &GenAIError{Op: "encode_request", Err: err}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.apiURL, c.modelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &GenAIError{Op: "build_request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GenAIError{Op: "call_api", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", &GenAIError{
			Op:  "call_api",
			Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, payload),
		}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &GenAIError{Op: "decode_response", Err: err}
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), nil
}
