// Package gemini is the gateway to the Google Gemini generateContent
// API. Each call is an independent, stateless HTTP request; there is no
// retry and no cancellation beyond the caller's context.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// temperature is fixed for all report generation.
const temperature = 0.7

// Gateway provides access to the generative model.
type Gateway interface {
	// GenerateText sends a text-only prompt and returns the generated text.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateFromMedia sends a prompt together with an inline media
	// payload (audio or image) and returns the generated text.
	GenerateFromMedia(ctx context.Context, prompt string, data []byte, mimeType string) (string, error)
}

type client struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Gateway backed by the Gemini REST API. A missing
// API key is not an error here; calls fail fast with ErrMissingAPIKey.
func NewClient(cfg Config, observer Observer) Gateway {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *client) GenerateText(ctx context.Context, prompt string) (string, error) {
	parts := []geminiPart{{Text: prompt}}
	return c.generate(ctx, "text", parts)
}

func (c *client) GenerateFromMedia(ctx context.Context, prompt string, data []byte, mimeType string) (string, error) {
	parts := []geminiPart{
		{Text: prompt},
		{InlineData: &geminiInlineData{
			MIMEType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(data),
		}},
	}
	return c.generate(ctx, "media", parts)
}

func (c *client) generate(ctx context.Context, op string, parts []geminiPart) (string, error) {
	start := time.Now()

	if c.cfg.APIKey == "" {
		c.complete(op, start, ErrMissingAPIKey)
		return "", ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := geminiRequest{
		Contents:         []geminiContent{{Parts: parts}},
		GenerationConfig: geminiGenerationConfig{Temperature: temperature},
	}

	text, err := c.doRequest(ctx, body)
	if err != nil {
		if ctx.Err() != nil {
			err = ErrTimeout
		} else if isConnectionError(err) {
			err = ErrUnreachable
		}
		c.complete(op, start, err)
		return "", err
	}

	c.complete(op, start, nil)
	if strings.TrimSpace(text) == "" {
		return EmptyResultSentinel, nil
	}
	return text, nil
}

func (c *client) doRequest(ctx context.Context, body geminiRequest) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.Endpoint, c.cfg.Model, c.cfg.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		if httpResp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("%w: status %d", ErrGeneration, httpResp.StatusCode)
		}
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		if resp.Error != nil && resp.Error.Message != "" {
			return "", fmt.Errorf("%w: %s", ErrGeneration, resp.Error.Message)
		}
		return "", fmt.Errorf("%w: status %d", ErrGeneration, httpResp.StatusCode)
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			b.WriteString(part.Text)
		}
		break // first candidate only
	}
	return b.String(), nil
}

func (c *client) complete(op string, start time.Time, err error) {
	c.observer.OnCallComplete(CallEvent{
		Op:        op,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingAPIKey):
		return "MISSING_KEY"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnreachable):
		return "UNREACHABLE"
	case errors.Is(err, ErrGeneration):
		return "GENERATION"
	default:
		return "UNKNOWN"
	}
}
