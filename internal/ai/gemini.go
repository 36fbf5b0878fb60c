package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/roninc32/smart-portfolio/internal/persona"
)

type GeminiConfig struct {
	BaseURL         string
	APIKey          string
	Model           string
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
}

// GeminiClient talks to the generateContent REST endpoint directly.
type GeminiClient struct {
	cfg        GeminiConfig
	persona    *persona.Persona
	httpClient *http.Client
}

func NewGeminiClient(cfg GeminiConfig, p *persona.Persona) *GeminiClient {
	return &GeminiClient{
		cfg:        cfg,
		persona:    p,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

func (c *GeminiClient) Complete(ctx context.Context, message string, history []Turn) (string, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return "", fmt.Errorf("%w: GEMINI_API_KEY is not configured", ErrMissingCredential)
	}

	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		role := RoleUser
		if turn.Role == RoleModel {
			role = RoleModel
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  RoleUser,
		Parts: []geminiPart{{Text: c.persona.Compose(message)}},
	})

	reqBody := geminiRequest{
		Contents: contents,
		GenerationConfig: geminiGenerationConfig{
			Temperature:     c.cfg.Temperature,
			TopK:            c.cfg.TopK,
			TopP:            c.cfg.TopP,
			MaxOutputTokens: c.cfg.MaxOutputTokens,
		},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request failed: %v", ErrUpstreamUnavailable, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: build request failed: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response failed: %v", ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode >= 300 {
		return "", c.classifyFailure(resp.StatusCode, raw)
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []geminiPart `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: parse response failed: %v", ErrUpstreamUnavailable, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidates", ErrUpstreamUnavailable)
	}

	var reply strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		reply.WriteString(part.Text)
	}
	return reply.String(), nil
}

// classifyFailure folds a provider error into one of the three
// user-facing categories, keeping the provider text out of what
// callers may surface.
func (c *GeminiClient) classifyFailure(status int, raw []byte) error {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}
	_ = json.Unmarshal(raw, &parsed)
	detail := parsed.Error.Message + " " + parsed.Error.Status
	lower := strings.ToLower(detail)

	switch {
	case strings.Contains(lower, "api key") || strings.Contains(lower, "api_key") ||
		status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrMissingCredential, status)
	case status == http.StatusTooManyRequests || strings.Contains(lower, "quota") ||
		strings.Contains(lower, "resource_exhausted"):
		return fmt.Errorf("%w: status %d", ErrQuotaExceeded, status)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrUpstreamUnavailable, status, strings.TrimSpace(parsed.Error.Message))
	}
}
