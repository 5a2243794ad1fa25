package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/littlejems/diagnostics-api/config"
	"github.com/rs/zerolog/log"
)

// Variant selects the wire shape for provider requests. It is resolved once
// from configuration at construction time, never per call.
type Variant int

const (
	// VariantGeneric posts a flat bearer-token JSON body and returns the
	// response body as-is.
	VariantGeneric Variant = iota
	// VariantGemini posts Google's generateContent envelope and unwraps the
	// candidate text from the response.
	VariantGemini
)

func (v Variant) String() string {
	if v == VariantGemini {
		return "gemini"
	}
	return "generic"
}

// ResolveVariant picks the wire shape for a provider URL.
func ResolveVariant(providerURL string) Variant {
	if strings.Contains(providerURL, "generativelanguage.googleapis.com") {
		return VariantGemini
	}
	return VariantGeneric
}

// ProviderClient sends one prompt per call to the configured endpoint and
// returns the raw response text. No retries, no backoff.
type ProviderClient interface {
	Call(ctx context.Context, prompt, seed string) (string, error)
}

type providerClient struct {
	cfg        config.AI
	variant    Variant
	httpClient *http.Client
}

func NewProviderClient(cfg *config.Config) ProviderClient {
	ai := cfg.AI
	variant := ResolveVariant(ai.ProviderURL)
	log.Info().Str("variant", variant.String()).Str("model", ai.Model).Msg("AI provider client initialized")
	return &providerClient{
		cfg:        ai,
		variant:    variant,
		httpClient: &http.Client{Timeout: ai.Timeout()},
	}
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
	SafetySettings   []any           `json:"safetySettings"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature float64 `json:"temperature"`
	TopK        int     `json:"topK"`
	TopP        int     `json:"topP"`
	Seed        string  `json:"seed"`
}

type genericRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Seed        string  `json:"seed"`
	Temperature float64 `json:"temperature"`
	N           int     `json:"n"`
}

func (c *providerClient) Call(ctx context.Context, prompt, seed string) (string, error) {
	if c.cfg.ProviderURL == "" || c.cfg.APIKey == "" {
		return "", &ProviderError{Message: "AI provider configuration is missing"}
	}

	req, err := c.buildRequest(ctx, prompt, seed)
	if err != nil {
		return "", &ProviderError{Message: "failed to build provider request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Message: "provider unreachable", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Message: "failed to read provider response", Err: err}
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", &ProviderError{Message: fmt.Sprintf("provider HTTP error: %d", resp.StatusCode)}
	}

	switch c.variant {
	case VariantGemini:
		return parseGeminiResponse(body)
	default:
		return string(body), nil
	}
}

func (c *providerClient) buildRequest(ctx context.Context, prompt, seed string) (*http.Request, error) {
	var (
		url     string
		payload any
		bearer  bool
	)
	switch c.variant {
	case VariantGemini:
		url = fmt.Sprintf("%s?key=%s", c.cfg.ProviderURL, c.cfg.APIKey)
		payload = geminiRequest{
			Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
			GenerationConfig: geminiGenConfig{
				Temperature: 0,
				TopK:        1,
				TopP:        1,
				Seed:        seed,
			},
			SafetySettings: []any{},
		}
	default:
		url = c.cfg.ProviderURL
		bearer = true
		payload = genericRequest{
			Model:       c.cfg.Model,
			Prompt:      prompt,
			Seed:        seed,
			Temperature: 0,
			N:           1,
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	return req, nil
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func parseGeminiResponse(body []byte) (string, error) {
	var payload geminiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", &ProviderError{Message: "invalid Gemini response", Err: err}
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", &ProviderError{Message: "invalid Gemini response"}
	}
	text := payload.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", &ProviderError{Message: "Gemini response missing text"}
	}
	return text, nil
}
