package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/littlejems/diagnostics-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVariant(t *testing.T) {
	assert.Equal(t, VariantGemini, ResolveVariant("https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"))
	assert.Equal(t, VariantGeneric, ResolveVariant("https://api.example.com/v1/generate"))
	assert.Equal(t, VariantGeneric, ResolveVariant(""))
}

func newTestClient(url string, variant Variant) *providerClient {
	return &providerClient{
		cfg: config.AI{
			ProviderURL:    url,
			APIKey:         "test-key",
			Model:          "test-model",
			TimeoutSeconds: 5,
		},
		variant:    variant,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestProviderClient_GenericWireShape(t *testing.T) {
	var captured genericRequest
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"questions": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, VariantGeneric)
	text, err := client.Call(context.Background(), "some prompt", "abcd1234")
	require.NoError(t, err)

	// Generic variant returns the body verbatim.
	assert.Equal(t, `{"questions": []}`, text)
	assert.Equal(t, "Bearer test-key", authHeader)
	assert.Equal(t, "test-model", captured.Model)
	assert.Equal(t, "some prompt", captured.Prompt)
	assert.Equal(t, "abcd1234", captured.Seed)
	assert.Equal(t, float64(0), captured.Temperature)
	assert.Equal(t, 1, captured.N)
}

func TestProviderClient_GeminiWireShape(t *testing.T) {
	var captured geminiRequest
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": `{"questions": []}`}}}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, VariantGemini)
	text, err := client.Call(context.Background(), "gemini prompt", "ffff0000")
	require.NoError(t, err)

	assert.Equal(t, `{"questions": []}`, text)
	assert.Equal(t, "key=test-key", query)
	require.Len(t, captured.Contents, 1)
	require.Len(t, captured.Contents[0].Parts, 1)
	assert.Equal(t, "gemini prompt", captured.Contents[0].Parts[0].Text)
	assert.Equal(t, float64(0), captured.GenerationConfig.Temperature)
	assert.Equal(t, 1, captured.GenerationConfig.TopK)
	assert.Equal(t, "ffff0000", captured.GenerationConfig.Seed)
}

func TestProviderClient_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL, VariantGeneric)
	_, err := client.Call(context.Background(), "p", "s")
	require.Error(t, err)

	var pErr *ProviderError
	require.ErrorAs(t, err, &pErr)
	assert.Contains(t, pErr.Error(), "429")
}

func TestProviderClient_GeminiMalformedEnvelope(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no candidates", `{"candidates": []}`},
		{"no parts", `{"candidates": [{"content": {"parts": []}}]}`},
		{"empty text", `{"candidates": [{"content": {"parts": [{"text": ""}]}}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL, VariantGemini)
			_, err := client.Call(context.Background(), "p", "s")

			var pErr *ProviderError
			require.ErrorAs(t, err, &pErr)
		})
	}
}

func TestProviderClient_MissingConfig(t *testing.T) {
	client := newTestClient("", VariantGeneric)
	_, err := client.Call(context.Background(), "p", "s")

	var pErr *ProviderError
	require.ErrorAs(t, err, &pErr)
}

func TestProviderClient_Unreachable(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1", VariantGeneric)
	_, err := client.Call(context.Background(), "p", "s")

	var pErr *ProviderError
	require.ErrorAs(t, err, &pErr)
	assert.Error(t, pErr.Unwrap())
}
