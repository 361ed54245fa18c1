package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/sharkpanel/pitch-agent/internal/errors"
)

func chatServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerate_Success(t *testing.T) {
	var captured chatRequest
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Hello Sharks, I'm Jane..."}},
			},
		})
	})

	p := NewOpenAIProvider("sk-test", WithBaseEndpoint(srv.URL), WithModel("gpt-4o"))
	text, err := p.Generate(context.Background(), Request{System: "You are a founder.", Prompt: "Pitch."})
	require.NoError(t, err)
	assert.Equal(t, "Hello Sharks, I'm Jane...", text)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "You are a founder.", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "gpt-4o", captured.Model)
}

func TestGenerate_AzureURLAndAuth(t *testing.T) {
	var captured chatRequest
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/openai/deployments/gpt-4o-mini/chat/completions", r.URL.Path)
		assert.Equal(t, "2024-02-01", r.URL.Query().Get("api-version"))
		assert.Equal(t, "azkey", r.Header.Get("api-key"))
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "ok"}},
			},
		})
	})

	p := NewAzureProvider("azkey", srv.URL, "gpt-4o-mini", "2024-02-01")
	text, err := p.Generate(context.Background(), Request{System: "s", Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	// Azure routes on the deployment, not the body model field.
	assert.Empty(t, captured.Model)
	assert.Equal(t, "azure/gpt-4o-mini", p.ModelID())
}

func TestGenerate_APIError(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"type": "invalid_api_key", "message": "bad key"},
		})
	})

	p := NewOpenAIProvider("sk-bad", WithBaseEndpoint(srv.URL))
	_, err := p.Generate(context.Background(), Request{Prompt: "p"})
	require.Error(t, err)
	assert.True(t, perrors.IsGeneration(err))

	var ge *perrors.GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, http.StatusUnauthorized, ge.StatusCode)
	assert.Contains(t, ge.Message, "invalid_api_key")
}

func TestGenerate_EmptyChoices(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	p := NewOpenAIProvider("sk", WithBaseEndpoint(srv.URL))
	_, err := p.Generate(context.Background(), Request{Prompt: "p"})
	require.Error(t, err)
	assert.True(t, perrors.IsGeneration(err))
}

func TestGenerate_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force connection refused

	p := NewOpenAIProvider("sk", WithBaseEndpoint(srv.URL))
	_, err := p.Generate(context.Background(), Request{Prompt: "p"})
	require.Error(t, err)
	assert.True(t, perrors.IsGeneration(err))
}

func TestGenerate_ContextCancelled(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewOpenAIProvider("sk", WithBaseEndpoint(srv.URL))
	_, err := p.Generate(ctx, Request{Prompt: "p"})
	require.Error(t, err)
}
