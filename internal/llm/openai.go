package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	perrors "github.com/sharkpanel/pitch-agent/internal/errors"
)

const (
	openAIAPIBase    = "https://api.openai.com/v1"
	defaultMaxTokens = 4096
	defaultModel     = "gpt-4"
	defaultTimeout   = 120 * time.Second
)

// ChatProvider implements Generator against an OpenAI-style chat-completions
// API. It speaks to both api.openai.com and Azure OpenAI deployments; the two
// differ only in URL shape and auth header.
type ChatProvider struct {
	apiKey     string
	model      string
	maxTokens  int
	client     *http.Client
	logger     zerolog.Logger
	openAIBase string

	// Azure mode
	azureEndpoint   string
	azureDeployment string
	azureAPIVersion string
}

// Option configures the provider.
type Option func(*ChatProvider)

func WithModel(model string) Option {
	return func(p *ChatProvider) { p.model = model }
}

func WithMaxTokens(n int) Option {
	return func(p *ChatProvider) { p.maxTokens = n }
}

func WithHTTPClient(c *http.Client) Option {
	return func(p *ChatProvider) { p.client = c }
}

func WithLogger(l zerolog.Logger) Option {
	return func(p *ChatProvider) { p.logger = l }
}

// WithBaseEndpoint overrides the OpenAI API base URL. Used in tests and for
// OpenAI-compatible gateways.
func WithBaseEndpoint(base string) Option {
	return func(p *ChatProvider) { p.openAIBase = strings.TrimRight(base, "/") }
}

// NewOpenAIProvider constructs a provider for the OpenAI API.
func NewOpenAIProvider(apiKey string, opts ...Option) *ChatProvider {
	p := &ChatProvider{
		apiKey:     apiKey,
		model:      defaultModel,
		maxTokens:  defaultMaxTokens,
		client:     &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
		openAIBase: openAIAPIBase,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// NewAzureProvider constructs a provider for an Azure OpenAI deployment.
func NewAzureProvider(apiKey, endpoint, deployment, apiVersion string, opts ...Option) *ChatProvider {
	p := &ChatProvider{
		apiKey:          apiKey,
		model:           "azure/" + deployment,
		maxTokens:       defaultMaxTokens,
		client:          &http.Client{Timeout: defaultTimeout},
		logger:          zerolog.Nop(),
		azureEndpoint:   strings.TrimRight(endpoint, "/"),
		azureDeployment: deployment,
		azureAPIVersion: apiVersion,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *ChatProvider) ModelID() string { return p.model }

// ---- chat-completions wire types ----

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model,omitempty"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *ChatProvider) endpoint() string {
	if p.azureEndpoint != "" {
		return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
			p.azureEndpoint, p.azureDeployment, url.QueryEscape(p.azureAPIVersion))
	}
	return p.openAIBase + "/chat/completions"
}

// Generate sends a blocking completion request and returns the response text.
func (p *ChatProvider) Generate(ctx context.Context, req Request) (string, error) {
	cr := chatRequest{
		MaxTokens: p.maxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
	}
	if p.azureEndpoint == "" {
		// Azure routes on the deployment in the URL; plain OpenAI needs the model in the body.
		cr.Model = p.model
	}

	body, err := json.Marshal(cr)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.azureEndpoint != "" {
		httpReq.Header.Set("api-key", p.apiKey)
	} else {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	start := time.Now()
	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", &perrors.GenerationError{Step: "complete", Message: "backend unreachable", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &perrors.GenerationError{Step: "complete", StatusCode: resp.StatusCode, Message: "read body", Err: err}
	}

	var cres chatResponse
	if err := json.Unmarshal(raw, &cres); err != nil {
		return "", &perrors.GenerationError{Step: "complete", StatusCode: resp.StatusCode, Message: "malformed response", Err: err}
	}
	if cres.Error != nil {
		return "", perrors.NewGenerationError("backend", "complete", resp.StatusCode,
			fmt.Sprintf("api error %s: %s", cres.Error.Type, cres.Error.Message))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", perrors.NewGenerationError("backend", "complete", resp.StatusCode, "unexpected status")
	}
	if len(cres.Choices) == 0 {
		return "", perrors.NewGenerationError("backend", "complete", resp.StatusCode, "response contained no choices")
	}

	p.logger.Debug().
		Str("model", p.model).
		Dur("elapsed", time.Since(start)).
		Int("prompt_chars", len(req.Prompt)).
		Msg("chat completion")

	return cres.Choices[0].Message.Content, nil
}
