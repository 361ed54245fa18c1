// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// API type values for Config.APIType.
const (
	APITypeOpenAI = "openai"
	APITypeAzure  = "azure"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// General
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPPort    int    `envconfig:"BACKEND_PORT" default:"8000"`

	// Model backend selection ("openai" or "azure")
	APIType string `envconfig:"API_TYPE" default:"azure"`

	// OpenAI
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel  string `envconfig:"OPENAI_MODEL" default:"gpt-4"`

	// Azure OpenAI
	AzureAPIKey     string `envconfig:"AZURE_API_KEY"`
	AzureEndpoint   string `envconfig:"AZURE_ENDPOINT"`
	AzureDeployment string `envconfig:"AZURE_DEPLOYMENT" default:"gpt-4o-mini"`
	AzureAPIVersion string `envconfig:"AZURE_API_VERSION" default:"2024-02-01"`

	// Generation
	GenerateTimeout time.Duration `envconfig:"GENERATE_TIMEOUT" default:"2m"`
	MaxTokens       int           `envconfig:"GENERATE_MAX_TOKENS" default:"4096"`

	// Judge panel (optional YAML file; built-in default panel if unset)
	PanelConfigPath string `envconfig:"PANEL_CONFIG_PATH"`

	// HTTP API
	AuthMode       string `envconfig:"API_AUTH_MODE" default:"none"`
	APIKey         string `envconfig:"API_KEY"`
	CORSOrigins    string `envconfig:"CORS_ORIGINS" default:"*"`
	RateLimitRPS   int    `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int    `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

// OpenAIEnabled returns true if the OpenAI backend is selected and configured.
func (c *Config) OpenAIEnabled() bool {
	return strings.EqualFold(c.APIType, APITypeOpenAI) && c.OpenAIAPIKey != ""
}

// AzureEnabled returns true if the Azure backend is selected and configured.
func (c *Config) AzureEnabled() bool {
	return strings.EqualFold(c.APIType, APITypeAzure) && c.AzureAPIKey != "" && c.AzureEndpoint != ""
}

// ModelString returns the human-readable model identifier for logging,
// "azure/<deployment>" or the plain OpenAI model name.
func (c *Config) ModelString() string {
	if strings.EqualFold(c.APIType, APITypeAzure) {
		return "azure/" + c.AzureDeployment
	}
	return c.OpenAIModel
}

// Validate checks that the selected backend is fully configured.
func (c *Config) Validate() error {
	switch strings.ToLower(c.APIType) {
	case APITypeOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("API_TYPE=openai requires OPENAI_API_KEY")
		}
	case APITypeAzure:
		if c.AzureAPIKey == "" || c.AzureEndpoint == "" {
			return fmt.Errorf("API_TYPE=azure requires AZURE_API_KEY and AZURE_ENDPOINT")
		}
	default:
		return fmt.Errorf("API_TYPE must be either %q or %q, got %q", APITypeOpenAI, APITypeAzure, c.APIType)
	}
	return nil
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
