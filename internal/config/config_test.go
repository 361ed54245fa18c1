package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8000, cfg.HTTPPort)
	assert.Equal(t, APITypeAzure, cfg.APIType)
	assert.Equal(t, "gpt-4o-mini", cfg.AzureDeployment)
	assert.Equal(t, "2024-02-01", cfg.AzureAPIVersion)
	assert.Equal(t, 2*time.Minute, cfg.GenerateTimeout)
	assert.Equal(t, "none", cfg.AuthMode)
}

func TestLoad_OpenAI(t *testing.T) {
	os.Clearenv()
	t.Setenv("API_TYPE", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.OpenAIEnabled())
	assert.False(t, cfg.AzureEnabled())
	assert.Equal(t, "gpt-4o", cfg.ModelString())
}

func TestLoad_Azure(t *testing.T) {
	os.Clearenv()
	t.Setenv("AZURE_API_KEY", "azkey")
	t.Setenv("AZURE_ENDPOINT", "https://example.openai.azure.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.AzureEnabled())
	assert.Equal(t, "azure/gpt-4o-mini", cfg.ModelString())
}

func TestValidate_UnknownAPIType(t *testing.T) {
	cfg := &Config{APIType: "bedrock"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_TYPE")
}

func TestValidate_MissingCredentials(t *testing.T) {
	assert.Error(t, (&Config{APIType: "openai"}).Validate())
	assert.Error(t, (&Config{APIType: "azure", AzureAPIKey: "k"}).Validate())
}

func TestLoad_CustomPort(t *testing.T) {
	os.Clearenv()
	t.Setenv("BACKEND_PORT", "9090")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
}
