package alpaca

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradekit/alpaca-go/src/client"
)

func clearAPCAEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{envKeyID, envSecretKey, envOAuthToken, envEndpointAPIType, envDataAPIType} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writePropertiesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "alpaca.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPropertiesDefaults(t *testing.T) {
	clearAPCAEnv(t)

	properties, err := LoadProperties("")
	require.NoError(t, err)

	assert.Equal(t, "paper", properties.EndpointAPIType)
	assert.Equal(t, "iex", properties.DataAPIType)
	assert.Empty(t, properties.KeyID)
}

func TestLoadPropertiesFromFile(t *testing.T) {
	clearAPCAEnv(t)

	path := writePropertiesFile(t, `
key_id: file-key
secret_key: file-secret
endpoint_api_type: live
data_api_type: sip
`)

	properties, err := LoadProperties(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", properties.KeyID)
	assert.Equal(t, "file-secret", properties.SecretKey)
	assert.Equal(t, "live", properties.EndpointAPIType)
	assert.Equal(t, "sip", properties.DataAPIType)
}

func TestLoadPropertiesEnvironmentWins(t *testing.T) {
	clearAPCAEnv(t)

	path := writePropertiesFile(t, `
key_id: file-key
endpoint_api_type: live
`)

	t.Setenv(envKeyID, "env-key")
	t.Setenv(envEndpointAPIType, "paper")

	properties, err := LoadProperties(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", properties.KeyID)
	assert.Equal(t, "paper", properties.EndpointAPIType)
}

func TestLoadPropertiesMissingFile(t *testing.T) {
	clearAPCAEnv(t)

	_, err := LoadProperties(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestNewFromProperties(t *testing.T) {
	t.Run("key pair", func(t *testing.T) {
		api, err := NewFromProperties(Properties{
			KeyID:           "key-id",
			SecretKey:       "secret",
			EndpointAPIType: "paper",
			DataAPIType:     "iex",
		})
		require.NoError(t, err)
		assert.NotNil(t, api.MarketData())
	})

	t.Run("oauth token wins over key pair", func(t *testing.T) {
		api, err := NewFromProperties(Properties{
			KeyID:           "key-id",
			SecretKey:       "secret",
			OAuthToken:      "token",
			EndpointAPIType: "paper",
			DataAPIType:     "iex",
		})
		require.NoError(t, err)
		assert.Nil(t, api.MarketData())
	})

	t.Run("invalid endpoint type", func(t *testing.T) {
		_, err := NewFromProperties(Properties{
			KeyID:           "key-id",
			SecretKey:       "secret",
			EndpointAPIType: "staging",
			DataAPIType:     "iex",
		})

		var configErr *client.ConfigurationError
		require.ErrorAs(t, err, &configErr)
	})

	t.Run("invalid data type", func(t *testing.T) {
		_, err := NewFromProperties(Properties{
			KeyID:           "key-id",
			SecretKey:       "secret",
			EndpointAPIType: "paper",
			DataAPIType:     "bloomberg",
		})

		var configErr *client.ConfigurationError
		require.ErrorAs(t, err, &configErr)
	})
}
