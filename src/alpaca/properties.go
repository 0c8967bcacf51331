package alpaca

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tradekit/alpaca-go/src/client"
)

// Properties carries construction inputs resolved from a yaml file and/or
// APCA_* environment variables, mirroring the classic alpaca.properties
// workflow. Environment variables always win over file values.
type Properties struct {
	KeyID           string `yaml:"key_id"`
	SecretKey       string `yaml:"secret_key"`
	OAuthToken      string `yaml:"oauth_token"`
	EndpointAPIType string `yaml:"endpoint_api_type"`
	DataAPIType     string `yaml:"data_api_type"`
}

const (
	envKeyID           = "APCA_API_KEY_ID"
	envSecretKey       = "APCA_API_SECRET_KEY"
	envOAuthToken      = "APCA_API_OAUTH_TOKEN"
	envEndpointAPIType = "APCA_API_ENDPOINT_TYPE"
	envDataAPIType     = "APCA_API_DATA_TYPE"
)

// LoadProperties reads the yaml file at path (skipped when path is empty)
// and overlays the APCA_* environment variables. Endpoint and data API
// types default to "paper" and "iex" when neither source sets them.
func LoadProperties(path string) (Properties, error) {
	properties := Properties{
		EndpointAPIType: "paper",
		DataAPIType:     "iex",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Properties{}, fmt.Errorf("LoadProperties: failed to read %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &properties); err != nil {
			return Properties{}, fmt.Errorf("LoadProperties: failed to parse %s: %w", path, err)
		}
	}

	if v := os.Getenv(envKeyID); v != "" {
		properties.KeyID = v
	}
	if v := os.Getenv(envSecretKey); v != "" {
		properties.SecretKey = v
	}
	if v := os.Getenv(envOAuthToken); v != "" {
		properties.OAuthToken = v
	}
	if v := os.Getenv(envEndpointAPIType); v != "" {
		properties.EndpointAPIType = v
	}
	if v := os.Getenv(envDataAPIType); v != "" {
		properties.DataAPIType = v
	}

	return properties, nil
}

// NewFromProperties constructs an API from resolved properties. An OAuth
// token takes precedence over a key pair when both are present, matching
// the mutual-exclusivity rule enforced by the client.
func NewFromProperties(properties Properties, opts ...client.Option) (*API, error) {
	endpointType, err := client.ParseEndpointAPIType(properties.EndpointAPIType)
	if err != nil {
		return nil, err
	}

	if properties.OAuthToken != "" {
		return NewWithOAuth(properties.OAuthToken, endpointType, opts...)
	}

	dataType, err := client.ParseDataAPIType(properties.DataAPIType)
	if err != nil {
		return nil, err
	}

	return New(properties.KeyID, properties.SecretKey, endpointType, dataType, opts...)
}
