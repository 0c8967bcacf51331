package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPairHeaders(t *testing.T) {
	c, err := New(KeyPair{KeyID: "my-key-id", Secret: "my-secret"}, "paper-api")
	require.NoError(t, err)

	req, err := c.newRequest(context.Background(), "GET", "/account", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "my-key-id", req.Header.Get("APCA-API-KEY-ID"))
	assert.Equal(t, "my-secret", req.Header.Get("APCA-API-SECRET-KEY"))

	// exactly one auth scheme is active: never a bearer header in key pair mode
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestOAuthHeaders(t *testing.T) {
	c, err := New(OAuth{Token: "my-token"}, "paper-api")
	require.NoError(t, err)

	req, err := c.newRequest(context.Background(), "GET", "/account", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer my-token", req.Header.Get("Authorization"))
	assert.Empty(t, req.Header.Get("APCA-API-KEY-ID"))
	assert.Empty(t, req.Header.Get("APCA-API-SECRET-KEY"))
}
