package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientTokenRoundTrip(t *testing.T) {
	token, err := GenerateClientToken("client-1", "secret")
	require.NoError(t, err)

	claims, err := ValidateClientToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "client-1", claims.ClientID)
}

func TestClientTokenWrongSecret(t *testing.T) {
	token, err := GenerateClientToken("client-1", "secret")
	require.NoError(t, err)

	_, err = ValidateClientToken(token, "other")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestClientTokenGarbage(t *testing.T) {
	_, err := ValidateClientToken("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestResetToken(t *testing.T) {
	token, err := GenerateResetToken(7, "a@x.com", "jti-1", "secret", 15)
	require.NoError(t, err)

	claims, err := ValidateResetToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "jti-1", claims.ID)
}

func TestResetTokenExpired(t *testing.T) {
	token, err := GenerateResetToken(7, "a@x.com", "jti-1", "secret", -1)
	require.NoError(t, err)

	_, err = ValidateResetToken(token, "secret")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestClientTokenIsNotAResetToken(t *testing.T) {
	token, err := GenerateClientToken("client-1", "secret")
	require.NoError(t, err)

	_, err = ValidateResetToken(token, "secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
