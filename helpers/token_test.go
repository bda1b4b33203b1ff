package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(DomainUser, "user-1", "ahmed")
	require.NoError(t, err)

	claims, err := ParseToken(token, DomainUser)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "ahmed", claims.Username)
	assert.Equal(t, DomainUser, claims.Domain)
}

func TestTokenDomainMismatch(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(DomainAdmin, "admin-1", "admin")
	require.NoError(t, err)

	_, err = ParseToken(token, DomainUser)
	assert.Error(t, err, "admin tokens must not validate in the user domain")
}

func TestTokenGarbageRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ParseToken("not-a-jwt", DomainUser)
	assert.Error(t, err)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := GenerateToken(DomainUser, "user-1", "ahmed")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = ParseToken(token, DomainUser)
	assert.Error(t, err)
}
