package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManager_GenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.GenerateAccessToken("user-123", "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.Equal(t, "a@b.com", claims.Email)
	require.Equal(t, "user-123", claims.Subject)
}

func TestManager_ValidateToken_WrongSecret(t *testing.T) {
	m := NewManager("secret-a", time.Hour)
	other := NewManager("secret-b", time.Hour)

	token, err := m.GenerateAccessToken("user-123", "a@b.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestManager_ValidateToken_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.GenerateAccessToken("user-123", "a@b.com")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	require.Error(t, err)
}

func TestManager_ValidateToken_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.ValidateToken("not-a-jwt")
	require.Error(t, err)
}
