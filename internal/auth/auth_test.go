package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret")

	raw, err := tokens.IssueUserToken(42, "user@example.com")
	require.NoError(t, err)

	claims, err := tokens.VerifyUserToken(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestAdminTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret")

	raw, err := tokens.IssueAdminToken(7, "admin@example.com", "superadmin")
	require.NoError(t, err)

	claims, err := tokens.VerifyAdminToken(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.ID)
	assert.Equal(t, "superadmin", claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	raw, err := NewTokens("secret-a").IssueUserToken(1, "a@b.c")
	require.NoError(t, err)

	_, err = NewTokens("secret-b").VerifyUserToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewTokens("s").VerifyAdminToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "Sup3rSecret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		failures int
	}{
		{"valid", "Abcdefg1", 0},
		{"too short", "Ab1", 1},
		{"no uppercase", "abcdefg1", 1},
		{"no lowercase", "ABCDEFG1", 1},
		{"no digit", "Abcdefgh", 1},
		{"everything wrong", "abc", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ValidatePasswordStrength(tt.password), tt.failures)
		})
	}
}
