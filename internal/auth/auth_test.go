package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edu-dashboard/internal/core/domain"
)

func TestIssueAndValidate(t *testing.T) {
	tokens := NewTokens("secret", "edu-dashboard", time.Hour)

	raw, err := tokens.Issue("u1", domain.RoleAdmin)
	require.NoError(t, err)

	claims, err := tokens.Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.Viewer{UserID: "u1", Role: domain.RoleAdmin}, claims.Viewer())
}

func TestValidateRejects(t *testing.T) {
	tokens := NewTokens("secret", "edu-dashboard", time.Hour)
	raw, err := tokens.Issue("u1", domain.RoleInstructor)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokens("other", "edu-dashboard", time.Hour).Validate(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := NewTokens("secret", "someone-else", time.Hour).Validate(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		late := NewTokens("secret", "edu-dashboard", time.Hour)
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Validate(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{UserID: "u1"})
		s, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = tokens.Validate(s)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tokens.Validate("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
