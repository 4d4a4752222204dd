package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewManager("test-secret", 900)

	token, err := m.GenerateAccessToken("alice", "Alice")
	require.NoError(t, err)

	claims, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "Alice", claims.Nickname)
	assert.Equal(t, "alice", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, 900, m.ExpiresIn())
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", 900).GenerateAccessToken("alice", "Alice")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 900).VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Expired(t *testing.T) {
	m := NewManager("test-secret", 900)
	claims := &Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyToken_Rejects(t *testing.T) {
	m := NewManager("test-secret", 900)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Username:         "alice",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	foreignIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username:         "alice",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else"},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noUsername, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":        "not-a-token",
		"none algorithm": noneToken,
		"foreign issuer": foreignIssuer,
		"no username":    noUsername,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.VerifyToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
