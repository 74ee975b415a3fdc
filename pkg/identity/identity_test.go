package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestContextGetSet(t *testing.T) {
	ctx := context.Background()

	// Initially no identity
	id, ok := Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, id)

	expected := &Identity{Login: "alice"}
	ctx = Set(ctx, expected)

	id, ok = Get(ctx)
	assert.True(t, ok)
	require.NotNil(t, id)
	assert.Equal(t, "alice", id.Login)
}

func TestMintAndParse(t *testing.T) {
	token, err := Mint(testKey, "alice", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := Parse(testKey, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", id.Login)
	assert.WithinDuration(t, time.Now(), id.IssuedAt, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(time.Hour), id.ExpiresAt, 5*time.Second)
}

func TestMintEmptyLogin(t *testing.T) {
	_, err := Mint(testKey, "", time.Hour)
	assert.Error(t, err)
}

func TestParseRejections(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		id, err := Parse(testKey, "not-a-token")
		assert.Nil(t, id)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		token, err := Mint(testKey, "alice", time.Hour)
		require.NoError(t, err)

		_, err = Parse([]byte("another-32-byte-signing-key-here"), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := Mint(testKey, "alice", -time.Minute)
		require.NoError(t, err)

		_, err = Parse(testKey, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing exp claim", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:  "alice",
			IssuedAt: jwt.NewNumericDate(time.Now()),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
		require.NoError(t, err)

		_, err = Parse(testKey, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing sub claim", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
		require.NoError(t, err)

		_, err = Parse(testKey, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("alg none", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = Parse(testKey, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
