package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_IssueAndVerify(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)
	userID := uuid.New()

	signed, expiresAt, err := codec.Issue(userID, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := codec.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestCodec_VerifyExpired(t *testing.T) {
	codec := NewCodec("test-secret", -time.Minute)

	signed, _, err := codec.Issue(uuid.New(), "user")
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_VerifyWrongSecret(t *testing.T) {
	signed, _, err := NewCodec("secret-a", time.Hour).Issue(uuid.New(), "user")
	require.NoError(t, err)

	_, err = NewCodec("secret-b", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_VerifyRejectsMissingExpiry(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	// A correctly signed token without an exp claim never comes out of
	// Issue, but verification must still refuse it so claims.ExpiresAt
	// is guaranteed downstream.
	claims := Claims{
		Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: uuid.NewString(),
			ID:      uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_VerifyMalformed(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	for _, input := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := codec.Verify(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestCodec_TokensAreUnique(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)
	userID := uuid.New()

	first, _, err := codec.Issue(userID, "user")
	require.NoError(t, err)
	second, _, err := codec.Issue(userID, "user")
	require.NoError(t, err)

	// The jti makes every issued token distinct, so one token can be
	// revoked without affecting another session of the same user.
	assert.NotEqual(t, first, second)
}
