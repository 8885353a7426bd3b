package auth_test

import (
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/auth"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher()

	hash, err := hasher.Hash("s3cret-pa55word")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pa55word", hash)

	assert.True(t, hasher.Verify(hash, "s3cret-pa55word"))
	assert.False(t, hasher.Verify(hash, "wrong-password"))
	assert.False(t, hasher.Verify("not-a-bcrypt-hash", "s3cret-pa55word"))
}

func TestNewJWTTokenProvider(t *testing.T) {
	t.Run("should fail with empty secret", func(t *testing.T) {
		_, err := auth.NewJWTTokenProvider("", time.Hour)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non-positive lifetime", func(t *testing.T) {
		_, err := auth.NewJWTTokenProvider("secret", 0)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestJWTTokenProvider_GenerateAndVerify(t *testing.T) {
	provider, err := auth.NewJWTTokenProvider("test-signing-secret", time.Hour)
	require.NoError(t, err)

	u := buildUser(t)

	token, err := provider.Generate(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := provider.Verify(token)
	require.NoError(t, err)
	assert.True(t, userID.IsEqual(u.ID()))
}

func TestJWTTokenProvider_Verify_RejectsForeignSignature(t *testing.T) {
	issuer, err := auth.NewJWTTokenProvider("issuer-secret", time.Hour)
	require.NoError(t, err)
	verifier, err := auth.NewJWTTokenProvider("other-secret", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Generate(buildUser(t))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, auth.ErrTokenIsInvalid)
}

func TestJWTTokenProvider_Verify_RejectsExpiredToken(t *testing.T) {
	provider, err := auth.NewJWTTokenProvider("test-signing-secret", time.Hour)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": kernel.NewUUID().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	token, err := expired.SignedString([]byte("test-signing-secret"))
	require.NoError(t, err)

	_, err = provider.Verify(token)
	assert.ErrorIs(t, err, auth.ErrTokenIsInvalid)
}

func TestJWTTokenProvider_Verify_RejectsGarbage(t *testing.T) {
	provider, err := auth.NewJWTTokenProvider("test-signing-secret", time.Hour)
	require.NoError(t, err)

	_, err = provider.Verify("not.a.token")
	assert.ErrorIs(t, err, auth.ErrTokenIsInvalid)
}

func buildUser(t *testing.T) *user.User {
	t.Helper()

	email, err := kernel.NewEmail("jordan@example.com")
	require.NoError(t, err)

	u, err := user.NewUser(kernel.NewUUID(), email, "$2a$10$hash", "Jordan", "Lee")
	require.NoError(t, err)
	return u
}
