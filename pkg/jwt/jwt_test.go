package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvcafe/cafepos-api/pkg/jwt"
)

const testSecret = "unit-test-secret"

func TestGenerateAndParse_Roundtrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-123", "user", "PROFESSIONAL", "cafepos", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, tier, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "user", role)
	assert.Equal(t, "PROFESSIONAL", tier)
}

func TestParse_ExpiredToken(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-123", "user", "BASIC", "cafepos", -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err, "an already expired token must not parse")
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-123", "admin", "BASIC", "cafepos", 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("another-secret", token)
	assert.Error(t, err, "a token signed with a different secret must be rejected")
}

func TestEmptySecret(t *testing.T) {
	_, err := jwt.Generate("", "user-123", "user", "BASIC", "cafepos", 60)
	assert.Error(t, err)

	_, _, _, err = jwt.Parse("", "whatever")
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, _, _, err := jwt.Parse(testSecret, "not.a.token")
	assert.Error(t, err)
}
