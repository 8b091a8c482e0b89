package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateAndVerify(t *testing.T) {
	tokenStr, err := GenerateOperatorToken(999, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := VerifyToken(tokenStr, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "999", claims.Subject)
}

func TestVerifyWrongSecret(t *testing.T) {
	tokenStr, err := GenerateOperatorToken(999, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(tokenStr, []byte("other-secret"))
	assert.Error(t, err)
}

func TestVerifyExpired(t *testing.T) {
	tokenStr, err := GenerateOperatorToken(999, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tokenStr, testSecret)
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := VerifyToken("not-a-token", testSecret)
	assert.Error(t, err)
}
