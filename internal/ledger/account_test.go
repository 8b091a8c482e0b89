package ledger

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountShape(t *testing.T) {
	acc, err := NewAccount(2)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(acc.Address, "account_"))

	body, err := hex.DecodeString(strings.TrimPrefix(acc.Address, "account_"))
	require.NoError(t, err)
	assert.Equal(t, byte(virtualAccountPrefix), body[0])
	assert.Equal(t, byte(2), body[1])
	// Префикс и ID сети плюс хвост хэша blake2b-256
	assert.Len(t, body, 32)

	priv, err := hex.DecodeString(acc.PrivateKey)
	require.NoError(t, err)
	assert.Len(t, priv, 32)

	pub, err := hex.DecodeString(acc.PublicKey)
	require.NoError(t, err)
	assert.Len(t, pub, 33)
}

func TestNewAccountUnique(t *testing.T) {
	first, err := NewAccount(2)
	require.NoError(t, err)
	second, err := NewAccount(2)
	require.NoError(t, err)

	assert.NotEqual(t, first.Address, second.Address)
	assert.NotEqual(t, first.PrivateKey, second.PrivateKey)
}
