package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash1, err := HashPassword("Secret1!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash1)
	assert.NotEqual(t, "Secret1!", hash1)

	// salted: the same plaintext never hashes to the same value twice
	hash2, err := HashPassword("Secret1!")
	assert.NoError(t, err)
	assert.NotEqual(t, hash1, hash2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Secret1!")
	assert.NoError(t, err)

	assert.True(t, VerifyPassword("Secret1!", hash))
	assert.False(t, VerifyPassword("wrong-password", hash))
	assert.False(t, VerifyPassword("", hash))
	assert.False(t, VerifyPassword("Secret1!", "not-a-bcrypt-hash"))
}
