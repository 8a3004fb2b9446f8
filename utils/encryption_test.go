package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("same input")
	assert.NoError(t, err)
	second, err := HashPassword("same input")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(16)
	assert.NoError(t, err)
	assert.Len(t, token, 32)

	other, err := GenerateSecureToken(16)
	assert.NoError(t, err)
	assert.NotEqual(t, token, other)
}
