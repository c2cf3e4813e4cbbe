package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	password := "Passw0rd!"
	hashedPassword, err := HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hashedPassword)
	assert.NotEqual(t, password, hashedPassword)
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	password := "Passw0rd!"
	hash1, err := HashPassword(password)
	assert.NoError(t, err)
	hash2, err := HashPassword(password)
	assert.NoError(t, err)

	// Per-call random salt means two hashes of the same password differ
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, CheckPasswordHash(password, hash1))
	assert.True(t, CheckPasswordHash(password, hash2))
}

func TestCheckPasswordHash(t *testing.T) {
	password := "Passw0rd!"
	hashedPassword, _ := HashPassword(password)

	assert.True(t, CheckPasswordHash(password, hashedPassword))
	assert.False(t, CheckPasswordHash("wrongpassword", hashedPassword))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("Passw0rd!", "invalidhash"))
}
