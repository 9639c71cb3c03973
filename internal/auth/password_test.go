package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", digest)

	assert.True(t, CheckPassword("correct horse battery staple", digest))
	assert.False(t, CheckPassword("wrong password", digest))
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-digest"))
	assert.False(t, CheckPassword("anything", ""))
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	a, err := HashPassword("same password")
	assert.NoError(t, err)
	b, err := HashPassword("same password")
	assert.NoError(t, err)

	// bcrypt embeds a fresh salt per hash
	assert.NotEqual(t, a, b)
	assert.True(t, CheckPassword("same password", a))
	assert.True(t, CheckPassword("same password", b))
}
