package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/postboard-server/internal/model"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("Test@1234")
	require.NoError(t, err)
	assert.NotEqual(t, "Test@1234", hash)

	assert.NoError(t, h.Compare(hash, "Test@1234"))
	assert.ErrorIs(t, h.Compare(hash, "WrongPassword"), bcrypt.ErrMismatchedHashAndPassword)
}

func TestBcrypt_DefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
}

func TestBcrypt_TooLongPassword(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	_, err := h.Hash(string(make([]byte, 100)))
	assert.ErrorIs(t, err, model.ErrPasswordTooLong)
}
