package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restorePasswordGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restorePasswordGlobals)

	hash, err := HashPassword("p")
	require.NoError(t, err)
	require.NotEqual(t, "p", hash)
	require.NoError(t, ComparePassword(hash, "p"))
	require.Error(t, ComparePassword(hash, "q"))

	other, err := HashPassword("p")
	require.NoError(t, err)
	require.NotEqual(t, hash, other, "hashes must be salted")

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword("p")
	require.Error(t, err)
}

func TestCompareDummyRunsBcrypt(t *testing.T) {
	t.Cleanup(restorePasswordGlobals)

	called := false
	bcryptCompareHashAndPassword = func(hash, password []byte) error {
		called = true
		require.Equal(t, dummyHash, hash)
		return bcrypt.ErrMismatchedHashAndPassword
	}
	CompareDummy("whatever")
	require.True(t, called)
}
