package auth

import (
	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// dummyHash is compared against when the account does not exist, so that an
// unknown email costs the same bcrypt work as a wrong password.
var dummyHash = mustHash("not-a-real-password")

func HashPassword(password string) (string, error) {
	hashed, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword returns nil when password matches hash.
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

// CompareDummy burns one bcrypt comparison against a throwaway hash.
func CompareDummy(password string) {
	_ = bcryptCompareHashAndPassword(dummyHash, []byte(password))
}

func mustHash(password string) []byte {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hashed
}
