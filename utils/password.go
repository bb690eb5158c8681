package utils

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a salted bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// dummyHash stands in for the stored hash of an account that does not exist.
var dummyHash = sync.OnceValue(func() []byte {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("kostify-no-such-user"), bcrypt.DefaultCost)
	return hashed
})

// CheckPassword reports whether password matches hashed. An empty hashed
// value is compared against a dummy hash and never matches, so a missing
// account costs the same bcrypt work as a wrong password.
func CheckPassword(password, hashed string) bool {
	if hashed == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
