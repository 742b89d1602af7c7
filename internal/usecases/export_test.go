package usecases

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UseFastHashing swaps bcrypt for its minimum cost for the duration of a test
func UseFastHashing(t *testing.T) {
	t.Helper()
	orig := hashPassword
	hashPassword = func(password string) (string, error) {
		b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		return string(b), err
	}
	t.Cleanup(func() { hashPassword = orig })
}

// FreezeTime pins the clock used by the usecases
func FreezeTime(t *testing.T, at time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = orig })
}
