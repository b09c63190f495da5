package user

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialChecker decides whether a supplied password matches the stored one.
type CredentialChecker interface {
	Check(stored, supplied string) bool
}

// PlaintextChecker compares passwords as plain strings, the way the identity sheet stores them.
type PlaintextChecker struct{}

var _ CredentialChecker = PlaintextChecker{}

func (PlaintextChecker) Check(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// BcryptChecker expects the password column to hold bcrypt hashes.
type BcryptChecker struct{}

var _ CredentialChecker = BcryptChecker{}

func (BcryptChecker) Check(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// HashPassword produces the value to store in the password column for BcryptChecker.
func HashPassword(pwd string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// NewChecker returns the checker for the configured credential scheme.
func NewChecker(hashed bool) CredentialChecker {
	if hashed {
		return BcryptChecker{}
	}
	return PlaintextChecker{}
}
