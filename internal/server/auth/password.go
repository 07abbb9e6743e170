package auth

import (
	"errors"

	"github.com/dmitrijs2005/puisi/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordLen is the number of bytes bcrypt actually hashes.
const maxPasswordLen = 72

// HashPassword returns a salted bcrypt hash of password. Passwords longer
// than maxPasswordLen yield common.ErrorInvalidInput.
func HashPassword(password string, cost int) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, common.ErrorInvalidInput
	}
	return hash, err
}

// CheckPassword reports whether password matches hash. bcrypt compares in
// constant time. Registration never accepts a password over maxPasswordLen,
// and bcrypt would ignore the extra bytes, so such a password never matches.
func CheckPassword(hash []byte, password string) (bool, error) {
	if len(password) > maxPasswordLen {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
