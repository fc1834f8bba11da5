package auth

import (
	"golang.org/x/crypto/bcrypt"

	"game-admin/internal/common/errors"
)

// dummyHash is compared against when the user does not exist
var dummyHash, _ = HashPassword("game-admin-placeholder")

// HashPassword hashes a password with bcrypt's default cost
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.InternalError("failed to hash password", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the minimum password policy
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.ValidationError("password must be at least 8 characters").WithReason("weak_password")
	}
	if len(password) > 72 {
		return errors.ValidationError("password must be at most 72 bytes").WithReason("weak_password")
	}
	return nil
}
