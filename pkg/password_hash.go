package pkg

import "golang.org/x/crypto/bcrypt"

// PasswordHashCost is exported so tests can lower it.
var PasswordHashCost = 14

func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	return BytesToString(hashBytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
