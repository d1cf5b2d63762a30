package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier abstracts credential hashing so the policy can be
// swapped without touching handlers. Plain-text comparison is not an
// implementation of this interface on purpose.
type PasswordVerifier interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type BcryptVerifier struct {
	Cost int
}

func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{Cost: bcrypt.DefaultCost}
}

func (v *BcryptVerifier) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (v *BcryptVerifier) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
