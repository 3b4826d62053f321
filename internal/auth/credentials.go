package auth

import "golang.org/x/crypto/bcrypt"

// CredentialGenerator bundles password generation and hashing for account
// provisioning flows that should not depend on the full auth service.
type CredentialGenerator struct {
	bcryptCost int
}

func NewCredentialGenerator(bcryptCost int) *CredentialGenerator {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &CredentialGenerator{bcryptCost: bcryptCost}
}

func (g *CredentialGenerator) Generate() (string, error) {
	return GeneratePassword()
}

func (g *CredentialGenerator) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), g.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
