package services

import "golang.org/x/crypto/bcrypt"

// Credentials is the one-way password hasher shared by the account services.
// bcrypt salts per call, so hashing the same plaintext twice yields different
// digests.
type Credentials struct {
	Cost int
}

func NewCredentials(cost int) Credentials {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = 12
	}
	return Credentials{Cost: cost}
}

func (c Credentials) Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), c.Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (c Credentials) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
