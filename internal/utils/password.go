package utils

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PasswordPolicy abstracts how a password is stored and checked. Encode
// turns a raw secret into its stored verifier; Matches checks a presented
// secret against that verifier. Matches must never fail loudly on a
// malformed verifier — it simply returns false.
type PasswordPolicy interface {
	Encode(plain string) (string, error)
	Matches(plain, verifier string) bool
}

// BcryptPolicy hashes with a per-call random salt at the configured cost.
// The salt travels inside the bcrypt output, so Matches needs no extra
// state and the comparison is constant-time inside the library.
type BcryptPolicy struct {
	Cost int
}

func (p BcryptPolicy) Encode(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), p.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (p BcryptPolicy) Matches(plain, verifier string) bool {
	return bcrypt.CompareHashAndPassword([]byte(verifier), []byte(plain)) == nil
}

// PlaintextPolicy stores the raw secret unchanged. It exists for parity
// with legacy deployments and for tests; do not enable it in production.
type PlaintextPolicy struct{}

func (PlaintextPolicy) Encode(plain string) (string, error) { return plain, nil }

func (PlaintextPolicy) Matches(plain, verifier string) bool {
	return subtle.ConstantTimeCompare([]byte(plain), []byte(verifier)) == 1
}

// PolicyFromName selects the password policy configured for the
// deployment. Anything other than "plaintext" falls back to bcrypt.
func PolicyFromName(name string, bcryptCost int) PasswordPolicy {
	if name == "plaintext" {
		return PlaintextPolicy{}
	}
	return BcryptPolicy{Cost: bcryptCost}
}
