package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for agent passwords.
const Cost = bcrypt.DefaultCost

// MaxLength is the longest password bcrypt will accept.
const MaxLength = 72

var (
	ErrMismatch = errors.New("password does not match")
	ErrEmpty    = errors.New("password cannot be empty")
	ErrTooLong  = fmt.Errorf("password cannot exceed %d bytes", MaxLength)
	ErrCost     = errors.New("bcrypt cost out of range")
)

// Hash returns the bcrypt digest of an agent password at Cost.
func Hash(plain string) (string, error) {
	return HashWithCost(plain, Cost)
}

func HashWithCost(plain string, cost int) (string, error) {
	switch {
	case plain == "":
		return "", ErrEmpty
	case len(plain) > MaxLength:
		return "", ErrTooLong
	case cost < bcrypt.MinCost || cost > bcrypt.MaxCost:
		return "", fmt.Errorf("%w: %d", ErrCost, cost)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify reports ErrMismatch when plain does not produce digest. A stored digest that is
// empty or malformed is treated as a mismatch so that login never leaks which case applied.
func Verify(plain, digest string) error {
	if plain == "" || digest == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword),
		errors.Is(err, bcrypt.ErrHashTooShort):
		return ErrMismatch
	default:
		return fmt.Errorf("verifying password: %w", err)
	}
}

// NeedsRehash reports whether digest was produced with a cost other than Cost.
func NeedsRehash(digest string) bool {
	cost, err := bcrypt.Cost([]byte(digest))

	return err != nil || cost != Cost
}
