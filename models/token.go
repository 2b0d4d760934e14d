package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT issued by the dev server and the claims it
// carries. UserID caches the "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// Role is the custom "role" claim.
	Role UserRole `json:"role,omitempty"`

	SignedString string `json:"-"`
	UserID       string `json:"-"`
}

// GetUserID returns the subject claim. Subjects are opaque strings so
// both numeric and textual user ids survive the round trip.
func (t *Token) GetUserID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if sub == "" {
		return "", errors.New("error extracting UserID from token: empty subject")
	}

	return sub, nil
}

func (t *Token) String() string {
	return t.SignedString
}
