package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the username or password does not
// match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator verifies the barista login. The configured password is
// hashed once at construction so the plaintext is not held afterwards.
type Authenticator struct {
	username       string
	hashedPassword []byte
}

// New creates an Authenticator for the given credentials.
func New(username, password string) (*Authenticator, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &Authenticator{username: username, hashedPassword: hashed}, nil
}

// Login checks a username/password pair. Both checks always run so a wrong
// username does not return faster than a wrong password.
func (a *Authenticator) Login(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(a.username), []byte(username)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.hashedPassword, []byte(password))
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}
