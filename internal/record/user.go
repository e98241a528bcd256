package record

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen   = 5
	maxPasswordBytes = 72
)

// hashCost is lowered by tests; bcrypt at the default cost is deliberately slow.
var hashCost = bcrypt.DefaultCost

// User is a login. The password is never stored or returned in the clear:
// only its bcrypt hash is kept, and the only way to use it is Login.
type User struct {
	username string
	hash     []byte
}

// bcrypt refuses anything past 72 bytes. min counts runes, bcryptmax counts
// bytes, so a short multi-byte password is still measured the way bcrypt
// measures it.
type userFields struct {
	Username string `json:"username"`
	Password string `json:"password" validate:"min=5,bcryptmax"`
}

// NewUser creates a login for username. The password must be at least 5
// characters and at most 72 bytes; only its bcrypt hash is kept.
func NewUser(username, password string) (*User, error) {
	f := userFields{Username: username, Password: password}
	if err := check("user", f); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), hashCost)
	if err != nil {
		return nil, fmt.Errorf("record.NewUser: hash password: %w", err)
	}
	return &User{username: f.Username, hash: hash}, nil
}

// Username returns the login name.
func (u *User) Username() string { return u.username }

// Login reports whether password matches the stored one exactly. It returns
// ErrWrongPassword on mismatch and never changes the user.
func (u *User) Login(password string) error {
	if bcrypt.CompareHashAndPassword(u.hash, []byte(password)) != nil {
		return ErrWrongPassword
	}
	return nil
}

// ChangePassword replaces the password when oldPassword matches the stored
// one. The checks run in order and the first failure wins:
//
//	oldPassword does not match        → ErrWrongPassword
//	newPassword equals oldPassword    → ErrSamePassword
//	newPassword shorter than 5 runes  → ErrPasswordTooShort
//	newPassword longer than 72 bytes  → ErrPasswordTooLong
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if err := u.Login(oldPassword); err != nil {
		return err
	}
	if newPassword == oldPassword {
		return ErrSamePassword
	}
	if utf8.RuneCountInString(newPassword) < minPasswordLen {
		return ErrPasswordTooShort
	}
	if len(newPassword) > maxPasswordBytes {
		return ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), hashCost)
	if err != nil {
		return fmt.Errorf("record.ChangePassword: hash password: %w", err)
	}
	u.hash = hash
	return nil
}
