package users

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// User mirrors a record in the store's users collection. Field names follow
// the collection's JSON exactly; password holds the bcrypt hash, never
// plaintext.
type User struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Username     string `json:"user_name,omitempty"`
	Email        string `json:"email,omitempty"`
	PasswordHash string `json:"password,omitempty"`
	IsAdmin      bool   `json:"isAdmin"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// FirstName returns the leading word of the display name, used for greeting
// messages.
func (u *User) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}

// ValidatePasswordStrength checks that a password is at least 8 characters
// long, matching the registration form's rule.
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
