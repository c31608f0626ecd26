package utils

import "unicode/utf8"

// PasswordMinLength is the minimum number of characters a password must have
const PasswordMinLength = 8

// PasswordChecklist mirrors the requirement list shown next to the password field
type PasswordChecklist struct {
	Length    bool `json:"len"`
	Lowercase bool `json:"lower"`
	Uppercase bool `json:"upper"`
	Digit     bool `json:"digit"`
}

// OK reports whether every requirement is met
func (c PasswordChecklist) OK() bool {
	return c.Length && c.Lowercase && c.Uppercase && c.Digit
}

// CheckPassword evaluates each requirement independently. Only ASCII letters
// count towards the lowercase and uppercase checks.
func CheckPassword(password string) PasswordChecklist {
	c := PasswordChecklist{
		Length: utf8.RuneCountInString(password) >= PasswordMinLength,
	}
	for i := 0; i < len(password); i++ {
		switch b := password[i]; {
		case b >= 'a' && b <= 'z':
			c.Lowercase = true
		case b >= 'A' && b <= 'Z':
			c.Uppercase = true
		case b >= '0' && b <= '9':
			c.Digit = true
		}
	}
	return c
}
