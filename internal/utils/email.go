package utils

import (
	"regexp"
	"strings"
)

var emailShapeRegex = regexp.MustCompile(
	`(?i)^[^` + formWhitespace + `@]+@[^` + formWhitespace + `@]+\.[^` + formWhitespace + `@]{2,}$`,
)

// IsEmailShaped reports whether the trimmed input looks like local@domain.tld
// with a suffix of at least two characters. It does not check deliverability.
func IsEmailShaped(input string) bool {
	v := TrimFormSpace(input)
	if v == "" {
		return false
	}
	return emailShapeRegex.MatchString(v)
}

// NormalizeEmail trims and lowercases an e-mail, the form it is stored and looked up in
func NormalizeEmail(input string) string {
	return strings.ToLower(TrimFormSpace(input))
}
