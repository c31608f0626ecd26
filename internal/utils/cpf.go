package utils

import "strings"

// CPFLength is the number of digits in a complete CPF
const CPFLength = 11

// CPFInvalidReason identifies which structural check rejected a CPF
type CPFInvalidReason string

const (
	CPFReasonNone             CPFInvalidReason = ""
	CPFReasonWrongLength      CPFInvalidReason = "wrong_length"
	CPFReasonRepeatedDigits   CPFInvalidReason = "repeated_digits"
	CPFReasonFirstCheckDigit  CPFInvalidReason = "first_check_digit"
	CPFReasonSecondCheckDigit CPFInvalidReason = "second_check_digit"
)

// CPFValidity is the outcome of ValidateCPF. Reason is CPFReasonNone when Valid is true.
type CPFValidity struct {
	Valid  bool             `json:"valid"`
	Reason CPFInvalidReason `json:"reason,omitempty"`
}

// SanitizeDigits removes every character that is not an ASCII digit, keeping order.
func SanitizeDigits(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if c := input[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// truncateDigits sanitizes and caps the input at max digits; extra digits are dropped.
func truncateDigits(input string, max int) string {
	v := SanitizeDigits(input)
	if len(v) > max {
		v = v[:max]
	}
	return v
}

// MaskCPF renders digits progressively as ###.###.###-##. A separator only
// appears once there is at least one digit after it.
func MaskCPF(digits string) string {
	v := truncateDigits(digits, CPFLength)
	switch n := len(v); {
	case n <= 3:
		return v
	case n <= 6:
		return v[:3] + "." + v[3:]
	case n <= 9:
		return v[:3] + "." + v[3:6] + "." + v[6:]
	default:
		return v[:3] + "." + v[3:6] + "." + v[6:9] + "-" + v[9:]
	}
}

// ValidateCPF checks length, repeated digits and both check digits of a CPF.
// Non-digit characters are ignored, so masked input is accepted.
func ValidateCPF(cpf string) CPFValidity {
	v := SanitizeDigits(cpf)

	if len(v) != CPFLength {
		return CPFValidity{Reason: CPFReasonWrongLength}
	}

	allSame := true
	for i := 1; i < len(v); i++ {
		if v[i] != v[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return CPFValidity{Reason: CPFReasonRepeatedDigits}
	}

	if cpfCheckDigit(v[:9]) != int(v[9]-'0') {
		return CPFValidity{Reason: CPFReasonFirstCheckDigit}
	}
	if cpfCheckDigit(v[:10]) != int(v[10]-'0') {
		return CPFValidity{Reason: CPFReasonSecondCheckDigit}
	}

	return CPFValidity{Valid: true}
}

// cpfCheckDigit computes the check digit for a 9 or 10 digit prefix.
// Weights run from len+1 down to 2; a result of 10 maps to 0.
func cpfCheckDigit(prefix string) int {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (weight - i)
	}
	r := (sum * 10) % 11
	if r >= 10 {
		return 0
	}
	return r
}
