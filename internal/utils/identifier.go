package utils

import (
	"fmt"
	"regexp"

	"github.com/participa-tere/app-participa/internal/models"
)

// FieldMode tells what the login identifier field currently holds
type FieldMode int

const (
	FieldModeEmail FieldMode = iota
	FieldModeCPF
)

// Live messages shown under the identifier field
const (
	MsgIdentifierCPFRequired   = "Informe seu CPF ou e-mail."
	MsgIdentifierCPFLength     = "CPF deve conter exatamente 11 dígitos."
	MsgIdentifierEmailRequired = "Informe seu e-mail ou CPF."
	MsgIdentifierEmailInvalid  = "Informe um e-mail válido (ex.: nome@dominio.com)."
)

var (
	emailHintRegex = regexp.MustCompile(`[a-zA-Z@]`)
	cpfCharsRegex  = regexp.MustCompile(`^[0-9.\-` + formWhitespace + `]*$`)
)

func (m FieldMode) String() string {
	switch m {
	case FieldModeCPF:
		return "cpf"
	case FieldModeEmail:
		return "email"
	default:
		return fmt.Sprintf("FieldMode(%d)", int(m))
	}
}

func (m FieldMode) MarshalText() ([]byte, error) {
	switch m {
	case FieldModeCPF, FieldModeEmail:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", models.ErrUnknownFieldMode, int(m))
	}
}

func (m *FieldMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "cpf":
		*m = FieldModeCPF
	case "email":
		*m = FieldModeEmail
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownFieldMode, string(text))
	}
	return nil
}

// ClassifyIdentifierField decides whether raw input is being typed as an e-mail or a CPF.
// Any ASCII letter or @ means e-mail; otherwise only digits, dots, hyphens and
// whitespace mean CPF; anything else falls back to e-mail. The empty string is CPF.
func ClassifyIdentifierField(input string) FieldMode {
	if emailHintRegex.MatchString(input) {
		return FieldModeEmail
	}
	if cpfCharsRegex.MatchString(input) {
		return FieldModeCPF
	}
	return FieldModeEmail
}

// IdentifierCheck is the live state of the login identifier field after one input event
type IdentifierCheck struct {
	Mode FieldMode `json:"mode"`
	// Display is what the field should show: the CPF mask in CPF mode, the raw input otherwise
	Display string `json:"display"`
	// Digits is the sanitized CPF, empty in e-mail mode
	Digits  string `json:"digits,omitempty"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// CheckIdentifier classifies, masks and validates the identifier field the
// way the login form does on every keystroke. In CPF mode only the length is
// enforced; the checksum is left to the server lookup.
func CheckIdentifier(input string) IdentifierCheck {
	mode := ClassifyIdentifierField(input)

	if mode == FieldModeCPF {
		digits := SanitizeDigits(input)
		check := IdentifierCheck{
			Mode:    FieldModeCPF,
			Display: MaskCPF(digits),
			Digits:  digits,
		}
		switch {
		case digits == "":
			check.Message = MsgIdentifierCPFRequired
		case len(digits) != CPFLength:
			check.Message = MsgIdentifierCPFLength
		default:
			check.Valid = true
		}
		return check
	}

	check := IdentifierCheck{Mode: FieldModeEmail, Display: input}
	switch {
	case TrimFormSpace(input) == "":
		check.Message = MsgIdentifierEmailRequired
	case !IsEmailShaped(input):
		check.Message = MsgIdentifierEmailInvalid
	default:
		check.Valid = true
	}
	return check
}

// IdentifierLookupKey returns the value a user record is looked up by: the
// lowercased e-mail in e-mail mode or the sanitized CPF in CPF mode.
func IdentifierLookupKey(input string) (FieldMode, string) {
	v := TrimFormSpace(input)
	if ClassifyIdentifierField(v) == FieldModeCPF {
		return FieldModeCPF, SanitizeDigits(v)
	}
	return FieldModeEmail, NormalizeEmail(v)
}
