package observability

import (
	"strings"

	"github.com/participa-tere/app-participa/internal/logging"
	"github.com/participa-tere/app-participa/internal/utils"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCPF masks a CPF number for logging. Input may be masked or bare.
func MaskCPF(cpf string) string {
	digits := utils.SanitizeDigits(cpf)
	if len(digits) != utils.CPFLength {
		return "***.***.***-**"
	}
	return digits[:3] + ".***" + "." + digits[6:9] + "-**"
}

// MaskEmail keeps the first character of the local part and the domain
func MaskEmail(email string) string {
	v := strings.TrimSpace(email)
	at := strings.LastIndex(v, "@")
	if at <= 0 {
		return "***"
	}
	return v[:1] + "***" + v[at:]
}

// MaskIdentifier masks a login identifier according to what it was classified as
func MaskIdentifier(identifier string) string {
	if utils.ClassifyIdentifierField(identifier) == utils.FieldModeCPF {
		return MaskCPF(identifier)
	}
	return MaskEmail(identifier)
}

// MaskName keeps the first name and reduces every other part to its initial.
// A single name keeps only its first letter.
func MaskName(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return maskWord(parts[0])
	}

	masked := make([]string, 0, len(parts))
	masked = append(masked, parts[0])
	for _, p := range parts[1:] {
		masked = append(masked, maskWord(p))
	}
	return strings.Join(masked, " ")
}

func maskWord(word string) string {
	runes := []rune(word)
	if len(runes) <= 1 {
		return word
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}

// MaskSensitiveData returns a copy of a form payload that is safe to log
func MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	secretFields := []string{"password", "confirm_password", "phone"}
	masked := make(map[string]interface{}, len(data))

	for k, v := range data {
		if contains(secretFields, k) {
			masked[k] = "********"
			continue
		}

		s, isString := v.(string)
		switch k {
		case "cpf", "identifier", "email", "name":
			if !isString {
				masked[k] = "********"
				continue
			}
		}

		switch k {
		case "cpf":
			masked[k] = MaskCPF(s)
		case "identifier":
			masked[k] = MaskIdentifier(s)
		case "email":
			masked[k] = MaskEmail(s)
		case "name":
			masked[k] = MaskName(s)
		default:
			masked[k] = v
		}
	}

	return masked
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
