package utils

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/participa-tere/app-participa/internal/models"
)

// PhoneLength is the digit count of a Brazilian mobile number with DDD, without country code
const PhoneLength = 11

// PhoneComponents represents the parsed components of a phone number
type PhoneComponents struct {
	DDI    string `json:"ddi"`
	DDD    string `json:"ddd"`
	Valor  string `json:"valor"`
	Full   string `json:"full"`
	Region string `json:"region,omitempty"`
}

// MaskPhone renders national digits progressively as (DD) DDDD-DDDD, switching
// to the mobile layout (DD) DDDDD-DDDD only at exactly 11 digits.
func MaskPhone(digits string) string {
	v := truncateDigits(digits, PhoneLength)
	switch n := len(v); {
	case n <= 2:
		return "(" + v
	case n <= 6:
		return "(" + v[:2] + ") " + v[2:]
	case n <= 10:
		return "(" + v[:2] + ") " + v[2:6] + "-" + v[6:]
	default:
		return "(" + v[:2] + ") " + v[2:7] + "-" + v[7:]
	}
}

// ParsePhoneNumber parses a phone number string and returns its components.
// Numbers without a leading + are read as Brazilian; a bare 12 or 13 digit
// value starting with 55 is taken to already carry the country code.
func ParsePhoneNumber(phoneString string) (*PhoneComponents, error) {
	cleanPhone := TrimFormSpace(phoneString)
	if cleanPhone == "" {
		return nil, fmt.Errorf("%w: empty value", models.ErrInvalidPhone)
	}

	if !strings.HasPrefix(cleanPhone, "+") {
		digits := SanitizeDigits(cleanPhone)
		if strings.HasPrefix(digits, "55") && (len(digits) == 12 || len(digits) == 13) {
			cleanPhone = "+" + digits
		}
	}

	num, err := phonenumbers.Parse(cleanPhone, "BR")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse phone number: %w", models.ErrInvalidPhone, err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidPhone, phoneString)
	}

	countryCode := num.GetCountryCode()
	nationalNumber := phonenumbers.GetNationalSignificantNumber(num)

	components := &PhoneComponents{
		DDI:    fmt.Sprintf("%d", countryCode),
		Full:   phonenumbers.Format(num, phonenumbers.E164),
		Region: phonenumbers.GetRegionCodeForNumber(num),
	}

	// Extract DDD and Valor based on country
	if countryCode == 55 {
		if len(nationalNumber) >= 2 {
			components.DDD = nationalNumber[:2]
			components.Valor = nationalNumber[2:]
		} else {
			components.Valor = nationalNumber
		}
	} else {
		// International area codes vary from 2 to 4 digits
		if len(nationalNumber) >= 4 {
			areaCodeLength := 2
			if len(nationalNumber) >= 6 {
				areaCodeLength = 3
			}
			if len(nationalNumber) >= 8 {
				areaCodeLength = 4
			}
			components.DDD = nationalNumber[:areaCodeLength]
			components.Valor = nationalNumber[areaCodeLength:]
		} else {
			components.Valor = nationalNumber
		}
	}

	return components, nil
}

// NationalDisplay formats parsed Brazilian components back into the form mask
func (p *PhoneComponents) NationalDisplay() string {
	if p.DDI != "55" {
		return p.Full
	}
	return MaskPhone(p.DDD + p.Valor)
}
