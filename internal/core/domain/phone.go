package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// PhonePlaceholder is used until the operator configures a real number.
const PhonePlaceholder = "593XXXXXXXXX"

const countryCode = "593"

var phonePattern = regexp.MustCompile(`^5939\d{8}$`)

// NormalizePhone turns a configured number into the international digits-only
// form expected by the messaging service (Ecuadorian mobile numbers).
func NormalizePhone(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" || raw == PhonePlaceholder {
		return "", ErrInvalidPhone
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	digits = strings.TrimPrefix(digits, "00")

	switch {
	case strings.HasPrefix(digits, countryCode):
	case len(digits) == 10 && strings.HasPrefix(digits, "09"):
		digits = countryCode + digits[1:]
	case len(digits) == 9 && strings.HasPrefix(digits, "9"):
		digits = countryCode + digits
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}

	return digits, nil
}

func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	return nil
}

// MessageLink builds <base>/<phone>?text=<message>, escaping the text the way
// browsers do for URI components.
func MessageLink(base string, phone string, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return strings.TrimRight(base, "/") + "/" + phone + "?text=" + text
}
