// Package messaging delivers reviewer messages to influencers through a
// WhatsApp deep link, with the system clipboard as a fallback channel.
package messaging

import (
	"errors"
	"net/url"
	"strings"
)

// DefaultCountryPrefix replaces a leading "0" in local numbers.
const DefaultCountryPrefix = "+27"

// ErrNoDigits means the contact number contained nothing dialable.
var ErrNoDigits = errors.New("contact number has no digits")

// NormalizePhone converts a loosely formatted contact number into E.164-ish
// form: punctuation is stripped, a leading "0" is rewritten to the country
// prefix, and a "+" is prepended when missing. countryPrefix falls back to
// DefaultCountryPrefix when empty.
func NormalizePhone(raw, countryPrefix string) (string, error) {
	if countryPrefix == "" {
		countryPrefix = DefaultCountryPrefix
	}

	num := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' {
			return r
		}
		return -1
	}, raw)
	if strings.TrimPrefix(num, "+") == "" {
		return "", ErrNoDigits
	}

	switch {
	case strings.HasPrefix(num, "0"):
		num = countryPrefix + num[1:]
	case !strings.HasPrefix(num, "+"):
		num = "+" + num
	}
	return num, nil
}

// DeepLink builds the wa.me URL for a normalized number and message text.
// wa.me takes the number without the leading "+".
func DeepLink(normalized, message string) string {
	return "https://wa.me/" + strings.TrimPrefix(normalized, "+") +
		"?text=" + url.QueryEscape(message)
}
