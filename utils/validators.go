package utils

import (
	"regexp"
	"strings"
)

var (
	// Matches 00:00 through 23:59
	timeOfDayRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

	// 10 to 15 digits, no separators
	phoneRegex = regexp.MustCompile(`^[0-9]{10,15}$`)

	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.\-]{3,50}$`)
)

func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

// IsValidTimeOfDay checks 24-hour HH:MM format.
func IsValidTimeOfDay(t string) bool {
	return timeOfDayRegex.MatchString(t)
}

// IsValidPhoneNumber checks the emergency-contact pattern (10-15 digits).
func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(phone)
}

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

func IsValidPassword(password string) bool {
	return len(password) >= 6
}

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
