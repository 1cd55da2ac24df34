package validators

import "regexp"

var phonePattern = regexp.MustCompile(`^[\d\s\+]+$`)

// IsPhoneNumberValid accepts digits, spaces and '+' only, 8-20 characters.
func IsPhoneNumberValid(phone string) bool {
	if len(phone) < 8 || len(phone) > 20 {
		return false
	}
	return phonePattern.MatchString(phone)
}
