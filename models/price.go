package models

import "regexp"

var pricePattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// ValidPrice reports whether s is a non-negative fixed-point decimal with
// at most two fraction digits, the only money format the schema accepts.
func ValidPrice(s string) bool {
	return pricePattern.MatchString(s)
}
