// Package identitypkg provides identity number (DDD-DD-DDDD) related functionality for apps.
package identitypkg

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var identityPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)

// IsValid returns true if s is formatted as DDD-DD-DDDD.
func IsValid(s string) bool {
	return identityPattern.MatchString(s)
}

// Normalize strips the separators, leaving the digits-only storage form.
func Normalize(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "-", "")
}

// ValidIdentity validates whether the field holds a well-formed identity number.
var ValidIdentity validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return IsValid(s)
	}

	return false
}
