package validation

import "regexp"

// CodePattern defines the valid share code format: exactly 7 characters
// over the generator's alphabet.
var CodePattern = regexp.MustCompile(`^[a-z0-9]{7}$`)

// ValidateCode checks if a share code matches the allowed pattern.
// A malformed code can never exist in the store (only the generator writes
// keys), so callers may skip the lookup and report not-found directly.
func ValidateCode(code string) bool {
	return CodePattern.MatchString(code)
}
