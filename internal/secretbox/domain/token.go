package domain

import "regexp"

// tokenPattern matches the expected shape of an inference API token:
// the "hf_" prefix followed by at least 30 alphanumeric characters.
var tokenPattern = regexp.MustCompile(`^hf_[A-Za-z0-9]{30,}$`)

// ValidTokenFormat reports whether a candidate secret looks like an API token.
//
// This is a pure syntactic check used only as a UX hint to catch typos before
// an encryption round-trip. It is never a security boundary: a conforming
// string is not guaranteed authentic, and a non-conforming one might still be
// accepted by the remote service as its token format evolves. Callers must
// treat a false result as a warning, not a hard failure.
func ValidTokenFormat(candidate string) bool {
	return tokenPattern.MatchString(candidate)
}
