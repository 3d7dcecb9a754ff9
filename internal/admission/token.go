package admission

import "crypto/subtle"

// AuthTokenHeader is the case-insensitive metadata key carrying the
// access token on both the frontend and backend listeners.
const AuthTokenHeader = "x-custom-auth-token"

// CheckToken reports whether provided satisfies configured. An empty
// configured token disables the check (any or no provided value is
// accepted). A provided value of a different length is rejected at
// once; values of equal length are compared in constant time, so
// response timing does not leak the token's contents.
func CheckToken(configured, provided string) bool {
	if configured == "" {
		return true
	}
	a, b := []byte(configured), []byte(provided)
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
