// Package auth — password policy.
package auth

// PolicyDescription is the human-readable form of the password rules,
// returned to clients when registration fails validation.
const PolicyDescription = "password must be at least 6 characters long and include a combination of lowercase, uppercase, number, and special character"

// allowedSymbols is the fixed set of special characters a password may
// (and must, at least once) contain.
const allowedSymbols = "@$!%*?&#^()-_=+<>"

// MinPasswordLength is the policy's minimum password length.
const MinPasswordLength = 6

// ValidPassword reports whether a plaintext password satisfies the policy:
// at least MinPasswordLength characters, at least one lowercase letter, one
// uppercase letter, one digit, and one symbol from allowedSymbols — and no
// characters outside those four classes.
//
// NO NORMALIZATION:
// The password is checked exactly as given. No trimming, no Unicode folding.
// " Abc1! " fails not because of the spaces' position but because space is
// not in any allowed class. What the user typed is what gets hashed.
//
// This is a pure predicate — it is evaluated once, before hashing, on
// registration only. Login verifies against the stored hash and never
// re-checks the policy (old accounts keep working if the policy tightens).
func ValidPassword(plaintext string) bool {
	if len(plaintext) < MinPasswordLength {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, c := range plaintext {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case isAllowedSymbol(c):
			hasSymbol = true
		default:
			// Character outside every allowed class — reject outright.
			return false
		}
	}

	return hasLower && hasUpper && hasDigit && hasSymbol
}

func isAllowedSymbol(c rune) bool {
	for _, s := range allowedSymbols {
		if c == s {
			return true
		}
	}
	return false
}
