package signup

import (
	"fmt"
	"strings"
)

// PasswordPolicy selects the password rule set.
type PasswordPolicy string

const (
	// PasswordStrict requires length, upper and lower case letters, a digit and a symbol.
	PasswordStrict PasswordPolicy = "strict"
	// PasswordLegacy only enforces the minimum length.
	PasswordLegacy PasswordPolicy = "legacy"
)

// passwordSymbols is the symbol class accepted by the strict policy.
const passwordSymbols = "@#$%^&+=!"

const minPasswordLength = 8

// ParsePasswordPolicy resolves a policy name. The empty string selects PasswordStrict.
func ParsePasswordPolicy(name string) (PasswordPolicy, error) {
	switch PasswordPolicy(strings.ToLower(strings.TrimSpace(name))) {
	case "", PasswordStrict:
		return PasswordStrict, nil
	case PasswordLegacy:
		return PasswordLegacy, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPasswordPolicy, name)
	}
}
