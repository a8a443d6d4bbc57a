package validator

import (
	"fmt"
	"strings"
)

func isASCIIUpper(r rune) bool { return 'A' <= r && r <= 'Z' }
func isASCIILower(r rune) bool { return 'a' <= r && r <= 'z' }
func isASCIIDigit(r rune) bool { return '0' <= r && r <= '9' }

// ContainsUppercase validates that a string contains at least one ASCII
// uppercase letter (A-Z).
func ContainsUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.IndexFunc(value, isASCIIUpper) >= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least one uppercase letter",
			TranslationKey: "validation.contains_uppercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ContainsLowercase validates that a string contains at least one ASCII
// lowercase letter (a-z).
func ContainsLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.IndexFunc(value, isASCIILower) >= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least one lowercase letter",
			TranslationKey: "validation.contains_lowercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ContainsDigit validates that a string contains at least one ASCII digit.
// Digits from other scripts do not count.
func ContainsDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.IndexFunc(value, isASCIIDigit) >= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least one digit",
			TranslationKey: "validation.contains_digit",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ContainsAnyOf validates that a string contains at least one character from chars.
func ContainsAnyOf(field, value, chars string) Rule {
	return Rule{
		Check: func() bool {
			return strings.ContainsAny(value, chars)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at least one of %s", chars),
			TranslationKey: "validation.contains_any",
			TranslationValues: map[string]any{
				"field": field,
				"chars": chars,
			},
		},
	}
}
