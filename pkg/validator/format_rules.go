package validator

import (
	"regexp"
	"strings"
)

// Whitespace as browsers match it: RE2's ASCII \s plus vertical tab, the
// Unicode separator categories and U+FEFF.
const spaceClass = `\s\v\p{Z}\x{FEFF}`

var (
	// local@domain.tld: one @, a dot after it, no whitespace anywhere
	emailShapeRegex = regexp.MustCompile(`^[^` + spaceClass + `@]+@[^` + spaceClass + `@]+\.[^` + spaceClass + `@]+$`)

	alphaSpaceRegex    = regexp.MustCompile(`^[a-zA-Z` + spaceClass + `]+$`)
	wordCharsRegex     = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// ValidEmail validates the local@domain.tld shape. It deliberately does not
// accept display names or quoted local parts.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailShapeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidAlphaSpace validates that a string holds only ASCII letters and
// whitespace, Unicode space separators included.
func ValidAlphaSpace(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return alphaSpaceRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only letters and spaces",
			TranslationKey: "validation.alpha_space",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidWordChars validates that a string holds only letters, digits and underscores.
func ValidWordChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return wordCharsRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only letters, numbers, and underscores",
			TranslationKey: "validation.word_chars",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidNumericString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return numericStringRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only digits",
			TranslationKey: "validation.numeric_string",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
