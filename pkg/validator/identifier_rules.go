package validator

import "regexp"

// five uppercase letters, four digits, one uppercase letter
var panRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// ValidPAN validates an Indian Permanent Account Number (e.g. ABCDE1234F).
// Matching is case-sensitive.
func ValidPAN(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return panRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid PAN (5 uppercase letters, 4 digits, 1 uppercase letter)",
			TranslationKey: "validation.pan",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
