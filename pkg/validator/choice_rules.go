package validator

import "slices"

// OneOf validates that value is exactly one of options. Matching is
// case-sensitive and an empty option set rejects everything. The message
// does not enumerate options since lookup lists can be long.
func OneOf(field, value string, options []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(options, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be one of the available options",
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"value":   value,
				"options": len(options),
			},
		},
	}
}
