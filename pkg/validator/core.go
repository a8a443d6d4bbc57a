package validator

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of the rule reporting msg under the given
// translation key. Existing translation values are kept.
func (r Rule) WithMessage(msg, key string) Rule {
	r.Error.Message = msg
	if key != "" {
		r.Error.TranslationKey = key
	}
	return r
}

// WithValues returns a copy of the rule with extra translation values merged in.
func (r Rule) WithValues(kv map[string]any) Rule {
	merged := make(map[string]any, len(r.Error.TranslationValues)+len(kv))
	for k, v := range r.Error.TranslationValues {
		merged[k] = v
	}
	for k, v := range kv {
		merged[k] = v
	}
	r.Error.TranslationValues = merged
	return r
}

// First evaluates rules in order and stops at the first failure.
// The boolean is false when every rule passed.
func First(rules ...Rule) (ValidationError, bool) {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error, true
		}
	}
	return ValidationError{}, false
}
