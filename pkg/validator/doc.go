// Package validator provides small, composable validation rules for string
// form input.
//
// A Rule pairs a boolean Check function with translation-friendly error
// metadata. First evaluates rules in order and stops at the first failing
// one, so a field reports a single message.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `pattern_rules.go`, `format_rules.go`, ...). Every exported constructor
// returns a Rule value; there is no hidden global state beyond precompiled
// patterns, so the package is stateless and goroutine-safe.
//
// Core building blocks:
//   - Rule             – Check func plus ValidationError metadata
//   - ValidationError  – a single failure with an i18n key and values
//
// # Usage
//
//	if failure, failed := validator.First(
//	    validator.Required("phone", phone),
//	    validator.ValidNumericString("phone", phone),
//	); failed {
//	    fmt.Println(failure.Message)
//	}
//
// Messages can be overridden per call site with Rule.WithMessage, keeping the
// rule logic shared while the wording stays domain specific.
//
// Lengths are measured in characters (runes), not bytes.
package validator
