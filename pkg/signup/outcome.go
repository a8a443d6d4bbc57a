package signup

import (
	"fmt"

	"github.com/dmitrymomot/signupkit/pkg/validator"
)

// Kind tags a validation outcome.
type Kind uint8

const (
	Valid Kind = iota
	Required
	FormatInvalid
)

func (k Kind) String() string {
	switch k {
	case Valid:
		return "valid"
	case Required:
		return "required"
	case FormatInvalid:
		return "format_invalid"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// MarshalText renders the kind by name in JSON and YAML.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is the result of validating one field. Message and the translation
// metadata are empty when Kind is Valid.
type Outcome struct {
	Field             Field          `json:"field"`
	Kind              Kind           `json:"kind"`
	Message           string         `json:"message,omitempty"`
	TranslationKey    string         `json:"-"`
	TranslationValues map[string]any `json:"-"`
}

func (o Outcome) IsValid() bool {
	return o.Kind == Valid
}

func validOutcome(f Field) Outcome {
	return Outcome{Field: f, Kind: Valid}
}

func failedOutcome(f Field, kind Kind, verr validator.ValidationError) Outcome {
	return Outcome{
		Field:             f,
		Kind:              kind,
		Message:           verr.Message,
		TranslationKey:    verr.TranslationKey,
		TranslationValues: verr.TranslationValues,
	}
}
