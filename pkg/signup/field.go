package signup

import (
	"fmt"
	"slices"
)

// Field names a sign-up form key. Values are the camelCase keys used on the wire.
type Field string

const (
	FirstName    Field = "firstName"
	LastName     Field = "lastName"
	Username     Field = "username"
	Email        Field = "email"
	Password     Field = "password"
	ShowPassword Field = "showPassword"
	CountryCode  Field = "countryCode"
	Phone        Field = "phone"
	Country      Field = "country"
	City         Field = "city"
	PAN          Field = "pan"
	Aadhar       Field = "aadhar"
)

// allFields is the declaration order of the form.
var allFields = []Field{
	FirstName, LastName, Username, Email, Password, ShowPassword,
	CountryCode, Phone, Country, City, PAN, Aadhar,
}

var validatedFields = []Field{
	FirstName, LastName, Username, Email, Password,
	CountryCode, Phone, Country, City, PAN, Aadhar,
}

// AllFields returns the twelve form keys in declaration order.
func AllFields() []Field {
	return slices.Clone(allFields)
}

// ValidatedFields returns the eleven keys that take part in validation.
func ValidatedFields() []Field {
	return slices.Clone(validatedFields)
}

// ParseField resolves a wire name to a Field. showPassword is accepted.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if !slices.Contains(allFields, f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

// Validated reports whether the field takes part in validation.
func (f Field) Validated() bool {
	return slices.Contains(validatedFields, f)
}

func (f Field) String() string {
	return string(f)
}
