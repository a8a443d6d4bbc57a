package signup

import "fmt"

// Snapshot is the full set of form values at one instant. It is a value type:
// With returns a modified copy and never touches the receiver.
// Absent input is the empty string.
type Snapshot struct {
	FirstName    string `json:"firstName" yaml:"firstName"`
	LastName     string `json:"lastName" yaml:"lastName"`
	Username     string `json:"username" yaml:"username"`
	Email        string `json:"email" yaml:"email"`
	Password     string `json:"password" yaml:"password"`
	ShowPassword bool   `json:"showPassword" yaml:"showPassword"`
	CountryCode  string `json:"countryCode" yaml:"countryCode"`
	Phone        string `json:"phone" yaml:"phone"`
	Country      string `json:"country" yaml:"country"`
	City         string `json:"city" yaml:"city"`
	PAN          string `json:"pan" yaml:"pan"`
	Aadhar       string `json:"aadhar" yaml:"aadhar"`
}

// Get returns the string value of a validated field.
// The boolean is false for showPassword and unknown names.
func (s Snapshot) Get(f Field) (string, bool) {
	p := s.ref(f)
	if p == nil {
		return "", false
	}
	return *p, true
}

// With returns a copy of s with field f set to value.
func (s Snapshot) With(f Field, value string) (Snapshot, error) {
	p := s.ref(f)
	if p == nil {
		return s, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	*p = value
	return s, nil
}

// WithShowPassword returns a copy of s with the password visibility flag set.
func (s Snapshot) WithShowPassword(show bool) Snapshot {
	s.ShowPassword = show
	return s
}

// ref points into the receiver, which is always a copy at the call sites.
func (s *Snapshot) ref(f Field) *string {
	switch f {
	case FirstName:
		return &s.FirstName
	case LastName:
		return &s.LastName
	case Username:
		return &s.Username
	case Email:
		return &s.Email
	case Password:
		return &s.Password
	case CountryCode:
		return &s.CountryCode
	case Phone:
		return &s.Phone
	case Country:
		return &s.Country
	case City:
		return &s.City
	case PAN:
		return &s.PAN
	case Aadhar:
		return &s.Aadhar
	default:
		return nil
	}
}
