package country

import (
	"fmt"
	"slices"
	"strings"
)

// Record describes a country's calling code, the exact digit count of its
// national phone numbers and the cities offered for it.
// Field tags match the external dataset contract.
type Record struct {
	Name                 string   `json:"name" yaml:"name"`
	Code                 string   `json:"code" yaml:"code"`
	NationalNumberLength int      `json:"nationalNumberLength" yaml:"nationalNumberLength"`
	Cities               []string `json:"cities" yaml:"cities"`
}

// HasCity reports whether city is one of the record's cities.
func (r Record) HasCity(city string) bool {
	return slices.Contains(r.Cities, city)
}

func (r Record) clone() Record {
	r.Cities = slices.Clone(r.Cities)
	return r
}

func (r Record) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: blank name", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.Code) == "" {
		return fmt.Errorf("%w: %s: blank calling code", ErrInvalidRecord, r.Name)
	}
	if r.NationalNumberLength <= 0 {
		return fmt.Errorf("%w: %s: national number length must be positive, got %d", ErrInvalidRecord, r.Name, r.NationalNumberLength)
	}
	if len(r.Cities) == 0 {
		return fmt.Errorf("%w: %s: no cities", ErrInvalidRecord, r.Name)
	}

	seen := make(map[string]struct{}, len(r.Cities))
	for _, city := range r.Cities {
		if strings.TrimSpace(city) == "" {
			return fmt.Errorf("%w: %s: blank city", ErrInvalidRecord, r.Name)
		}
		if _, dup := seen[city]; dup {
			return fmt.Errorf("%w: %s: duplicate city %q", ErrInvalidRecord, r.Name, city)
		}
		seen[city] = struct{}{}
	}

	return nil
}
