// Package country holds the reference data behind dependent form fields:
// each Record ties a country name to its calling code, the exact digit count
// of its national phone numbers, and the cities offered for it.
//
// A Directory is built once from a Source and never mutated afterwards, so it
// can be shared freely between goroutines. Sources are swappable:
//
//   - Embedded() – the dataset bundled with the package (YAML)
//   - Inline()   – the compact three-code table (+91, +1, +44)
//   - NewFileSource(path) – a JSON or YAML file on disk
//   - NewFSSource(fsys, path) – a file inside any fs.FS
//   - StaticSource / SourceFunc – in-memory or custom loaders
//
// The on-disk shape is an ordered sequence of
// {name, code, nationalNumberLength, cities: [string]} objects.
//
// # Usage
//
//	dir, err := country.New(ctx, country.Embedded())
//	if err != nil {
//		return err
//	}
//	if rec, ok := dir.FindByCallingCode("+91"); ok {
//		fmt.Println(rec.NationalNumberLength) // 10
//	}
//	cities := dir.CitiesOf("India")
//
// # Error Handling
//
// New rejects datasets that break the uniqueness or shape invariants with
// ErrDuplicateName, ErrDuplicateCode, ErrInvalidRecord or ErrEmptyDataset.
// Lookups never fail; they report absence with a boolean or an empty slice.
package country
