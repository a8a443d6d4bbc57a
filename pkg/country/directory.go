package country

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// Directory is the read-only country reference data. It is built once and is
// safe for concurrent use without synchronization.
type Directory struct {
	records []Record
	byName  map[string]int
	byCode  map[string]int
}

// Option configures Directory construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used while loading. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New loads records from src and checks the dataset invariants: every record
// is well formed, and names and calling codes are unique.
func New(ctx context.Context, src Source, opts ...Option) (*Directory, error) {
	o := &options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(o)
	}

	if src == nil {
		return nil, ErrNilSource
	}

	records, err := src.Records(ctx)
	if err != nil {
		return nil, err
	}

	d, err := build(records)
	if err != nil {
		o.logger.ErrorContext(ctx, "country dataset rejected", slog.Any("error", err))
		return nil, err
	}

	o.logger.DebugContext(ctx, "country directory loaded", slog.Int("countries", len(d.records)))
	return d, nil
}

// MustNew is like New but panics on error. Intended for package-level
// initialization with bundled data.
func MustNew(ctx context.Context, src Source, opts ...Option) *Directory {
	d, err := New(ctx, src, opts...)
	if err != nil {
		panic(fmt.Sprintf("country: %v", err))
	}
	return d
}

func build(records []Record) (*Directory, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	d := &Directory{
		records: make([]Record, 0, len(records)),
		byName:  make(map[string]int, len(records)),
		byCode:  make(map[string]int, len(records)),
	}

	for _, r := range records {
		if err := r.validate(); err != nil {
			return nil, err
		}
		if _, dup := d.byName[r.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, r.Name)
		}
		if _, dup := d.byCode[r.Code]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, r.Code)
		}

		d.byName[r.Name] = len(d.records)
		d.byCode[r.Code] = len(d.records)
		d.records = append(d.records, r.clone())
	}

	return d, nil
}

// FindByCallingCode returns the record whose calling code equals code.
func (d *Directory) FindByCallingCode(code string) (Record, bool) {
	i, ok := d.byCode[code]
	if !ok {
		return Record{}, false
	}
	return d.records[i].clone(), true
}

// FindByName returns the record with the given name.
func (d *Directory) FindByName(name string) (Record, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Record{}, false
	}
	return d.records[i].clone(), true
}

// CitiesOf returns the cities of the named country in dataset order, or an
// empty slice when the country is unknown.
func (d *Directory) CitiesOf(name string) []string {
	i, ok := d.byName[name]
	if !ok {
		return []string{}
	}
	return slices.Clone(d.records[i].Cities)
}

// Records returns a copy of every record in dataset order.
func (d *Directory) Records() []Record {
	out := make([]Record, len(d.records))
	for i, r := range d.records {
		out[i] = r.clone()
	}
	return out
}

// Names returns country names in dataset order.
func (d *Directory) Names() []string {
	out := make([]string, len(d.records))
	for i, r := range d.records {
		out[i] = r.Name
	}
	return out
}

// CallingCodes returns calling codes in dataset order.
func (d *Directory) CallingCodes() []string {
	out := make([]string, len(d.records))
	for i, r := range d.records {
		out[i] = r.Code
	}
	return out
}

// Len returns the number of records.
func (d *Directory) Len() int {
	return len(d.records)
}
