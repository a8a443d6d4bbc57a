package signup

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/signupkit/pkg/country"
)

// Strategy selects when a Form recomputes field errors.
type Strategy uint8

const (
	// ValidateOnBlur validates a field when it loses focus and revalidates it
	// on every later change.
	ValidateOnBlur Strategy = iota
	// ValidateOnChange validates a field on every change.
	ValidateOnChange
	// ValidateOnSettle defers recomputation of changed fields until Settle.
	ValidateOnSettle
)

func (s Strategy) String() string {
	switch s {
	case ValidateOnBlur:
		return "blur"
	case ValidateOnChange:
		return "change"
	case ValidateOnSettle:
		return "settle"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// Form is the UI-side state of the sign-up form: the current snapshot, the
// displayed error map and the set of touched fields.
// It models a single event loop and is not safe for concurrent use.
type Form struct {
	engine   *Engine
	strategy Strategy
	logger   *slog.Logger

	snap    Snapshot
	errs    Result
	touched map[Field]bool
	pending map[Field]bool
}

type formOptions struct {
	strategy    Strategy
	initial     Snapshot
	defaultCode string
	logger      *slog.Logger
}

// FormOption configures a Form.
type FormOption func(*formOptions)

// WithStrategy selects the recomputation strategy. The default is ValidateOnBlur.
func WithStrategy(s Strategy) FormOption {
	return func(o *formOptions) {
		o.strategy = s
	}
}

// WithInitial starts the form from snap instead of the all-empty snapshot.
func WithInitial(snap Snapshot) FormOption {
	return func(o *formOptions) {
		o.initial = snap
	}
}

// WithDefaultCountryCode pre-seeds an empty countryCode. The code must exist
// in the engine's directory.
func WithDefaultCountryCode(code string) FormOption {
	return func(o *formOptions) {
		o.defaultCode = code
	}
}

// WithFormLogger sets the form logger. By default the engine's logger is used.
func WithFormLogger(l *slog.Logger) FormOption {
	return func(o *formOptions) {
		o.logger = l
	}
}

// NewForm creates form state driven by engine.
func NewForm(engine *Engine, opts ...FormOption) (*Form, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}

	o := formOptions{strategy: ValidateOnBlur}
	for _, opt := range opts {
		opt(&o)
	}

	snap := o.initial
	if o.defaultCode != "" {
		seeded, err := DefaultSnapshot(engine.dir, o.defaultCode)
		if err != nil {
			return nil, err
		}
		if snap.CountryCode == "" {
			snap.CountryCode = seeded.CountryCode
		}
	}

	logger := o.logger
	if logger == nil {
		logger = engine.logger
	}

	return &Form{
		engine:   engine,
		strategy: o.strategy,
		logger:   logger,
		snap:     snap,
		errs:     Result{},
		touched:  make(map[Field]bool),
		pending:  make(map[Field]bool),
	}, nil
}

// DefaultSnapshot returns an empty snapshot with countryCode set to code.
// An empty code leaves the snapshot untouched.
func DefaultSnapshot(dir *country.Directory, code string) (Snapshot, error) {
	if code == "" {
		return Snapshot{}, nil
	}
	if dir == nil {
		return Snapshot{}, ErrNilDirectory
	}
	if _, ok := dir.FindByCallingCode(code); !ok {
		return Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownCountryCode, code)
	}
	return Snapshot{CountryCode: code}, nil
}

// Change sets field to value and recomputes errors according to the strategy.
// Fields whose validity depends on the changed one are recomputed with it:
// city follows country and phone follows countryCode.
func (f *Form) Change(field Field, value string) error {
	if !field.Validated() {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	next, err := f.snap.With(field, value)
	if err != nil {
		return err
	}
	dependents := f.derive(field, &next)
	f.snap = next

	switch f.strategy {
	case ValidateOnChange:
		f.revalidate(field)
	case ValidateOnSettle:
		f.pending[field] = true
		for _, d := range dependents {
			f.pending[d] = true
		}
		return nil
	default:
		if f.touched[field] {
			f.revalidate(field)
		}
	}

	for _, d := range dependents {
		if f.tracked(d) {
			f.revalidate(d)
		}
	}
	return nil
}

// derive applies dependent-field rules to next and returns the fields whose
// outcome may have changed as a side effect.
func (f *Form) derive(field Field, next *Snapshot) []Field {
	switch field {
	case Country:
		if next.City != "" {
			rec, _ := f.engine.dir.FindByName(next.Country)
			if !rec.HasCity(next.City) {
				f.logger.Debug("cleared city not offered by country",
					slog.String("city", next.City),
					slog.String("country", next.Country),
				)
				next.City = ""
			}
		}
		return []Field{City}
	case CountryCode:
		return []Field{Phone}
	default:
		return nil
	}
}

// ToggleShowPassword flips password visibility. It never validates.
func (f *Form) ToggleShowPassword() {
	f.snap.ShowPassword = !f.snap.ShowPassword
}

// Blur marks field as touched and validates it, or queues it for Settle
// under ValidateOnSettle.
func (f *Form) Blur(field Field) error {
	if !field.Validated() {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	f.touched[field] = true
	if f.strategy == ValidateOnSettle {
		f.pending[field] = true
		return nil
	}
	f.revalidate(field)
	return nil
}

// Settle recomputes the errors of pending fields that are touched or already
// carry an entry. Pending fields are cleared either way.
func (f *Form) Settle() {
	for _, field := range validatedFields {
		if !f.pending[field] {
			continue
		}
		if f.tracked(field) {
			f.revalidate(field)
		}
	}
	clear(f.pending)
}

// Submit validates every field into the error map, marks all fields touched
// and reports whether the form may be submitted. The returned snapshot is
// the hand-off to the success view.
func (f *Form) Submit() (Snapshot, bool) {
	f.errs = f.engine.Sweep(f.snap)
	for _, field := range validatedFields {
		f.touched[field] = true
	}
	clear(f.pending)

	ok := f.engine.Gate(f.snap)
	f.logger.Debug("form submitted",
		slog.Bool("accepted", ok),
		slog.Int("failed_fields", len(f.errs.Failed())),
	)
	return f.snap, ok
}

// CanSubmit reports whether the current snapshot passes the gate.
func (f *Form) CanSubmit() bool {
	return f.engine.Gate(f.snap)
}

// Errors returns a copy of the displayed error map.
func (f *Form) Errors() Result {
	return f.errs.clone()
}

// Error returns the displayed message of a field.
func (f *Form) Error(field Field) string {
	return f.errs[field]
}

func (f *Form) Snapshot() Snapshot {
	return f.snap
}

func (f *Form) Touched(field Field) bool {
	return f.touched[field]
}

func (f *Form) Strategy() Strategy {
	return f.strategy
}

// TouchedFields returns the touched fields in declaration order.
func (f *Form) TouchedFields() []Field {
	var out []Field
	for _, field := range validatedFields {
		if f.touched[field] {
			out = append(out, field)
		}
	}
	return out
}

// CityOptions returns the cities offered for the currently selected country.
func (f *Form) CityOptions() []string {
	return f.engine.dir.CitiesOf(f.snap.Country)
}

// Reset restores the form to snap with no errors and nothing touched.
func (f *Form) Reset(snap Snapshot) {
	f.snap = snap
	f.errs = Result{}
	clear(f.touched)
	clear(f.pending)
}

func (f *Form) tracked(field Field) bool {
	if f.touched[field] {
		return true
	}
	_, seen := f.errs[field]
	return seen
}

func (f *Form) revalidate(field Field) {
	value, _ := f.snap.Get(field)
	f.errs[field] = f.engine.validate(field, value, f.snap).Message
}

