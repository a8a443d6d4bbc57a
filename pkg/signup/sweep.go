package signup

import "maps"

// Result maps each validated field to its error message.
// An empty message means valid; an absent key means not yet validated.
type Result map[Field]string

// Valid reports whether no entry carries a message.
func (r Result) Valid() bool {
	for _, msg := range r {
		if msg != "" {
			return false
		}
	}
	return true
}

// Failed returns the fields with a non-empty message in declaration order.
func (r Result) Failed() []Field {
	var failed []Field
	for _, f := range validatedFields {
		if r[f] != "" {
			failed = append(failed, f)
		}
	}
	return failed
}

func (r Result) clone() Result {
	if r == nil {
		return Result{}
	}
	return maps.Clone(r)
}

// SweepOutcomes validates every validated field of snap against snap itself.
func (e *Engine) SweepOutcomes(snap Snapshot) map[Field]Outcome {
	outcomes := make(map[Field]Outcome, len(validatedFields))
	for _, f := range validatedFields {
		value, _ := snap.Get(f)
		outcomes[f] = e.validate(f, value, snap)
	}
	return outcomes
}

// Sweep validates the full form. The result holds an entry for all eleven
// validated fields and does not depend on evaluation order.
func (e *Engine) Sweep(snap Snapshot) Result {
	outcomes := e.SweepOutcomes(snap)
	res := make(Result, len(outcomes))
	for f, o := range outcomes {
		res[f] = o.Message
	}
	return res
}

// Gate reports whether the form may be submitted: every validated field is
// non-empty and valid. It is derived from snap on every call.
func (e *Engine) Gate(snap Snapshot) bool {
	for _, f := range validatedFields {
		value, _ := snap.Get(f)
		if value == "" {
			return false
		}
		if !e.validate(f, value, snap).IsValid() {
			return false
		}
	}
	return true
}
