package form

import "fmt"

// Values maps field keys to their current, possibly invalid, values.
type Values map[string]any

// Clone returns a shallow copy of v. A nil map clones to an empty one.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Errors maps field keys to their validation message. Valid fields are
// absent.
type Errors map[string]string

// Clone returns a copy of e.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, msg := range e {
		out[k] = msg
	}
	return out
}

// Any reports whether any field has a non-empty message.
func (e Errors) Any() bool {
	for _, msg := range e {
		if msg != "" {
			return true
		}
	}
	return false
}

// State is an immutable snapshot of a form. Transitions return new
// snapshots and never modify their input.
type State struct {
	Values         Values
	Errors         Errors
	SubmitDisabled bool
	SubmitError    string
	Submitting     bool
}

// Initial returns the state of a form created with defaults.
func Initial(defaults Values) State {
	return State{Values: defaults.Clone(), Errors: Errors{}}
}

func (s State) clone() State {
	s.Values = s.Values.Clone()
	s.Errors = s.Errors.Clone()
	return s
}

// Change stores value under f.Key. With validators, the field's message is
// replaced by the first failure (or cleared). SubmitDisabled is always
// recomputed from all field errors and any submit error is cleared.
func Change(s State, f Field, value any) State {
	next := s.clone()
	next.SubmitError = ""
	next.Values[f.Key] = value
	if len(f.Validators) > 0 {
		if msg := f.validate(value); msg != "" {
			next.Errors[f.Key] = msg
		} else {
			delete(next.Errors, f.Key)
		}
	}
	next.SubmitDisabled = next.Errors.Any()
	return next
}

// Validate re-runs every field's validators against the current values and
// rebuilds the error mapping. The submit error is cleared.
func Validate(s State, fields []Field) State {
	next := s.clone()
	next.SubmitError = ""
	next.Errors = Errors{}
	for _, f := range fields {
		if msg := f.validate(next.Values[f.Key]); msg != "" {
			next.Errors[f.Key] = msg
		}
	}
	next.SubmitDisabled = next.Errors.Any()
	return next
}

// SubmitFailed records a rejected submit. Submission stays disabled until
// the next change re-enables it.
func SubmitFailed(s State, err error) State {
	next := s.clone()
	next.Submitting = false
	next.SubmitDisabled = true
	next.SubmitError = fmt.Sprintf("there was an error: %v", err)
	return next
}

// Reset replaces the values wholesale, keeping errors and flags.
func Reset(s State, defaults Values) State {
	next := s.clone()
	next.Values = defaults.Clone()
	return next
}
