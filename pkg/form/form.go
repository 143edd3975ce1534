package form

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/rs/zerolog"

	herrors "github.com/vango-dev/headless/internal/errors"
)

// Form errors.
var (
	ErrUnknownField   = errors.New("unknown form field")
	ErrDuplicateField = errors.New("duplicate form field")
	ErrSubmitInFlight = errors.New("submit already in flight")
)

// SubmitFunc receives a copy of the values of a valid form. A returned error
// is shown to the user as the form's submit error.
type SubmitFunc func(ctx context.Context, values Values) error

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger used to report failed submits.
func WithLogger(l zerolog.Logger) Option {
	return func(f *Form) {
		f.logger = l
	}
}

// Form is a validated multi-field form. It holds the current State and
// moves it forward through Change and Submit.
type Form struct {
	rows   [][]Field
	fields []Field
	byKey  map[string]Field
	submit SubmitFunc
	logger zerolog.Logger

	mu       sync.Mutex
	state    State
	defaults Values
}

// New creates a form from rows of fields. Every key in defaults must be
// declared by a field.
func New(rows [][]Field, defaults Values, submit SubmitFunc, opts ...Option) (*Form, error) {
	if submit == nil {
		return nil, errors.New("form: submit callback is required")
	}

	fields := flatten(rows)
	byKey := make(map[string]Field, len(fields))
	for _, f := range fields {
		if _, dup := byKey[f.Key]; dup {
			return nil, herrors.New("H041").
				WithDetail(fmt.Sprintf("field %q is declared twice", f.Key)).
				Wrap(ErrDuplicateField)
		}
		byKey[f.Key] = f
	}
	for k := range defaults {
		if _, ok := byKey[k]; !ok {
			return nil, unknownField(k)
		}
	}

	f := &Form{
		rows:     rows,
		fields:   fields,
		byKey:    byKey,
		submit:   submit,
		logger:   zerolog.Nop(),
		state:    Initial(defaults),
		defaults: defaults,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Rows returns the field layout.
func (f *Form) Rows() [][]Field {
	return f.rows
}

// State returns a snapshot of the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.clone()
}

// Change stores value for the field key and re-validates that field.
func (f *Form) Change(key string, value any) (State, error) {
	field, ok := f.byKey[key]
	if !ok {
		return f.State(), unknownField(key)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = Change(f.state, field, value)
	return f.state.clone(), nil
}

// Submit re-validates every field and, when all are valid, calls the submit
// callback with a copy of the values. An invalid form returns its state with
// SubmitDisabled set and a nil error. A callback failure is recorded in the
// state and returned.
func (f *Form) Submit(ctx context.Context) (State, error) {
	f.mu.Lock()
	if f.state.Submitting {
		s := f.state.clone()
		f.mu.Unlock()
		return s, ErrSubmitInFlight
	}
	f.state = Validate(f.state, f.fields)
	if f.state.SubmitDisabled {
		s := f.state.clone()
		f.mu.Unlock()
		return s, nil
	}
	f.state.Submitting = true
	values := f.state.Values.Clone()
	f.mu.Unlock()

	err := f.submit(ctx, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.logger.Warn().Err(err).Msg("form submit failed")
		f.state = SubmitFailed(f.state, err)
		return f.state.clone(), herrors.New("H042").WithDetail(err.Error()).Wrap(err)
	}
	f.state.Submitting = false
	return f.state.clone(), nil
}

// SyncDefaults replaces the values wholesale when defaults is a different
// map than the one the form currently holds. Maps are compared by identity,
// not content. Keys no field declares are dropped.
func (f *Form) SyncDefaults(defaults Values) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if sameMap(f.defaults, defaults) {
		return false
	}
	f.defaults = defaults

	known := make(Values, len(defaults))
	for k, v := range defaults {
		if _, ok := f.byKey[k]; ok {
			known[k] = v
		}
	}
	f.state = Reset(f.state, known)
	return true
}

func sameMap(a, b Values) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func unknownField(key string) error {
	return herrors.New("H040").
		WithDetail(fmt.Sprintf("no field is declared under %q", key)).
		Wrap(ErrUnknownField)
}
