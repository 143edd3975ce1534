// Package form provides a validated multi-field form state machine.
//
// # Overview
//
// A Form holds field values, per-field validation messages and a submit
// gate. Every field change runs that field's validators; a submit re-runs
// all of them and only calls the submit callback when none fails:
//
//	f, err := form.New(
//	    [][]form.Field{
//	        {form.NewField("name", "Name", form.Required(""))},
//	        {form.NewField("email", "Email", form.Required(""), form.Email("invalid"))},
//	    },
//	    form.Values{"name": "", "email": ""},
//	    func(ctx context.Context, v form.Values) error { return save(ctx, v) },
//	)
//
//	s, _ := f.Change("email", "x")  // s.Errors["email"] == "invalid", s.SubmitDisabled
//	s, _ = f.Change("email", "a@b.com")
//	s, err = f.Submit(ctx)
//
// # State Transitions
//
// The transitions are plain functions over an immutable State (Change,
// Validate, SubmitFailed, Reset). Form applies them under a lock so hosts
// may call it from any goroutine.
//
// A failed submit disables submission and records "there was an error: ..."
// as the submit error. The next Change clears the submit error and
// recomputes the gate from the field errors, so the user can retry.
//
// # Validation
//
// Built-in validators cover common patterns:
//
//   - Required: Non-empty value
//   - MinLength/MaxLength: String length constraints
//   - Email, URL: Address formats
//   - Pattern: Regular expression matching
//   - Min/Max: Numeric range constraints
//   - OneOf: Fixed option set
//   - Tag: go-playground/validator tags such as "required,email"
//   - Custom, Message: User-defined logic
//
// # Rendering
//
// View renders a Form through ui capabilities for any node type.
package form
