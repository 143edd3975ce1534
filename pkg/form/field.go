package form

// Field declares one input of a form.
type Field struct {
	// Key identifies the field in Values and Errors.
	Key string

	// Label is shown next to the input.
	Label string

	// Validators run in order; the first failure's message is the field's
	// error.
	Validators []Validator
}

// NewField creates a field with the given validators.
func NewField(key, label string, validators ...Validator) Field {
	return Field{Key: key, Label: label, Validators: validators}
}

func (f Field) validate(value any) string {
	for _, v := range f.Validators {
		if v == nil {
			continue
		}
		if err := v.Validate(value); err != nil {
			return err.Error()
		}
	}
	return ""
}

// flatten returns the fields of rows in declaration order.
func flatten(rows [][]Field) []Field {
	var fields []Field
	for _, row := range rows {
		fields = append(fields, row...)
	}
	return fields
}
