package router

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/vango-dev/headless/pkg/routepath"
)

// ErrUnknownParam is returned by a strict ParamParser when the params map
// carries a name no struct field is tagged for.
var ErrUnknownParam = errors.New("unknown route parameter")

// ParamParser converts between route params and typed records whose fields
// carry `param` tags:
//
//	type ItemParams struct {
//	    ID  int    `param:"id"`
//	    Tab string `param:"tab"`
//	}
type ParamParser struct {
	strict bool
}

// ParserOption configures a ParamParser.
type ParserOption func(*ParamParser)

// Strict rejects params whose names no field is tagged for.
func Strict() ParserOption {
	return func(p *ParamParser) {
		p.strict = true
	}
}

// NewParamParser creates a new parameter parser.
func NewParamParser(opts ...ParserOption) *ParamParser {
	p := &ParamParser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse populates a struct with values from the params map.
// The target must be a pointer to a struct with `param` tags. Tagged fields
// whose name is absent from params are left untouched.
func (p *ParamParser) Parse(params routepath.Params, target any) error {
	v, err := structValue(target, true)
	if err != nil {
		return err
	}

	t := v.Type()
	known := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("param")
		if name == "" || !field.IsExported() {
			continue
		}
		known[name] = struct{}{}

		value, ok := params[name]
		if !ok {
			continue
		}
		if err := setField(v.Field(i), value); err != nil {
			return fmt.Errorf("parsing param %q: %w", name, err)
		}
	}

	if p.strict {
		for name := range params {
			if _, ok := known[name]; !ok {
				return fmt.Errorf("%w: %s", ErrUnknownParam, name)
			}
		}
	}
	return nil
}

// Encode is the inverse of Parse: it reads every `param` tagged field of
// source (a struct or pointer to struct) into a params map. Zero-valued
// string fields are omitted so they do not overwrite inherited values.
func (p *ParamParser) Encode(source any) (routepath.Params, error) {
	v, err := structValue(source, false)
	if err != nil {
		return nil, err
	}

	t := v.Type()
	out := make(routepath.Params)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("param")
		if name == "" || !field.IsExported() {
			continue
		}
		s, err := formatField(v.Field(i))
		if err != nil {
			return nil, fmt.Errorf("encoding param %q: %w", name, err)
		}
		if s == "" {
			continue
		}
		out[name] = s
	}
	return out, nil
}

func structValue(target any, needPointer bool) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, errors.New("target is nil")
	}
	v := reflect.ValueOf(target)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, errors.New("target is a nil pointer")
		}
		v = v.Elem()
	} else if needPointer {
		return reflect.Value{}, fmt.Errorf("target must be a pointer, got %s", v.Kind())
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("target must be a struct, got %s", v.Kind())
	}
	return v, nil
}

// setField sets a field value from a string.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer: %s", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer: %s", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float: %s", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %s", value)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type: %s", field.Kind())
	}

	return nil
}

func formatField(field reflect.Value) (string, error) {
	switch field.Kind() {
	case reflect.String:
		return field.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(field.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(field.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(field.Float(), 'f', -1, field.Type().Bits()), nil
	case reflect.Bool:
		return strconv.FormatBool(field.Bool()), nil
	default:
		return "", fmt.Errorf("unsupported type: %s", field.Kind())
	}
}
