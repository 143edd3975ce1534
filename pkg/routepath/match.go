package routepath

import (
	"errors"
	"fmt"
	"strings"
)

// Synthesis errors.
var (
	ErrMissingParam      = errors.New("missing route parameter")
	ErrInvalidParamValue = errors.New("invalid route parameter value")
)

// Match extracts the template's parameters from path by position.
//
// Literal segments are not compared, and a path shorter than the template
// simply leaves the trailing parameters out of the result. Match never fails.
func Match(t Template, path string) Params {
	parts := splitPath(path)
	params := make(Params, len(t.params))
	for _, p := range t.params {
		if p.Index < len(parts) {
			params[p.Name] = parts[p.Index]
		}
	}
	return params
}

// Synthesize builds a concrete path from t, substituting each parameter
// position with its value from params.
//
// A parameter missing from params keeps its ":name" placeholder. Use
// SynthesizeStrict when a complete mapping is required.
func Synthesize(t Template, params Params) string {
	parts := make([]string, len(t.segments))
	for i, seg := range t.segments {
		parts[i] = seg.String()
	}
	for _, p := range t.params {
		if v, ok := params[p.Name]; ok {
			parts[p.Index] = v
		}
	}
	return "/" + strings.Join(parts, "/")
}

// SynthesizeStrict is like Synthesize but fails when a parameter is missing
// or empty, or when a value would change the path's segment count.
func SynthesizeStrict(t Template, params Params) (string, error) {
	for _, p := range t.params {
		v, ok := params[p.Name]
		if !ok || v == "" {
			return "", fmt.Errorf("%w: %s (template %s)", ErrMissingParam, p.Name, t)
		}
		if strings.Contains(v, "/") {
			return "", fmt.Errorf("%w: %s=%q contains '/'", ErrInvalidParamValue, p.Name, v)
		}
	}
	return Synthesize(t, params), nil
}
