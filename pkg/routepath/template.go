package routepath

import (
	"errors"
	"fmt"
	"strings"
)

// ParamMarker prefixes a named parameter segment (e.g. ":id").
const ParamMarker = ':'

// Template parsing errors.
var (
	ErrEmptyParamName = errors.New("empty parameter name")
	ErrDuplicateParam = errors.New("duplicate parameter name")
)

// Segment is a single slash-delimited part of a template.
type Segment struct {
	// Value is the literal text, or the parameter name when Param is set.
	Value string

	// Param marks a named parameter segment.
	Param bool
}

// String returns the segment as it appears in a template.
func (s Segment) String() string {
	if s.Param {
		return string(ParamMarker) + s.Value
	}
	return s.Value
}

// IndexedParam is the position of a named parameter within its template.
type IndexedParam struct {
	Index int
	Name  string
}

// Params maps parameter names to values.
type Params map[string]string

// Clone returns a shallow copy of p. A nil map clones to an empty one.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Template is a parsed path template such as "/items/:id/edit".
// The zero value is the root template "/".
type Template struct {
	segments []Segment
	params   []IndexedParam
}

// Parse parses a slash-delimited template. Empty segments are discarded, so
// leading, trailing and doubled slashes are tolerated.
func Parse(pattern string) (Template, error) {
	parts := splitPath(pattern)
	t := Template{segments: make([]Segment, 0, len(parts))}
	seen := make(map[string]struct{})

	for i, part := range parts {
		if part[0] != ParamMarker {
			t.segments = append(t.segments, Segment{Value: part})
			continue
		}

		name := part[1:]
		if name == "" {
			return Template{}, fmt.Errorf("template %q segment %d: %w", pattern, i, ErrEmptyParamName)
		}
		if _, dup := seen[name]; dup {
			return Template{}, fmt.Errorf("template %q: %w: %s", pattern, ErrDuplicateParam, name)
		}
		seen[name] = struct{}{}

		t.segments = append(t.segments, Segment{Value: name, Param: true})
		t.params = append(t.params, IndexedParam{Index: i, Name: name})
	}

	return t, nil
}

// MustParse is like Parse but panics on error. Use it for static tables.
func MustParse(pattern string) Template {
	t, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the canonical form of the template.
func (t Template) String() string {
	if len(t.segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range t.segments {
		b.WriteByte('/')
		b.WriteString(seg.String())
	}
	return b.String()
}

// Len returns the number of segments.
func (t Template) Len() int {
	return len(t.segments)
}

// Segments returns the raw template segments with parameter markers kept,
// e.g. ["items", ":id", "edit"].
func (t Template) Segments() []string {
	out := make([]string, len(t.segments))
	for i, seg := range t.segments {
		out[i] = seg.String()
	}
	return out
}

// Params returns the template's parameters in position order.
func (t Template) Params() []IndexedParam {
	out := make([]IndexedParam, len(t.params))
	copy(out, t.params)
	return out
}

// Names returns the parameter names in position order.
func (t Template) Names() []string {
	out := make([]string, len(t.params))
	for i, p := range t.params {
		out[i] = p.Name
	}
	return out
}

// Has reports whether the template declares the named parameter.
func (t Template) Has(name string) bool {
	for _, p := range t.params {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Filter returns the entries of params whose names the template declares.
func (t Template) Filter(params Params) Params {
	out := make(Params, len(t.params))
	for _, p := range t.params {
		if v, ok := params[p.Name]; ok {
			out[p.Name] = v
		}
	}
	return out
}

// Matches reports whether path has exactly the template's shape: the same
// number of segments, with every literal segment equal. Match itself does
// not perform this check.
func (t Template) Matches(path string) bool {
	parts := splitPath(path)
	if len(parts) != len(t.segments) {
		return false
	}
	for i, seg := range t.segments {
		if !seg.Param && seg.Value != parts[i] {
			return false
		}
	}
	return true
}

// splitPath splits a path into its non-empty segments.
func splitPath(path string) []string {
	raw := strings.Split(path, "/")
	out := raw[:0]
	for _, seg := range raw {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}
