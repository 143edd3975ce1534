package routepath

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		wantString string
		wantParams []IndexedParam
	}{
		{
			name:       "root",
			pattern:    "/",
			wantString: "/",
			wantParams: []IndexedParam{},
		},
		{
			name:       "literals only",
			pattern:    "/layout1/cat",
			wantString: "/layout1/cat",
			wantParams: []IndexedParam{},
		},
		{
			name:       "two params",
			pattern:    "/layout1/:tag/:number",
			wantString: "/layout1/:tag/:number",
			wantParams: []IndexedParam{{Index: 1, Name: "tag"}, {Index: 2, Name: "number"}},
		},
		{
			name:       "interleaved literal",
			pattern:    "/layout1/:tag/cat/:number",
			wantString: "/layout1/:tag/cat/:number",
			wantParams: []IndexedParam{{Index: 1, Name: "tag"}, {Index: 3, Name: "number"}},
		},
		{
			name:       "tolerates extra slashes",
			pattern:    "//items///:id/",
			wantString: "/items/:id",
			wantParams: []IndexedParam{{Index: 1, Name: "id"}},
		},
		{
			name:       "no leading slash",
			pattern:    ":org/repos",
			wantString: "/:org/repos",
			wantParams: []IndexedParam{{Index: 0, Name: "org"}},
		},
		{
			name:       "marker only at start",
			pattern:    "/a:b/:c",
			wantString: "/a:b/:c",
			wantParams: []IndexedParam{{Index: 1, Name: "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.pattern, err)
			}
			if got := tmpl.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
			if got := tmpl.Params(); !reflect.DeepEqual(got, tt.wantParams) {
				t.Errorf("Params() = %v, want %v", got, tt.wantParams)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr error
	}{
		{"/items/:", ErrEmptyParamName},
		{"/:id/x/:id", ErrDuplicateParam},
	}

	for _, tt := range tests {
		if _, err := Parse(tt.pattern); !errors.Is(err, tt.wantErr) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.pattern, err, tt.wantErr)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on an invalid template")
		}
	}()
	MustParse("/:")
}

func TestTemplateAccessors(t *testing.T) {
	tmpl := MustParse("/items/:id/tabs/:tab")

	if got, want := tmpl.Segments(), []string{"items", ":id", "tabs", ":tab"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
	if got, want := tmpl.Names(), []string{"id", "tab"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if tmpl.Len() != 4 {
		t.Errorf("Len() = %d, want 4", tmpl.Len())
	}
	if !tmpl.Has("id") || tmpl.Has("items") {
		t.Error("Has() should only report parameter names")
	}

	params := tmpl.Params()
	params[0].Name = "mutated"
	if tmpl.Names()[0] != "id" {
		t.Error("Params() must return a copy")
	}

	filtered := tmpl.Filter(Params{"id": "1", "other": "x"})
	if !reflect.DeepEqual(filtered, Params{"id": "1"}) {
		t.Errorf("Filter() = %v, want map[id:1]", filtered)
	}
}

func TestTemplateMatches(t *testing.T) {
	tmpl := MustParse("/items/:id/edit")

	tests := []struct {
		path string
		want bool
	}{
		{"/items/1/edit", true},
		{"items/1/edit/", true},
		{"/items/1/view", false},
		{"/items/1", false},
		{"/items/1/edit/more", false},
		{"/other/1/edit", false},
	}

	for _, tt := range tests {
		if got := tmpl.Matches(tt.path); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	var root Template
	if !root.Matches("/") || root.Matches("/x") {
		t.Error("zero Template should match only the root path")
	}
}

func TestParamsClone(t *testing.T) {
	var nilParams Params
	if c := nilParams.Clone(); c == nil || len(c) != 0 {
		t.Errorf("Clone of nil = %v, want empty map", c)
	}

	p := Params{"a": "1"}
	c := p.Clone()
	c["a"] = "2"
	if p["a"] != "1" {
		t.Error("Clone must not alias the original map")
	}
}
