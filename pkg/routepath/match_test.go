package routepath

import (
	"errors"
	"reflect"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		template string
		path     string
		want     Params
	}{
		{
			name:     "two params",
			template: "/layout1/:tag/:number",
			path:     "/layout1/T/N",
			want:     Params{"tag": "T", "number": "N"},
		},
		{
			name:     "interleaved literal",
			template: "/layout1/:tag/cat/:number",
			path:     "/layout1/T/cat/100",
			want:     Params{"tag": "T", "number": "100"},
		},
		{
			name:     "literals are not compared",
			template: "/layout1/:tag/:number",
			path:     "/layout2/T/100",
			want:     Params{"tag": "T", "number": "100"},
		},
		{
			name:     "short path drops trailing params",
			template: "/layout1/:tag/:number",
			path:     "/layout1/T",
			want:     Params{"tag": "T"},
		},
		{
			name:     "empty path",
			template: "/layout1/:tag",
			path:     "",
			want:     Params{},
		},
		{
			name:     "extra slashes in path",
			template: "/a/:b",
			path:     "//a///x/",
			want:     Params{"b": "x"},
		},
		{
			name:     "longer path ignores the tail",
			template: "/a/:b",
			path:     "/a/x/y/z",
			want:     Params{"b": "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(MustParse(tt.template), tt.path)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.template, tt.path, got, tt.want)
			}
		})
	}
}

func TestSynthesize(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   Params
		want     string
	}{
		{
			name:     "interleaved literal",
			template: "/layout1/:tag/cat/:number",
			params:   Params{"tag": "T", "number": "100"},
			want:     "/layout1/T/cat/100",
		},
		{
			name:     "extra params ignored",
			template: "/items/:id",
			params:   Params{"id": "7", "tab": "x"},
			want:     "/items/7",
		},
		{
			name:     "missing param keeps placeholder",
			template: "/items/:id/:tab",
			params:   Params{"id": "7"},
			want:     "/items/7/:tab",
		},
		{
			name:     "root",
			template: "/",
			params:   nil,
			want:     "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Synthesize(MustParse(tt.template), tt.params)
			if got != tt.want {
				t.Errorf("Synthesize(%q, %v) = %q, want %q", tt.template, tt.params, got, tt.want)
			}
		})
	}
}

func TestSynthesizeStrict(t *testing.T) {
	tmpl := MustParse("/items/:id/:tab")

	got, err := SynthesizeStrict(tmpl, Params{"id": "7", "tab": "edit"})
	if err != nil {
		t.Fatalf("SynthesizeStrict error: %v", err)
	}
	if got != "/items/7/edit" {
		t.Errorf("SynthesizeStrict = %q, want /items/7/edit", got)
	}

	if _, err := SynthesizeStrict(tmpl, Params{"id": "7"}); !errors.Is(err, ErrMissingParam) {
		t.Errorf("missing param error = %v, want ErrMissingParam", err)
	}
	if _, err := SynthesizeStrict(tmpl, Params{"id": "7", "tab": ""}); !errors.Is(err, ErrMissingParam) {
		t.Errorf("empty param error = %v, want ErrMissingParam", err)
	}
	if _, err := SynthesizeStrict(tmpl, Params{"id": "7", "tab": "a/b"}); !errors.Is(err, ErrInvalidParamValue) {
		t.Errorf("slash param error = %v, want ErrInvalidParamValue", err)
	}
}

// Synthesize(T, Match(T, P)) keeps P's values at T's parameter positions
// over T's literal skeleton.
func TestMatchSynthesizeRoundTrip(t *testing.T) {
	tests := []struct {
		template string
		path     string
		want     string
	}{
		{"/layout1/:tag/:number", "/layout1/T/N", "/layout1/T/N"},
		{"/layout1/:tag/cat/:number", "/layout1/T/cat/100", "/layout1/T/cat/100"},
		{"/layout1/:tag/cat/:number", "/other/T/dog/100", "/layout1/T/cat/100"},
		{"/:a/:b/:c", "/x/y/z", "/x/y/z"},
		{"/items", "/anything", "/items"},
	}

	for _, tt := range tests {
		tmpl := MustParse(tt.template)
		got := Synthesize(tmpl, Match(tmpl, tt.path))
		if got != tt.want {
			t.Errorf("round trip %q over %q = %q, want %q", tt.path, tt.template, got, tt.want)
		}
	}
}

func TestCrossTemplateSynthesis(t *testing.T) {
	from := MustParse("/layout2/:tag/:number")
	to := MustParse("/layout1/:tag/cat/:number")

	got := Synthesize(to, Match(from, "/layout2/T/100"))
	if got != "/layout1/T/cat/100" {
		t.Errorf("got %q, want /layout1/T/cat/100", got)
	}
}
