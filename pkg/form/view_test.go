package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/vango-dev/headless/pkg/ui"
)

// stringKit renders capabilities as bracketed strings and records callbacks
// so tests can click buttons and type into inputs.
type stringKit struct {
	buttons map[string]ui.ButtonProps
	inputs  map[string]ui.InputProps
}

func newStringKit() *stringKit {
	return &stringKit{buttons: map[string]ui.ButtonProps{}, inputs: map[string]ui.InputProps{}}
}

func (k *stringKit) view() View[string] {
	join := ui.ContainerFunc[string](func(children ...string) string {
		return "(" + strings.Join(children, " ") + ")"
	})
	button := ui.ButtonFunc[string](func(p ui.ButtonProps) string {
		k.buttons[p.Label] = p
		if p.Disabled {
			return "[" + p.Label + "!]"
		}
		return "[" + p.Label + "]"
	})
	return View[string]{
		Text:      ui.TextFunc[string](func(s string) string { return "'" + s + "'" }),
		Container: join,
		ActionBar: ui.ActionBarFunc[string](func(b ...string) string { return strings.Join(b, "") }),
		SubmitButton: button,
		CancelButton: button,
		Input: ui.InputFunc[string](func(p ui.InputProps) string {
			k.inputs[p.Key] = p
			return fmt.Sprintf("%s=%v", p.Key, p.Value)
		}),
	}
}

func TestViewRender(t *testing.T) {
	f := newTestForm(t, nil)
	kit := newStringKit()
	v := kit.view()

	got := v.Render(context.Background(), f)
	want := "(((email=a@b.com)) ((name=Ann) (note=<nil>)) (([Cancel][Submit])))"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}

	kit.inputs["email"].OnChange("x")
	got = v.Render(context.Background(), f)
	want = "(((email=x 'invalid')) ((name=Ann) (note=<nil>)) (([Cancel][Submit!])))"
	if got != want {
		t.Errorf("Render after change = %q, want %q", got, want)
	}
}

func TestViewSubmitAndCancel(t *testing.T) {
	f := newTestForm(t, func(context.Context, Values) error { return errors.New("down") })
	kit := newStringKit()
	v := kit.view()

	cancelled := false
	var outcome error
	v.OnCancel = func() { cancelled = true }
	v.OnSubmitted = func(_ State, err error) { outcome = err }

	v.Render(context.Background(), f)
	kit.buttons["Cancel"].OnClick()
	if !cancelled {
		t.Error("Cancel did not call OnCancel")
	}

	kit.buttons["Submit"].OnClick()
	if outcome == nil {
		t.Fatal("OnSubmitted did not receive the failure")
	}

	got := v.Render(context.Background(), f)
	if !strings.Contains(got, "'there was an error: down'") || !strings.Contains(got, "[Submit!]") {
		t.Errorf("Render after failure = %q", got)
	}
}

func TestViewCustomInputAndActionsContainer(t *testing.T) {
	f := newTestForm(t, nil)
	kit := newStringKit()
	v := kit.view()
	v.Inputs = map[string]ui.Input[string]{
		"note": ui.InputFunc[string](func(p ui.InputProps) string { return "<textarea " + p.Label + ">" }),
	}
	v.ActionsContainer = ui.ContainerFunc[string](func(children ...string) string {
		return "{" + strings.Join(children, "") + "}"
	})

	got := v.Render(context.Background(), f)
	if !strings.Contains(got, "<textarea Note>") {
		t.Errorf("custom input missing from %q", got)
	}
	if !strings.HasSuffix(got, "{([Cancel][Submit])})") {
		t.Errorf("actions container not used in %q", got)
	}
}
