package modal

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/vango-dev/headless/pkg/form"
	"github.com/vango-dev/headless/pkg/ui"
)

type recorder struct {
	confirmed []form.Values
	closed    int
}

func newModal(t *testing.T, rec *recorder, editing bool) *Modal {
	t.Helper()
	m, err := New(Config{
		Rows:          [][]form.Field{{form.NewField("name", "Name", form.Required("required"))}},
		Defaults:      form.Values{"name": "Rex"},
		Editing:       editing,
		EditingTitle:  "Edit pet",
		CreatingTitle: "New pet",
		Visible:       true,
		OnConfirm:     func(v form.Values) { rec.confirmed = append(rec.confirmed, v) },
		OnClose:       func() { rec.closed++ },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestSubmitConfirmsThenCloses(t *testing.T) {
	rec := &recorder{}
	m := newModal(t, rec, false)

	if _, err := m.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(rec.confirmed) != 1 || !reflect.DeepEqual(rec.confirmed[0], form.Values{"name": "Rex"}) {
		t.Errorf("confirmed = %v", rec.confirmed)
	}
	if rec.closed != 1 || m.Visible() {
		t.Errorf("closed = %d, visible = %v, want closed once", rec.closed, m.Visible())
	}
}

func TestInvalidSubmitKeepsDialogOpen(t *testing.T) {
	rec := &recorder{}
	m := newModal(t, rec, false)
	m.Form().Change("name", "")

	s, err := m.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !s.SubmitDisabled || len(rec.confirmed) != 0 || rec.closed != 0 || !m.Visible() {
		t.Errorf("invalid submit leaked: state %+v, confirmed %v, closed %d", s, rec.confirmed, rec.closed)
	}
}

func TestTitleAndOpen(t *testing.T) {
	rec := &recorder{}
	m := newModal(t, rec, true)
	if m.Title() != "Edit pet" {
		t.Errorf("Title = %q, want Edit pet", m.Title())
	}

	m.Close()
	m.Open(false, form.Values{"name": "Tom"})
	if !m.Visible() || m.Title() != "New pet" {
		t.Errorf("after Open: visible %v, title %q", m.Visible(), m.Title())
	}
	if got := m.Form().State().Values["name"]; got != "Tom" {
		t.Errorf("name = %v, want Tom", got)
	}
}

func TestRender(t *testing.T) {
	rec := &recorder{}
	m := newModal(t, rec, false)

	var dialog ui.DialogProps
	var buttons = map[string]ui.ButtonProps{}
	wrap := func(tag string) ui.Container[string] {
		return ui.ContainerFunc[string](func(children ...string) string {
			return "<" + tag + ">" + strings.Join(children, "") + "</" + tag + ">"
		})
	}
	button := ui.ButtonFunc[string](func(p ui.ButtonProps) string {
		buttons[p.Label] = p
		return "[" + p.Label + "]"
	})
	kit := Kit[string]{
		Dialog: ui.DialogFunc[string](func(p ui.DialogProps, children ...string) string {
			dialog = p
			return "<dialog>" + strings.Join(children, "") + "</dialog>"
		}),
		Title:   wrap("title"),
		Content: wrap("content"),
		Actions: wrap("actions"),
		Form: form.View[string]{
			Text:         ui.TextFunc[string](func(s string) string { return s }),
			Container:    wrap("div"),
			ActionBar:    ui.ActionBarFunc[string](func(b ...string) string { return strings.Join(b, "") }),
			SubmitButton: button,
			CancelButton: button,
			Input:        ui.InputFunc[string](func(p ui.InputProps) string { return p.Key }),
		},
	}

	got := kit.Render(context.Background(), m)
	want := "<dialog><title>New pet</title><content><div><div><div>name</div></div>" +
		"<actions><div>[Cancel][Submit]</div></actions></div></content></dialog>"
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
	if !dialog.Open {
		t.Error("dialog rendered closed")
	}

	buttons["Cancel"].OnClick()
	if m.Visible() || rec.closed != 1 {
		t.Error("Cancel did not close the dialog")
	}
}
