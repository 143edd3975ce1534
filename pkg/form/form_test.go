package form

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	herrors "github.com/vango-dev/headless/internal/errors"
)

func emailValidator() Validator {
	return Message(func(value any) string {
		if s, _ := value.(string); !strings.Contains(s, "@") {
			return "invalid"
		}
		return ""
	})
}

func newTestForm(t *testing.T, submit SubmitFunc) *Form {
	t.Helper()
	if submit == nil {
		submit = func(context.Context, Values) error { return nil }
	}
	f, err := New(
		[][]Field{
			{NewField("email", "Email", emailValidator())},
			{NewField("name", "Name", Required("required")), NewField("note", "Note")},
		},
		Values{"email": "a@b.com", "name": "Ann"},
		submit,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestChangeValidatesField(t *testing.T) {
	f := newTestForm(t, nil)

	s, err := f.Change("email", "x")
	if err != nil {
		t.Fatalf("Change: %v", err)
	}
	if s.Errors["email"] != "invalid" {
		t.Errorf("Errors[email] = %q, want invalid", s.Errors["email"])
	}
	if !s.SubmitDisabled {
		t.Error("SubmitDisabled = false, want true")
	}
	if s.Values["email"] != "x" {
		t.Errorf("Values[email] = %v, want the invalid value stored", s.Values["email"])
	}

	s, _ = f.Change("email", "a@b.com")
	if _, ok := s.Errors["email"]; ok {
		t.Errorf("Errors[email] = %q, want cleared", s.Errors["email"])
	}
	if s.SubmitDisabled {
		t.Error("SubmitDisabled = true, want false")
	}
}

func TestChangeKeepsOtherFieldErrors(t *testing.T) {
	f := newTestForm(t, nil)

	f.Change("name", "")
	f.Change("email", "x")
	s, _ := f.Change("email", "a@b.com")

	if !s.SubmitDisabled {
		t.Error("SubmitDisabled = false while name is still invalid")
	}
	if s.Errors["name"] != "required" {
		t.Errorf("Errors[name] = %q, want required", s.Errors["name"])
	}
}

func TestChangeWithoutValidators(t *testing.T) {
	f := newTestForm(t, nil)
	f.Change("email", "x")

	s, err := f.Change("note", "hello")
	if err != nil {
		t.Fatalf("Change: %v", err)
	}
	if s.Values["note"] != "hello" {
		t.Errorf("Values[note] = %v, want hello", s.Values["note"])
	}
	if !s.SubmitDisabled || s.Errors["email"] != "invalid" {
		t.Error("a field without validators must not touch other errors")
	}
}

func TestChangeUnknownField(t *testing.T) {
	f := newTestForm(t, nil)
	_, err := f.Change("nope", 1)
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("err = %v, want ErrUnknownField", err)
	}
	if herrors.Code(err) != "H040" {
		t.Errorf("Code = %q, want H040", herrors.Code(err))
	}
}

func TestSubmit(t *testing.T) {
	var got Values
	f := newTestForm(t, func(_ context.Context, v Values) error {
		got = v
		return nil
	})

	s, err := f.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	want := Values{"email": "a@b.com", "name": "Ann"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("submitted %v, want %v", got, want)
	}
	if s.SubmitDisabled || s.SubmitError != "" || s.Submitting {
		t.Errorf("state after success = %+v", s)
	}

	got["email"] = "mutated"
	if f.State().Values["email"] != "a@b.com" {
		t.Error("submit callback received the live values map")
	}
}

func TestSubmitRevalidatesEverything(t *testing.T) {
	called := false
	f, err := New(
		[][]Field{{NewField("name", "Name", Required("required"))}},
		nil,
		func(context.Context, Values) error {
			called = true
			return nil
		},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s, err := f.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if called {
		t.Error("submit callback called for an invalid form")
	}
	if s.Errors["name"] != "required" || !s.SubmitDisabled {
		t.Errorf("state = %+v, want name required and submit disabled", s)
	}
}

func TestSubmitFailureAndRetry(t *testing.T) {
	fail := true
	f := newTestForm(t, func(context.Context, Values) error {
		if fail {
			return errors.New("boom")
		}
		return nil
	})

	s, err := f.Submit(context.Background())
	if err == nil || herrors.Code(err) != "H042" {
		t.Fatalf("Submit err = %v, want H042", err)
	}
	if s.SubmitError != "there was an error: boom" {
		t.Errorf("SubmitError = %q", s.SubmitError)
	}
	if !s.SubmitDisabled {
		t.Error("SubmitDisabled = false after a failed submit")
	}

	fail = false
	s, _ = f.Change("note", "retry")
	if s.SubmitError != "" {
		t.Errorf("SubmitError = %q, want cleared by change", s.SubmitError)
	}
	if s.SubmitDisabled {
		t.Error("SubmitDisabled = true after changing an unvalidated field with no errors")
	}
	s, _ = f.Change("name", "Bob")
	if s.SubmitDisabled {
		t.Error("SubmitDisabled = true, want retry allowed after a valid change")
	}
	if _, err := f.Submit(context.Background()); err != nil {
		t.Errorf("retry Submit: %v", err)
	}
}

func TestRetryWithoutValidatedFields(t *testing.T) {
	f, err := New([][]Field{{NewField("name", "Name")}}, Values{"name": "a"},
		func(context.Context, Values) error { return errors.New("boom") })
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s, _ := f.Submit(context.Background())
	if !s.SubmitDisabled {
		t.Fatal("SubmitDisabled = false after a failed submit")
	}
	s, err = f.Change("name", "b")
	if err != nil {
		t.Fatalf("Change: %v", err)
	}
	if s.SubmitDisabled || s.SubmitError != "" || len(s.Errors) != 0 {
		t.Errorf("state = %+v, want submit re-enabled", s)
	}
}

func TestSubmitInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	f := newTestForm(t, func(context.Context, Values) error {
		close(entered)
		<-release
		return nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.Submit(context.Background())
	}()

	<-entered
	if !f.State().Submitting {
		t.Error("Submitting = false during the callback")
	}
	if _, err := f.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("second Submit = %v, want ErrSubmitInFlight", err)
	}
	close(release)
	wg.Wait()

	if f.State().Submitting {
		t.Error("Submitting = true after the callback returned")
	}
}

func TestSyncDefaults(t *testing.T) {
	defaults := Values{"email": "a@b.com"}
	f, err := New([][]Field{{NewField("email", "Email")}}, defaults, func(context.Context, Values) error { return nil })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f.Change("email", "edited")

	if f.SyncDefaults(defaults) {
		t.Error("SyncDefaults reported a change for the same map")
	}
	if f.State().Values["email"] != "edited" {
		t.Error("same defaults map must not reset values")
	}

	next := Values{"email": "c@d.com", "stray": 1}
	if !f.SyncDefaults(next) {
		t.Error("SyncDefaults reported no change for a new map")
	}
	want := Values{"email": "c@d.com"}
	if got := f.State().Values; !reflect.DeepEqual(got, want) {
		t.Errorf("Values = %v, want %v", got, want)
	}
}

func TestNewValidation(t *testing.T) {
	submit := func(context.Context, Values) error { return nil }

	_, err := New([][]Field{{NewField("a", "A")}, {NewField("a", "A")}}, nil, submit)
	if !errors.Is(err, ErrDuplicateField) {
		t.Errorf("duplicate: err = %v, want ErrDuplicateField", err)
	}

	_, err = New([][]Field{{NewField("a", "A")}}, Values{"b": 1}, submit)
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("undeclared default: err = %v, want ErrUnknownField", err)
	}

	if _, err := New(nil, nil, nil); err == nil {
		t.Error("nil submit: want error")
	}
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	s := Initial(Values{"a": "1"})
	field := NewField("a", "A", Required("required"))

	next := Change(s, field, "")
	if s.Values["a"] != "1" || len(s.Errors) != 0 {
		t.Errorf("Change mutated its input: %+v", s)
	}
	if next.Errors["a"] != "required" {
		t.Errorf("next.Errors = %v", next.Errors)
	}

	failed := SubmitFailed(next, errors.New("x"))
	if next.SubmitError != "" {
		t.Error("SubmitFailed mutated its input")
	}
	if failed.SubmitError != "there was an error: x" {
		t.Errorf("SubmitError = %q", failed.SubmitError)
	}
}
