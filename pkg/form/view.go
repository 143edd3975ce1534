package form

import (
	"context"

	"github.com/vango-dev/headless/pkg/ui"
)

// View renders a Form with injected capabilities. Fields are laid out row
// by row; each field is its Input followed by its error text. Below the rows,
// ActionsContainer holds the submit error and an ActionBar with Cancel and
// Submit.
type View[N any] struct {
	Text      ui.Text[N]
	Container ui.Container[N]
	ActionBar ui.ActionBar[N]

	// ActionsContainer wraps the action area. Defaults to Container.
	ActionsContainer ui.Container[N]

	SubmitButton ui.Button[N]
	CancelButton ui.Button[N]

	// Input renders every field without an entry in Inputs.
	Input  ui.Input[N]
	Inputs map[string]ui.Input[N]

	// OnCancel is called by the Cancel button.
	OnCancel func()

	// OnSubmitted receives the outcome of a Submit triggered by the Submit
	// button.
	OnSubmitted func(State, error)
}

// Render renders f's current state. ctx is passed to Submit when the Submit
// button is clicked.
func (v View[N]) Render(ctx context.Context, f *Form) N {
	s := f.State()

	rows := make([]N, 0, len(f.rows)+1)
	for _, row := range f.rows {
		cells := make([]N, 0, len(row))
		for _, field := range row {
			cells = append(cells, v.field(f, field, s))
		}
		rows = append(rows, v.Container.Container(cells...))
	}

	actions := make([]N, 0, 2)
	if s.SubmitError != "" {
		actions = append(actions, v.Text.Text(s.SubmitError))
	}
	actions = append(actions, v.ActionBar.ActionBar(
		v.CancelButton.Button(ui.ButtonProps{
			Label:   "Cancel",
			OnClick: v.cancel,
		}),
		v.SubmitButton.Button(ui.ButtonProps{
			Label:    "Submit",
			Disabled: s.SubmitDisabled || s.Submitting,
			OnClick: func() {
				state, err := f.Submit(ctx)
				if v.OnSubmitted != nil {
					v.OnSubmitted(state, err)
				}
			},
		}),
	))

	container := v.ActionsContainer
	if container == nil {
		container = v.Container
	}
	rows = append(rows, container.Container(v.Container.Container(actions...)))

	return v.Container.Container(rows...)
}

func (v View[N]) field(f *Form, field Field, s State) N {
	input := v.Input
	if custom, ok := v.Inputs[field.Key]; ok {
		input = custom
	}
	msg := s.Errors[field.Key]

	children := []N{input.Input(ui.InputProps{
		Key:   field.Key,
		Label: field.Label,
		Value: s.Values[field.Key],
		Error: msg,
		OnChange: func(value any) {
			_, _ = f.Change(field.Key, value)
		},
	})}
	if msg != "" {
		children = append(children, v.Text.Text(msg))
	}
	return v.Container.Container(children...)
}

func (v View[N]) cancel() {
	if v.OnCancel != nil {
		v.OnCancel()
	}
}
