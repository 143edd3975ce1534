// Package modal wraps a validated form in a create/edit dialog.
//
// Submitting a valid form confirms the values and closes the dialog;
// cancelling closes it. The dialog title follows the editing flag.
package modal

import (
	"context"
	"errors"
	"sync"

	"github.com/vango-dev/headless/pkg/form"
	"github.com/vango-dev/headless/pkg/ui"
)

// Config describes a modal.
type Config struct {
	Rows     [][]form.Field
	Defaults form.Values

	Editing       bool
	EditingTitle  string
	CreatingTitle string
	Visible       bool

	// OnConfirm receives the values of a valid submit.
	OnConfirm func(values form.Values)

	// OnClose is called whenever the dialog closes.
	OnClose func()
}

// Modal is a create/edit dialog around a Form.
type Modal struct {
	cfg  Config
	form *form.Form

	mu      sync.Mutex
	visible bool
	editing bool
}

// New creates a modal. opts configure the inner form.
func New(cfg Config, opts ...form.Option) (*Modal, error) {
	if cfg.OnConfirm == nil {
		return nil, errors.New("modal: OnConfirm is required")
	}
	m := &Modal{cfg: cfg, visible: cfg.Visible, editing: cfg.Editing}

	f, err := form.New(cfg.Rows, cfg.Defaults, m.confirm, opts...)
	if err != nil {
		return nil, err
	}
	m.form = f
	return m, nil
}

func (m *Modal) confirm(_ context.Context, values form.Values) error {
	m.cfg.OnConfirm(values)
	m.Close()
	return nil
}

// Form returns the inner form.
func (m *Modal) Form() *form.Form {
	return m.form
}

// Open shows the dialog. A defaults map other than the current one resets
// the form values.
func (m *Modal) Open(editing bool, defaults form.Values) {
	m.mu.Lock()
	m.visible = true
	m.editing = editing
	m.mu.Unlock()
	if defaults != nil {
		m.form.SyncDefaults(defaults)
	}
}

// Close hides the dialog and calls OnClose.
func (m *Modal) Close() {
	m.mu.Lock()
	m.visible = false
	m.mu.Unlock()
	if m.cfg.OnClose != nil {
		m.cfg.OnClose()
	}
}

// Visible reports whether the dialog is open.
func (m *Modal) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}

// Title returns the editing or creating title.
func (m *Modal) Title() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.editing {
		return m.cfg.EditingTitle
	}
	return m.cfg.CreatingTitle
}

// Submit submits the inner form.
func (m *Modal) Submit(ctx context.Context) (form.State, error) {
	return m.form.Submit(ctx)
}

// Kit holds the capabilities a modal renders with.
type Kit[N any] struct {
	Dialog  ui.Dialog[N]
	Title   ui.Container[N]
	Content ui.Container[N]
	Actions ui.Container[N]

	// Form renders the inner form. Its ActionsContainer and OnCancel are
	// replaced by Actions and Close.
	Form form.View[N]
}

// Render renders m as Dialog(Title(Text(title)), Content(form)).
func (k Kit[N]) Render(ctx context.Context, m *Modal) N {
	view := k.Form
	view.ActionsContainer = k.Actions
	view.OnCancel = m.Close

	return k.Dialog.Dialog(
		ui.DialogProps{Open: m.Visible(), OnClose: m.Close},
		k.Title.Container(view.Text.Text(m.Title())),
		k.Content.Container(view.Render(ctx, m.form)),
	)
}
