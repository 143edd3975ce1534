package term

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vango-dev/headless/pkg/layout"
	"github.com/vango-dev/headless/pkg/router"
)

// KeyMap binds the program's actions.
type KeyMap struct {
	Prev key.Binding
	Next key.Binding
	Back key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev tab")),
		Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next tab")),
		Back: key.NewBinding(key.WithKeys("backspace", "b"), key.WithHelp("b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model is the bubbletea model hosting a tab layout. The controller must
// have been created with hist.Endpoint and a navigate callback that ends in
// hist.Navigate, so tab changes move the in-memory location.
type Model struct {
	controller *layout.Controller[string]
	history    *router.History
	kit        Kit
	keys       KeyMap
	help       help.Model
	err        error
	quitting   bool
}

// NewModel creates the model and activates the tab owning the history's
// current path.
func NewModel(c *layout.Controller[string], hist *router.History) Model {
	c.Sync(hist.Endpoint())
	return Model{
		controller: c,
		history:    hist,
		kit:        Kit{Styles: DefaultStyles()},
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

// WithKit returns a copy of m rendering with kit.
func (m Model) WithKit(kit Kit) Model {
	m.kit = kit
	return m
}

// NewProgram wraps NewModel in a tea.Program.
func NewProgram(c *layout.Controller[string], hist *router.History, opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(NewModel(c, hist), opts...)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.err = m.step(-1)
		case key.Matches(msg, m.keys.Next):
			m.err = m.step(1)
		case key.Matches(msg, m.keys.Back):
			m.history.Back()
			m.controller.Sync(m.history.Endpoint())
			m.err = nil
		}
	}
	return m, nil
}

// step changes to the tab delta positions away from the active one,
// wrapping around.
func (m Model) step(delta int) error {
	tabs := m.controller.Tabs()
	if len(tabs) == 0 {
		return nil
	}
	active := m.controller.ActiveKey()
	current := 0
	for i, tab := range tabs {
		if tab.Key == active {
			current = i
			break
		}
	}
	next := (current + delta + len(tabs)) % len(tabs)
	return m.controller.Change(context.Background(), tabs[next].Key)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.controller.Render(context.Background(), m.kit))
	b.WriteString("\n")
	b.WriteString(m.kit.Styles.Label.Render("location:") + " " + m.history.Endpoint())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.kit.Styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().MarginTop(1).Render(m.help.View(m.keys)))
	return b.String()
}
