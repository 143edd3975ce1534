// Package term implements the ui capabilities as lipgloss-styled strings and
// hosts a tab layout in a bubbletea program.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vango-dev/headless/pkg/layout"
	"github.com/vango-dev/headless/pkg/ui"
)

// Styles are the lipgloss styles a Kit renders with. The zero value renders
// plain text.
type Styles struct {
	Tab            lipgloss.Style
	ActiveTab      lipgloss.Style
	Panel          lipgloss.Style
	Button         lipgloss.Style
	DisabledButton lipgloss.Style
	Label          lipgloss.Style
	Error          lipgloss.Style
	Dialog         lipgloss.Style
}

// DefaultStyles returns the styles used by the terminal host.
func DefaultStyles() Styles {
	accent := lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	muted := lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}

	tab := lipgloss.NewStyle().Padding(0, 1).Foreground(muted)
	return Styles{
		Tab:            tab,
		ActiveTab:      tab.Foreground(accent).Bold(true).Underline(true),
		Panel:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		Button:         lipgloss.NewStyle().Bold(true),
		DisabledButton: lipgloss.NewStyle().Foreground(muted),
		Label:          lipgloss.NewStyle().Bold(true),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Dialog:         lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1),
	}
}

// Kit renders capabilities as strings. Terminal output has no click
// targets, so handlers in props are ignored; the program drives components
// through key bindings instead.
type Kit struct {
	Styles Styles
}

var (
	_ ui.Button[string]           = Kit{}
	_ ui.Text[string]             = Kit{}
	_ ui.Container[string]        = Kit{}
	_ ui.ActionBar[string]        = Kit{}
	_ ui.Dialog[string]           = Kit{}
	_ ui.Input[string]            = Kit{}
	_ layout.TabContainer[string] = Kit{}
)

// Button renders "[ label ]".
func (k Kit) Button(p ui.ButtonProps) string {
	style := k.Styles.Button
	if p.Disabled {
		style = k.Styles.DisabledButton
	}
	return style.Render("[ " + p.Label + " ]")
}

// Text returns s unchanged.
func (Kit) Text(s string) string {
	return s
}

// Container stacks non-empty children vertically.
func (Kit) Container(children ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, nonEmpty(children)...)
}

// ActionBar joins the buttons on one line.
func (Kit) ActionBar(buttons ...string) string {
	return strings.Join(nonEmpty(buttons), " ")
}

// Dialog renders its children in a bordered box, or nothing when closed.
func (k Kit) Dialog(p ui.DialogProps, children ...string) string {
	if !p.Open {
		return ""
	}
	return k.Styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, nonEmpty(children)...))
}

// Input renders "Label: value" with the error on the next line.
func (k Kit) Input(p ui.InputProps) string {
	label := p.Label
	if label == "" {
		label = p.Key
	}
	value := ""
	if p.Value != nil {
		value = fmt.Sprint(p.Value)
	}
	line := k.Styles.Label.Render(label+":") + " " + value
	if p.Error != "" {
		return line + "\n" + k.Styles.Error.Render(p.Error)
	}
	return line
}

// TabContainer renders the tab titles on one line above the active panel.
// The active title is wrapped in brackets so it stays visible without color.
func (k Kit) TabContainer(p layout.TabContainerProps[string]) string {
	headers := make([]string, 0, len(p.Tabs))
	for _, tab := range p.Tabs {
		if tab.Active {
			headers = append(headers, k.Styles.ActiveTab.Render("["+tab.Title+"]"))
			continue
		}
		headers = append(headers, k.Styles.Tab.Render(" "+tab.Title+" "))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, headers...)
	return lipgloss.JoinVertical(lipgloss.Left, bar, k.Styles.Panel.Render(p.Body))
}

func nonEmpty(parts []string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
