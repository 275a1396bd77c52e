package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/pagemark/internal/tui/styles"
)

// FormResult reports what a key press did to the form
type FormResult int

const (
	FormEditing FormResult = iota
	FormSubmitted
	FormCancelled
)

// FormField describes one labelled input. Key is also the name validation
// errors are reported under.
type FormField struct {
	Key         string
	Label       string
	Placeholder string
	CharLimit   int
	Hint        string // Shown dimmed under the input while focused
}

// FormKeyMap defines key bindings inside a form
type FormKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// DefaultFormKeyMap returns the default form key bindings
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// FormModal is a multi-field text input modal
type FormModal struct {
	visible bool
	title   string
	fields  []FormField
	inputs  []textinput.Model
	focus   int
	errors  map[string]string
	keys    FormKeyMap
}

// NewFormModal creates a hidden form modal
func NewFormModal() FormModal {
	return FormModal{keys: DefaultFormKeyMap()}
}

const (
	formWidth  = 44
	labelWidth = 14
)

// Show displays the modal with the given fields, prefilled from values
func (m *FormModal) Show(title string, fields []FormField, values map[string]string) tea.Cmd {
	m.visible = true
	m.title = title
	m.fields = fields
	m.errors = nil
	m.focus = 0
	m.inputs = make([]textinput.Model, len(fields))

	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder
		ti.CharLimit = f.CharLimit
		if ti.CharLimit == 0 {
			ti.CharLimit = 200
		}
		ti.Width = formWidth - labelWidth - 2
		ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
		ti.PlaceholderStyle = styles.DimStyle
		ti.SetValue(values[f.Key])
		m.inputs[i] = ti
	}

	if len(m.inputs) == 0 {
		return nil
	}
	return m.inputs[0].Focus()
}

// Hide dismisses the modal
func (m *FormModal) Hide() {
	m.visible = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// IsVisible returns whether the modal is shown
func (m FormModal) IsVisible() bool {
	return m.visible
}

// Focused returns the key of the focused field
func (m FormModal) Focused() string {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return ""
	}
	return m.fields[m.focus].Key
}

// Value returns the current text of the field with the given key
func (m FormModal) Value(k string) string {
	for i, f := range m.fields {
		if f.Key == k {
			return m.inputs[i].Value()
		}
	}
	return ""
}

// SetValue replaces the text of the field with the given key
func (m *FormModal) SetValue(k, v string) {
	for i, f := range m.fields {
		if f.Key == k {
			m.inputs[i].SetValue(v)
			return
		}
	}
}

// Values returns the text of every field by key
func (m FormModal) Values() map[string]string {
	out := make(map[string]string, len(m.fields))
	for i, f := range m.fields {
		out[f.Key] = m.inputs[i].Value()
	}
	return out
}

// SetErrors shows per-field messages and moves focus to the first bad field
func (m *FormModal) SetErrors(errs map[string]string) tea.Cmd {
	m.errors = errs
	for i, f := range m.fields {
		if _, bad := errs[f.Key]; bad {
			return m.setFocus(i)
		}
	}
	return nil
}

// Errors returns the messages currently shown
func (m FormModal) Errors() map[string]string {
	return m.errors
}

func (m *FormModal) setFocus(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

// Update handles input events, returns (modal, cmd, result)
func (m FormModal) Update(msg tea.Msg) (FormModal, tea.Cmd, FormResult) {
	if !m.visible {
		return m, nil, FormEditing
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Submit):
			return m, nil, FormSubmitted
		case key.Matches(keyMsg, m.keys.Cancel):
			m.Hide()
			return m, nil, FormCancelled
		case key.Matches(keyMsg, m.keys.Next):
			return m, m.setFocus(m.focus + 1), FormEditing
		case key.Matches(keyMsg, m.keys.Prev):
			return m, m.setFocus(m.focus - 1), FormEditing
		}
	}

	if len(m.inputs) == 0 {
		return m, nil, FormEditing
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, FormEditing
}

// View renders the form modal
func (m FormModal) View() string {
	if !m.visible {
		return ""
	}

	bg := lipgloss.NewStyle().Background(styles.SlateDark)
	labelStyle := bg.Foreground(styles.LightGray).Width(labelWidth)
	focusLabelStyle := bg.Foreground(styles.Amber).Bold(true).Width(labelWidth)
	rowStyle := bg.Width(formWidth)

	rows := []string{
		rowStyle.Foreground(styles.White).Bold(true).Render(m.title),
		rowStyle.Render(""),
	}

	for i, f := range m.fields {
		label := labelStyle.Render(f.Label)
		if i == m.focus {
			label = focusLabelStyle.Render(f.Label)
		}
		rows = append(rows, rowStyle.Render(label+m.inputs[i].View()))

		if msg, bad := m.errors[f.Key]; bad {
			rows = append(rows, rowStyle.Render(strings.Repeat(" ", labelWidth)+
				styles.ErrorStyle.Render(f.Label+" "+msg)))
		} else if i == m.focus && f.Hint != "" {
			rows = append(rows, rowStyle.Render(strings.Repeat(" ", labelWidth)+
				styles.DimStyle.Render(f.Hint)))
		}
	}

	rows = append(rows,
		rowStyle.Render(""),
		rowStyle.Render(styles.DimStyle.Render("tab next · enter save · esc cancel")),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Amber).
		Background(styles.SlateDark).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
