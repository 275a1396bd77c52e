package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	NextPage key.Binding
	HomePage key.Binding
	Library  key.Binding
	Notes    key.Binding
	Stats    key.Binding

	// Actions
	Quit         key.Binding
	Help         key.Binding
	Escape       key.Binding
	Filter       key.Binding
	Add          key.Binding
	Edit         key.Binding
	Delete       key.Binding
	AdvanceState key.Binding
	PageForward  key.Binding
	PageBack     key.Binding
	StatusFilter key.Binding
	Sort         key.Binding
	BookFilter   key.Binding

	// Filter input
	Apply key.Binding

	// Confirmations
	Confirm key.Binding
	Deny    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		HomePage: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		Library: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "library"),
		),
		Notes: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "notes"),
		),
		Stats: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "stats"),
		),

		// Actions
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/clear"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		AdvanceState: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "next status"),
		),
		PageForward: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "page +1"),
		),
		PageBack: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "page -1"),
		),
		StatusFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "status filter"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort"),
		),
		BookFilter: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "book filter"),
		),

		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),

		// Confirmations
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),
	}
}

// Keys is the global keymap instance
var Keys = DefaultKeyMap()
