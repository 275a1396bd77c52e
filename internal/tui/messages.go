package tui

// Message types for the TUI

// LibraryChangedMsg signals that a mutation has been applied to the tracker
type LibraryChangedMsg struct {
	Status string // Short description for the footer
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
