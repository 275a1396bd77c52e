package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/pagemark/internal/domain"
)

// AddBookCmd stores a new book
func AddBookCmd(lib Library, book domain.Book) tea.Cmd {
	return func() tea.Msg {
		added := lib.AddBook(book)
		return LibraryChangedMsg{Status: fmt.Sprintf("Added %q", added.Title)}
	}
}

// UpdateBookCmd merges a partial update into a book
func UpdateBookCmd(lib Library, bookID string, upd domain.BookUpdate, status string) tea.Cmd {
	return func() tea.Msg {
		lib.UpdateBook(bookID, upd)
		return LibraryChangedMsg{Status: status}
	}
}

// DeleteBookCmd removes a book and its notes
func DeleteBookCmd(lib Library, bookID, title string) tea.Cmd {
	return func() tea.Msg {
		lib.DeleteBook(bookID)
		return LibraryChangedMsg{Status: fmt.Sprintf("Deleted %q", title)}
	}
}

// AddNoteCmd stores a new note
func AddNoteCmd(lib Library, note domain.Note) tea.Cmd {
	return func() tea.Msg {
		added := lib.AddNote(note)
		return LibraryChangedMsg{Status: fmt.Sprintf("Added note on page %d", added.Page)}
	}
}

// UpdateNoteCmd merges a partial update into a note
func UpdateNoteCmd(lib Library, noteID string, upd domain.NoteUpdate) tea.Cmd {
	return func() tea.Msg {
		lib.UpdateNote(noteID, upd)
		return LibraryChangedMsg{Status: "Note updated"}
	}
}

// DeleteNoteCmd removes a note
func DeleteNoteCmd(lib Library, noteID string) tea.Cmd {
	return func() tea.Msg {
		lib.DeleteNote(noteID)
		return LibraryChangedMsg{Status: "Note deleted"}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
