package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/pagemark/internal/domain"
	"github.com/mmcdole/pagemark/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even from text inputs
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Handle state-specific keys
	switch m.State {
	case StateHelp:
		m.State = StateBrowsing
		return m, nil

	case StateConfirmDelete:
		return m.handleConfirmKey(msg)

	case StateForm:
		return m.handleFormKey(msg)

	case StateFiltering:
		return m.handleFilterKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.HomePage):
		m.Page = PageHome
		return m, nil

	case key.Matches(msg, Keys.Library):
		m.Page = PageLibrary
		return m, nil

	case key.Matches(msg, Keys.Notes):
		m.Page = PageNotes
		return m, nil

	case key.Matches(msg, Keys.Stats):
		m.Page = PageStats
		return m, nil

	case key.Matches(msg, Keys.NextPage):
		m.Page = (m.Page + 1) % Page(len(pageNames))
		return m, nil
	}

	switch m.Page {
	case PageHome:
		if key.Matches(msg, Keys.Add) {
			return m, m.openBookForm(formAddBook, domain.Book{})
		}
	case PageLibrary:
		return m.handleLibraryKey(msg)
	case PageNotes:
		return m.handleNotesKey(msg)
	}
	return m, nil
}

// handleLibraryKey handles keys on the Library page
func (m Model) handleLibraryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.visibleBooks()

	switch {
	case key.Matches(msg, Keys.Up):
		m.bookCursor = clamp(m.bookCursor-1, len(rows))
	case key.Matches(msg, Keys.Down):
		m.bookCursor = clamp(m.bookCursor+1, len(rows))
	case key.Matches(msg, Keys.Home):
		m.bookCursor = 0
	case key.Matches(msg, Keys.End):
		m.bookCursor = clamp(len(rows)-1, len(rows))

	case key.Matches(msg, Keys.Escape):
		m.bookQuery = ""
		m.clampCursors()

	case key.Matches(msg, Keys.Filter):
		return m, m.startFilter(m.bookQuery)

	case key.Matches(msg, Keys.StatusFilter):
		m.statusFilter = nextStatusFilter(m.statusFilter)
		m.bookCursor = 0

	case key.Matches(msg, Keys.Sort):
		i := slices.Index(domain.BookSorts, m.sortOrder)
		m.sortOrder = domain.BookSorts[(i+1)%len(domain.BookSorts)]
		m.bookCursor = 0

	case key.Matches(msg, Keys.Add):
		return m, m.openBookForm(formAddBook, domain.Book{})

	case key.Matches(msg, Keys.Edit):
		if b, ok := m.selectedBook(); ok {
			return m, m.openBookForm(formEditBook, b)
		}

	case key.Matches(msg, Keys.AdvanceState):
		if b, ok := m.selectedBook(); ok {
			next := b.Status.Next()
			return m, UpdateBookCmd(m.Lib, b.ID, m.statusUpdate(b, next),
				fmt.Sprintf("%q is now %s", b.Title, next.Label()))
		}

	case key.Matches(msg, Keys.PageForward), key.Matches(msg, Keys.PageBack):
		if b, ok := m.selectedBook(); ok {
			delta := 1
			if key.Matches(msg, Keys.PageBack) {
				delta = -1
			}
			page := max(0, min(b.CurrentPage+delta, b.TotalPages))
			if page == b.CurrentPage {
				return m, nil
			}
			return m, UpdateBookCmd(m.Lib, b.ID, domain.BookUpdate{CurrentPage: &page},
				fmt.Sprintf("%s: page %d of %d", b.Title, page, b.TotalPages))
		}

	case key.Matches(msg, Keys.Delete):
		if b, ok := m.selectedBook(); ok {
			m.pending = deleteTarget{bookID: b.ID, label: fmt.Sprintf("book %q and its notes", b.Title)}
			m.State = StateConfirmDelete
		}
	}
	return m, nil
}

// handleNotesKey handles keys on the Notes page
func (m Model) handleNotesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	notes := m.visibleNotes()

	switch {
	case key.Matches(msg, Keys.Up):
		m.noteCursor = clamp(m.noteCursor-1, len(notes))
	case key.Matches(msg, Keys.Down):
		m.noteCursor = clamp(m.noteCursor+1, len(notes))
	case key.Matches(msg, Keys.Home):
		m.noteCursor = 0
	case key.Matches(msg, Keys.End):
		m.noteCursor = clamp(len(notes)-1, len(notes))

	case key.Matches(msg, Keys.Escape):
		m.noteQuery = ""
		m.noteBookID = ""
		m.clampCursors()

	case key.Matches(msg, Keys.Filter):
		return m, m.startFilter(m.noteQuery)

	case key.Matches(msg, Keys.BookFilter):
		m.noteBookID = m.nextBookFilter()
		m.noteCursor = 0

	case key.Matches(msg, Keys.Add):
		return m, m.openNoteForm(formAddNote, domain.Note{BookID: m.noteBookID})

	case key.Matches(msg, Keys.Edit):
		if n, ok := m.selectedNote(); ok {
			return m, m.openNoteForm(formEditNote, n)
		}

	case key.Matches(msg, Keys.Delete):
		if n, ok := m.selectedNote(); ok {
			m.pending = deleteTarget{noteID: n.ID, label: fmt.Sprintf("note on page %d of %q", n.Page, m.bookTitle(n.BookID))}
			m.State = StateConfirmDelete
		}
	}
	return m, nil
}

// handleConfirmKey resolves a pending delete
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Confirm):
		target := m.pending
		m.pending = deleteTarget{}
		m.State = StateBrowsing
		if target.bookID != "" {
			if m.noteBookID == target.bookID {
				m.noteBookID = ""
			}
			return m, DeleteBookCmd(m.Lib, target.bookID, m.bookTitle(target.bookID))
		}
		return m, DeleteNoteCmd(m.Lib, target.noteID)

	case key.Matches(msg, Keys.Deny):
		m.pending = deleteTarget{}
		m.State = StateBrowsing
	}
	return m, nil
}

// handleFilterKey edits the page filter; enter keeps it, esc drops it
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Apply):
		m.applyFilter(m.FilterInput.Value())
		return m, nil
	case key.Matches(msg, Keys.Escape):
		m.applyFilter("")
		return m, nil
	}

	var cmd tea.Cmd
	m.FilterInput, cmd = m.FilterInput.Update(msg)
	m.bookCursor, m.noteCursor = 0, 0
	return m, cmd
}

// handleFormKey routes keys to the form modal and submits on enter
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var res components.FormResult
	m.Form, cmd, res = m.Form.Update(msg)

	switch res {
	case components.FormCancelled:
		m.closeForm()
		return m, nil
	case components.FormSubmitted:
		return m.submitForm()
	}
	return m, cmd
}

func (m *Model) startFilter(current string) tea.Cmd {
	m.State = StateFiltering
	m.FilterInput.SetValue(current)
	m.FilterInput.CursorEnd()
	return m.FilterInput.Focus()
}

func (m *Model) applyFilter(value string) {
	switch m.Page {
	case PageLibrary:
		m.bookQuery = value
	case PageNotes:
		m.noteQuery = value
	}
	m.FilterInput.Blur()
	m.FilterInput.SetValue("")
	m.State = StateBrowsing
	m.clampCursors()
}

// statusUpdate moves b to status next, stamping start and finish dates the
// first time a book reaches them. Finishing also completes the page count.
func (m Model) statusUpdate(b domain.Book, next domain.BookStatus) domain.BookUpdate {
	upd := domain.BookUpdate{Status: &next}
	now := m.now()
	switch next {
	case domain.StatusReading:
		if b.DateStarted == nil {
			upd.DateStarted = &now
		}
	case domain.StatusFinished:
		if b.DateFinished == nil {
			upd.DateFinished = &now
		}
		upd.CurrentPage = &b.TotalPages
	}
	return upd
}

// nextStatusFilter cycles all -> each status -> all
func nextStatusFilter(current domain.BookStatus) domain.BookStatus {
	if current == "" {
		return domain.BookStatuses[0]
	}
	i := slices.Index(domain.BookStatuses, current)
	if i < 0 || i == len(domain.BookStatuses)-1 {
		return ""
	}
	return domain.BookStatuses[i+1]
}

// nextBookFilter cycles all books -> each book in library order -> all books
func (m Model) nextBookFilter() string {
	books := m.Lib.State().Books
	if len(books) == 0 {
		return ""
	}
	if m.noteBookID == "" {
		return books[0].ID
	}
	i := slices.IndexFunc(books, func(b domain.Book) bool { return b.ID == m.noteBookID })
	if i < 0 || i == len(books)-1 {
		return ""
	}
	return books[i+1].ID
}
