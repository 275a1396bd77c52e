package tui

import (
	"errors"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/pagemark/internal/domain"
	"github.com/mmcdole/pagemark/internal/search"
	"github.com/mmcdole/pagemark/internal/tui/components"
	"github.com/mmcdole/pagemark/internal/validation"
)

var bookFields = []components.FormField{
	{Key: "title", Label: "Title", Placeholder: "required"},
	{Key: "author", Label: "Author", Placeholder: "required"},
	{Key: "totalPages", Label: "Pages", Placeholder: "total page count", CharLimit: 6},
	{Key: "currentPage", Label: "Current page", Placeholder: "0", CharLimit: 6},
	{Key: "status", Label: "Status", Placeholder: "to-read", Hint: "to-read, reading, finished or paused"},
	{Key: "genre", Label: "Genre"},
	{Key: "coverUrl", Label: "Cover URL"},
	{Key: "rating", Label: "Rating", Placeholder: "0-5", CharLimit: 1},
	{Key: "description", Label: "Description", CharLimit: 500},
}

var noteFields = []components.FormField{
	{Key: "bookId", Label: "Book", Placeholder: "title", Hint: "closest title match is used"},
	{Key: "page", Label: "Page", CharLimit: 6},
	{Key: "content", Label: "Note", CharLimit: 2000},
	{Key: "tags", Label: "Tags", Placeholder: "comma separated"},
}

func (m *Model) openBookForm(kind formKind, b domain.Book) tea.Cmd {
	title := "Add Book"
	values := map[string]string{}
	if kind == formEditBook {
		title = "Edit Book"
		m.editingID = b.ID
		values = map[string]string{
			"title":       b.Title,
			"author":      b.Author,
			"totalPages":  strconv.Itoa(b.TotalPages),
			"currentPage": strconv.Itoa(b.CurrentPage),
			"status":      string(b.Status),
			"genre":       b.Genre,
			"coverUrl":    b.CoverURL,
			"description": b.Description,
		}
		if b.Rating > 0 {
			values["rating"] = strconv.Itoa(b.Rating)
		}
	}

	m.formKind = kind
	m.State = StateForm
	return m.Form.Show(title, bookFields, values)
}

func (m *Model) openNoteForm(kind formKind, n domain.Note) tea.Cmd {
	title := "Add Note"
	values := map[string]string{"bookId": m.bookRef(n.BookID)}
	if kind == formEditNote {
		title = "Edit Note"
		m.editingID = n.ID
		values["page"] = strconv.Itoa(n.Page)
		values["content"] = n.Content
		values["tags"] = strings.Join(n.Tags, ", ")
	}

	m.formKind = kind
	m.State = StateForm
	return m.Form.Show(title, noteFields, values)
}

// bookRef is the text that resolves back to bookID in the note form:
// its title when unique, otherwise the id itself
func (m Model) bookRef(bookID string) string {
	if bookID == "" {
		return ""
	}
	b, ok := m.Lib.BookByID(bookID)
	if !ok {
		return bookID
	}
	for _, other := range m.Lib.State().Books {
		if other.ID != b.ID && strings.EqualFold(other.Title, b.Title) {
			return bookID
		}
	}
	return b.Title
}

func (m *Model) closeForm() {
	m.Form.Hide()
	m.formKind = formNone
	m.editingID = ""
	m.State = StateBrowsing
}

// submitForm validates the open form and dispatches the mutation.
// Invalid input keeps the form open with inline errors.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var err error

	switch m.formKind {
	case formAddBook, formEditBook:
		cmd, err = m.submitBook()
	case formAddNote, formEditNote:
		cmd, err = m.submitNote()
	}

	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return m, m.Form.SetErrors(verr.Fields)
		}
		m.logger.Error("failed to submit form", "error", err)
		m.closeForm()
		return m, m.setError(err.Error())
	}

	m.closeForm()
	return m, cmd
}

func (m Model) submitBook() (tea.Cmd, error) {
	v := m.Form.Values()
	book, err := m.Validator.Book(validation.BookInput{
		Title:       v["title"],
		Author:      v["author"],
		TotalPages:  v["totalPages"],
		CurrentPage: v["currentPage"],
		Status:      v["status"],
		Genre:       v["genre"],
		CoverURL:    v["coverUrl"],
		Rating:      v["rating"],
		Description: v["description"],
	})
	if err != nil {
		return nil, err
	}

	if m.formKind == formAddBook {
		return AddBookCmd(m.Lib, book), nil
	}
	upd := domain.BookUpdate{
		Title:       &book.Title,
		Author:      &book.Author,
		TotalPages:  &book.TotalPages,
		CurrentPage: &book.CurrentPage,
		Status:      &book.Status,
		Genre:       &book.Genre,
		CoverURL:    &book.CoverURL,
		Rating:      &book.Rating,
		Description: &book.Description,
	}
	return UpdateBookCmd(m.Lib, m.editingID, upd, "Book updated"), nil
}

func (m Model) submitNote() (tea.Cmd, error) {
	v := m.Form.Values()

	ref := strings.TrimSpace(v["bookId"])
	maxPage := 0
	if ref != "" {
		matches := search.SuggestBooks(ref, m.Lib.State().Books, 1)
		if len(matches) == 0 {
			return nil, &validation.Error{Fields: map[string]string{"bookId": "matches no book"}}
		}
		ref = matches[0].ID
		maxPage = matches[0].TotalPages
	}

	note, err := m.Validator.Note(validation.NoteInput{
		BookID:  ref,
		Page:    v["page"],
		Content: v["content"],
		Tags:    v["tags"],
	}, maxPage)
	if err != nil {
		return nil, err
	}

	if m.formKind == formAddNote {
		return AddNoteCmd(m.Lib, note), nil
	}
	tags := note.Tags
	upd := domain.NoteUpdate{
		BookID:  &note.BookID,
		Page:    &note.Page,
		Content: &note.Content,
		Tags:    &tags,
	}
	return UpdateNoteCmd(m.Lib, m.editingID, upd), nil
}
