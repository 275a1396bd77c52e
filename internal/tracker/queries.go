package tracker

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mmcdole/pagemark/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultRecentNotes is the RecentNotes limit used when none is given
const DefaultRecentNotes = 5

// BookByID returns the book with the given id
func (t *Tracker) BookByID(bookID string) (domain.Book, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, b := range t.state.Books {
		if b.ID == bookID {
			return cloneBook(b), true
		}
	}
	return domain.Book{}, false
}

// CurrentlyReading returns books with status reading, in insertion order
func (t *Tracker) CurrentlyReading() []domain.Book {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return cloneBooks(filter(t.state.Books, func(b domain.Book) bool {
		return b.Status == domain.StatusReading
	}))
}

// RecentNotes returns up to limit notes, newest DateCreated first.
// Notes created at the same instant keep insertion order.
// A limit <= 0 means DefaultRecentNotes.
func (t *Tracker) RecentNotes(limit int) []domain.Note {
	if limit <= 0 {
		limit = DefaultRecentNotes
	}

	t.mu.RLock()
	notes := cloneNotes(t.state.Notes)
	t.mu.RUnlock()

	slices.SortStableFunc(notes, func(a, b domain.Note) int {
		return b.DateCreated.Compare(a.DateCreated)
	})
	if len(notes) > limit {
		notes = notes[:limit]
	}
	return notes
}

// Stats computes the library summary
func (t *Tracker) Stats() domain.Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return computeStats(t.state.Books)
}

func computeStats(books []domain.Book) domain.Stats {
	s := domain.Stats{TotalBooks: len(books)}
	for _, b := range books {
		switch b.Status {
		case domain.StatusFinished:
			s.BooksRead++
		case domain.StatusReading:
			s.CurrentlyReading++
		}
		s.TotalPages += b.TotalPages
		s.PagesRead += b.CurrentPage
	}
	return s
}

// SearchNotes returns notes whose content or any tag contains query,
// ignoring case. A blank query returns every note.
func (t *Tracker) SearchNotes(query string) []domain.Note {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if strings.TrimSpace(query) == "" {
		return cloneNotes(t.state.Notes)
	}

	needle := strings.ToLower(query)
	return cloneNotes(filter(t.state.Notes, func(n domain.Note) bool {
		if strings.Contains(strings.ToLower(n.Content), needle) {
			return true
		}
		return slices.ContainsFunc(n.Tags, func(tag string) bool {
			return strings.Contains(strings.ToLower(tag), needle)
		})
	}))
}

// NotesForBook returns the notes attached to a book, in insertion order
func (t *Tracker) NotesForBook(bookID string) []domain.Note {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return cloneNotes(filter(t.state.Notes, func(n domain.Note) bool {
		return n.BookID == bookID
	}))
}

// Books returns the library listing for q
func (t *Tracker) Books(q domain.BookQuery) []domain.Book {
	t.mu.RLock()
	search := strings.ToLower(strings.TrimSpace(q.Search))
	books := cloneBooks(filter(t.state.Books, func(b domain.Book) bool {
		if q.Status != "" && b.Status != q.Status {
			return false
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(b.Title), search) ||
			strings.Contains(strings.ToLower(b.Author), search)
	}))
	t.mu.RUnlock()

	sortBooks(books, q.Sort)
	return books
}

func sortBooks(books []domain.Book, by domain.BookSort) {
	switch by {
	case domain.SortTitle:
		c := collate.New(language.English, collate.Loose)
		slices.SortStableFunc(books, func(a, b domain.Book) int {
			return c.CompareString(a.Title, b.Title)
		})
	case domain.SortAuthor:
		c := collate.New(language.English, collate.Loose)
		slices.SortStableFunc(books, func(a, b domain.Book) int {
			return c.CompareString(a.Author, b.Author)
		})
	case domain.SortProgress:
		slices.SortStableFunc(books, func(a, b domain.Book) int {
			return cmp.Compare(b.Progress(), a.Progress())
		})
	default: // newest first
		slices.SortStableFunc(books, func(a, b domain.Book) int {
			return b.DateAdded.Compare(a.DateAdded)
		})
	}
}

func cloneBooks(books []domain.Book) []domain.Book {
	out := make([]domain.Book, len(books))
	for i, b := range books {
		out[i] = cloneBook(b)
	}
	return out
}

func cloneNotes(notes []domain.Note) []domain.Note {
	out := make([]domain.Note, len(notes))
	for i, n := range notes {
		out[i] = cloneNote(n)
	}
	return out
}
