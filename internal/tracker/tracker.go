// Package tracker owns the reading library: books, notes, goals, sessions
// and settings. Every mutation replaces the state snapshot and writes all
// collections through to their storage slots before returning.
package tracker

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/mmcdole/pagemark/internal/domain"
	"github.com/mmcdole/pagemark/internal/id"
)

// Id prefixes for generated records
const (
	bookPrefix = "book"
	notePrefix = "note"
)

// Tracker is the single owner and mutation surface of the application state.
// Construct one at startup with New and pass it to whatever needs it.
type Tracker struct {
	slots  domain.SlotStore
	logger *slog.Logger
	now    func() time.Time
	newID  func(prefix string) string

	mu    sync.RWMutex
	state domain.State
}

// Option configures a Tracker
type Option func(*Tracker)

// WithClock replaces time.Now for creation and modification timestamps
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithIDGenerator replaces the nanoid generator for new records
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(t *Tracker) { t.newID = gen }
}

// New creates a tracker backed by slots and loads the stored state.
// Missing or unreadable slots fall back to empty collections or default
// settings; New never fails.
func New(slots domain.SlotStore, logger *slog.Logger, opts ...Option) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tracker{
		slots:  slots,
		logger: logger,
		now:    time.Now,
		newID:  id.MustGenerate,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.state = t.load()
	t.logger.Info("loaded library",
		"books", len(t.state.Books),
		"notes", len(t.state.Notes),
		"goals", len(t.state.Goals),
		"sessions", len(t.state.Sessions))
	return t
}

// State returns the current snapshot. Callers must treat it as read-only.
func (t *Tracker) State() domain.State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// === Books ===

// AddBook stores a new book. ID and DateAdded are assigned here; any values
// the caller put in them are ignored. Returns the stored book.
func (t *Tracker) AddBook(book domain.Book) domain.Book {
	t.mu.Lock()
	defer t.mu.Unlock()

	book = cloneBook(book)
	book.ID = t.newID(bookPrefix)
	book.DateAdded = t.now()

	next := t.state
	next.Books = append(slices.Clip(t.state.Books), book)
	t.commit(next)

	t.logger.Debug("added book", "bookID", book.ID, "title", book.Title)
	return cloneBook(book)
}

// UpdateBook merges upd into the book with the given id.
// Unknown ids are ignored.
func (t *Tracker) UpdateBook(bookID string, upd domain.BookUpdate) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := slices.IndexFunc(t.state.Books, func(b domain.Book) bool { return b.ID == bookID })
	if idx < 0 {
		t.logger.Debug("update for unknown book ignored", "bookID", bookID)
		return
	}

	next := t.state
	next.Books = slices.Clone(t.state.Books)
	next.Books[idx] = upd.Apply(cloneBook(next.Books[idx]))
	t.commit(next)

	t.logger.Debug("updated book", "bookID", bookID)
}

// DeleteBook removes a book together with every note that belongs to it.
// Unknown ids are ignored.
func (t *Tracker) DeleteBook(bookID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !slices.ContainsFunc(t.state.Books, func(b domain.Book) bool { return b.ID == bookID }) {
		t.logger.Debug("delete for unknown book ignored", "bookID", bookID)
		return
	}

	next := t.state
	next.Books = filter(t.state.Books, func(b domain.Book) bool { return b.ID != bookID })
	next.Notes = filter(t.state.Notes, func(n domain.Note) bool { return n.BookID != bookID })
	removed := len(t.state.Notes) - len(next.Notes)
	t.commit(next)

	t.logger.Debug("deleted book", "bookID", bookID, "notesRemoved", removed)
}

// === Notes ===

// AddNote stores a new note. ID and DateCreated are assigned here.
func (t *Tracker) AddNote(note domain.Note) domain.Note {
	t.mu.Lock()
	defer t.mu.Unlock()

	note = cloneNote(note)
	note.ID = t.newID(notePrefix)
	note.DateCreated = t.now()

	next := t.state
	next.Notes = append(slices.Clip(t.state.Notes), note)
	t.commit(next)

	t.logger.Debug("added note", "noteID", note.ID, "bookID", note.BookID)
	return cloneNote(note)
}

// UpdateNote merges upd into the note with the given id and stamps
// DateModified, even when nothing else changed. Unknown ids are ignored.
func (t *Tracker) UpdateNote(noteID string, upd domain.NoteUpdate) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := slices.IndexFunc(t.state.Notes, func(n domain.Note) bool { return n.ID == noteID })
	if idx < 0 {
		t.logger.Debug("update for unknown note ignored", "noteID", noteID)
		return
	}

	modified := t.now()
	next := t.state
	next.Notes = slices.Clone(t.state.Notes)
	note := upd.Apply(cloneNote(next.Notes[idx]))
	note.DateModified = &modified
	next.Notes[idx] = cloneNote(note)
	t.commit(next)

	t.logger.Debug("updated note", "noteID", noteID)
}

// DeleteNote removes a note. Unknown ids are ignored.
func (t *Tracker) DeleteNote(noteID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !slices.ContainsFunc(t.state.Notes, func(n domain.Note) bool { return n.ID == noteID }) {
		t.logger.Debug("delete for unknown note ignored", "noteID", noteID)
		return
	}

	next := t.state
	next.Notes = filter(t.state.Notes, func(n domain.Note) bool { return n.ID != noteID })
	t.commit(next)

	t.logger.Debug("deleted note", "noteID", noteID)
}

// === Settings ===

// UpdateSettings merges upd into the settings record
func (t *Tracker) UpdateSettings(upd domain.SettingsUpdate) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.state
	next.Settings = upd.Apply(t.state.Settings)
	t.commit(next)

	t.logger.Debug("updated settings")
}

// commit publishes next as the current snapshot and writes it through.
// Must be called with mu held.
func (t *Tracker) commit(next domain.State) {
	t.state = next
	t.persist(next)
}

// --- Private helpers ---

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneBook(b domain.Book) domain.Book {
	b.DateStarted = cloneTime(b.DateStarted)
	b.DateFinished = cloneTime(b.DateFinished)
	return b
}

func cloneNote(n domain.Note) domain.Note {
	n.DateModified = cloneTime(n.DateModified)
	if len(n.Tags) > 0 {
		n.Tags = slices.Clone(n.Tags)
	} else {
		n.Tags = nil
	}
	return n
}
