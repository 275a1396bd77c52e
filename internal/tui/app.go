package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/pagemark/internal/domain"
	"github.com/mmcdole/pagemark/internal/search"
	"github.com/mmcdole/pagemark/internal/tracker"
	"github.com/mmcdole/pagemark/internal/tui/components"
	"github.com/mmcdole/pagemark/internal/tui/styles"
	"github.com/mmcdole/pagemark/internal/validation"
)

// Library is the tracker surface the UI reads and mutates
type Library interface {
	State() domain.State
	Books(q domain.BookQuery) []domain.Book
	BookByID(bookID string) (domain.Book, bool)
	CurrentlyReading() []domain.Book
	RecentNotes(limit int) []domain.Note
	SearchNotes(query string) []domain.Note
	NotesForBook(bookID string) []domain.Note
	Stats() domain.Stats
	Insights() domain.Insights

	AddBook(book domain.Book) domain.Book
	UpdateBook(bookID string, upd domain.BookUpdate)
	DeleteBook(bookID string)
	AddNote(note domain.Note) domain.Note
	UpdateNote(noteID string, upd domain.NoteUpdate)
	DeleteNote(noteID string)
}

var _ Library = (*tracker.Tracker)(nil)

// Page is one of the top-level screens
type Page int

const (
	PageHome Page = iota
	PageLibrary
	PageNotes
	PageStats
)

var pageNames = []string{"Home", "Library", "Notes", "Stats"}

func (p Page) String() string {
	if p < 0 || int(p) >= len(pageNames) {
		return "?"
	}
	return pageNames[p]
}

// ParsePage maps a config page name to a Page, defaulting to PageHome
func ParsePage(name string) Page {
	switch name {
	case "library":
		return PageLibrary
	case "notes":
		return PageNotes
	case "stats":
		return PageStats
	default:
		return PageHome
	}
}

// ApplicationState represents what currently receives key presses
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateFiltering
	StateForm
	StateConfirmDelete
	StateHelp
)

type formKind int

const (
	formNone formKind = iota
	formAddBook
	formEditBook
	formAddNote
	formEditNote
)

// deleteTarget is the record awaiting y/n confirmation
type deleteTarget struct {
	bookID string
	noteID string
	label  string
}

// Options configures a Model
type Options struct {
	RecentNotes int    // Home page note count; <= 0 uses the tracker default
	StartPage   string // Config page name
	Logger      *slog.Logger
	Now         func() time.Time
}

// ChromeHeight is the nav bar plus the footer
const ChromeHeight = 2

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Page  Page
	Ready bool

	// Services
	Lib       Library
	Validator *validation.Validator
	logger    *slog.Logger
	now       func() time.Time

	recentNotes int

	// Library page
	bookCursor   int
	statusFilter domain.BookStatus // Empty shows every status
	sortOrder    domain.BookSort
	bookQuery    string // Fuzzy filter

	// Notes page
	noteCursor int
	noteQuery  string
	noteBookID string // Empty shows notes of every book

	// UI Components
	FilterInput textinput.Model
	Form        components.FormModal
	formKind    formKind
	editingID   string
	pending     deleteTarget

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
}

// NewModel creates a new application model
func NewModel(lib Library, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	fi := textinput.New()
	fi.Prompt = "/"
	fi.PromptStyle = styles.FilterPromptStyle
	fi.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	fi.CharLimit = 100

	return Model{
		State:       StateBrowsing,
		Page:        ParsePage(opts.StartPage),
		Lib:         lib,
		Validator:   validation.New(),
		logger:      logger,
		now:         now,
		recentNotes: opts.RecentNotes,
		sortOrder:   domain.SortDateAdded,
		FilterInput: fi,
		Form:        components.NewFormModal(),
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case LibraryChangedMsg:
		m.StatusMsg = msg.Status
		m.StatusIsErr = false
		m.clampCursors()
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Forward everything else (cursor blink) to the focused input
	var cmd tea.Cmd
	switch m.State {
	case StateForm:
		m.Form, cmd, _ = m.Form.Update(msg)
	case StateFiltering:
		m.FilterInput, cmd = m.FilterInput.Update(msg)
	}
	return m, cmd
}

// === Page data ===

// visibleBooks returns the Library page rows after status, sort and fuzzy filter
func (m Model) visibleBooks() []search.BookMatch {
	books := m.Lib.Books(domain.BookQuery{Status: m.statusFilter, Sort: m.sortOrder})
	query := m.bookQuery
	if m.State == StateFiltering && m.Page == PageLibrary {
		query = m.FilterInput.Value()
	}
	return search.FilterBooks(query, books)
}

// visibleNotes returns the Notes page rows after search and book filter
func (m Model) visibleNotes() []domain.Note {
	query := m.noteQuery
	if m.State == StateFiltering && m.Page == PageNotes {
		query = m.FilterInput.Value()
	}

	var notes []domain.Note
	switch {
	case query != "":
		notes = m.Lib.SearchNotes(query)
		if m.noteBookID != "" {
			kept := notes[:0]
			for _, n := range notes {
				if n.BookID == m.noteBookID {
					kept = append(kept, n)
				}
			}
			notes = kept
		}
	case m.noteBookID != "":
		notes = m.Lib.NotesForBook(m.noteBookID)
	default:
		notes = m.Lib.SearchNotes("")
	}
	return notes
}

func (m Model) selectedBook() (domain.Book, bool) {
	rows := m.visibleBooks()
	if m.bookCursor < 0 || m.bookCursor >= len(rows) {
		return domain.Book{}, false
	}
	return rows[m.bookCursor].Book, true
}

func (m Model) selectedNote() (domain.Note, bool) {
	notes := m.visibleNotes()
	if m.noteCursor < 0 || m.noteCursor >= len(notes) {
		return domain.Note{}, false
	}
	return notes[m.noteCursor], true
}

// bookTitle resolves a note's book for display
func (m Model) bookTitle(bookID string) string {
	if b, ok := m.Lib.BookByID(bookID); ok {
		return b.Title
	}
	return "Unknown book"
}

func (m *Model) clampCursors() {
	m.bookCursor = clamp(m.bookCursor, len(m.visibleBooks()))
	m.noteCursor = clamp(m.noteCursor, len(m.visibleNotes()))
}

func clamp(cursor, n int) int {
	if n == 0 {
		return 0
	}
	return max(0, min(cursor, n-1))
}

func (m *Model) setError(msg string) tea.Cmd {
	m.StatusMsg = msg
	m.StatusIsErr = true
	return ClearStatusCmd(3 * time.Second)
}
