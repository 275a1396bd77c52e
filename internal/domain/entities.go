package domain

import (
	"math"
	"time"
)

// BookStatus is the reading state of a book
type BookStatus string

const (
	StatusToRead   BookStatus = "to-read"
	StatusReading  BookStatus = "reading"
	StatusFinished BookStatus = "finished"
	StatusPaused   BookStatus = "paused"
)

// BookStatuses lists every status in display order
var BookStatuses = []BookStatus{StatusToRead, StatusReading, StatusFinished, StatusPaused}

// Label returns a human-readable status name
func (s BookStatus) Label() string {
	switch s {
	case StatusToRead:
		return "To Read"
	case StatusReading:
		return "Reading"
	case StatusFinished:
		return "Finished"
	case StatusPaused:
		return "Paused"
	default:
		return string(s)
	}
}

// Next returns the status that follows s in BookStatuses, wrapping around
func (s BookStatus) Next() BookStatus {
	for i, st := range BookStatuses {
		if st == s {
			return BookStatuses[(i+1)%len(BookStatuses)]
		}
	}
	return StatusToRead
}

// Book is a catalogued reading item
type Book struct {
	ID           string     // Opaque unique identifier, assigned on add
	Title        string     // Display title
	Author       string     // Author name
	TotalPages   int        // Page count (> 0)
	CurrentPage  int        // Progress marker in [0, TotalPages]
	Status       BookStatus // Reading state
	DateAdded    time.Time  // Set on add, never changes
	DateStarted  *time.Time // Optional, caller-set
	DateFinished *time.Time // Optional, caller-set

	// Optional metadata (zero value = absent)
	CoverURL    string
	Genre       string
	Description string
	Rating      int // 1-5 stars, 0 = unrated
}

// Progress returns reading progress as a whole percentage.
// Finished books are always 100 and unread books always 0.
func (b Book) Progress() int {
	switch b.Status {
	case StatusFinished:
		return 100
	case StatusToRead:
		return 0
	}
	if b.TotalPages <= 0 {
		return 0
	}
	return int(math.Round(float64(b.CurrentPage) / float64(b.TotalPages) * 100))
}

// PagesLeft returns the number of pages between the progress marker and the end
func (b Book) PagesLeft() int {
	if left := b.TotalPages - b.CurrentPage; left > 0 {
		return left
	}
	return 0
}

// Note is an annotation anchored to a page of one book
type Note struct {
	ID           string     // Opaque unique identifier, assigned on add
	BookID       string     // Parent book (not enforced on update)
	Page         int        // Page the note refers to
	Content      string     // Note body
	DateCreated  time.Time  // Set on add, never changes
	DateModified *time.Time // Set on every update
	Tags         []string   // Free-text tags, order preserved
}

// GoalType identifies what a reading goal counts
type GoalType string

const (
	GoalBooks   GoalType = "books"
	GoalPages   GoalType = "pages"
	GoalMinutes GoalType = "minutes"
)

// GoalPeriod is the window a reading goal resets over
type GoalPeriod string

const (
	PeriodWeekly  GoalPeriod = "weekly"
	PeriodMonthly GoalPeriod = "monthly"
	PeriodYearly  GoalPeriod = "yearly"
)

// ReadingGoal is a target counter for a period
type ReadingGoal struct {
	ID          string
	Type        GoalType
	Target      int
	Period      GoalPeriod
	Current     int
	DateCreated time.Time
}

// ReadingSession records one sitting with a book
type ReadingSession struct {
	ID        string
	BookID    string
	StartPage int
	EndPage   int
	Duration  int // minutes
	Date      time.Time
}

// DefaultGoals holds the user's standing reading targets
type DefaultGoals struct {
	BooksPerMonth int
	PagesPerDay   int
}

// Settings is the single user preferences record
type Settings struct {
	ReminderEnabled bool
	ReminderDays    []string // Weekday names
	ReminderTime    string   // "HH:MM"
	DefaultGoals    DefaultGoals
}

// DefaultSettings returns the settings used when none are stored
func DefaultSettings() Settings {
	return Settings{
		ReminderEnabled: false,
		ReminderDays:    []string{"Monday", "Wednesday", "Friday"},
		ReminderTime:    "19:00",
		DefaultGoals: DefaultGoals{
			BooksPerMonth: 2,
			PagesPerDay:   20,
		},
	}
}

// State is a snapshot of every collection the tracker owns.
// Slices in a published snapshot are never modified; writers build new ones.
type State struct {
	Books    []Book
	Notes    []Note
	Goals    []ReadingGoal
	Sessions []ReadingSession
	Settings Settings
}

// EmptyState returns a state with no records and default settings
func EmptyState() State {
	return State{
		Books:    []Book{},
		Notes:    []Note{},
		Goals:    []ReadingGoal{},
		Sessions: []ReadingSession{},
		Settings: DefaultSettings(),
	}
}
