package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mmcdole/pagemark/internal/domain"
)

// Stored records mirror the domain types with timestamps as ISO-8601
// strings. Every timestamp is parsed back explicitly on load.

type bookRecord struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	TotalPages   int    `json:"totalPages"`
	CurrentPage  int    `json:"currentPage"`
	Status       string `json:"status"`
	DateAdded    string `json:"dateAdded"`
	DateStarted  string `json:"dateStarted,omitempty"`
	DateFinished string `json:"dateFinished,omitempty"`
	CoverURL     string `json:"coverUrl,omitempty"`
	Rating       int    `json:"rating,omitempty"`
	Genre        string `json:"genre,omitempty"`
	Description  string `json:"description,omitempty"`
}

type noteRecord struct {
	ID           string   `json:"id"`
	BookID       string   `json:"bookId"`
	Page         int      `json:"page"`
	Content      string   `json:"content"`
	DateCreated  string   `json:"dateCreated"`
	DateModified string   `json:"dateModified,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

type goalRecord struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Target      int    `json:"target"`
	Period      string `json:"period"`
	Current     int    `json:"current"`
	DateCreated string `json:"dateCreated"`
}

type sessionRecord struct {
	ID        string `json:"id"`
	BookID    string `json:"bookId"`
	StartPage int    `json:"startPage"`
	EndPage   int    `json:"endPage"`
	Duration  int    `json:"duration"`
	Date      string `json:"date"`
}

type settingsRecord struct {
	ReminderEnabled bool     `json:"reminderEnabled"`
	ReminderDays    []string `json:"reminderDays"`
	ReminderTime    string   `json:"reminderTime"`
	DefaultGoals    struct {
		BooksPerMonth int `json:"booksPerMonth"`
		PagesPerDay   int `json:"pagesPerDay"`
	} `json:"defaultGoals"`
}

// errNoTimestamp marks a required timestamp that is missing from a record
var errNoTimestamp = errors.New("timestamp is empty")

// timestampLayouts are tried in order when parsing stored dates
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatOptionalTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTimestamp(*t)
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errNoTimestamp
	}
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// parseOptionalTimestamp returns nil for empty or unparsable values
func parseOptionalTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := parseTimestamp(s)
	if err != nil {
		return nil
	}
	return &t
}

// === Encoding ===

func encodeBooks(books []domain.Book) []bookRecord {
	records := make([]bookRecord, len(books))
	for i, b := range books {
		records[i] = bookRecord{
			ID:           b.ID,
			Title:        b.Title,
			Author:       b.Author,
			TotalPages:   b.TotalPages,
			CurrentPage:  b.CurrentPage,
			Status:       string(b.Status),
			DateAdded:    formatTimestamp(b.DateAdded),
			DateStarted:  formatOptionalTimestamp(b.DateStarted),
			DateFinished: formatOptionalTimestamp(b.DateFinished),
			CoverURL:     b.CoverURL,
			Rating:       b.Rating,
			Genre:        b.Genre,
			Description:  b.Description,
		}
	}
	return records
}

func encodeNotes(notes []domain.Note) []noteRecord {
	records := make([]noteRecord, len(notes))
	for i, n := range notes {
		records[i] = noteRecord{
			ID:           n.ID,
			BookID:       n.BookID,
			Page:         n.Page,
			Content:      n.Content,
			DateCreated:  formatTimestamp(n.DateCreated),
			DateModified: formatOptionalTimestamp(n.DateModified),
			Tags:         n.Tags,
		}
	}
	return records
}

func encodeGoals(goals []domain.ReadingGoal) []goalRecord {
	records := make([]goalRecord, len(goals))
	for i, g := range goals {
		records[i] = goalRecord{
			ID:          g.ID,
			Type:        string(g.Type),
			Target:      g.Target,
			Period:      string(g.Period),
			Current:     g.Current,
			DateCreated: formatTimestamp(g.DateCreated),
		}
	}
	return records
}

func encodeSessions(sessions []domain.ReadingSession) []sessionRecord {
	records := make([]sessionRecord, len(sessions))
	for i, s := range sessions {
		records[i] = sessionRecord{
			ID:        s.ID,
			BookID:    s.BookID,
			StartPage: s.StartPage,
			EndPage:   s.EndPage,
			Duration:  s.Duration,
			Date:      formatTimestamp(s.Date),
		}
	}
	return records
}

func encodeSettings(s domain.Settings) settingsRecord {
	var r settingsRecord
	r.ReminderEnabled = s.ReminderEnabled
	r.ReminderDays = s.ReminderDays
	if r.ReminderDays == nil {
		r.ReminderDays = []string{}
	}
	r.ReminderTime = s.ReminderTime
	r.DefaultGoals.BooksPerMonth = s.DefaultGoals.BooksPerMonth
	r.DefaultGoals.PagesPerDay = s.DefaultGoals.PagesPerDay
	return r
}

// === Decoding ===

// decodeSlot unmarshals a slot holding a JSON array and converts each record.
// A JSON error fails the whole slot; a conversion error only skips that record.
func decodeSlot[R, T any](data []byte, convert func(R) (T, error)) ([]T, []error, error) {
	var records []R
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil, err
	}

	items := make([]T, 0, len(records))
	var skipped []error
	for _, r := range records {
		item, err := convert(r)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		items = append(items, item)
	}
	return items, skipped, nil
}

func bookFromRecord(r bookRecord) (domain.Book, error) {
	added, err := parseTimestamp(r.DateAdded)
	if err != nil {
		return domain.Book{}, fmt.Errorf("book %s: dateAdded: %w", r.ID, err)
	}
	return domain.Book{
		ID:           r.ID,
		Title:        r.Title,
		Author:       r.Author,
		TotalPages:   r.TotalPages,
		CurrentPage:  r.CurrentPage,
		Status:       domain.BookStatus(r.Status),
		DateAdded:    added,
		DateStarted:  parseOptionalTimestamp(r.DateStarted),
		DateFinished: parseOptionalTimestamp(r.DateFinished),
		CoverURL:     r.CoverURL,
		Genre:        r.Genre,
		Description:  r.Description,
		Rating:       r.Rating,
	}, nil
}

func noteFromRecord(r noteRecord) (domain.Note, error) {
	created, err := parseTimestamp(r.DateCreated)
	if err != nil {
		return domain.Note{}, fmt.Errorf("note %s: dateCreated: %w", r.ID, err)
	}
	n := domain.Note{
		ID:           r.ID,
		BookID:       r.BookID,
		Page:         r.Page,
		Content:      r.Content,
		DateCreated:  created,
		DateModified: parseOptionalTimestamp(r.DateModified),
	}
	if len(r.Tags) > 0 {
		n.Tags = r.Tags
	}
	return n, nil
}

func goalFromRecord(r goalRecord) (domain.ReadingGoal, error) {
	created, err := parseTimestamp(r.DateCreated)
	if err != nil {
		return domain.ReadingGoal{}, fmt.Errorf("goal %s: dateCreated: %w", r.ID, err)
	}
	return domain.ReadingGoal{
		ID:          r.ID,
		Type:        domain.GoalType(r.Type),
		Target:      r.Target,
		Period:      domain.GoalPeriod(r.Period),
		Current:     r.Current,
		DateCreated: created,
	}, nil
}

func sessionFromRecord(r sessionRecord) (domain.ReadingSession, error) {
	date, err := parseTimestamp(r.Date)
	if err != nil {
		return domain.ReadingSession{}, fmt.Errorf("session %s: date: %w", r.ID, err)
	}
	return domain.ReadingSession{
		ID:        r.ID,
		BookID:    r.BookID,
		StartPage: r.StartPage,
		EndPage:   r.EndPage,
		Duration:  r.Duration,
		Date:      date,
	}, nil
}

// decodeSettings overlays the stored document on the defaults, so fields
// missing from older documents keep their default values
func decodeSettings(data []byte) (domain.Settings, error) {
	r := encodeSettings(domain.DefaultSettings())
	if err := json.Unmarshal(data, &r); err != nil {
		return domain.Settings{}, err
	}
	return domain.Settings{
		ReminderEnabled: r.ReminderEnabled,
		ReminderDays:    r.ReminderDays,
		ReminderTime:    r.ReminderTime,
		DefaultGoals: domain.DefaultGoals{
			BooksPerMonth: r.DefaultGoals.BooksPerMonth,
			PagesPerDay:   r.DefaultGoals.PagesPerDay,
		},
	}, nil
}
