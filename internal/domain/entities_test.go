package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookProgress(t *testing.T) {
	tests := []struct {
		name string
		book Book
		want int
	}{
		{"reading rounds", Book{Status: StatusReading, TotalPages: 3, CurrentPage: 1}, 33},
		{"reading half", Book{Status: StatusReading, TotalPages: 200, CurrentPage: 100}, 50},
		{"paused uses pages", Book{Status: StatusPaused, TotalPages: 8, CurrentPage: 7}, 88},
		{"finished is always full", Book{Status: StatusFinished, TotalPages: 100, CurrentPage: 3}, 100},
		{"to-read is always empty", Book{Status: StatusToRead, TotalPages: 100, CurrentPage: 60}, 0},
		{"zero pages", Book{Status: StatusReading}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.book.Progress())
		})
	}
}

func TestBookPagesLeft(t *testing.T) {
	assert.Equal(t, 60, Book{TotalPages: 100, CurrentPage: 40}.PagesLeft())
	assert.Equal(t, 0, Book{TotalPages: 100, CurrentPage: 140}.PagesLeft())
}

func TestBookStatus_NextWraps(t *testing.T) {
	assert.Equal(t, StatusReading, StatusToRead.Next())
	assert.Equal(t, StatusFinished, StatusReading.Next())
	assert.Equal(t, StatusPaused, StatusFinished.Next())
	assert.Equal(t, StatusToRead, StatusPaused.Next())
	assert.Equal(t, StatusToRead, BookStatus("bogus").Next())
}

func TestBookStatus_Label(t *testing.T) {
	assert.Equal(t, "To Read", StatusToRead.Label())
	assert.Equal(t, "Paused", StatusPaused.Label())
	assert.Equal(t, "custom", BookStatus("custom").Label())
}

func TestDefaultSettings_FreshCopies(t *testing.T) {
	a := DefaultSettings()
	a.ReminderDays[0] = "Sunday"
	assert.Equal(t, "Monday", DefaultSettings().ReminderDays[0])
}

func TestBookUpdate_Apply(t *testing.T) {
	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := Book{ID: "b", Title: "Old", Author: "Someone", TotalPages: 100, CurrentPage: 5, Status: StatusToRead}

	got := BookUpdate{
		CurrentPage: Ptr(10),
		Status:      Ptr(StatusReading),
		DateStarted: &started,
	}.Apply(b)

	assert.Equal(t, "Old", got.Title)
	assert.Equal(t, "Someone", got.Author)
	assert.Equal(t, 10, got.CurrentPage)
	assert.Equal(t, StatusReading, got.Status)
	assert.Equal(t, started, *got.DateStarted)
	assert.Nil(t, got.DateFinished)

	started = started.AddDate(1, 0, 0)
	assert.Equal(t, 2024, got.DateStarted.Year(), "update values are copied")
}

func TestBookUpdate_EmptyIsIdentity(t *testing.T) {
	b := Book{ID: "b", Title: "Same", Rating: 3}
	assert.Equal(t, b, BookUpdate{}.Apply(b))
}

func TestNoteUpdate_Apply(t *testing.T) {
	n := Note{ID: "n", BookID: "b", Page: 3, Content: "c", Tags: []string{"x"}}

	got := NoteUpdate{Content: Ptr("new")}.Apply(n)
	assert.Equal(t, "new", got.Content)
	assert.Equal(t, []string{"x"}, got.Tags)
	assert.Equal(t, 3, got.Page)

	tags := []string{"y", "z"}
	got = NoteUpdate{Tags: &tags}.Apply(n)
	tags[0] = "changed"
	assert.Equal(t, []string{"y", "z"}, got.Tags)
}

func TestSettingsUpdate_ApplyDoesNotAlias(t *testing.T) {
	s := DefaultSettings()
	got := SettingsUpdate{BooksPerMonth: Ptr(4)}.Apply(s)

	got.ReminderDays[0] = "Sunday"
	assert.Equal(t, "Monday", s.ReminderDays[0])
	assert.Equal(t, 4, got.DefaultGoals.BooksPerMonth)
	assert.Equal(t, 20, got.DefaultGoals.PagesPerDay)
}
