package domain

import (
	"slices"
	"time"
)

// BookUpdate is a partial book update.
// Non-nil fields overwrite the stored value; nil fields are left untouched.
type BookUpdate struct {
	Title        *string
	Author       *string
	TotalPages   *int
	CurrentPage  *int
	Status       *BookStatus
	DateStarted  *time.Time
	DateFinished *time.Time
	CoverURL     *string
	Genre        *string
	Description  *string
	Rating       *int
}

// Apply returns b with the update merged in
func (u BookUpdate) Apply(b Book) Book {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.TotalPages != nil {
		b.TotalPages = *u.TotalPages
	}
	if u.CurrentPage != nil {
		b.CurrentPage = *u.CurrentPage
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.DateStarted != nil {
		t := *u.DateStarted
		b.DateStarted = &t
	}
	if u.DateFinished != nil {
		t := *u.DateFinished
		b.DateFinished = &t
	}
	if u.CoverURL != nil {
		b.CoverURL = *u.CoverURL
	}
	if u.Genre != nil {
		b.Genre = *u.Genre
	}
	if u.Description != nil {
		b.Description = *u.Description
	}
	if u.Rating != nil {
		b.Rating = *u.Rating
	}
	return b
}

// NoteUpdate is a partial note update.
// DateModified is not part of it: the tracker stamps it on every update.
type NoteUpdate struct {
	BookID  *string
	Page    *int
	Content *string
	Tags    *[]string
}

// Apply returns n with the update merged in
func (u NoteUpdate) Apply(n Note) Note {
	if u.BookID != nil {
		n.BookID = *u.BookID
	}
	if u.Page != nil {
		n.Page = *u.Page
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
	if u.Tags != nil {
		n.Tags = slices.Clone(*u.Tags)
	}
	return n
}

// SettingsUpdate is a partial settings update
type SettingsUpdate struct {
	ReminderEnabled *bool
	ReminderDays    *[]string
	ReminderTime    *string
	BooksPerMonth   *int
	PagesPerDay     *int
}

// Apply returns s with the update merged in
func (u SettingsUpdate) Apply(s Settings) Settings {
	s.ReminderDays = slices.Clone(s.ReminderDays)
	if u.ReminderEnabled != nil {
		s.ReminderEnabled = *u.ReminderEnabled
	}
	if u.ReminderDays != nil {
		s.ReminderDays = slices.Clone(*u.ReminderDays)
	}
	if u.ReminderTime != nil {
		s.ReminderTime = *u.ReminderTime
	}
	if u.BooksPerMonth != nil {
		s.DefaultGoals.BooksPerMonth = *u.BooksPerMonth
	}
	if u.PagesPerDay != nil {
		s.DefaultGoals.PagesPerDay = *u.PagesPerDay
	}
	return s
}

// Ptr returns a pointer to v, for building partial updates inline
func Ptr[T any](v T) *T {
	return &v
}
