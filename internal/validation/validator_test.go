package validation_test

import (
	"errors"
	"testing"

	"github.com/mmcdole/pagemark/internal/domain"
	"github.com/mmcdole/pagemark/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBook() validation.BookInput {
	return validation.BookInput{
		Title:       "  The Left Hand of Darkness ",
		Author:      "Ursula K. Le Guin",
		TotalPages:  "304",
		CurrentPage: "12",
		Status:      "reading",
		Genre:       "Science Fiction",
		CoverURL:    "https://example.com/lhod.jpg",
		Rating:      "5",
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *validation.Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %v", err)
	return verr.Fields
}

func TestBook_Valid(t *testing.T) {
	v := validation.New()

	book, err := v.Book(validBook())
	require.NoError(t, err)
	assert.Equal(t, domain.Book{
		Title:       "The Left Hand of Darkness",
		Author:      "Ursula K. Le Guin",
		TotalPages:  304,
		CurrentPage: 12,
		Status:      domain.StatusReading,
		Genre:       "Science Fiction",
		CoverURL:    "https://example.com/lhod.jpg",
		Rating:      5,
	}, book)
}

func TestBook_Defaults(t *testing.T) {
	v := validation.New()

	book, err := v.Book(validation.BookInput{Title: "T", Author: "A", TotalPages: "10"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusToRead, book.Status)
	assert.Zero(t, book.CurrentPage)
	assert.Zero(t, book.Rating)
}

func TestBook_Errors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name    string
		mutate  func(*validation.BookInput)
		field   string
		message string
	}{
		{"blank title", func(in *validation.BookInput) { in.Title = "   " }, "title", "is required"},
		{"missing author", func(in *validation.BookInput) { in.Author = "" }, "author", "is required"},
		{"zero pages", func(in *validation.BookInput) { in.TotalPages = "0" }, "totalPages", "must be at least 1"},
		{"pages not a number", func(in *validation.BookInput) { in.TotalPages = "many" }, "totalPages", "must be a whole number"},
		{"progress past end", func(in *validation.BookInput) { in.CurrentPage = "305" }, "currentPage", "must not exceed total pages"},
		{"negative progress", func(in *validation.BookInput) { in.CurrentPage = "-1" }, "currentPage", "must be at least 0"},
		{"bad url", func(in *validation.BookInput) { in.CoverURL = "not a url" }, "coverUrl", "must be a valid URL"},
		{"rating too high", func(in *validation.BookInput) { in.Rating = "6" }, "rating", "must be at most 5"},
		{"unknown status", func(in *validation.BookInput) { in.Status = "abandoned" }, "status", "must be one of: to-read reading finished paused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validBook()
			tt.mutate(&in)

			_, err := v.Book(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)

			fields := fieldErrors(t, err)
			assert.Equal(t, tt.message, fields[tt.field])
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestBook_ReportsEveryField(t *testing.T) {
	v := validation.New()

	_, err := v.Book(validation.BookInput{TotalPages: "x"})
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "author")
	assert.Equal(t, "must be a whole number", fields["totalPages"])
}

func TestNote_Valid(t *testing.T) {
	v := validation.New()

	note, err := v.Note(validation.NoteInput{
		BookID:  "book-1",
		Page:    "42",
		Content: " Everything is connected ",
		Tags:    "theme, , ideas ,",
	}, 100)
	require.NoError(t, err)
	assert.Equal(t, domain.Note{
		BookID:  "book-1",
		Page:    42,
		Content: "Everything is connected",
		Tags:    []string{"theme", "ideas"},
	}, note)
}

func TestNote_Errors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name    string
		in      validation.NoteInput
		maxPage int
		field   string
		message string
	}{
		{"no book", validation.NoteInput{Page: "1", Content: "c"}, 10, "bookId", "is required"},
		{"page zero", validation.NoteInput{BookID: "b", Page: "0", Content: "c"}, 10, "page", "must be at least 1"},
		{"page past end", validation.NoteInput{BookID: "b", Page: "11", Content: "c"}, 10, "page", "must not exceed 10"},
		{"page not a number", validation.NoteInput{BookID: "b", Page: "ten", Content: "c"}, 10, "page", "must be a whole number"},
		{"blank content", validation.NoteInput{BookID: "b", Page: "1", Content: "  "}, 10, "content", "is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Note(tt.in, tt.maxPage)
			require.Error(t, err)
			assert.Equal(t, tt.message, fieldErrors(t, err)[tt.field])
		})
	}
}

func TestNote_NoUpperBoundWithoutMaxPage(t *testing.T) {
	v := validation.New()

	_, err := v.Note(validation.NoteInput{BookID: "b", Page: "9999", Content: "c"}, 0)
	assert.NoError(t, err)
}

func TestParseTags(t *testing.T) {
	assert.Nil(t, validation.ParseTags(""))
	assert.Nil(t, validation.ParseTags(" , ,"))
	assert.Equal(t, []string{"a", "b c", "a"}, validation.ParseTags("a, b c ,a"))
}

func TestError_MessageIsSorted(t *testing.T) {
	err := &validation.Error{Fields: map[string]string{"title": "is required", "author": "is required"}}
	assert.Equal(t, "validation failed: author is required; title is required", err.Error())
}
