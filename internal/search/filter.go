// Package search provides fuzzy matching over books for the terminal UI
package search

import (
	"strings"

	"github.com/mmcdole/pagemark/internal/domain"
	"github.com/sahilm/fuzzy"
)

// BookMatch is a filter hit with match metadata for highlighting
type BookMatch struct {
	Book           domain.Book
	MatchedIndexes []int // Rune positions in Haystack that matched
	Score          int   // Higher is better
}

// Haystack returns the text a book is matched against: "title author"
func Haystack(b domain.Book) string {
	if b.Author == "" {
		return b.Title
	}
	return b.Title + " " + b.Author
}

// BookIndex implements sahilm/fuzzy.Source over pre-lowered haystacks
type BookIndex struct {
	books  []domain.Book
	lowers []string
}

// NewBookIndex builds an index over books, keeping their order
func NewBookIndex(books []domain.Book) *BookIndex {
	idx := &BookIndex{
		books:  books,
		lowers: make([]string, len(books)),
	}
	for i, b := range books {
		idx.lowers[i] = strings.ToLower(Haystack(b))
	}
	return idx
}

// String returns the lowercase haystack at index i (implements fuzzy.Source)
func (idx *BookIndex) String(i int) string { return idx.lowers[i] }

// Len returns the number of books (implements fuzzy.Source)
func (idx *BookIndex) Len() int { return len(idx.books) }

// Filter returns books matching query, best match first.
// A blank query matches every book in index order without highlights.
func (idx *BookIndex) Filter(query string) []BookMatch {
	query = strings.TrimSpace(query)
	if query == "" {
		all := make([]BookMatch, len(idx.books))
		for i, b := range idx.books {
			all[i] = BookMatch{Book: b}
		}
		return all
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), idx)
	results := make([]BookMatch, len(matches))
	for i, m := range matches {
		results[i] = BookMatch{
			Book:           idx.books[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}

// FilterBooks is a one-shot Filter over books
func FilterBooks(query string, books []domain.Book) []BookMatch {
	return NewBookIndex(books).Filter(query)
}
