package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/pagemark/internal/domain"
)

// SuggestBooks resolves a typed book name to candidate books, closest first.
// A query equal to a book id returns that book alone. Matching ignores case
// and diacritics; equal distances keep the order of books. limit <= 0 means
// no limit.
func SuggestBooks(query string, books []domain.Book, limit int) []domain.Book {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	for _, b := range books {
		if b.ID == query {
			return []domain.Book{b}
		}
	}

	titles := make([]string, len(books))
	for i, b := range books {
		titles[i] = b.Title
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}

	results := make([]domain.Book, len(ranks))
	for i, r := range ranks {
		results[i] = books[r.OriginalIndex]
	}
	return results
}
