package tracker

import (
	"math"
	"slices"

	"github.com/mmcdole/pagemark/internal/domain"
)

const (
	pagesPerHour = 25
	daysPerMonth = 30
)

// Insights computes the secondary aggregates for the stats page
func (t *Tracker) Insights() domain.Insights {
	t.mu.RLock()
	books := t.state.Books
	goals := t.state.Settings.DefaultGoals
	t.mu.RUnlock()

	stats := computeStats(books)
	genres := genreBreakdown(books)

	ins := domain.Insights{
		AverageRating:  averageRating(books),
		EstimatedHours: roundTenth(float64(stats.PagesRead) / pagesPerHour),
		BooksGoalPct:   percent(stats.BooksRead, goals.BooksPerMonth),
		PagesGoalPct:   percent(stats.PagesRead, goals.PagesPerDay*daysPerMonth),
		Genres:         genres,
	}
	if len(genres) > 0 {
		ins.FavoriteGenre = genres[0].Genre
	}
	return ins
}

func averageRating(books []domain.Book) float64 {
	sum, n := 0, 0
	for _, b := range books {
		if b.Rating > 0 {
			sum += b.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return roundTenth(float64(sum) / float64(n))
}

// genreBreakdown counts books per genre, most common first.
// Equal counts keep the order genres were first seen in.
func genreBreakdown(books []domain.Book) []domain.GenreCount {
	var counts []domain.GenreCount
	index := make(map[string]int)
	for _, b := range books {
		if b.Genre == "" {
			continue
		}
		if i, ok := index[b.Genre]; ok {
			counts[i].Count++
			continue
		}
		index[b.Genre] = len(counts)
		counts = append(counts, domain.GenreCount{Genre: b.Genre, Count: 1})
	}
	slices.SortStableFunc(counts, func(a, b domain.GenreCount) int {
		return b.Count - a.Count
	})
	return counts
}

func percent(value, target int) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(float64(value) / float64(target) * 100))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
