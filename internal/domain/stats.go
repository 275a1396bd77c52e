package domain

// Stats summarizes the library.
// PagesRead is the sum of every book's CurrentPage regardless of status.
type Stats struct {
	TotalBooks       int
	BooksRead        int // status finished
	CurrentlyReading int // status reading
	TotalPages       int
	PagesRead        int
}

// GenreCount is one row of the genre breakdown
type GenreCount struct {
	Genre string
	Count int
}

// Insights holds the secondary aggregates shown on the stats page
type Insights struct {
	AverageRating  float64 // Mean of ratings > 0, one decimal
	FavoriteGenre  string  // Most frequent genre, empty when none
	EstimatedHours float64 // PagesRead at 25 pages/hour, one decimal
	BooksGoalPct   int     // BooksRead vs DefaultGoals.BooksPerMonth
	PagesGoalPct   int     // PagesRead vs DefaultGoals.PagesPerDay over 30 days
	Genres         []GenreCount
}

// BookSort selects the ordering of a book listing
type BookSort string

const (
	SortDateAdded BookSort = "dateAdded"
	SortTitle     BookSort = "title"
	SortAuthor    BookSort = "author"
	SortProgress  BookSort = "progress"
)

// BookSorts lists every sort order in display order
var BookSorts = []BookSort{SortDateAdded, SortTitle, SortAuthor, SortProgress}

// BookQuery filters and orders a book listing
type BookQuery struct {
	Status BookStatus // Empty matches every status
	Search string     // Case-insensitive substring of title or author
	Sort   BookSort   // Empty means SortDateAdded
}
