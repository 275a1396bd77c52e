package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mmcdole/pagemark/internal/domain"
)

// summarySource is the read side of the tracker used by summary mode
type summarySource interface {
	Stats() domain.Stats
	Insights() domain.Insights
	CurrentlyReading() []domain.Book
}

// writeSummary prints library totals and in-progress books as plain text
func writeSummary(w io.Writer, lib summarySource) error {
	stats := lib.Stats()
	ins := lib.Insights()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Books\t%d\n", stats.TotalBooks)
	fmt.Fprintf(tw, "Read\t%d\n", stats.BooksRead)
	fmt.Fprintf(tw, "Reading\t%d\n", stats.CurrentlyReading)
	fmt.Fprintf(tw, "Pages read\t%d of %d\n", stats.PagesRead, stats.TotalPages)
	if ins.FavoriteGenre != "" {
		fmt.Fprintf(tw, "Favorite genre\t%s\n", ins.FavoriteGenre)
	}

	reading := lib.CurrentlyReading()
	if len(reading) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Currently reading")
		for _, b := range reading {
			fmt.Fprintf(tw, "  %s\t%s\t%d/%d\t%d%%\n", b.Title, b.Author, b.CurrentPage, b.TotalPages, b.Progress())
		}
	}
	return tw.Flush()
}
