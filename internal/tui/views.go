package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/pagemark/internal/domain"
	"github.com/mmcdole/pagemark/internal/search"
	"github.com/mmcdole/pagemark/internal/tui/styles"
)

// View renders the current page
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	var content string
	switch m.Page {
	case PageHome:
		content = m.renderHome()
	case PageLibrary:
		content = m.renderLibrary()
	case PageNotes:
		content = m.renderNotes()
	case PageStats:
		content = m.renderStats()
	}

	body := lipgloss.NewStyle().
		Height(max(m.Height-ChromeHeight, 0)).
		MaxHeight(max(m.Height-ChromeHeight, 0)).
		Render(styles.PageStyle.Render(content))

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderNav(),
		body,
		m.renderFooter(),
	)

	// Overlay form modal if visible
	if m.Form.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Form.View())
	}

	if m.State == StateConfirmDelete {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.renderDeleteConfirmation())
	}

	return view
}

// renderNav renders the page tabs
func (m Model) renderNav() string {
	tabs := make([]string, len(pageNames))
	for i, name := range pageNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Page(i) == m.Page {
			tabs[i] = styles.NavActiveStyle.Render(label)
		} else {
			tabs[i] = styles.NavInactiveStyle.Render(label)
		}
	}
	brand := styles.AccentStyle.Bold(true).Render("pagemark ")
	return brand + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// === Home ===

func (m Model) renderHome() string {
	stats := m.Lib.Stats()
	width := m.contentWidth()

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard("Books", stats.TotalBooks),
		renderCard("Read", stats.BooksRead),
		renderCard("Reading", stats.CurrentlyReading),
		renderCard("Pages read", stats.PagesRead),
	)

	sections := []string{cards, ""}

	sections = append(sections, styles.SectionTitleStyle.Render("Currently reading"))
	reading := m.Lib.CurrentlyReading()
	if len(reading) == 0 {
		sections = append(sections, styles.DimStyle.Render("Nothing in progress. Press a to add a book."))
	}
	for _, b := range reading {
		sections = append(sections, renderReadingRow(b, width))
	}

	sections = append(sections, "", styles.SectionTitleStyle.Render("Recent notes"))
	notes := m.Lib.RecentNotes(m.recentNotes)
	if len(notes) == 0 {
		sections = append(sections, styles.DimStyle.Render("No notes yet."))
	}
	for _, n := range notes {
		sections = append(sections, m.renderNoteLine(n, false, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderCard(label string, value int) string {
	return styles.CardStyle.Width(14).Render(
		styles.TitleStyle.Render(fmt.Sprintf("%d", value)) + "\n" +
			styles.DimStyle.Render(label))
}

func renderReadingRow(b domain.Book, width int) string {
	title := styles.Truncate(b.Title+" · "+b.Author, max(width-ProgressWidth-16, 10))
	pages := fmt.Sprintf("%d/%d", b.CurrentPage, b.TotalPages)
	return styles.Pad(title, max(width-ProgressWidth-16, 10)) + " " +
		styles.RenderProgressBar(b.Progress(), ProgressWidth) + " " +
		styles.DimStyle.Render(fmt.Sprintf("%3d%% %s", b.Progress(), pages))
}

// === Library ===

func (m Model) renderLibrary() string {
	rows := m.visibleBooks()
	width := m.contentWidth()

	filterLabel := "all"
	if m.statusFilter != "" {
		filterLabel = m.statusFilter.Label()
	}
	header := styles.TitleStyle.Render(fmt.Sprintf("Library · %d book%s", len(rows), plural(len(rows)))) +
		styles.DimStyle.Render(fmt.Sprintf("   status: %s  sort: %s", filterLabel, m.sortOrder))

	lines := []string{header, m.renderFilterLine(m.bookQuery, PageLibrary), ""}

	if len(rows) == 0 {
		lines = append(lines, styles.DimStyle.Render("No books match. Press a to add one."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	start, end := visibleRange(m.bookCursor, len(rows), m.listHeight())
	for i := start; i < end; i++ {
		lines = append(lines, renderBookRow(rows[i], i == m.bookCursor, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBookRow(match search.BookMatch, selected bool, width int) string {
	b := match.Book
	textWidth := max(width-ProgressWidth-24, 10)

	haystack := styles.Truncate(search.Haystack(b), textWidth)
	fg := styles.LightGray
	if selected {
		fg = styles.White
	}
	base := lipgloss.NewStyle().Foreground(fg)
	if selected {
		base = base.Background(styles.SlateLight)
	}

	parts := []styles.RowPart{
		{Text: styles.Pad(styles.StatusBadge(b.Status), 11), Styled: true},
		{Text: " "},
		{Text: styles.Highlight(haystack, match.MatchedIndexes, base), Styled: true},
		{Text: strings.Repeat(" ", max(textWidth-lipgloss.Width(haystack), 0)+1)},
	}
	if b.Status != domain.StatusToRead {
		parts = append(parts,
			styles.RowPart{Text: styles.RenderProgressBar(b.Progress(), ProgressWidth), Styled: true},
			styles.RowPart{Text: fmt.Sprintf(" %3d%%", b.Progress())},
		)
	}
	return styles.RenderListRow(parts, selected, width)
}

// === Notes ===

func (m Model) renderNotes() string {
	notes := m.visibleNotes()
	width := m.contentWidth()

	bookLabel := "all books"
	if m.noteBookID != "" {
		bookLabel = m.bookTitle(m.noteBookID)
	}
	header := styles.TitleStyle.Render(fmt.Sprintf("Notes · %d note%s", len(notes), plural(len(notes)))) +
		styles.DimStyle.Render("   book: "+bookLabel)

	lines := []string{header, m.renderFilterLine(m.noteQuery, PageNotes), ""}

	if len(notes) == 0 {
		lines = append(lines, styles.DimStyle.Render("No notes match. Press a to add one."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	start, end := visibleRange(m.noteCursor, len(notes), m.listHeight())
	for i := start; i < end; i++ {
		lines = append(lines, m.renderNoteLine(notes[i], i == m.noteCursor, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderNoteLine(n domain.Note, selected bool, width int) string {
	ref := fmt.Sprintf("%s p.%d", m.bookTitle(n.BookID), n.Page)
	content := strings.ReplaceAll(n.Content, "\n", " ")
	if len(n.Tags) > 0 {
		content += "  #" + strings.Join(n.Tags, " #")
	}
	refWidth := min(28, width/3)

	accent := styles.Amber
	parts := []styles.RowPart{
		{Text: styles.Pad(styles.Truncate(ref, refWidth), refWidth), Foreground: &accent},
		{Text: " " + styles.Truncate(content, max(width-refWidth-4, 10))},
	}
	return styles.RenderListRow(parts, selected, width)
}

// === Stats ===

func (m Model) renderStats() string {
	stats := m.Lib.Stats()
	ins := m.Lib.Insights()
	settings := m.Lib.State().Settings

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard("Books", stats.TotalBooks),
		renderCard("Read", stats.BooksRead),
		renderCard("Pages", stats.TotalPages),
		renderCard("Pages read", stats.PagesRead),
	)

	rating := "no ratings"
	if ins.AverageRating > 0 {
		rating = fmt.Sprintf("%.1f / 5", ins.AverageRating)
	}
	favorite := ins.FavoriteGenre
	if favorite == "" {
		favorite = "none yet"
	}

	lines := []string{
		cards,
		"",
		styles.SectionTitleStyle.Render("Insights"),
		fmt.Sprintf("Average rating   %s", rating),
		fmt.Sprintf("Favorite genre   %s", favorite),
		fmt.Sprintf("Reading time     ~%.1f hours", ins.EstimatedHours),
		"",
		styles.SectionTitleStyle.Render("Goals"),
		fmt.Sprintf("Books  %s %3d%% of %d per month",
			styles.RenderProgressBar(ins.BooksGoalPct, ProgressWidth), ins.BooksGoalPct, settings.DefaultGoals.BooksPerMonth),
		fmt.Sprintf("Pages  %s %3d%% of %d per day",
			styles.RenderProgressBar(ins.PagesGoalPct, ProgressWidth), ins.PagesGoalPct, settings.DefaultGoals.PagesPerDay),
	}

	if len(ins.Genres) > 0 {
		lines = append(lines, "", styles.SectionTitleStyle.Render("Genres"))
		for _, g := range ins.Genres {
			pct := g.Count * 100 / max(stats.TotalBooks, 1)
			lines = append(lines, fmt.Sprintf("%s %s %d",
				styles.Pad(styles.Truncate(g.Genre, 18), 18),
				styles.RenderProgressBar(pct, ProgressWidth), g.Count))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// === Chrome ===

// renderFilterLine shows the live filter input or the applied filter
func (m Model) renderFilterLine(applied string, page Page) string {
	if m.State == StateFiltering && m.Page == page {
		return m.FilterInput.View()
	}
	if applied != "" {
		return styles.FilterPromptStyle.Render("/") + applied + styles.DimStyle.Render("  (esc clears)")
	}
	return ""
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	}

	var hints []string
	switch m.Page {
	case PageLibrary:
		hints = []string{"a add", "e edit", "s status", "+/- page", "d delete", "f filter", "o sort"}
	case PageNotes:
		hints = []string{"a add", "e edit", "d delete", "/ search", "b book"}
	case PageHome:
		hints = []string{"a add book"}
	}
	center := styles.DimStyle.Render(strings.Join(hints, " · "))

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		// Not enough space - just left + right
		gap := max(m.Width-leftWidth-rightWidth, 0)
		return left + strings.Repeat(" ", gap) + right
	}

	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad
	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
PAGES                           LIBRARY
  1-4        Home/Library/...      a      Add book
  tab        Next page             e      Edit book
  j/k        Up/down               s      Next status
  g/G        First/last            +/-    Page progress
                                   d      Delete book
NOTES                              f      Status filter
  /          Search                o      Sort order
  b          Filter by book        /      Fuzzy filter
  a/e/d      Add/edit/delete
                                OTHER
                                   esc    Clear / cancel
                                   q      Quit

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

// renderDeleteConfirmation renders the delete confirmation modal
func (m Model) renderDeleteConfirmation() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.ModalTitleStyle.Render("Delete?"),
		"Delete "+m.pending.label+"?",
		"",
		styles.AccentStyle.Render("[Y] Yes      [N] No"),
	)
	return styles.ModalStyle.Render(body)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
