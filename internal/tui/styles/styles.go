package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/pagemark/internal/domain"
)

// Color palette
var (
	Amber      = lipgloss.Color("#E5A00D")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Amber)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Navigation bar styles
var (
	NavActiveStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Amber).
			Bold(true).
			Padding(0, 1)

	NavInactiveStyle = lipgloss.NewStyle().
				Foreground(LightGray).
				Padding(0, 1)
)

// Panel styles
var (
	PageStyle = lipgloss.NewStyle().
			Padding(1, 2)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(Amber).
				Bold(true).
				MarginBottom(1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Amber).
			Padding(1, 2).
			Background(SlateDark)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// Progress bar styles
var (
	ProgressFullStyle = lipgloss.NewStyle().
				Foreground(Amber)

	ProgressDoneStyle = lipgloss.NewStyle().
				Foreground(Green)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(DimGray)
)

// Badge styles
var (
	BadgeStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Amber).
			Padding(0, 1)

	DimBadgeStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Background(SlateLight).
			Padding(0, 1)
)

// Filter styles
var (
	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Amber).
				Bold(true)

	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Amber).
				Bold(true)
)

// statusColors maps each reading status to its badge color
var statusColors = map[domain.BookStatus]lipgloss.Color{
	domain.StatusToRead:   DimGray,
	domain.StatusReading:  Blue,
	domain.StatusFinished: Green,
	domain.StatusPaused:   Amber,
}

// StatusBadge renders a reading status as a colored badge
func StatusBadge(s domain.BookStatus) string {
	bg, ok := statusColors[s]
	if !ok {
		bg = SlateLight
	}
	return lipgloss.NewStyle().
		Foreground(White).
		Background(bg).
		Padding(0, 1).
		Render(s.Label())
}

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// Pad pads a string with spaces to the given display width
func Pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// RenderProgressBar renders a progress bar for a 0-100 percentage
func RenderProgressBar(percent int, width int) string {
	if width < 3 {
		return ""
	}

	filled := width * percent / 100
	filled = max(0, min(filled, width))

	full := ProgressFullStyle
	if percent >= 100 {
		full = ProgressDoneStyle
	}
	return full.Render(strings.Repeat("█", filled)) +
		ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// Highlight renders s with the runes at the given positions emphasized
func Highlight(s string, indexes []int, base lipgloss.Style) string {
	if len(indexes) == 0 {
		return base.Render(s)
	}
	marked := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		marked[i] = true
	}

	var b strings.Builder
	for i, r := range []rune(s) {
		if marked[i] {
			b.WriteString(MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// RenderListRow renders a complete list row with uniform background when selected.
// This function styles each part explicitly to avoid ANSI reset code issues.
// parts is a slice of {text, fgColor} pairs. Use nil for default foreground.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	bg := SlateLight
	defaultFg := LightGray
	selectedFg := White

	var result strings.Builder
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		if part.Foreground != nil {
			style = style.Foreground(*part.Foreground)
		} else if selected {
			style = style.Foreground(selectedFg)
		} else {
			style = style.Foreground(defaultFg)
		}
		if selected {
			style = style.Background(bg)
		}
		if part.Styled {
			result.WriteString(part.Text)
		} else {
			result.WriteString(style.Render(part.Text))
		}
		visibleLen += lipgloss.Width(part.Text)
	}

	// Add padding to fill width (subtract 2 for left/right margin)
	marginStyle := lipgloss.NewStyle()
	if selected {
		marginStyle = marginStyle.Background(bg)
	}
	if paddingNeeded := width - visibleLen - 2; paddingNeeded > 0 {
		result.WriteString(marginStyle.Render(strings.Repeat(" ", paddingNeeded)))
	}

	margin := marginStyle.Render(" ")
	return margin + result.String() + margin
}

// RowPart represents a part of a row with optional foreground color.
// Styled parts are written as-is.
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
	Styled     bool
}
