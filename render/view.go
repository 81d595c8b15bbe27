package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/hsbacot/bookfinder/search"
)

// View is one of the mutually exclusive screens of the result area
type View int

const (
	ViewIdle View = iota
	ViewLoading
	ViewError
	ViewEmpty
	ViewGrid
)

func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewError:
		return "error"
	case ViewEmpty:
		return "empty"
	case ViewGrid:
		return "grid"
	default:
		return "idle"
	}
}

// ViewFor selects the view for a state
func ViewFor(s search.State) View {
	switch st := s.(type) {
	case search.Loading:
		return ViewLoading
	case search.Failed:
		return ViewError
	case search.Loaded:
		if st.Empty() {
			return ViewEmpty
		}
		return ViewGrid
	default:
		return ViewIdle
	}
}

const (
	cardWidth  = 40
	maxColumns = 3
)

var (
	accent = lipgloss.Color("205")
	muted  = lipgloss.Color("240")

	headerStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	spinnerStyle  = lipgloss.NewStyle().Foreground(accent)
	mutedStyle    = lipgloss.NewStyle().Foreground(muted)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("196")).
			PaddingLeft(2)
	emptyTitleStyle = lipgloss.NewStyle().Bold(true)
	badgeStyle      = lipgloss.NewStyle().
			Foreground(accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)
	keyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1).
			Width(cardWidth)
	selectedCardStyle = cardStyle.BorderForeground(accent)
	titleStyle        = lipgloss.NewStyle().Bold(true)
	tagStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	linkStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true)
	storeLinkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Underline(true)
)

// Header renders the app title bar
func Header() string {
	return headerStyle.Render("📖 BookFinder")
}

// Badge renders the result count, or "" when no results are shown
func Badge(s search.State) string {
	loaded, ok := s.(search.Loaded)
	if !ok || loaded.Empty() {
		return ""
	}

	n := len(loaded.Results)
	label := fmt.Sprintf("%d results", n)
	if n == 1 {
		label = "1 result"
	}
	if loaded.NumFound > n {
		label += fmt.Sprintf(" of %s", humanize.Comma(int64(loaded.NumFound)))
	}
	return badgeStyle.Render("🔍 " + label)
}

// Body renders the result area for the state. spinner is the current spinner
// frame, width the available terminal width and selected the highlighted card
// (-1 for none).
func Body(s search.State, cards []Card, spinner string, width, selected int) string {
	switch ViewFor(s) {
	case ViewLoading:
		return Loading(spinner)
	case ViewError:
		return Error(s.(search.Failed).Message)
	case ViewEmpty:
		return Empty()
	case ViewGrid:
		return Grid(cards, width, selected)
	default:
		return Idle()
	}
}

// Idle is shown before the first search
func Idle() string {
	return mutedStyle.Render("Type a title, author or subject and press enter.")
}

// Loading is shown while a search is in flight
func Loading(spinner string) string {
	return fmt.Sprintf("%s Searching for books...\n%s",
		spinnerStyle.Render(spinner),
		mutedStyle.Render("This may take a moment"))
}

// Error is shown when a search failed
func Error(message string) string {
	body := strings.Join([]string{
		errorStyle.Bold(true).Render("Error loading books"),
		errorStyle.Render(message),
		"",
		action("r", "Try Again"),
	}, "\n")
	return errorBoxStyle.Render(body)
}

// Empty is shown when a search returned no records
func Empty() string {
	return strings.Join([]string{
		emptyTitleStyle.Render("😐 No books found"),
		mutedStyle.Render("We couldn't find any books matching your search. Try different keywords or check your spelling."),
		"",
		action("r", "Start New Search") + "   " + action("b", "Show Bestsellers"),
	}, "\n")
}

// Grid lays the cards out in as many columns as fit in width
func Grid(cards []Card, width, selected int) string {
	cols := Columns(width)

	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))

		row := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, CardView(cards[i], i == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Columns is the number of grid columns that fit in width
func Columns(width int) int {
	cols := width / (cardWidth + 4)
	return max(1, min(cols, maxColumns))
}

// CardView renders one card
func CardView(c Card, selected bool) string {
	inner := cardWidth - 2

	lines := []string{
		titleStyle.Render(wrapText(c.Title, inner, 2)),
		mutedStyle.Render(wrapText(c.Byline(), inner, 1)),
		"",
		wrapText(c.Description, inner, 3),
		"",
		mutedStyle.Render(c.Meta()),
	}

	if len(c.Tags) > 0 {
		tags := make([]string, len(c.Tags))
		for i, tag := range c.Tags {
			tags[i] = tagStyle.Render("#" + tag)
		}
		lines = append(lines, strings.Join(tags, " "))
	}

	lines = append(lines, "", linkStyle.Render("View on Open Library"))
	if c.StoreURL != "" {
		lines = append(lines, storeLinkStyle.Render("Find on Amazon"))
	}
	lines = append(lines, mutedStyle.Render(wrapText("cover: "+c.Cover.Src(), inner, 1)))

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Detail renders a card with its full URLs, for printing a single record
func Detail(c Card) string {
	lines := []string{
		titleStyle.Render(c.Title),
		c.Byline(),
		c.Meta(),
	}
	if len(c.Tags) > 0 {
		lines = append(lines, "Tags: "+strings.Join(c.Tags, ", "))
	}
	lines = append(lines,
		"",
		c.Description,
		"",
		"Open Library: "+c.DetailURL,
	)
	if c.StoreURL != "" {
		lines = append(lines, "Amazon:       "+c.StoreURL)
	}
	lines = append(lines, "Cover:        "+c.Cover.Src())
	return strings.Join(lines, "\n")
}

func action(key, label string) string {
	return fmt.Sprintf("[%s] %s", keyStyle.Render(key), label)
}
