// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/styles"
	"github.com/Whil-/confluence-reader/internal/core/domain"
)

// SortColumn identifies which result column the list is ordered by.
type SortColumn int

const (
	// SortNone keeps results in the order the server returned them.
	SortNone SortColumn = iota
	// SortTitle orders by page title.
	SortTitle
	// SortSpace orders by space title.
	SortSpace
	// SortModified orders by the last-modified column.
	SortModified
)

// ResultList displays search results in a navigable, sortable table.
type ResultList struct {
	results  []domain.SearchResult
	original []domain.SearchResult
	selected int
	sortBy   SortColumn
	reverse  bool
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.results)+3)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results)))
	lines = append(lines, header, "", r.renderHeader())

	// One row per result; keep the selected row in view.
	visibleCount := r.height - 5
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.results) {
		end = len(r.results)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// columnWidths splits the available width between title, space and
// modified columns.
func (r *ResultList) columnWidths() (int, int, int) {
	titleWidth := r.width / 2
	if titleWidth < 20 {
		titleWidth = 20
	}
	spaceWidth := r.width / 5
	if spaceWidth < 10 {
		spaceWidth = 10
	}
	modifiedWidth := r.width - titleWidth - spaceWidth - 8
	if modifiedWidth < 10 {
		modifiedWidth = 10
	}
	return titleWidth, spaceWidth, modifiedWidth
}

// renderHeader renders the column header row.
func (r *ResultList) renderHeader() string {
	titleWidth, spaceWidth, _ := r.columnWidths()

	mark := func(col SortColumn, label string) string {
		if r.sortBy != col {
			return label
		}
		if r.reverse {
			return label + " ▼"
		}
		return label + " ▲"
	}

	return r.styles.Muted.Render(fmt.Sprintf("  %-*s  %-*s  %s",
		titleWidth, mark(SortTitle, "Title"),
		spaceWidth, mark(SortSpace, "Space"),
		mark(SortModified, "Modified"),
	))
}

// renderResult formats a single search result row.
func (r *ResultList) renderResult(index int, result *domain.SearchResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	titleWidth, spaceWidth, modifiedWidth := r.columnWidths()

	title := result.Title
	if title == "" {
		title = "(Untitled)"
	}

	row := fmt.Sprintf("%s%-*s  %-*s  %s",
		indicator,
		titleWidth, truncate(title, titleWidth),
		spaceWidth, truncate(result.SpaceTitle, spaceWidth),
		truncate(result.LastModified, modifiedWidth),
	)

	if index == r.selected {
		return r.styles.Selected.Render(row)
	}
	return r.styles.Normal.Render(row)
}

// truncate shortens s to at most max characters.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// SetResults updates the result list and resets selection and sorting.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.original = results
	r.results = results
	r.selected = 0
	r.sortBy = SortNone
	r.reverse = false
}

// SortBy orders results by the given column. Sorting by the current
// column again reverses the order.
func (r *ResultList) SortBy(col SortColumn) {
	if col == SortNone {
		r.results = r.original
		r.sortBy = SortNone
		r.reverse = false
		return
	}

	if r.sortBy == col {
		r.reverse = !r.reverse
	} else {
		r.sortBy = col
		r.reverse = false
	}

	sorted := make([]domain.SearchResult, len(r.original))
	copy(sorted, r.original)

	keyOf := func(res *domain.SearchResult) string {
		switch col {
		case SortSpace:
			return res.SpaceTitle
		case SortModified:
			return res.LastModified
		default:
			return res.Title
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		less := strings.ToLower(keyOf(&sorted[i])) < strings.ToLower(keyOf(&sorted[j]))
		if r.reverse {
			return !less
		}
		return less
	})

	r.results = sorted
	r.selected = 0
}

// Results returns the results in display order.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
