package views

import (
	"fmt"
	"strings"

	"searchbox/internal/domain"
	"searchbox/internal/highlight"
)

// chromeLines is the number of rows used by everything except the result list
// (padding, title, search line, status and help)
const chromeLines = 9

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width     int
	Height    int
	InputView string
	Regex     bool
	Results   []domain.MatchResult
	Current   int // cursor into Results, -1 when empty
	Total     int // size of the candidate set
	Err       error
	ShowCount bool
	HelpView  string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// NewRendererWithStyles creates a renderer with custom styles
func NewRendererWithStyles(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render renders the whole screen
func (r *Renderer) Render(state ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("searchbox"))
	b.WriteString("\n")
	b.WriteString(r.RenderSearchLine(state))
	b.WriteString("\n\n")
	b.WriteString(r.RenderResults(state))
	b.WriteString("\n")
	b.WriteString(r.RenderStatus(state))
	if state.HelpView != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render(state.HelpView))
	}

	return r.styles.Main.Render(b.String())
}

// RenderSearchLine renders the prompt, the text input and the regex toggle
func (r *Renderer) RenderSearchLine(state ViewState) string {
	toggle := r.styles.RegexOff.Render(".*")
	if state.Regex {
		toggle = r.styles.RegexOn.Render(".*")
	}
	return fmt.Sprintf("%s%s  %s", r.styles.Prompt.Render("Search: "), state.InputView, toggle)
}

// RenderResults renders one line per result, replacing whatever was shown before
func (r *Renderer) RenderResults(state ViewState) string {
	if len(state.Results) == 0 {
		return r.styles.Dim.Render("No matches")
	}

	start, end := r.visibleRange(state)
	lines := make([]string, 0, end-start+2)

	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.RenderResult(state.Results[i], i == state.Current))
	}
	if end < len(state.Results) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Results)-end)))
	}

	return strings.Join(lines, "\n")
}

// RenderResult renders a single result with its matches highlighted
func (r *Renderer) RenderResult(result domain.MatchResult, isCurrent bool) string {
	normal := r.styles.Normal
	hl := r.styles.Highlight
	prefix := "  "
	if isCurrent {
		normal = normal.Inherit(r.styles.SelectionBg)
		hl = hl.Inherit(r.styles.SelectionBg)
		prefix = r.styles.Cursor.Render("> ")
	}

	text, err := highlight.Styled(result.Text, result.Spans, hl, normal)
	if err != nil {
		// Spans come from the matcher, this only happens on a bug; show the plain text
		text = normal.Render(result.Text)
	}
	return prefix + text
}

// RenderStatus renders the match count or the reason the query is invalid
func (r *Renderer) RenderStatus(state ViewState) string {
	if state.Err != nil {
		return r.styles.StatusError.Render(fmt.Sprintf("Invalid regex: %v", state.Err))
	}
	if !state.ShowCount {
		return ""
	}
	return r.styles.Status.Render(fmt.Sprintf("%d/%d matches", len(state.Results), state.Total))
}

// visibleRange returns the slice of results that fits on screen, keeping the cursor visible
func (r *Renderer) visibleRange(state ViewState) (int, int) {
	n := len(state.Results)
	if state.Height <= 0 {
		return 0, n
	}

	// Two rows are reserved for the scroll indicators
	rows := state.Height - chromeLines - 2
	if rows < 1 {
		rows = 1
	}
	if n <= rows {
		return 0, n
	}

	start := 0
	if state.Current >= rows {
		start = state.Current - rows + 1
	}
	end := start + rows
	if end > n {
		end = n
	}
	return start, end
}
