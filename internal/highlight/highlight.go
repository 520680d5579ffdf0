// Package highlight turns match spans into display strings: bold-tagged
// markup for rich-text renderers and lipgloss-styled text for terminals.
package highlight

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"searchbox/internal/domain"
)

// Bold delimiters wrapped around every matched substring
const (
	OpenTag  = "<b>"
	CloseTag = "</b>"
)

// ErrInvalidSpans is returned for spans that are out of range, unsorted or overlapping
var ErrInvalidSpans = errors.New("invalid spans")

// Escape neutralizes markup-significant characters (& < > ' ")
func Escape(s string) string {
	return html.EscapeString(s)
}

// Markup returns original with each span wrapped in <b></b>.
// Text inside and outside the spans is escaped. Empty spans are ignored.
func Markup(original string, spans []domain.Span) (string, error) {
	if err := validate(original, spans); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(original) + len(spans)*(len(OpenTag)+len(CloseTag)))

	pos := 0
	for _, s := range spans {
		if s.Empty() {
			continue
		}
		b.WriteString(Escape(original[pos:s.Start]))
		b.WriteString(OpenTag)
		b.WriteString(Escape(original[s.Start:s.End]))
		b.WriteString(CloseTag)
		pos = s.End
	}
	b.WriteString(Escape(original[pos:]))

	return b.String(), nil
}

// Result marks up a match result
func Result(r domain.MatchResult) (string, error) {
	return Markup(r.Text, r.Spans)
}

// Entries converts match results into the (text, markup) pairs renderers consume
func Entries(results []domain.MatchResult) ([]domain.Entry, error) {
	entries := make([]domain.Entry, 0, len(results))
	for _, r := range results {
		markup, err := Result(r)
		if err != nil {
			return nil, fmt.Errorf("highlight %q: %w", r.Text, err)
		}
		entries = append(entries, domain.Entry{Text: r.Text, Markup: markup})
	}
	return entries, nil
}

// Strip removes the bold tags and unescapes the rest, recovering the original text
func Strip(markup string) string {
	s := strings.ReplaceAll(markup, OpenTag, "")
	s = strings.ReplaceAll(s, CloseTag, "")
	return html.UnescapeString(s)
}

// Styled renders original for a terminal, drawing spans with hl and the rest with normal
func Styled(original string, spans []domain.Span, hl, normal lipgloss.Style) (string, error) {
	if err := validate(original, spans); err != nil {
		return "", err
	}

	var parts []string
	pos := 0
	for _, s := range spans {
		if s.Empty() {
			continue
		}
		if s.Start > pos {
			parts = append(parts, normal.Render(original[pos:s.Start]))
		}
		parts = append(parts, hl.Render(original[s.Start:s.End]))
		pos = s.End
	}
	if pos < len(original) {
		parts = append(parts, normal.Render(original[pos:]))
	}

	return strings.Join(parts, ""), nil
}

func validate(original string, spans []domain.Span) error {
	pos := 0
	for _, s := range spans {
		if s.Start < pos || s.End < s.Start || s.End > len(original) {
			return fmt.Errorf("%w: [%d,%d) in string of length %d", ErrInvalidSpans, s.Start, s.End, len(original))
		}
		pos = s.End
	}
	return nil
}
