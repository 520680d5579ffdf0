package domain

// Span is a half-open byte range [Start, End) inside a candidate string
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers no bytes (a zero-width match)
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Query is the text typed into the search box plus the regex toggle
type Query struct {
	Text  string
	Regex bool
}

// MatchResult is a candidate that matched a query
type MatchResult struct {
	Index   int    // position in the candidate set
	Text    string // the candidate itself
	Pattern string // pattern source that was compiled (escaped in literal mode)
	Spans   []Span // every non-empty match, left to right, non-overlapping
}

// Matched returns the matched substrings in span order
func (r MatchResult) Matched() []string {
	out := make([]string, 0, len(r.Spans))
	for _, s := range r.Spans {
		out = append(out, r.Text[s.Start:s.End])
	}
	return out
}

// Entry is what a renderer receives for one result line
type Entry struct {
	Text   string // plain display string
	Markup string // same string with matches wrapped in <b></b>
}

// DefaultCandidates is the candidate set used when nothing else is configured
func DefaultCandidates() []string {
	return []string{"a", "ab", "abc", "abcd", "aa", "abab", "abcabc", "abcdabcd"}
}
