package matcher

import (
	"errors"
	"fmt"
	"log"
	"unicode/utf8"

	"searchbox/internal/domain"
)

// ErrInvalidQuery is returned when a regex query does not compile
var ErrInvalidQuery = errors.New("invalid query")

// EmptyQueryPolicy decides what an empty needle matches
type EmptyQueryPolicy string

const (
	// EmptyMatchesAll returns every candidate with no highlighted spans
	EmptyMatchesAll EmptyQueryPolicy = "all"
	// EmptyMatchesNone returns no candidates
	EmptyMatchesNone EmptyQueryPolicy = "none"
)

// Options configures a Matcher
type Options struct {
	Engine     string           // "re2" (default) or "pcre"
	IgnoreCase bool             // case-insensitive matching
	EmptyQuery EmptyQueryPolicy // defaults to EmptyMatchesAll
}

// DefaultOptions returns the default matching options
func DefaultOptions() Options {
	return Options{
		Engine:     EngineRE2,
		IgnoreCase: false,
		EmptyQuery: EmptyMatchesAll,
	}
}

// Matcher filters a candidate set by a query.
// It holds no per-search state and is safe for concurrent use.
type Matcher struct {
	engine     Engine
	ignoreCase bool
	emptyQuery EmptyQueryPolicy
}

// New creates a matcher from options
func New(opts Options) (*Matcher, error) {
	engine, err := NewEngine(opts.Engine)
	if err != nil {
		return nil, err
	}

	policy := opts.EmptyQuery
	switch policy {
	case "":
		policy = EmptyMatchesAll
	case EmptyMatchesAll, EmptyMatchesNone:
	default:
		return nil, fmt.Errorf("unknown empty query policy %q", policy)
	}

	return &Matcher{
		engine:     engine,
		ignoreCase: opts.IgnoreCase,
		emptyQuery: policy,
	}, nil
}

// FindMatches filters candidates with the default options
func FindMatches(candidates []string, needle string, regexEnabled bool) ([]domain.MatchResult, error) {
	m, _ := New(DefaultOptions())
	return m.Find(candidates, domain.Query{Text: needle, Regex: regexEnabled})
}

// Engine returns the name of the regex engine in use
func (m *Matcher) Engine() string {
	return m.engine.Name()
}

// Compile turns a query into a pattern. Literal queries never fail.
func (m *Matcher) Compile(q domain.Query) (Pattern, error) {
	if !q.Regex {
		return m.compileLiteral(q.Text)
	}

	p, err := m.engine.Compile(q.Text, m.ignoreCase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	return p, nil
}

// compileLiteral scans for the needle directly. Case folding goes through
// the engine, which needs valid UTF-8 on both sides.
func (m *Matcher) compileLiteral(needle string) (Pattern, error) {
	source := m.engine.Escape(needle)
	lp := literalPattern{needle: needle, source: source}
	if !m.ignoreCase || !utf8.ValidString(needle) {
		return lp, nil
	}

	p, err := m.engine.Compile(source, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	lp.fold = p
	return lp, nil
}

// Find returns the candidates matching q in their original order.
// A regex that does not compile yields no results and an error wrapping ErrInvalidQuery.
func (m *Matcher) Find(candidates []string, q domain.Query) ([]domain.MatchResult, error) {
	if q.Text == "" && m.emptyQuery == EmptyMatchesNone {
		return nil, nil
	}

	p, err := m.Compile(q)
	if err != nil {
		return nil, err
	}

	var results []domain.MatchResult
	for i, candidate := range candidates {
		spans, matched, err := p.FindAll(candidate)
		if err != nil {
			log.Printf("Matching %q against %q failed, skipping: %v", p.String(), candidate, err)
			continue
		}
		if !matched {
			continue
		}
		results = append(results, domain.MatchResult{
			Index:   i,
			Text:    candidate,
			Pattern: p.String(),
			Spans:   spans,
		})
	}

	return results, nil
}
