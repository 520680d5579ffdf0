package matcher

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dlclark/regexp2"

	"searchbox/internal/domain"
)

// Engine names accepted in configuration
const (
	EngineRE2  = "re2"
	EnginePCRE = "pcre"
)

// pcreMatchTimeout bounds backtracking on pathological patterns
const pcreMatchTimeout = time.Second

// Engine compiles search patterns
type Engine interface {
	// Name returns the configuration name of the engine
	Name() string

	// Escape quotes every metacharacter so the result matches s literally
	Escape(s string) string

	// Compile compiles a pattern for unanchored search
	Compile(pattern string, ignoreCase bool) (Pattern, error)
}

// Pattern is a compiled search pattern
type Pattern interface {
	// String returns the pattern source
	String() string

	// FindAll returns every non-empty match in s as byte spans.
	// matched is true when at least one match exists, including zero-width ones.
	FindAll(s string) (spans []domain.Span, matched bool, err error)
}

// NewEngine returns the engine registered under name
func NewEngine(name string) (Engine, error) {
	switch name {
	case "", EngineRE2:
		return re2Engine{}, nil
	case EnginePCRE:
		return pcreEngine{timeout: pcreMatchTimeout}, nil
	default:
		return nil, fmt.Errorf("unknown regex engine %q", name)
	}
}

// re2Engine uses the standard library's linear-time regexp package
type re2Engine struct{}

func (re2Engine) Name() string { return EngineRE2 }

func (re2Engine) Escape(s string) string { return regexp.QuoteMeta(s) }

func (re2Engine) Compile(pattern string, ignoreCase bool) (Pattern, error) {
	src := pattern
	if ignoreCase {
		src = "(?i)" + pattern
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}
	return re2Pattern{re: re, source: pattern}, nil
}

type re2Pattern struct {
	re     *regexp.Regexp
	source string
}

func (p re2Pattern) String() string { return p.source }

func (p re2Pattern) FindAll(s string) ([]domain.Span, bool, error) {
	locs := p.re.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return nil, false, nil
	}

	spans := make([]domain.Span, 0, len(locs))
	for _, loc := range locs {
		span := domain.Span{Start: loc[0], End: loc[1]}
		if span.Empty() {
			continue
		}
		spans = append(spans, span)
	}
	return spans, true, nil
}

// pcreEngine uses regexp2 for Perl-compatible syntax (backreferences, lookaround)
type pcreEngine struct {
	timeout time.Duration
}

func (pcreEngine) Name() string { return EnginePCRE }

func (pcreEngine) Escape(s string) string { return regexp2.Escape(s) }

func (e pcreEngine) Compile(pattern string, ignoreCase bool) (Pattern, error) {
	opts := regexp2.None
	if ignoreCase {
		opts |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = e.timeout
	return pcrePattern{re: re}, nil
}

type pcrePattern struct {
	re *regexp2.Regexp
}

func (p pcrePattern) String() string { return p.re.String() }

func (p pcrePattern) FindAll(s string) ([]domain.Span, bool, error) {
	m, err := p.re.FindStringMatch(s)
	if err != nil {
		return nil, false, err
	}
	if m == nil {
		return nil, false, nil
	}

	// regexp2 reports offsets in runes
	offsets := runeOffsets(s)
	var spans []domain.Span
	for m != nil {
		span := domain.Span{
			Start: offsets[m.Index],
			End:   offsets[m.Index+m.Length],
		}
		if !span.Empty() {
			spans = append(spans, span)
		}
		m, err = p.re.FindNextMatch(m)
		if err != nil {
			return nil, false, err
		}
	}
	return spans, true, nil
}

// runeOffsets maps rune index i to its byte offset; the final entry is len(s)
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
