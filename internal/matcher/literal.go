package matcher

import (
	"strings"
	"unicode/utf8"

	"searchbox/internal/domain"
)

// literalPattern matches a needle byte for byte, so it agrees with
// strings.Contains on any input, including invalid UTF-8.
// fold is set for case-insensitive search and is only used on valid UTF-8.
type literalPattern struct {
	needle string
	source string
	fold   Pattern
}

func (p literalPattern) String() string { return p.source }

func (p literalPattern) FindAll(s string) ([]domain.Span, bool, error) {
	if p.fold != nil && utf8.ValidString(s) {
		return p.fold.FindAll(s)
	}

	if p.needle == "" {
		return nil, true, nil
	}

	var spans []domain.Span
	pos := 0
	for {
		i := strings.Index(s[pos:], p.needle)
		if i < 0 {
			break
		}
		start := pos + i
		spans = append(spans, domain.Span{Start: start, End: start + len(p.needle)})
		pos = start + len(p.needle)
	}
	return spans, len(spans) > 0, nil
}
