package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchbox/internal/domain"
	"searchbox/internal/matcher"
)

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "config.toml")
}

func lines(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestMatchLiteralMarkup(t *testing.T) {
	out, err := run(t, missingConfig(t), "match", "abc")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"<b>abc</b>",
		"<b>abc</b>d",
		"<b>abc</b><b>abc</b>",
		"<b>abc</b>d<b>abc</b>d",
	}, lines(out))
}

func TestMatchLiteralDotIsNotWildcard(t *testing.T) {
	out, err := run(t, missingConfig(t), "match", "a.c")
	require.NoError(t, err)
	assert.Empty(t, lines(out))
}

func TestMatchRegex(t *testing.T) {
	out, err := run(t, missingConfig(t), "--regex", "match", "a.c")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"<b>abc</b>",
		"<b>abc</b>d",
		"<b>abc</b><b>abc</b>",
		"<b>abc</b>d<b>abc</b>d",
	}, lines(out))
}

func TestMatchPlainFormat(t *testing.T) {
	out, err := run(t, missingConfig(t), "match", "--format", "plain", "abcd")
	require.NoError(t, err)
	assert.Equal(t, []string{"abcd", "abcdabcd"}, lines(out))
}

func TestMatchCount(t *testing.T) {
	out, err := run(t, missingConfig(t), "match", "--count", "ab")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
}

func TestMatchCandidatesFromFlags(t *testing.T) {
	out, err := run(t, missingConfig(t), "--candidate", "x<y", "--candidate", "zz", "match", "<")
	require.NoError(t, err)
	assert.Equal(t, []string{"x<b>&lt;</b>y"}, lines(out))
}

func TestMatchLiteralInvalidUTF8(t *testing.T) {
	out, err := run(t, missingConfig(t), "--candidate", "a\xffb", "--candidate", "a\uFFFDb", "match", "--format", "plain", "\xff")
	require.NoError(t, err)
	assert.Equal(t, []string{"a\xffb"}, lines(out))
}

func TestMatchInvalidRegex(t *testing.T) {
	out, err := run(t, missingConfig(t), "-r", "match", "[")
	require.Error(t, err)
	assert.True(t, errors.Is(err, matcher.ErrInvalidQuery))
	assert.Empty(t, out)
}

func TestMatchUnknownFormat(t *testing.T) {
	_, err := run(t, missingConfig(t), "match", "--format", "html", "a")
	require.Error(t, err)
	assert.False(t, errors.Is(err, matcher.ErrInvalidQuery))
	assert.Contains(t, err.Error(), "unknown format")
}

func TestTermHighlight(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	c := color.New(color.Bold)
	r := domain.MatchResult{Text: "xabyab", Spans: []domain.Span{{Start: 1, End: 3}, {Start: 4, End: 6}}}

	got := termHighlight(r, c)
	assert.Equal(t, "x"+c.Sprint("ab")+"y"+c.Sprint("ab"), got)
	assert.Contains(t, got, "\x1b[1m")
}

func TestTermHighlightWithoutColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	r := domain.MatchResult{Text: "xabyab", Spans: []domain.Span{{Start: 1, End: 3}}}
	assert.Equal(t, "xabyab", termHighlight(r, color.New(color.Bold)))
}
