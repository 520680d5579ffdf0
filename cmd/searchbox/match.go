package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"searchbox/internal/domain"
	"searchbox/internal/highlight"
	"searchbox/internal/matcher"
)

// Output formats for the match command
const (
	formatMarkup = "markup"
	formatTerm   = "term"
	formatPlain  = "plain"
)

var (
	matchFormat string
	matchCount  bool
)

var matchCmd = &cobra.Command{
	Use:   "match <needle>",
	Short: "Print the candidates matching a query once",
	Long: `Run a single search and print one line per matching candidate.

Formats:
  markup  matches wrapped in <b></b>, everything else escaped (default)
  term    matches in bold for a terminal
  plain   candidates only

An invalid regex exits with status 2.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchFormat, "format", "f", formatMarkup, "Output format: markup, term or plain")
	matchCmd.Flags().BoolVar(&matchCount, "count", false, "Print only the number of matches")
}

func runMatch(cmd *cobra.Command, args []string) error {
	closeLog := setupLogging(logFile)
	defer closeLog()

	switch matchFormat {
	case formatMarkup, formatTerm, formatPlain:
	default:
		return fmt.Errorf("unknown format %q: want %s, %s or %s", matchFormat, formatMarkup, formatTerm, formatPlain)
	}

	cfg, _, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	m, err := matcher.New(cfg.MatcherOptions())
	if err != nil {
		return err
	}

	results, err := m.Find(cfg.Candidates, domain.Query{Text: args[0], Regex: cfg.Search.Regex})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if matchCount {
		fmt.Fprintln(out, len(results))
		return nil
	}
	return writeResults(out, results, matchFormat)
}

func writeResults(out io.Writer, results []domain.MatchResult, format string) error {
	bold := color.New(color.Bold, color.FgHiYellow)

	for _, r := range results {
		var line string
		switch format {
		case formatPlain:
			line = r.Text
		case formatTerm:
			line = termHighlight(r, bold)
		default:
			markup, err := highlight.Result(r)
			if err != nil {
				return err
			}
			line = markup
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// termHighlight renders the spans of r with c. color disables itself when stdout is not a terminal.
func termHighlight(r domain.MatchResult, c *color.Color) string {
	var b strings.Builder
	pos := 0
	for _, s := range r.Spans {
		b.WriteString(r.Text[pos:s.Start])
		b.WriteString(c.Sprint(r.Text[s.Start:s.End]))
		pos = s.End
	}
	b.WriteString(r.Text[pos:])
	return b.String()
}
