package search

import (
	"log"

	"searchbox/internal/domain"
	"searchbox/internal/eventbus"
	"searchbox/internal/highlight"
	"searchbox/internal/matcher"
)

// Service runs the matcher over a fixed candidate set whenever the query changes
type Service struct {
	state         *State
	bus           eventbus.EventBus
	matcher       *matcher.Matcher
	candidates    []string
	keepOnInvalid bool
}

// NewService creates a search service and runs the initial (empty) search
func NewService(bus eventbus.EventBus, m *matcher.Matcher, candidates []string) *Service {
	s := &Service{
		state:      &State{},
		bus:        bus,
		matcher:    m,
		candidates: append([]string(nil), candidates...),
	}
	s.performSearch()
	return s
}

// SetKeepOnInvalid controls whether results from the last valid query stay
// visible while the current query fails to compile
func (s *Service) SetKeepOnInvalid(keep bool) {
	s.keepOnInvalid = keep
}

// SetQuery changes the query text and searches again
func (s *Service) SetQuery(text string) {
	if text == s.state.Query.Text {
		return
	}
	s.state.Query.Text = text
	s.performSearch()
}

// SetRegex switches regex interpretation on or off and searches again
func (s *Service) SetRegex(enabled bool) {
	if enabled == s.state.Query.Regex {
		return
	}
	s.state.Query.Regex = enabled
	s.publish(domain.RegexToggledEvent{Enabled: enabled})
	s.performSearch()
}

// ToggleRegex flips regex interpretation and returns the new setting
func (s *Service) ToggleRegex() bool {
	s.SetRegex(!s.state.Query.Regex)
	return s.state.Query.Regex
}

// Clear resets the query text, keeping the regex toggle
func (s *Service) Clear() {
	s.state.Query.Text = ""
	s.performSearch()
	s.publish(domain.SearchClearedEvent{})
}

// Query returns the current query
func (s *Service) Query() domain.Query {
	return s.state.Query
}

// Candidates returns the candidate set
func (s *Service) Candidates() []string {
	return s.candidates
}

// Results returns the current match results in candidate order
func (s *Service) Results() []domain.MatchResult {
	return s.state.Results
}

// Entries returns the current results as (text, markup) pairs
func (s *Service) Entries() ([]domain.Entry, error) {
	return highlight.Entries(s.state.Results)
}

// Err returns the compile error of the current query, or nil when it is valid
func (s *Service) Err() error {
	return s.state.Err
}

// GetMatchCount returns the number of matches
func (s *Service) GetMatchCount() int {
	return len(s.state.Results)
}

// GetCurrentMatch returns the position of the cursor in Results, or -1 when empty
func (s *Service) GetCurrentMatch() int {
	if len(s.state.Results) == 0 {
		return -1
	}
	return s.state.CurrentMatch
}

// NavigateNext moves to the next search result
func (s *Service) NavigateNext() {
	if len(s.state.Results) == 0 {
		return
	}

	oldMatch := s.state.CurrentMatch
	s.state.CurrentMatch = (s.state.CurrentMatch + 1) % len(s.state.Results)

	s.publishNavigated(oldMatch)
}

// NavigatePrevious moves to the previous search result
func (s *Service) NavigatePrevious() {
	if len(s.state.Results) == 0 {
		return
	}

	oldMatch := s.state.CurrentMatch
	s.state.CurrentMatch--
	if s.state.CurrentMatch < 0 {
		s.state.CurrentMatch = len(s.state.Results) - 1
	}

	s.publishNavigated(oldMatch)
}

// Internal methods
func (s *Service) performSearch() {
	s.publish(domain.SearchStartedEvent{Query: s.state.Query})

	results, err := s.matcher.Find(s.candidates, s.state.Query)
	if err != nil {
		s.state.Err = err
		if !s.keepOnInvalid {
			s.state.Results = nil
			s.state.CurrentMatch = 0
		}
		log.Printf("Search query %q is invalid: %v", s.state.Query.Text, err)
		s.publish(domain.QueryInvalidEvent{Query: s.state.Query, Err: err})
		return
	}
	s.state.Err = nil

	oldResults := s.state.Results
	s.state.Results = results

	// Keep the cursor only if the result list is unchanged
	if !sameIndices(oldResults, results) || s.state.CurrentMatch >= len(results) {
		s.state.CurrentMatch = 0
	}

	log.Printf("Search completed for '%s': found %d matches", s.state.Query.Text, len(results))

	firstMatch := -1
	if len(results) > 0 {
		firstMatch = results[0].Index
	}

	s.publish(domain.SearchCompletedEvent{
		Query:      s.state.Query,
		MatchCount: len(results),
		FirstMatch: firstMatch,
	})
}

func (s *Service) publishNavigated(oldMatch int) {
	s.publish(domain.SearchNavigatedEvent{
		OldIndex: s.state.Results[oldMatch].Index,
		NewIndex: s.state.Results[s.state.CurrentMatch].Index,
	})
}

func (s *Service) publish(event domain.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}

func sameIndices(a, b []domain.MatchResult) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Index != b[i].Index {
			return false
		}
	}
	return true
}
