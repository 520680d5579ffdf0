package search

import "searchbox/internal/domain"

// State holds search state
type State struct {
	Query        domain.Query
	Results      []domain.MatchResult // matches for the last valid query
	CurrentMatch int                  // cursor into Results
	Err          error                // set while the query does not compile
}
