package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchCleared   EventType = "SearchCleared"
	EventSearchNavigated EventType = "SearchNavigated"
	EventQueryInvalid    EventType = "QueryInvalid"
	EventRegexToggled    EventType = "RegexToggled"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventConfigChanged   EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when the query or the regex toggle changes
type SearchStartedEvent struct {
	Query Query
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted after the candidates were scanned
type SearchCompletedEvent struct {
	Query      Query
	MatchCount int
	FirstMatch int // candidate index of the first match (-1 if none)
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchClearedEvent is emitted when the query is reset
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// SearchNavigatedEvent is emitted when the match cursor moves
type SearchNavigatedEvent struct {
	OldIndex int
	NewIndex int
}

func (e SearchNavigatedEvent) Type() EventType { return EventSearchNavigated }

// QueryInvalidEvent is emitted when a regex query fails to compile
type QueryInvalidEvent struct {
	Query Query
	Err   error
}

func (e QueryInvalidEvent) Type() EventType { return EventQueryInvalid }

// RegexToggledEvent is emitted when regex interpretation is switched on or off
type RegexToggledEvent struct {
	Enabled bool
}

func (e RegexToggledEvent) Type() EventType { return EventRegexToggled }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path       string
	Candidates int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when a setting changed at runtime and should be persisted
type ConfigChangedEvent struct {
	Regex bool
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
