package main

import (
	"sync"

	"searchbox/internal/eventbus"
)

// regexSetting follows ConfigChanged events so the last regex toggle can be
// persisted when the UI exits
type regexSetting struct {
	mu      sync.Mutex
	initial bool
	current bool
}

// trackRegexSetting subscribes to config changes on bus, starting from initial
func trackRegexSetting(bus eventbus.EventBus, initial bool) *regexSetting {
	s := &regexSetting{initial: initial, current: initial}
	bus.Subscribe(eventbus.EventConfigChanged, s.handle)
	return s
}

func (s *regexSetting) handle(e eventbus.DomainEvent) {
	event, ok := e.(eventbus.ConfigChangedEvent)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = event.Regex
}

// Value returns the latest toggle and whether it differs from the initial one
func (s *regexSetting) Value() (enabled bool, changed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current != s.initial
}
