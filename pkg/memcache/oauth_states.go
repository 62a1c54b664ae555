// Package mem holds short-lived single-use values kept in process memory.
package mem

import (
	"sync"
	"time"
)

const DefaultStateTTL = 10 * time.Minute

type StateStore interface {
	Set(state string, value string, ttl time.Duration)

	// Consume returns the value stored for state and removes it. Missing or
	// expired states report false.
	Consume(state string) (string, bool)
}

type entry struct {
	value     string
	expiresAt time.Time
}

// OAuthStates maps an OAuth "state" parameter to the account that started
// the flow ("" for a plain sign-in).
type OAuthStates struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewOAuthStates() *OAuthStates {
	return &OAuthStates{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *OAuthStates) Set(state string, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
		}
	}
	s.data[state] = entry{value: value, expiresAt: now.Add(ttl)}
}

func (s *OAuthStates) Consume(state string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[state]
	if !ok {
		return "", false
	}
	delete(s.data, state)
	if s.now().After(e.expiresAt) {
		return "", false
	}
	return e.value, true
}

