package mem

import (
	"testing"
	"time"
)

func TestOAuthStatesSingleUse(t *testing.T) {
	t.Parallel()

	s := NewOAuthStates()
	s.Set("abc", "account-1", time.Minute)

	if v, ok := s.Consume("abc"); !ok || v != "account-1" {
		t.Fatalf("Consume() = %q, %v", v, ok)
	}
	if _, ok := s.Consume("abc"); ok {
		t.Fatal("state consumed twice")
	}
}

func TestOAuthStatesExpire(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewOAuthStates()
	s.now = func() time.Time { return now }

	s.Set("login", "", DefaultStateTTL)
	now = now.Add(DefaultStateTTL + time.Second)

	if _, ok := s.Consume("login"); ok {
		t.Fatal("expired state consumed")
	}

	s.Set("other", "x", time.Minute)
	if len(s.data) != 1 {
		t.Fatalf("expired entries kept: %d", len(s.data))
	}
}
