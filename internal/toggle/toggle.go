// Package toggle serializes follow/favorite style toggles: at most one
// request may be in flight per (user, target) pair, so a rapid double
// click settles as exactly one toggle instead of flipping back.
package toggle

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInFlight is returned when a toggle for the same key has started but
// not yet settled.
var ErrInFlight = errors.New("toggle already in flight")

// Guard tracks which toggle keys are currently pending.
type Guard struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

// NewGuard builds an empty Guard.
func NewGuard() *Guard {
	return &Guard{pending: make(map[string]struct{})}
}

// Key builds the canonical guard key for a (user, kind, target) triple.
func Key(kind string, userID, targetID int64) string {
	return fmt.Sprintf("%s:%d:%d", kind, userID, targetID)
}

// Do runs fn unless a call for the same key is still pending, in which
// case it returns ErrInFlight without invoking fn. The key settles when
// fn returns, whether it succeeded or not.
func (g *Guard) Do(key string, fn func() error) error {
	if !g.begin(key) {
		return ErrInFlight
	}
	defer g.settle(key)
	return fn()
}

// Pending reports whether a call for key is outstanding.
func (g *Guard) Pending(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.pending[key]
	return ok
}

func (g *Guard) begin(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.pending[key]; ok {
		return false
	}
	g.pending[key] = struct{}{}
	return true
}

func (g *Guard) settle(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.pending, key)
}
