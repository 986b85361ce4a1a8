// Package session serializes turns per (bot, user) conversation. Each active
// conversation gets one dispatcher goroutine; a new message that lands while
// a turn is still disposable cancels it and restarts with the inputs merged,
// while a turn that is already delivering gets the message queued behind it.
package session

import (
	"errors"
	"time"

	"github.com/rapport-chat/rapport/pkg/models"
)

// ErrShuttingDown is returned for submissions after Stop has begun.
var ErrShuttingDown = errors.New("session manager is shutting down")

// mergeSeparator joins a superseded input with the one that replaced it.
const mergeSeparator = "\n"

// submission is one user message waiting for a turn. Merged and coalesced
// submissions accumulate waiters; every waiter gets the same result.
type submission struct {
	input    string
	received time.Time
	waiters  []chan models.TurnResult
}

func (s *submission) resolve(res models.TurnResult) {
	for _, w := range s.waiters {
		w <- res
	}
	s.waiters = nil
}

// absorb folds a newer submission into this one.
func (s *submission) absorb(next *submission) {
	s.input = s.input + mergeSeparator + next.input
	s.received = next.received
	s.waiters = append(s.waiters, next.waiters...)
}
