// Package signal broadcasts coalescing change notifications from state
// holders, such as the notification and overlay registries, to the UI loop.
package signal

import "sync"

// Signal fans a change event out to every subscriber. Each subscriber channel
// holds at most one pending value, so bursts of changes collapse into one
// wake-up.
type Signal struct {
	mu     sync.Mutex
	subs   []chan struct{}
	closed bool
}

// New creates an open Signal.
func New() *Signal {
	return &Signal{}
}

// Subscribe registers a new listener. After Close the returned channel is
// already closed.
func (s *Signal) Subscribe() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{}, 1)
	if s.closed {
		close(ch)
		return ch
	}
	s.subs = append(s.subs, ch)
	return ch
}

// Notify wakes every subscriber without blocking.
func (s *Signal) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Close closes every subscriber channel. It is safe to call more than once.
func (s *Signal) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
}
