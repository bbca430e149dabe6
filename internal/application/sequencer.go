package application

import "sync"

// Sequencer orders responses for one screen. Each request takes a ticket
// from Begin; Accept reports whether its response is still the freshest.
type Sequencer struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
}

func (s *Sequencer) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	return s.issued
}

func (s *Sequencer) Accept(ticket uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket < s.applied {
		return false
	}
	s.applied = ticket
	return true
}

// Invalidate makes every outstanding ticket stale.
func (s *Sequencer) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	s.applied = s.issued
}
