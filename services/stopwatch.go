package services

import (
	"sync"
	"time"
)

// Stopwatch counts whole seconds while a recording is active. Start resets
// the count to zero; Stop halts counting without resetting; starting while
// already running is a no-op. The tick loop is cancellable so no timer
// outlives its owner.
type Stopwatch struct {
	mu      sync.Mutex
	elapsed int
	running bool
	everRan bool
	stop    chan struct{}
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{}
}

func (s *Stopwatch) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.elapsed = 0
	s.running = true
	s.everRan = true
	s.stop = make(chan struct{})
	stop := s.stop
	s.mu.Unlock()

	go s.tick(stop)
}

func (s *Stopwatch) tick(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.running {
				s.elapsed++
			}
			s.mu.Unlock()
		}
	}
}

func (s *Stopwatch) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stop)
}

// Elapsed returns the whole seconds counted since the last Start
func (s *Stopwatch) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// EverRan reports whether the stopwatch was started at least once; a
// submission with no recorded time falls back to a default duration
func (s *Stopwatch) EverRan() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.everRan
}
