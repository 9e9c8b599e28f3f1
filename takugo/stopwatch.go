package takugo

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Stopwatch accumulates wall time in named buckets. A bucket may be
// started and stopped any number of times; Elapsed returns its running
// total. Safe for use from the enumeration goroutine and its caller.
type Stopwatch struct {
	mu      sync.Mutex
	buckets map[string]time.Duration
	starts  map[string]time.Time
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{
		buckets: make(map[string]time.Duration),
		starts:  make(map[string]time.Time),
	}
}

func (s *Stopwatch) Start(b string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.starts[b] = time.Now()
	if _, ok := s.buckets[b]; !ok {
		s.buckets[b] = 0
	}
}

func (s *Stopwatch) Stop(b string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	start, ok := s.starts[b]
	if !ok {
		return
	}
	s.buckets[b] += time.Since(start)
	delete(s.starts, b)
}

func (s *Stopwatch) Elapsed(b string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buckets[b]
}

// Results lists each bucket's total in seconds, one per line, sorted by
// name.
func (s *Stopwatch) Results() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.buckets))
	for k := range s.buckets {
		names = append(names, k)
	}
	sort.Strings(names)
	out := ""
	for _, k := range names {
		out += fmt.Sprintf("%s: %.4f\n", k, s.buckets[k].Seconds())
	}
	return out
}
