package takugo

import (
	"sync/atomic"
	"time"
)

type ProgressUpdate struct {
	Assigned int
	Cells    int
	Nodes    int64
}

type Stats struct {
	Nodes    int64
	Pruned   int64
	Duration time.Duration
}

// Solver searches for completions of one starting board. The board is
// copied on every branch, so the starting position survives the search and
// one Solver can run Solve and the enumeration methods in turn.
type Solver struct {
	b        Board
	Progress chan ProgressUpdate
	watch    *Stopwatch
	nodes    atomic.Int64
	pruned   atomic.Int64
	deepest  atomic.Int64
}

func NewSolver(b Board) *Solver {
	return &Solver{
		b:        b,
		Progress: make(chan ProgressUpdate, b.Cells()*2),
		watch:    NewStopwatch(),
	}
}

// Solve runs a depth-first search and returns the first solution found, or
// false if no completion of the starting board satisfies the rules. The
// search always branches on the lowest undetermined cell and tries 0
// before 1, so the result is deterministic.
func (s *Solver) Solve() (Board, bool) {
	s.watch.Start("solve")
	defer s.watch.Stop("solve")
	if !s.b.Valid() {
		return Board{}, false
	}
	return s.search(s.b)
}

func (s *Solver) search(b Board) (Board, bool) {
	i, ok := b.FirstUnknown()
	if !ok {
		return b, true
	}
	for _, cell := range [2]Cell{ZERO, ONE} {
		next := b.set(i, cell)
		s.nodes.Add(1)
		if !next.Valid() {
			s.pruned.Add(1)
			continue
		}
		s.noteProgress(next)
		if solved, ok := s.search(next); ok {
			return solved, true
		}
	}
	return Board{}, false
}

func (s *Solver) noteProgress(b Board) {
	assigned := int64(b.KnownCount())
	if assigned <= s.deepest.Load() {
		return
	}
	s.deepest.Store(assigned)
	s.SendProgress(int(assigned))
}

// SendProgress never blocks; if nobody is draining the channel and its
// buffer is full, the update is dropped.
func (s *Solver) SendProgress(assigned int) {
	if s.Progress == nil {
		return
	}
	update := ProgressUpdate{
		Assigned: assigned,
		Cells:    s.b.Cells(),
		Nodes:    s.nodes.Load(),
	}
	select {
	case s.Progress <- update:
	default:
	}
}

// Stats reports node and prune counts across every search this Solver has
// run. Duration is the time spent in Solve; the stopwatch holds per-phase
// detail.
func (s *Solver) Stats() Stats {
	return Stats{
		Nodes:    s.nodes.Load(),
		Pruned:   s.pruned.Load(),
		Duration: s.watch.Elapsed("solve"),
	}
}

func (s *Solver) Watch() *Stopwatch {
	return s.watch
}
