package takugo

import "context"

// Solutions streams every completion of the starting board over a channel,
// in the same deterministic order Solve visits them. The channel closes
// once the space is exhausted or ctx is canceled, so a caller that stops
// early must cancel to release the producer.
func (s *Solver) Solutions(ctx context.Context) <-chan Board {
	c := make(chan Board)
	go func() {
		defer close(c)
		s.watch.Start("enumerate")
		defer s.watch.Stop("enumerate")
		if !s.b.Valid() {
			return
		}
		s.enumerate(ctx, s.b, c)
	}()
	return c
}

func (s *Solver) enumerate(ctx context.Context, b Board, c chan<- Board) {
	select {
	case <-ctx.Done():
		return
	default:
	}
	i, ok := b.FirstUnknown()
	if !ok {
		select {
		case c <- b:
		case <-ctx.Done():
		}
		return
	}
	for _, cell := range [2]Cell{ZERO, ONE} {
		next := b.set(i, cell)
		s.nodes.Add(1)
		if !next.Valid() {
			s.pruned.Add(1)
			continue
		}
		s.enumerate(ctx, next, c)
	}
}

// CountSolutions counts completions of the starting board, stopping once
// limit is reached. A limit of 0 or less counts the whole space.
func (s *Solver) CountSolutions(ctx context.Context, limit int) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	n := 0
	for range s.Solutions(ctx) {
		if limit > 0 && n == limit {
			continue
		}
		n++
		if limit > 0 && n == limit {
			cancel()
		}
	}
	return n
}

// Unique reports whether the starting board has exactly one completion.
func (s *Solver) Unique(ctx context.Context) bool {
	return s.CountSolutions(ctx, 2) == 1
}
